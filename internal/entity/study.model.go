package entity

import "time"

// Study maps the warehouse "study" table.
type Study struct {
	IDStudyTmp              int       `gorm:"column:id_study_tmp;primaryKey;autoIncrement"`
	IDLims                  string    `gorm:"column:id_lims;type:varchar(10);not null"`
	IDStudyLims             string    `gorm:"column:id_study_lims;type:varchar(20);not null"`
	Created                 time.Time `gorm:"column:created;not null"`
	LastUpdated             time.Time `gorm:"column:last_updated;not null"`
	RecordedAt              time.Time `gorm:"column:recorded_at;not null"`
	Name                    *string   `gorm:"column:name;type:varchar(255);index"`
	AccessionNumber         *string   `gorm:"column:accession_number;type:varchar(50);index"`
	Description             *string   `gorm:"column:description;type:text"`
	ContainsHumanDNA        *int      `gorm:"column:contains_human_dna;default:0"`
	ContaminatedHumanDNA    *int      `gorm:"column:contaminated_human_dna;default:0"`
	RemoveXAndAutosomes     *int      `gorm:"column:remove_x_and_autosomes;default:0"`
	SeparateYChromosomeData *int      `gorm:"column:separate_y_chromosome_data;default:0"`
	ENAProjectID            *string   `gorm:"column:ena_project_id;type:varchar(255)"`
	StudyTitle              *string   `gorm:"column:study_title;type:varchar(255)"`
	StudyVisibility         *string   `gorm:"column:study_visibility;type:varchar(255)"`
	EGADACAccessionNumber   *string   `gorm:"column:ega_dac_accession_number;type:varchar(255)"`
	DataAccessGroup         *string   `gorm:"column:data_access_group;type:varchar(255)"`

	IseqFlowcells []IseqFlowcell `gorm:"foreignKey:IDStudyTmp;references:IDStudyTmp"`
	OseqFlowcells []OseqFlowcell `gorm:"foreignKey:IDStudyTmp;references:IDStudyTmp"`
	PacBioRuns    []PacBioRun    `gorm:"foreignKey:IDStudyTmp;references:IDStudyTmp"`
}

func (Study) TableName() string {
	return "study"
}
