package entity

import "time"

// PacBioRun maps the warehouse "pac_bio_run" table, one row per run/well
// entry.
type PacBioRun struct {
	IDPacBioTmp     int       `gorm:"column:id_pac_bio_tmp;primaryKey;autoIncrement"`
	LastUpdated     time.Time `gorm:"column:last_updated;not null"`
	RecordedAt      time.Time `gorm:"column:recorded_at;not null"`
	IDSampleTmp     int       `gorm:"column:id_sample_tmp;not null"`
	IDStudyTmp      int       `gorm:"column:id_study_tmp;not null"`
	PacBioRunName   *string   `gorm:"column:pac_bio_run_name;type:varchar(255)"`
	WellLabel       string    `gorm:"column:well_label;type:varchar(255);not null"`
	PlateNumber     *int      `gorm:"column:plate_number"`
	IDLims          string    `gorm:"column:id_lims;type:varchar(10);not null"`
	IDPacBioRunLims string    `gorm:"column:id_pac_bio_run_lims;type:varchar(20);not null"`
	TagIdentifier   *string   `gorm:"column:tag_identifier;type:varchar(30)"`
	TagSequence     *string   `gorm:"column:tag_sequence;type:varchar(30)"`
	TagSetIDLims    *string   `gorm:"column:tag_set_id_lims;type:varchar(20)"`
	TagSetName      *string   `gorm:"column:tag_set_name;type:varchar(100)"`
	Tag2Identifier  *string   `gorm:"column:tag2_identifier;type:varchar(30)"`
	Tag2Sequence    *string   `gorm:"column:tag2_sequence;type:varchar(30)"`
	Tag2SetIDLims   *string   `gorm:"column:tag2_set_id_lims;type:varchar(20)"`
	Tag2SetName     *string   `gorm:"column:tag2_set_name;type:varchar(100)"`

	Sample               Sample                 `gorm:"foreignKey:IDSampleTmp;references:IDSampleTmp"`
	Study                Study                  `gorm:"foreignKey:IDStudyTmp;references:IDStudyTmp"`
	PacBioProductMetrics []PacBioProductMetrics `gorm:"foreignKey:IDPacBioTmp;references:IDPacBioTmp"`
}

func (PacBioRun) TableName() string {
	return "pac_bio_run"
}
