package entity

import "time"

// IseqFlowcell maps the warehouse "iseq_flowcell" table, one row per
// Illumina lane/tag entry. The study reference is optional; the sample
// reference is not.
type IseqFlowcell struct {
	IDIseqFlowcellTmp int       `gorm:"column:id_iseq_flowcell_tmp;primaryKey;autoIncrement"`
	LastUpdated       time.Time `gorm:"column:last_updated;not null"`
	RecordedAt        time.Time `gorm:"column:recorded_at;not null"`
	IDSampleTmp       int       `gorm:"column:id_sample_tmp;not null;index"`
	IDLims            string    `gorm:"column:id_lims;type:varchar(10);not null"`
	IDFlowcellLims    string    `gorm:"column:id_flowcell_lims;type:varchar(20);not null"`
	Position          int       `gorm:"column:position;not null"`
	EntityType        string    `gorm:"column:entity_type;type:varchar(30);not null"`
	EntityIDLims      string    `gorm:"column:entity_id_lims;type:varchar(20);not null"`
	IDPoolLims        string    `gorm:"column:id_pool_lims;type:varchar(20);not null"`
	IDStudyTmp        *int      `gorm:"column:id_study_tmp;index"`
	ManualQC          *int      `gorm:"column:manual_qc"`
	TagIndex          *int      `gorm:"column:tag_index"`
	PipelineIDLims    *string   `gorm:"column:pipeline_id_lims;type:varchar(60)"`
	IDLibraryLims     *string   `gorm:"column:id_library_lims;type:varchar(255);index"`
	PrimerPanel       *string   `gorm:"column:primer_panel;type:varchar(255)"`

	Sample             Sample               `gorm:"foreignKey:IDSampleTmp;references:IDSampleTmp"`
	Study              *Study               `gorm:"foreignKey:IDStudyTmp;references:IDStudyTmp"`
	IseqProductMetrics []IseqProductMetrics `gorm:"foreignKey:IDIseqFlowcellTmp;references:IDIseqFlowcellTmp"`
}

func (IseqFlowcell) TableName() string {
	return "iseq_flowcell"
}
