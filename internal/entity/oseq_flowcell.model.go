package entity

import "time"

// OseqFlowcell maps the warehouse "oseq_flowcell" table, one row per
// Nanopore flowcell/experiment entry. Both the sample and study references
// are required.
type OseqFlowcell struct {
	IDOseqFlowcellTmp int       `gorm:"column:id_oseq_flowcell_tmp;primaryKey;autoIncrement"`
	IDFlowcellLims    string    `gorm:"column:id_flowcell_lims;type:varchar(255);not null"`
	LastUpdated       time.Time `gorm:"column:last_updated;not null"`
	RecordedAt        time.Time `gorm:"column:recorded_at;not null"`
	IDSampleTmp       int       `gorm:"column:id_sample_tmp;not null;index"`
	IDStudyTmp        int       `gorm:"column:id_study_tmp;not null;index"`
	ExperimentName    string    `gorm:"column:experiment_name;type:varchar(255);not null"`
	InstrumentName    string    `gorm:"column:instrument_name;type:varchar(255);not null"`
	InstrumentSlot    int       `gorm:"column:instrument_slot;not null"`
	IDLims            string    `gorm:"column:id_lims;type:varchar(10);not null"`
	PipelineIDLims    *string   `gorm:"column:pipeline_id_lims;type:varchar(255)"`
	RequestedDataType *string   `gorm:"column:requested_data_type;type:varchar(255)"`
	TagIdentifier     *string   `gorm:"column:tag_identifier;type:varchar(255)"`
	TagSequence       *string   `gorm:"column:tag_sequence;type:varchar(255)"`
	TagSetIDLims      *string   `gorm:"column:tag_set_id_lims;type:varchar(255)"`
	TagSetName        *string   `gorm:"column:tag_set_name;type:varchar(255)"`
	Tag2Identifier    *string   `gorm:"column:tag2_identifier;type:varchar(255)"`
	Tag2Sequence      *string   `gorm:"column:tag2_sequence;type:varchar(255)"`
	Tag2SetIDLims     *string   `gorm:"column:tag2_set_id_lims;type:varchar(255)"`
	Tag2SetName       *string   `gorm:"column:tag2_set_name;type:varchar(255)"`
	FlowcellID        *string   `gorm:"column:flowcell_id;type:varchar(255)"`
	RunID             *string   `gorm:"column:run_id;type:varchar(255)"`

	Sample Sample `gorm:"foreignKey:IDSampleTmp;references:IDSampleTmp"`
	Study  Study  `gorm:"foreignKey:IDStudyTmp;references:IDStudyTmp"`
}

func (OseqFlowcell) TableName() string {
	return "oseq_flowcell"
}
