package entity

import (
	"time"

	"github.com/google/uuid"
)

// Sample maps the warehouse "sample" table. The schema is owned by the
// warehouse feeds; column names and nullability must match it exactly.
type Sample struct {
	IDSampleTmp                int        `gorm:"column:id_sample_tmp;primaryKey;autoIncrement"`
	IDLims                     string     `gorm:"column:id_lims;type:varchar(10);not null"`
	IDSampleLims               string     `gorm:"column:id_sample_lims;type:varchar(20);not null"`
	Created                    time.Time  `gorm:"column:created;not null"`
	LastUpdated                time.Time  `gorm:"column:last_updated;not null"`
	RecordedAt                 time.Time  `gorm:"column:recorded_at;not null"`
	ConsentWithdrawn           int        `gorm:"column:consent_withdrawn;not null;default:0"`
	Name                       *string    `gorm:"column:name;type:varchar(255);index"`
	Organism                   *string    `gorm:"column:organism;type:varchar(255)"`
	AccessionNumber            *string    `gorm:"column:accession_number;type:varchar(50);index"`
	CommonName                 *string    `gorm:"column:common_name;type:varchar(255)"`
	Cohort                     *string    `gorm:"column:cohort;type:varchar(255)"`
	SangerSampleID             *string    `gorm:"column:sanger_sample_id;type:varchar(255);index"`
	SupplierName               *string    `gorm:"column:supplier_name;type:varchar(255);index"`
	PublicName                 *string    `gorm:"column:public_name;type:varchar(255)"`
	DonorID                    *string    `gorm:"column:donor_id;type:varchar(255)"`
	DateOfConsentWithdrawn     *time.Time `gorm:"column:date_of_consent_withdrawn"`
	MarkedAsConsentWithdrawnBy *string    `gorm:"column:marked_as_consent_withdrawn_by;type:varchar(255)"`
	UUIDSampleLims             string     `gorm:"column:uuid_sample_lims;type:varchar(36);not null"`

	IseqFlowcells []IseqFlowcell `gorm:"foreignKey:IDSampleTmp;references:IDSampleTmp"`
	OseqFlowcells []OseqFlowcell `gorm:"foreignKey:IDSampleTmp;references:IDSampleTmp"`
	PacBioRuns    []PacBioRun    `gorm:"foreignKey:IDSampleTmp;references:IDSampleTmp"`
}

func (Sample) TableName() string {
	return "sample"
}

// UUID parses the LIMS sample UUID. The column is stored as text because the
// warehouse feed writes it that way.
func (s *Sample) UUID() (uuid.UUID, error) {
	return uuid.Parse(s.UUIDSampleLims)
}
