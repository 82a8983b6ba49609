package entity

import "time"

// PacBioRunWellMetrics maps the warehouse "pac_bio_run_well_metrics" table,
// aggregated metrics for one (run, well, plate) combination.
type PacBioRunWellMetrics struct {
	IDPacBioRwMetricsTmp int        `gorm:"column:id_pac_bio_rw_metrics_tmp;primaryKey;autoIncrement"`
	LastChanged          *time.Time `gorm:"column:last_changed"`
	IDPacBioProduct      string     `gorm:"column:id_pac_bio_product;type:varchar(64);not null"`
	PacBioRunName        string     `gorm:"column:pac_bio_run_name;type:varchar(255);not null;uniqueIndex:pac_bio_metrics_run_well"`
	WellLabel            string     `gorm:"column:well_label;type:varchar(255);not null;uniqueIndex:pac_bio_metrics_run_well"`
	PlateNumber          *int       `gorm:"column:plate_number;uniqueIndex:pac_bio_metrics_run_well"`

	PacBioProductMetrics []PacBioProductMetrics `gorm:"foreignKey:IDPacBioRwMetricsTmp;references:IDPacBioRwMetricsTmp"`
}

func (PacBioRunWellMetrics) TableName() string {
	return "pac_bio_run_well_metrics"
}
