package entity

import "time"

// PacBioProductMetrics maps the warehouse "pac_bio_product_metrics" table.
// Each row joins one run entry to one well metrics row; the pairing is
// unique.
type PacBioProductMetrics struct {
	IDPacBioPrMetricsTmp int        `gorm:"column:id_pac_bio_pr_metrics_tmp;primaryKey"`
	LastChanged          *time.Time `gorm:"column:last_changed"`
	IDPacBioRwMetricsTmp int        `gorm:"column:id_pac_bio_rw_metrics_tmp;not null;index;uniqueIndex:pac_bio_metrics_product,priority:2"`
	IDPacBioTmp          int        `gorm:"column:id_pac_bio_tmp;not null;index;uniqueIndex:pac_bio_metrics_product,priority:1"`
	IDPacBioProduct      string     `gorm:"column:id_pac_bio_product;type:varchar(64);not null;uniqueIndex"`
	QC                   bool       `gorm:"column:qc;not null"`

	PacBioRunWellMetrics PacBioRunWellMetrics `gorm:"foreignKey:IDPacBioRwMetricsTmp;references:IDPacBioRwMetricsTmp"`
	PacBioRun            PacBioRun            `gorm:"foreignKey:IDPacBioTmp;references:IDPacBioTmp"`
}

func (PacBioProductMetrics) TableName() string {
	return "pac_bio_product_metrics"
}
