package entity

import "time"

// IseqProductMetrics maps the warehouse "iseq_product_metrics" table. The
// flowcell reference is nullable: when a flowcell row is deleted upstream the
// product row survives with the reference cleared.
type IseqProductMetrics struct {
	IDIseqPrMetricsTmp int        `gorm:"column:id_iseq_pr_metrics_tmp;primaryKey;autoIncrement"`
	IDIseqProduct      string     `gorm:"column:id_iseq_product;type:varchar(64);not null;uniqueIndex"`
	LastChanged        *time.Time `gorm:"column:last_changed"`
	IDIseqFlowcellTmp  *int       `gorm:"column:id_iseq_flowcell_tmp;index"`
	IDRun              *int       `gorm:"column:id_run"`
	Position           *int       `gorm:"column:position"`
	TagIndex           *int       `gorm:"column:tag_index"`
	QC                 *int       `gorm:"column:qc"`

	IseqFlowcell *IseqFlowcell `gorm:"foreignKey:IDIseqFlowcellTmp;references:IDIseqFlowcellTmp;constraint:OnDelete:SET NULL"`
}

func (IseqProductMetrics) TableName() string {
	return "iseq_product_metrics"
}
