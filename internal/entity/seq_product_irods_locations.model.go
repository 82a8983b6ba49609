package entity

import "time"

// SeqProductIrodsLocations maps the warehouse "seq_product_irods_locations"
// table, linking a sequencing product to its collection in iRODS. There is
// no foreign key to the platform metrics tables; rows correlate with them
// only through the shared product id string.
type SeqProductIrodsLocations struct {
	IDSeqProductIrodsLocationsTmp  int64      `gorm:"column:id_seq_product_irods_locations_tmp;primaryKey;autoIncrement"`
	Created                        *time.Time `gorm:"column:created"`
	LastChanged                    *time.Time `gorm:"column:last_changed"`
	IDProduct                      string     `gorm:"column:id_product;type:varchar(64);not null"`
	SeqPlatformName                Platform   `gorm:"column:seq_platform_name;type:varchar(10);not null"`
	PipelineName                   string     `gorm:"column:pipeline_name;type:varchar(32);not null"`
	IrodsRootCollection            string     `gorm:"column:irods_root_collection;type:varchar(255);not null"`
	IrodsDataRelativePath          *string    `gorm:"column:irods_data_relative_path;type:varchar(255)"`
	IrodsSecondaryDataRelativePath *string    `gorm:"column:irods_secondary_data_relative_path;type:varchar(255)"`
}

func (SeqProductIrodsLocations) TableName() string {
	return "seq_product_irods_locations"
}
