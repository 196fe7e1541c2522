package catalog

// ProductCategory is a lookup table for product grouping.
type ProductCategory struct {
	ID   int64  `gorm:"column:id_product_category;primaryKey;autoIncrement" json:"id_product_category"`
	Name string `gorm:"column:product_category;type:varchar(50)" json:"product_category"`
}

// TableName returns the table name for GORM
func (ProductCategory) TableName() string {
	return "product_category"
}

// PrimaryKeyColumn returns the identity column per the id_<table> convention
func (ProductCategory) PrimaryKeyColumn() string {
	return "id_product_category"
}
