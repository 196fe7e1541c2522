package catalog

import (
	"time"
)

// Product represents a sellable product. Stock levels live on supply line
// items, not here; a product is purely catalog data plus a category reference.
type Product struct {
	ID          int64      `gorm:"column:id_products;primaryKey;autoIncrement" json:"id_products"`
	Name        string     `gorm:"column:products_name;type:varchar(450)" json:"products_name"`
	RegDate     *time.Time `gorm:"column:reg_date;type:date" json:"reg_date,omitempty"`
	Description string     `gorm:"column:prod_description;type:varchar(500)" json:"prod_description"`
	CategoryID  *int64     `gorm:"column:id_product_category" json:"id_product_category,omitempty"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// PrimaryKeyColumn returns the identity column per the id_<table> convention
func (Product) PrimaryKeyColumn() string {
	return "id_products"
}

// SortColumns whitelists the columns list calls may order by
func (Product) SortColumns() map[string]bool {
	return map[string]bool{
		"id_products":         true,
		"products_name":       true,
		"reg_date":            true,
		"id_product_category": true,
	}
}
