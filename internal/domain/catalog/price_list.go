package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceListEntry is one row of a product's price history. The current price of
// a product is the entry with the latest date_of_change, regardless of
// insertion order.
type PriceListEntry struct {
	ID           int64               `gorm:"column:id_prise_list;primaryKey;autoIncrement" json:"id_prise_list"`
	Price        decimal.NullDecimal `gorm:"column:prise_;type:numeric(19,4)" json:"prise_"`
	DateOfChange *time.Time          `gorm:"column:date_of_change;type:date" json:"date_of_change,omitempty"`
	Description  string              `gorm:"column:descriptions;type:varchar(500)" json:"descriptions"`
	ProductID    *int64              `gorm:"column:id_products" json:"id_products,omitempty"`
}

// TableName returns the table name for GORM
func (PriceListEntry) TableName() string {
	return "prise_list"
}

// PrimaryKeyColumn returns the identity column per the id_<table> convention
func (PriceListEntry) PrimaryKeyColumn() string {
	return "id_prise_list"
}

// SortColumns whitelists the columns list calls may order by
func (PriceListEntry) SortColumns() map[string]bool {
	return map[string]bool{
		"id_prise_list":  true,
		"date_of_change": true,
		"id_products":    true,
	}
}
