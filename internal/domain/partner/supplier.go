package partner

import (
	"time"
)

// Supplier represents an organization the shop buys flowers and goods from.
type Supplier struct {
	ID      int64      `gorm:"column:id_supplier;primaryKey;autoIncrement" json:"id_supplier"`
	OrgName string     `gorm:"column:supplier_org_name;type:varchar(250)" json:"supplier_org_name"`
	RegDate *time.Time `gorm:"column:reg_date;type:date" json:"reg_date,omitempty"`
	Comment string     `gorm:"column:comments;type:varchar(450)" json:"comments"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "supplier"
}

// PrimaryKeyColumn returns the identity column per the id_<table> convention
func (Supplier) PrimaryKeyColumn() string {
	return "id_supplier"
}

// SortColumns whitelists the columns list calls may order by
func (Supplier) SortColumns() map[string]bool {
	return map[string]bool{
		"id_supplier":       true,
		"supplier_org_name": true,
		"reg_date":          true,
	}
}
