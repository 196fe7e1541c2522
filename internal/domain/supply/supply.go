package supply

import (
	"time"

	"github.com/shopspring/decimal"
)

// Warehouse is a lookup table for storage locations.
// Column names keep the original schema's spelling (warehous).
type Warehouse struct {
	ID   int64  `gorm:"column:id_warehous;primaryKey;autoIncrement" json:"id_warehous"`
	Name string `gorm:"column:warehous;type:varchar(50)" json:"warehous"`
}

func (Warehouse) TableName() string {
	return "warehouse"
}

func (Warehouse) PrimaryKeyColumn() string {
	return "id_warehous"
}

// SupplyType is a lookup table for supply batch kinds.
type SupplyType struct {
	ID   int64  `gorm:"column:id_supply_type;primaryKey;autoIncrement" json:"id_supply_type"`
	Name string `gorm:"column:supply_type;type:varchar(50)" json:"supply_type"`
}

func (SupplyType) TableName() string {
	return "supply_type"
}

func (SupplyType) PrimaryKeyColumn() string {
	return "id_supply_type"
}

// PaymentType is a lookup table for supply payment methods.
type PaymentType struct {
	ID   int64  `gorm:"column:id_payment_type;primaryKey;autoIncrement" json:"id_payment_type"`
	Name string `gorm:"column:payment_type;type:varchar(50)" json:"payment_type"`
}

func (PaymentType) TableName() string {
	return "payment_type"
}

func (PaymentType) PrimaryKeyColumn() string {
	return "id_payment_type"
}

// Supply represents one incoming delivery batch from a supplier.
type Supply struct {
	ID           int64      `gorm:"column:id_supplies;primaryKey;autoIncrement" json:"id_supplies"`
	SupplyDate   *time.Time `gorm:"column:supp_date;type:date" json:"supp_date,omitempty"`
	DocNum       string     `gorm:"column:doc_num;type:varchar(20)" json:"doc_num"`
	Comment      string     `gorm:"column:commenst;type:varchar(500)" json:"commenst"`
	SupplyTypeID *int64     `gorm:"column:id_supply_type" json:"id_supply_type,omitempty"`
	SupplierID   *int64     `gorm:"column:id_supplier" json:"id_supplier,omitempty"`
}

// TableName returns the table name for GORM
func (Supply) TableName() string {
	return "supplies"
}

// PrimaryKeyColumn returns the identity column per the id_<table> convention
func (Supply) PrimaryKeyColumn() string {
	return "id_supplies"
}

// SortColumns whitelists the columns list calls may order by
func (Supply) SortColumns() map[string]bool {
	return map[string]bool{
		"id_supplies": true,
		"supp_date":   true,
		"id_supplier": true,
	}
}

// SupplyPayment is a payment made against a supply batch.
type SupplyPayment struct {
	ID            int64               `gorm:"column:id_supplies_payment;primaryKey;autoIncrement" json:"id_supplies_payment"`
	Amount        decimal.NullDecimal `gorm:"column:payment_amount;type:numeric(19,4)" json:"payment_amount"`
	PaymentDate   *time.Time          `gorm:"column:payment_date;type:date" json:"payment_date,omitempty"`
	Comment       string              `gorm:"column:payment_commnets;type:varchar(500)" json:"payment_commnets"`
	SupplyID      *int64              `gorm:"column:id_supplies" json:"id_supplies,omitempty"`
	PaymentTypeID *int64              `gorm:"column:id_payment_type" json:"id_payment_type,omitempty"`
}

// TableName returns the table name for GORM
func (SupplyPayment) TableName() string {
	return "supplies_payment"
}

// PrimaryKeyColumn returns the identity column per the id_<table> convention
func (SupplyPayment) PrimaryKeyColumn() string {
	return "id_supplies_payment"
}

// SupplyLineItem is a priced quantity of one product inside a supply batch,
// stored at a warehouse. Order line items reference supply line items, which
// is how an order resolves its original (undiscounted) price.
type SupplyLineItem struct {
	ID          int64               `gorm:"column:id_supply_list_items;primaryKey;autoIncrement" json:"id_supply_list_items"`
	Price       decimal.NullDecimal `gorm:"column:price;type:numeric(19,4)" json:"price"`
	Amount      int                 `gorm:"column:amount" json:"amount"`
	Comment     string              `gorm:"column:comment;type:varchar(500)" json:"comment"`
	SupplyID    *int64              `gorm:"column:id_supplies" json:"id_supplies,omitempty"`
	WarehouseID *int64              `gorm:"column:id_warehous" json:"id_warehous,omitempty"`
	ProductID   *int64              `gorm:"column:id_products" json:"id_products,omitempty"`
}

// TableName returns the table name for GORM
func (SupplyLineItem) TableName() string {
	return "supply_list_items"
}

// PrimaryKeyColumn returns the identity column per the id_<table> convention
func (SupplyLineItem) PrimaryKeyColumn() string {
	return "id_supply_list_items"
}

// WriteOffType is a lookup table for write-off reasons.
type WriteOffType struct {
	ID   int64  `gorm:"column:id_write_offs_type;primaryKey;autoIncrement" json:"id_write_offs_type"`
	Name string `gorm:"column:write_offs_type;type:varchar(50)" json:"write_offs_type"`
}

func (WriteOffType) TableName() string {
	return "write_offs_type"
}

func (WriteOffType) PrimaryKeyColumn() string {
	return "id_write_offs_type"
}

// WriteOff records spoiled or lost stock removed from a supply line item.
type WriteOff struct {
	ID               int64      `gorm:"column:id_write_offs_list;primaryKey;autoIncrement" json:"id_write_offs_list"`
	WriteOffDate     *time.Time `gorm:"column:write_off_date;type:date" json:"write_off_date,omitempty"`
	Amount           int        `gorm:"column:amount" json:"amount"`
	Comment          string     `gorm:"column:comments;type:varchar(500)" json:"comments"`
	SupplyLineItemID *int64     `gorm:"column:id_supply_list_items" json:"id_supply_list_items,omitempty"`
	WriteOffTypeID   *int64     `gorm:"column:id_write_offs_type" json:"id_write_offs_type,omitempty"`
}

// TableName returns the table name for GORM
func (WriteOff) TableName() string {
	return "write_offs_list"
}

// PrimaryKeyColumn returns the identity column per the id_<table> convention
func (WriteOff) PrimaryKeyColumn() string {
	return "id_write_offs_list"
}
