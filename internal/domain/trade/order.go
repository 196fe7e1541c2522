package trade

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is a lookup table for order lifecycle states.
type OrderStatus struct {
	ID   int64  `gorm:"column:id_order_status;primaryKey;autoIncrement" json:"id_order_status"`
	Name string `gorm:"column:order_status;type:varchar(50)" json:"order_status"`
}

func (OrderStatus) TableName() string {
	return "order_status"
}

func (OrderStatus) PrimaryKeyColumn() string {
	return "id_order_status"
}

// OrderType is a lookup table for order kinds (pickup, delivery, ...).
type OrderType struct {
	ID   int64  `gorm:"column:id_order_type;primaryKey;autoIncrement" json:"id_order_type"`
	Name string `gorm:"column:order_type;type:varchar(50)" json:"order_type"`
}

func (OrderType) TableName() string {
	return "order_type"
}

func (OrderType) PrimaryKeyColumn() string {
	return "id_order_type"
}

// Order is a customer order header. Line items live in order_list_items.
type Order struct {
	ID            int64      `gorm:"column:id_orders;primaryKey;autoIncrement" json:"id_orders"`
	OrderDate     *time.Time `gorm:"column:order_date;type:date" json:"order_date,omitempty"`
	DocNum        string     `gorm:"column:doc_num;type:varchar(50)" json:"doc_num"`
	Comment       string     `gorm:"column:comments;type:varchar(500)" json:"comments"`
	CustomerID    *int64     `gorm:"column:id_customer" json:"id_customer,omitempty"`
	DiscountID    *int64     `gorm:"column:id_discounts" json:"id_discounts,omitempty"`
	EmployeeID    *int64     `gorm:"column:id_employee" json:"id_employee,omitempty"`
	OrderTypeID   *int64     `gorm:"column:id_order_type" json:"id_order_type,omitempty"`
	OrderStatusID *int64     `gorm:"column:id_order_status" json:"id_order_status,omitempty"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// PrimaryKeyColumn returns the identity column per the id_<table> convention
func (Order) PrimaryKeyColumn() string {
	return "id_orders"
}

// SortColumns whitelists the columns list calls may order by
func (Order) SortColumns() map[string]bool {
	return map[string]bool{
		"id_orders":       true,
		"order_date":      true,
		"id_customer":     true,
		"id_order_status": true,
	}
}

// OrderLineItem is a quantity of one supply line item sold on an order, at a
// possibly discounted unit price. The undiscounted price is resolved through
// the referenced supply line item.
type OrderLineItem struct {
	ID                int64               `gorm:"column:id_order_list_items;primaryKey;autoIncrement" json:"id_order_list_items"`
	Amount            int                 `gorm:"column:amount" json:"amount"`
	PriceWithDiscount decimal.NullDecimal `gorm:"column:price_with_discount;type:numeric(19,4)" json:"price_with_discount"`
	OrderID           *int64              `gorm:"column:id_orders" json:"id_orders,omitempty"`
	SupplyLineItemID  *int64              `gorm:"column:id_supply_list_items" json:"id_supply_list_items,omitempty"`
}

// TableName returns the table name for GORM
func (OrderLineItem) TableName() string {
	return "order_list_items"
}

// PrimaryKeyColumn returns the identity column per the id_<table> convention
func (OrderLineItem) PrimaryKeyColumn() string {
	return "id_order_list_items"
}
