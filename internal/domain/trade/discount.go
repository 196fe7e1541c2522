package trade

import (
	"github.com/shopspring/decimal"
)

// DiscountType is a lookup table for discount kinds.
type DiscountType struct {
	ID   int64  `gorm:"column:id_discount_type;primaryKey;autoIncrement" json:"id_discount_type"`
	Name string `gorm:"column:discount_type;type:varchar(50)" json:"discount_type"`
}

func (DiscountType) TableName() string {
	return "discount_type"
}

func (DiscountType) PrimaryKeyColumn() string {
	return "id_discount_type"
}

// EventType is a lookup table for promotional event kinds.
type EventType struct {
	ID   int64  `gorm:"column:id_event_type;primaryKey;autoIncrement" json:"id_event_type"`
	Name string `gorm:"column:event_type;type:varchar(50)" json:"event_type"`
}

func (EventType) TableName() string {
	return "event_type"
}

func (EventType) PrimaryKeyColumn() string {
	return "id_event_type"
}

// PromoEvent is a named promotional campaign.
type PromoEvent struct {
	ID          int64  `gorm:"column:id_promo_events;primaryKey;autoIncrement" json:"id_promo_events"`
	Name        string `gorm:"column:event_name;type:varchar(150)" json:"event_name"`
	Comment     string `gorm:"column:evnt_comments;type:varchar(500)" json:"evnt_comments"`
	EventTypeID *int64 `gorm:"column:id_event_type" json:"id_event_type,omitempty"`
}

// TableName returns the table name for GORM
func (PromoEvent) TableName() string {
	return "promo_events"
}

// PrimaryKeyColumn returns the identity column per the id_<table> convention
func (PromoEvent) PrimaryKeyColumn() string {
	return "id_promo_events"
}

// Discount is a concrete discount amount attached to a promo event.
type Discount struct {
	ID           int64               `gorm:"column:id_discounts;primaryKey;autoIncrement" json:"id_discounts"`
	Amount       decimal.NullDecimal `gorm:"column:discount;type:numeric(19,4)" json:"discount"`
	PromoEventID *int64              `gorm:"column:id_promo_events" json:"id_promo_events,omitempty"`
	EventTypeID  *int64              `gorm:"column:id_event_type" json:"id_event_type,omitempty"`
}

// TableName returns the table name for GORM
func (Discount) TableName() string {
	return "discounts"
}

// PrimaryKeyColumn returns the identity column per the id_<table> convention
func (Discount) PrimaryKeyColumn() string {
	return "id_discounts"
}
