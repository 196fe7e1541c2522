package partner

import (
	"strings"
	"time"
)

// Customer represents a flower-shop customer, either a private person or an
// organization contact.
type Customer struct {
	ID             int64      `gorm:"column:id_customer;primaryKey;autoIncrement" json:"id_customer"`
	FirstName      string     `gorm:"column:first_name;type:varchar(50)" json:"first_name"`
	MiddleName     string     `gorm:"column:middle_name;type:varchar(50)" json:"middle_name"`
	LastName       string     `gorm:"column:last_name;type:varchar(50)" json:"last_name"`
	RegDate        *time.Time `gorm:"column:reg_date;type:date" json:"reg_date,omitempty"`
	OrgOfficeName  string     `gorm:"column:org_office_name;type:varchar(500)" json:"org_office_name"`
	Position       string     `gorm:"column:position;type:varchar(150)" json:"position"`
	PassportNumber string     `gorm:"column:pasp_num;type:varchar(50)" json:"pasp_num"`
	Login          string     `gorm:"column:login_;type:varchar(50)" json:"login_"`
	Password       string     `gorm:"column:passwrd;type:varchar(50)" json:"-"`
	DistrictID     *int64     `gorm:"column:id_district" json:"id_district,omitempty"`
	CustomerTypeID *int64     `gorm:"column:id_customer_type" json:"id_customer_type,omitempty"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customer"
}

// PrimaryKeyColumn returns the identity column per the id_<table> convention
func (Customer) PrimaryKeyColumn() string {
	return "id_customer"
}

// SortColumns whitelists the columns list calls may order by
func (Customer) SortColumns() map[string]bool {
	return map[string]bool{
		"id_customer": true,
		"last_name":   true,
		"reg_date":    true,
	}
}

// DisplayName joins the non-empty name parts with single spaces.
// All parts empty yields an empty string.
func (c Customer) DisplayName() string {
	return JoinNameParts(c.FirstName, c.MiddleName, c.LastName)
}

// JoinNameParts builds a display name from first/middle/last name fields,
// skipping empty parts so there is exactly one space per boundary.
func JoinNameParts(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, " ")
}

// CustomerContact is one contact channel entry for a customer.
type CustomerContact struct {
	ID            int64  `gorm:"column:id_cust_conts;primaryKey;autoIncrement" json:"id_cust_conts"`
	Value         string `gorm:"column:cust_conts;type:varchar(450)" json:"cust_conts"`
	CustomerID    *int64 `gorm:"column:id_customer" json:"id_customer,omitempty"`
	ContactTypeID *int64 `gorm:"column:id_cont_type" json:"id_cont_type,omitempty"`
}

// TableName returns the table name for GORM
func (CustomerContact) TableName() string {
	return "cust_conts"
}

// PrimaryKeyColumn returns the identity column per the id_<table> convention
func (CustomerContact) PrimaryKeyColumn() string {
	return "id_cust_conts"
}
