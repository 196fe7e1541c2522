package report

import (
	"time"
)

// TaxType is a lookup table of tax kinds and their rates.
type TaxType struct {
	ID      int64    `gorm:"column:id_tax_type;primaryKey;autoIncrement" json:"id_tax_type"`
	Name    string   `gorm:"column:tax_type;type:varchar(250)" json:"tax_type"`
	Rate    *float64 `gorm:"column:tax_rate" json:"tax_rate,omitempty"`
	Comment string   `gorm:"column:comments;type:varchar(500)" json:"comments"`
}

func (TaxType) TableName() string {
	return "tax_type"
}

func (TaxType) PrimaryKeyColumn() string {
	return "id_tax_type"
}

// ReportForm records a generated report or printed form. The table name keeps
// the original schema's spelling (reports_and_froms).
type ReportForm struct {
	ID          int64      `gorm:"column:id_reports_and_froms;primaryKey;autoIncrement" json:"id_reports_and_froms"`
	DateTime    *time.Time `gorm:"column:date_time" json:"date_time,omitempty"`
	Name        string     `gorm:"column:reports_and_froms_name;type:varchar(500)" json:"reports_and_froms_name"`
	Kind        *int       `gorm:"column:reports_and_froms_type" json:"reports_and_froms_type,omitempty"`
	ReferenceID *int64     `gorm:"column:reports_and_froms_id" json:"reports_and_froms_id,omitempty"`
}

func (ReportForm) TableName() string {
	return "reports_and_froms"
}

func (ReportForm) PrimaryKeyColumn() string {
	return "id_reports_and_froms"
}
