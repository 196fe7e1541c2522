package hr

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeePosition is a lookup table for job titles.
type EmployeePosition struct {
	ID   int64  `gorm:"column:id_employee_positions;primaryKey;autoIncrement" json:"id_employee_positions"`
	Name string `gorm:"column:employee_positions;type:varchar(50)" json:"employee_positions"`
}

func (EmployeePosition) TableName() string {
	return "employee_positions"
}

func (EmployeePosition) PrimaryKeyColumn() string {
	return "id_employee_positions"
}

// RewardType is a lookup table for salary payment kinds (base, bonus, ...).
type RewardType struct {
	ID   int64  `gorm:"column:id_reward_type;primaryKey;autoIncrement" json:"id_reward_type"`
	Name string `gorm:"column:reward_type;type:varchar(50)" json:"reward_type"`
}

func (RewardType) TableName() string {
	return "reward_type"
}

func (RewardType) PrimaryKeyColumn() string {
	return "id_reward_type"
}

// Employee represents a shop employee.
type Employee struct {
	ID         int64               `gorm:"column:id_employee;primaryKey;autoIncrement" json:"id_employee"`
	FirstName  string              `gorm:"column:first_name;type:varchar(50)" json:"first_name"`
	MiddleName string              `gorm:"column:middle_name;type:varchar(50)" json:"middle_name"`
	LastName   string              `gorm:"column:last_name;type:varchar(50)" json:"last_name"`
	SalarySize decimal.NullDecimal `gorm:"column:salary_size;type:numeric(19,4)" json:"salary_size"`
	RegDate    *time.Time          `gorm:"column:reg_date;type:date" json:"reg_date,omitempty"`
	Phone      string              `gorm:"column:phone;type:varchar(15)" json:"phone"`
	PositionID *int64              `gorm:"column:id_employee_positions" json:"id_employee_positions,omitempty"`
}

// TableName returns the table name for GORM
func (Employee) TableName() string {
	return "employee"
}

// PrimaryKeyColumn returns the identity column per the id_<table> convention
func (Employee) PrimaryKeyColumn() string {
	return "id_employee"
}

// SortColumns whitelists the columns list calls may order by
func (Employee) SortColumns() map[string]bool {
	return map[string]bool{
		"id_employee": true,
		"last_name":   true,
		"reg_date":    true,
	}
}

// EmployeeSalary is one salary payment made to an employee.
type EmployeeSalary struct {
	ID           int64               `gorm:"column:id_empl_salary;primaryKey;autoIncrement" json:"id_empl_salary"`
	SalaryDate   *time.Time          `gorm:"column:sal_date;type:date" json:"sal_date,omitempty"`
	Salary       decimal.NullDecimal `gorm:"column:salary;type:numeric(19,4)" json:"salary"`
	Comment      string              `gorm:"column:comments;type:varchar(500)" json:"comments"`
	EmployeeID   *int64              `gorm:"column:id_employee" json:"id_employee,omitempty"`
	RewardTypeID *int64              `gorm:"column:id_reward_type" json:"id_reward_type,omitempty"`
}

// TableName returns the table name for GORM
func (EmployeeSalary) TableName() string {
	return "empl_salary"
}

// PrimaryKeyColumn returns the identity column per the id_<table> convention
func (EmployeeSalary) PrimaryKeyColumn() string {
	return "id_empl_salary"
}
