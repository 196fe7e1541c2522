package persistence

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/flowershop/backend/internal/domain/catalog"
	"github.com/flowershop/backend/internal/domain/hr"
	"github.com/flowershop/backend/internal/domain/partner"
	"github.com/flowershop/backend/internal/domain/report"
	"github.com/flowershop/backend/internal/domain/supply"
	"github.com/flowershop/backend/internal/domain/trade"
)

// Services bundles one RecordService per schema table. Constructing the
// registry verifies the primary key convention of every registered model,
// so a misdeclared model fails at startup instead of at first query.
type Services struct {
	// catalog
	ProductCategories *RecordService[catalog.ProductCategory]
	Products          *RecordService[catalog.Product]
	PriceList         *RecordService[catalog.PriceListEntry]

	// partner
	Districts        *RecordService[partner.District]
	CustomerTypes    *RecordService[partner.CustomerType]
	ContactTypes     *RecordService[partner.ContactType]
	Customers        *RecordService[partner.Customer]
	CustomerContacts *RecordService[partner.CustomerContact]
	Suppliers        *RecordService[partner.Supplier]

	// hr
	EmployeePositions *RecordService[hr.EmployeePosition]
	RewardTypes       *RecordService[hr.RewardType]
	Employees         *RecordService[hr.Employee]
	EmployeeSalaries  *RecordService[hr.EmployeeSalary]

	// supply
	Warehouses      *RecordService[supply.Warehouse]
	SupplyTypes     *RecordService[supply.SupplyType]
	PaymentTypes    *RecordService[supply.PaymentType]
	Supplies        *RecordService[supply.Supply]
	SupplyPayments  *RecordService[supply.SupplyPayment]
	SupplyLineItems *RecordService[supply.SupplyLineItem]
	WriteOffTypes   *RecordService[supply.WriteOffType]
	WriteOffs       *RecordService[supply.WriteOff]

	// trade
	OrderStatuses  *RecordService[trade.OrderStatus]
	OrderTypes     *RecordService[trade.OrderType]
	Orders         *RecordService[trade.Order]
	OrderLineItems *RecordService[trade.OrderLineItem]
	DiscountTypes  *RecordService[trade.DiscountType]
	EventTypes     *RecordService[trade.EventType]
	PromoEvents    *RecordService[trade.PromoEvent]
	Discounts      *RecordService[trade.Discount]

	// report
	TaxTypes    *RecordService[report.TaxType]
	ReportForms *RecordService[report.ReportForm]
}

// Tables returns the table names covered by the registry
func (s *Services) Tables() []string {
	return []string{
		s.ProductCategories.TableName(),
		s.Products.TableName(),
		s.PriceList.TableName(),
		s.Districts.TableName(),
		s.CustomerTypes.TableName(),
		s.ContactTypes.TableName(),
		s.Customers.TableName(),
		s.CustomerContacts.TableName(),
		s.Suppliers.TableName(),
		s.EmployeePositions.TableName(),
		s.RewardTypes.TableName(),
		s.Employees.TableName(),
		s.EmployeeSalaries.TableName(),
		s.Warehouses.TableName(),
		s.SupplyTypes.TableName(),
		s.PaymentTypes.TableName(),
		s.Supplies.TableName(),
		s.SupplyPayments.TableName(),
		s.SupplyLineItems.TableName(),
		s.WriteOffTypes.TableName(),
		s.WriteOffs.TableName(),
		s.OrderStatuses.TableName(),
		s.OrderTypes.TableName(),
		s.Orders.TableName(),
		s.OrderLineItems.TableName(),
		s.DiscountTypes.TableName(),
		s.EventTypes.TableName(),
		s.PromoEvents.TableName(),
		s.Discounts.TableName(),
		s.TaxTypes.TableName(),
		s.ReportForms.TableName(),
	}
}

// NewServices builds the full registry against the given connection
func NewServices(db *gorm.DB) (*Services, error) {
	var (
		s   Services
		err error
	)

	if s.ProductCategories, err = NewRecordService[catalog.ProductCategory](db); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	if s.Products, err = NewRecordService[catalog.Product](db); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	if s.PriceList, err = NewRecordService[catalog.PriceListEntry](db); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	if s.Districts, err = NewRecordService[partner.District](db); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	if s.CustomerTypes, err = NewRecordService[partner.CustomerType](db); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	if s.ContactTypes, err = NewRecordService[partner.ContactType](db); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	if s.Customers, err = NewRecordService[partner.Customer](db); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	if s.CustomerContacts, err = NewRecordService[partner.CustomerContact](db); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	if s.Suppliers, err = NewRecordService[partner.Supplier](db); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	if s.EmployeePositions, err = NewRecordService[hr.EmployeePosition](db); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	if s.RewardTypes, err = NewRecordService[hr.RewardType](db); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	if s.Employees, err = NewRecordService[hr.Employee](db); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	if s.EmployeeSalaries, err = NewRecordService[hr.EmployeeSalary](db); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	if s.Warehouses, err = NewRecordService[supply.Warehouse](db); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	if s.SupplyTypes, err = NewRecordService[supply.SupplyType](db); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	if s.PaymentTypes, err = NewRecordService[supply.PaymentType](db); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	if s.Supplies, err = NewRecordService[supply.Supply](db); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	if s.SupplyPayments, err = NewRecordService[supply.SupplyPayment](db); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	if s.SupplyLineItems, err = NewRecordService[supply.SupplyLineItem](db); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	if s.WriteOffTypes, err = NewRecordService[supply.WriteOffType](db); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	if s.WriteOffs, err = NewRecordService[supply.WriteOff](db); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	if s.OrderStatuses, err = NewRecordService[trade.OrderStatus](db); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	if s.OrderTypes, err = NewRecordService[trade.OrderType](db); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	if s.Orders, err = NewRecordService[trade.Order](db); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	if s.OrderLineItems, err = NewRecordService[trade.OrderLineItem](db); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	if s.DiscountTypes, err = NewRecordService[trade.DiscountType](db); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	if s.EventTypes, err = NewRecordService[trade.EventType](db); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	if s.PromoEvents, err = NewRecordService[trade.PromoEvent](db); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	if s.Discounts, err = NewRecordService[trade.Discount](db); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	if s.TaxTypes, err = NewRecordService[report.TaxType](db); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	if s.ReportForms, err = NewRecordService[report.ReportForm](db); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}

	return &s, nil
}
