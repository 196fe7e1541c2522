package trade

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/flowershop/backend/internal/domain/partner"
	"github.com/flowershop/backend/internal/domain/shared"
	"github.com/flowershop/backend/internal/domain/trade"
)

// OrderItem is one order line joined with its product and original price.
// OriginalPrice comes from the supply line item the order line references;
// DiscountAmount is only set when both prices are present.
type OrderItem struct {
	ID                int64               `gorm:"column:id_order_list_items" json:"id"`
	ProductName       string              `gorm:"column:products_name" json:"product_name"`
	Amount            int                 `gorm:"column:amount" json:"amount"`
	OriginalPrice     decimal.NullDecimal `gorm:"column:price" json:"original_price"`
	PriceWithDiscount decimal.NullDecimal `gorm:"column:price_with_discount" json:"price_with_discount"`
	DiscountAmount    *decimal.Decimal    `gorm:"-" json:"discount_amount"`
}

// OrderCustomer identifies the customer on an order summary
type OrderCustomer struct {
	ID      *int64  `json:"id"`
	Name    *string `json:"name"`
	OrgName *string `json:"org_name"`
}

// OrderWithItems is a full order summary: header, customer, joined line
// items and the aggregate totals over them.
type OrderWithItems struct {
	OrderID    int64           `json:"order_id"`
	OrderDate  *time.Time      `json:"order_date"`
	DocNum     string          `json:"doc_num"`
	Comments   string          `json:"comments"`
	Customer   OrderCustomer   `json:"customer"`
	StatusID   *int64          `json:"status_id"`
	TypeID     *int64          `json:"type_id"`
	DiscountID *int64          `json:"discount_id"`
	EmployeeID *int64          `json:"employee_id"`
	Items      []OrderItem     `json:"items"`
	TotalCount int             `json:"total_amount"`
	TotalSum   decimal.Decimal `json:"total_sum"`
}

// OrderService provides read-side order queries that join across tables
type OrderService struct {
	db *gorm.DB
}

// NewOrderService creates a new OrderService
func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// GetWithItems returns the order with its joined line items, customer
// identity and totals. Returns shared.ErrNotFound when the order does
// not exist. Line items whose supply line item or product row is gone
// are dropped by the join rather than reported as an error.
func (s *OrderService) GetWithItems(ctx context.Context, orderID int64) (*OrderWithItems, error) {
	var order trade.Order
	err := s.db.WithContext(ctx).
		Where("id_orders = ?", orderID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}

	items, err := s.loadItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	summary := &OrderWithItems{
		OrderID:    order.ID,
		OrderDate:  order.OrderDate,
		DocNum:     order.DocNum,
		Comments:   order.Comment,
		Customer:   OrderCustomer{ID: order.CustomerID},
		StatusID:   order.OrderStatusID,
		TypeID:     order.OrderTypeID,
		DiscountID: order.DiscountID,
		EmployeeID: order.EmployeeID,
		Items:      items,
		TotalSum:   decimal.Zero,
	}

	for _, item := range summary.Items {
		summary.TotalCount += item.Amount
		// Items without a discounted price stay out of the money total
		if item.PriceWithDiscount.Valid {
			lineSum := item.PriceWithDiscount.Decimal.Mul(decimal.NewFromInt(int64(item.Amount)))
			summary.TotalSum = summary.TotalSum.Add(lineSum)
		}
	}

	if order.CustomerID != nil {
		var customer partner.Customer
		err := s.db.WithContext(ctx).
			Where("id_customer = ?", *order.CustomerID).
			First(&customer).Error
		switch {
		case err == nil:
			name := customer.DisplayName()
			summary.Customer.Name = &name
			summary.Customer.OrgName = &customer.OrgOfficeName
		case errors.Is(err, gorm.ErrRecordNotFound):
			// Dangling customer reference leaves name and org unset
		default:
			return nil, err
		}
	}

	return summary, nil
}

// GetCustomerOrders returns all orders placed by the given customer
func (s *OrderService) GetCustomerOrders(ctx context.Context, customerID int64) ([]trade.Order, error) {
	var orders []trade.Order
	if err := s.db.WithContext(ctx).
		Where("id_customer = ?", customerID).
		Order("id_orders ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderService) loadItems(ctx context.Context, orderID int64) ([]OrderItem, error) {
	items := []OrderItem{}
	err := s.db.WithContext(ctx).
		Table("order_list_items").
		Select("order_list_items.id_order_list_items, order_list_items.amount, order_list_items.price_with_discount, products.products_name, supply_list_items.price").
		Joins("JOIN supply_list_items ON supply_list_items.id_supply_list_items = order_list_items.id_supply_list_items").
		Joins("JOIN products ON products.id_products = supply_list_items.id_products").
		Where("order_list_items.id_orders = ?", orderID).
		Order("order_list_items.id_order_list_items ASC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].OriginalPrice.Valid && items[i].PriceWithDiscount.Valid {
			diff := items[i].OriginalPrice.Decimal.Sub(items[i].PriceWithDiscount.Decimal)
			items[i].DiscountAmount = &diff
		}
	}

	return items, nil
}
