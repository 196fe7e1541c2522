package trade

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/flowershop/backend/internal/domain/shared"
)

func newMockOrderService(t *testing.T) (*OrderService, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewOrderService(gormDB), mock, mockDB
}

func expectOrderRow(mock sqlmock.Sqlmock, orderID int64, customerID any) {
	rows := sqlmock.NewRows([]string{"id_orders", "order_date", "doc_num", "comments", "id_customer", "id_order_status", "id_order_type"}).
		AddRow(orderID, nil, "ORD-001", "birthday bouquet", customerID, int64(1), int64(2))

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id_orders = \$1 ORDER BY .* LIMIT .*`).
		WithArgs(orderID, 1).
		WillReturnRows(rows)
}

func TestOrderService_GetWithItems(t *testing.T) {
	t.Run("joins items with product names and original prices", func(t *testing.T) {
		svc, mock, mockDB := newMockOrderService(t)
		defer mockDB.Close()

		expectOrderRow(mock, 7, int64(42))

		itemRows := sqlmock.NewRows([]string{"id_order_list_items", "amount", "price_with_discount", "products_name", "price"}).
			AddRow(int64(1), 2, "10.00", "Red rose", "12.50").
			AddRow(int64(2), 3, nil, "Tulip", "4.00")

		mock.ExpectQuery(`SELECT order_list_items\.id_order_list_items, order_list_items\.amount, order_list_items\.price_with_discount, products\.products_name, supply_list_items\.price FROM "order_list_items" JOIN supply_list_items ON supply_list_items\.id_supply_list_items = order_list_items\.id_supply_list_items JOIN products ON products\.id_products = supply_list_items\.id_products WHERE order_list_items\.id_orders = \$1 ORDER BY order_list_items\.id_order_list_items ASC`).
			WithArgs(int64(7)).
			WillReturnRows(itemRows)

		customerRows := sqlmock.NewRows([]string{"id_customer", "first_name", "middle_name", "last_name", "org_office_name"}).
			AddRow(int64(42), "Anna", "", "Bloom", "Petal Ltd")
		mock.ExpectQuery(`SELECT \* FROM "customer" WHERE id_customer = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(42), 1).
			WillReturnRows(customerRows)

		summary, err := svc.GetWithItems(context.Background(), 7)

		require.NoError(t, err)
		require.NotNil(t, summary)
		assert.Equal(t, int64(7), summary.OrderID)
		assert.Equal(t, "ORD-001", summary.DocNum)
		require.Len(t, summary.Items, 2)

		first := summary.Items[0]
		assert.Equal(t, "Red rose", first.ProductName)
		require.NotNil(t, first.DiscountAmount)
		assert.Equal(t, "2.5", first.DiscountAmount.String())

		// Missing discounted price leaves the item without a discount amount
		second := summary.Items[1]
		assert.Equal(t, "Tulip", second.ProductName)
		assert.Nil(t, second.DiscountAmount)
		assert.False(t, second.PriceWithDiscount.Valid)

		assert.Equal(t, 5, summary.TotalCount)
		assert.True(t, summary.TotalSum.Equal(decimal.NewFromInt(20)), "total_sum = %s", summary.TotalSum)

		require.NotNil(t, summary.Customer.Name)
		assert.Equal(t, "Anna Bloom", *summary.Customer.Name)
		require.NotNil(t, summary.Customer.OrgName)
		assert.Equal(t, "Petal Ltd", *summary.Customer.OrgName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("order without customer keeps identity fields unset", func(t *testing.T) {
		svc, mock, mockDB := newMockOrderService(t)
		defer mockDB.Close()

		expectOrderRow(mock, 8, nil)

		mock.ExpectQuery(`SELECT .* FROM "order_list_items" JOIN .*`).
			WithArgs(int64(8)).
			WillReturnRows(sqlmock.NewRows([]string{"id_order_list_items"}))

		summary, err := svc.GetWithItems(context.Background(), 8)

		require.NoError(t, err)
		assert.Nil(t, summary.Customer.ID)
		assert.Nil(t, summary.Customer.Name)
		assert.Nil(t, summary.Customer.OrgName)
		assert.Empty(t, summary.Items)
		assert.Equal(t, 0, summary.TotalCount)
		assert.True(t, summary.TotalSum.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing order", func(t *testing.T) {
		svc, mock, mockDB := newMockOrderService(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id_orders = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(99), 1).
			WillReturnError(gorm.ErrRecordNotFound)

		summary, err := svc.GetWithItems(context.Background(), 99)

		assert.Nil(t, summary)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderService_GetCustomerOrders(t *testing.T) {
	t.Run("returns all orders of a customer", func(t *testing.T) {
		svc, mock, mockDB := newMockOrderService(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id_orders", "doc_num", "id_customer"}).
			AddRow(int64(1), "ORD-001", int64(42)).
			AddRow(int64(4), "ORD-004", int64(42))

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id_customer = \$1 ORDER BY id_orders ASC`).
			WithArgs(int64(42)).
			WillReturnRows(rows)

		orders, err := svc.GetCustomerOrders(context.Background(), 42)

		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, "ORD-001", orders[0].DocNum)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
