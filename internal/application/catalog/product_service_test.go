package catalog

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/flowershop/backend/internal/domain/shared"
)

func newMockProductService(t *testing.T) (*ProductService, sqlmock.Sqlmock, *sql.DB) {
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

	return NewProductService(gormDB), mock, mockDB
}

func TestProductService_GetWithPrice(t *testing.T) {
	t.Run("returns product with latest price entry", func(t *testing.T) {
		svc, mock, mockDB := newMockProductService(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id_products", "products_name", "prod_description", "id_product_category", "prise_", "date_of_change"}).
			AddRow(int64(5), "Red rose", "Fresh cut", int64(2), "14.5000", nil)

		mock.ExpectQuery(`SELECT products\.id_products, products\.products_name, products\.prod_description, products\.id_product_category, prise_list\.prise_, prise_list\.date_of_change FROM "products" JOIN prise_list ON prise_list\.id_products = products\.id_products WHERE products\.id_products = \$1 ORDER BY prise_list\.date_of_change DESC LIMIT .*`).
			WithArgs(int64(5), 1).
			WillReturnRows(rows)

		result, err := svc.GetWithPrice(context.Background(), 5)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, int64(5), result.ID)
		assert.Equal(t, "Red rose", result.Name)
		require.NotNil(t, result.CategoryID)
		assert.Equal(t, int64(2), *result.CategoryID)
		assert.True(t, result.CurrentPrice.Valid)
		assert.Equal(t, "14.5", result.CurrentPrice.Decimal.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("product without price history is reported as not found", func(t *testing.T) {
		svc, mock, mockDB := newMockProductService(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT .* FROM "products" JOIN prise_list .*`).
			WithArgs(int64(5), 1).
			WillReturnRows(sqlmock.NewRows([]string{"id_products"}))

		result, err := svc.GetWithPrice(context.Background(), 5)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductService_GetByCategory(t *testing.T) {
	t.Run("returns products in category", func(t *testing.T) {
		svc, mock, mockDB := newMockProductService(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id_products", "products_name", "id_product_category"}).
			AddRow(int64(1), "Rose", int64(2)).
			AddRow(int64(3), "Tulip", int64(2))

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE id_product_category = \$1 ORDER BY id_products ASC`).
			WithArgs(int64(2)).
			WillReturnRows(rows)

		products, err := svc.GetByCategory(context.Background(), 2)

		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "Rose", products[0].Name)
		assert.Equal(t, "Tulip", products[1].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty category yields empty slice", func(t *testing.T) {
		svc, mock, mockDB := newMockProductService(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE id_product_category = \$1 ORDER BY id_products ASC`).
			WithArgs(int64(9)).
			WillReturnRows(sqlmock.NewRows([]string{"id_products"}))

		products, err := svc.GetByCategory(context.Background(), 9)

		require.NoError(t, err)
		assert.Empty(t, products)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
