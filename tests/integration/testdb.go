// Package integration provides integration testing utilities for the flower
// shop backend. It uses testcontainers to spin up real PostgreSQL databases.
package integration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	mpg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// Shared container for all tests in the package
	sharedContainer    testcontainers.Container
	sharedContainerMu  sync.Mutex
	sharedContainerDSN string
)

// TestDB represents a test database connection
type TestDB struct {
	DB        *gorm.DB
	SqlDB     *sql.DB
	Container testcontainers.Container
	DSN       string
	t         *testing.T
}

// NewTestDB creates a new PostgreSQL container for testing.
// This creates a fresh container for each test, providing complete isolation.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("flowers_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("admin123"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "Failed to get connection string")

	db, sqlDB := connectToDatabase(t, dsn)
	runMigrations(t, sqlDB)

	testDB := &TestDB{
		DB:        db,
		SqlDB:     sqlDB,
		Container: container,
		DSN:       dsn,
		t:         t,
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// NewSharedTestDB returns a shared PostgreSQL container for tests that can
// share state. This is more efficient for tests that clean up after
// themselves via CleanTables.
func NewSharedTestDB(t *testing.T) *TestDB {
	t.Helper()

	sharedContainerMu.Lock()
	defer sharedContainerMu.Unlock()

	ctx := context.Background()

	if sharedContainer == nil {
		container, err := tcpostgres.Run(ctx,
			"postgres:16-alpine",
			tcpostgres.WithDatabase("flowers_shared_test"),
			tcpostgres.WithUsername("postgres"),
			tcpostgres.WithPassword("admin123"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second)),
		)
		require.NoError(t, err, "Failed to start shared PostgreSQL container")

		dsn, err := container.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err, "Failed to get connection string")

		sharedContainer = container
		sharedContainerDSN = dsn

		// Connect once just to run migrations
		_, sqlDB := connectToDatabase(t, dsn)
		runMigrations(t, sqlDB)
		sqlDB.Close()
	}

	// Each test gets a fresh connection
	db, sqlDB := connectToDatabase(t, sharedContainerDSN)

	testDB := &TestDB{
		DB:        db,
		SqlDB:     sqlDB,
		Container: sharedContainer,
		DSN:       sharedContainerDSN,
		t:         t,
	}

	// Shared container outlives the test; only close the connection
	t.Cleanup(func() {
		if testDB.SqlDB != nil {
			testDB.SqlDB.Close()
		}
	})

	return testDB
}

// Close closes the database connection and terminates the container
func (tdb *TestDB) Close() {
	ctx := context.Background()

	if tdb.SqlDB != nil {
		tdb.SqlDB.Close()
	}

	// Only terminate if this is not the shared container
	if tdb.Container != nil && tdb.Container != sharedContainer {
		if err := tdb.Container.Terminate(ctx); err != nil {
			tdb.t.Logf("Warning: Failed to terminate container: %v", err)
		}
	}
}

// CleanTables truncates all tables except the migration bookkeeping table
func (tdb *TestDB) CleanTables() {
	tdb.t.Helper()

	var tables []string
	err := tdb.DB.Raw(`
		SELECT tablename FROM pg_tables
		WHERE schemaname = 'public'
		AND tablename != 'schema_migrations'
	`).Scan(&tables).Error
	require.NoError(tdb.t, err, "Failed to get table names")

	for _, table := range tables {
		err := tdb.DB.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error
		if err != nil {
			tdb.t.Logf("Warning: Failed to truncate table %s: %v", table, err)
		}
	}
}

// WithTransaction runs a function within a transaction that is automatically
// rolled back, for tests that need isolation without truncating tables.
func (tdb *TestDB) WithTransaction(fn func(tx *gorm.DB)) {
	tdb.t.Helper()

	tx := tdb.DB.Begin()
	require.NoError(tdb.t, tx.Error, "Failed to begin transaction")

	defer func() {
		tx.Rollback()
	}()

	fn(tx)
}

// connectToDatabase establishes a GORM connection to the database
func connectToDatabase(t *testing.T, dsn string) (*gorm.DB, *sql.DB) {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	if os.Getenv("TEST_DB_DEBUG") != "" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), gormConfig)
	require.NoError(t, err, "Failed to connect to database")

	sqlDB, err := db.DB()
	require.NoError(t, err, "Failed to get underlying SQL DB")

	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return db, sqlDB
}

// runMigrations applies all database migrations
func runMigrations(t *testing.T, sqlDB *sql.DB) {
	t.Helper()

	migrationsPath := findMigrationsPath()
	require.NotEmpty(t, migrationsPath, "Could not find migrations directory")

	driver, err := mpg.WithInstance(sqlDB, &mpg.Config{})
	require.NoError(t, err, "Failed to create migration driver")

	m, err := migrate.NewWithDatabaseInstance(
		"file://"+migrationsPath,
		"postgres",
		driver,
	)
	require.NoError(t, err, "Failed to create migrate instance")

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		require.NoError(t, err, "Failed to run migrations")
	}
}

// findMigrationsPath locates the migrations directory
func findMigrationsPath() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}

	// Navigate from tests/integration up to the repository root
	dir := filepath.Dir(filename)
	for i := 0; i < 5; i++ {
		migrationsPath := filepath.Join(dir, "migrations")
		if _, err := os.Stat(migrationsPath); err == nil {
			return migrationsPath
		}
		dir = filepath.Dir(dir)
	}

	if wd, err := os.Getwd(); err == nil {
		paths := []string{
			filepath.Join(wd, "migrations"),
			filepath.Join(wd, "..", "migrations"),
			filepath.Join(wd, "..", "..", "migrations"),
		}
		for _, p := range paths {
			if _, err := os.Stat(p); err == nil {
				return p
			}
		}
	}

	return ""
}

// CleanupSharedContainer terminates the shared container.
// This should be called in TestMain if using shared containers.
func CleanupSharedContainer() {
	sharedContainerMu.Lock()
	defer sharedContainerMu.Unlock()

	if sharedContainer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		sharedContainer.Terminate(ctx)
		sharedContainer = nil
		sharedContainerDSN = ""
	}
}

// insertReturningID runs an INSERT ... RETURNING statement and returns the
// generated identity value.
func (tdb *TestDB) insertReturningID(query string, args ...any) int64 {
	tdb.t.Helper()

	var id int64
	err := tdb.DB.Raw(query, args...).Scan(&id).Error
	require.NoError(tdb.t, err, "Failed to insert fixture row")
	return id
}

// CreateTestCategory inserts a product category and returns its id.
func (tdb *TestDB) CreateTestCategory(name string) int64 {
	return tdb.insertReturningID(`
		INSERT INTO product_category (product_category)
		VALUES (?) RETURNING id_product_category
	`, name)
}

// CreateTestProduct inserts a product in the given category and returns its id.
func (tdb *TestDB) CreateTestProduct(name string, categoryID int64) int64 {
	return tdb.insertReturningID(`
		INSERT INTO products (products_name, reg_date, prod_description, id_product_category)
		VALUES (?, CURRENT_DATE, ?, ?) RETURNING id_products
	`, name, "test product", categoryID)
}

// CreateTestPrice inserts a price history entry for a product.
func (tdb *TestDB) CreateTestPrice(productID int64, price string, date string) int64 {
	return tdb.insertReturningID(`
		INSERT INTO prise_list (prise_, date_of_change, descriptions, id_products)
		VALUES (?::numeric, ?::date, '', ?) RETURNING id_prise_list
	`, price, date, productID)
}

// CreateTestCustomer inserts a customer and returns its id.
func (tdb *TestDB) CreateTestCustomer(first, middle, last, org string) int64 {
	return tdb.insertReturningID(`
		INSERT INTO customer (first_name, middle_name, last_name, reg_date, org_office_name)
		VALUES (?, ?, ?, CURRENT_DATE, ?) RETURNING id_customer
	`, first, middle, last, org)
}

// CreateTestSupplyItem inserts a supply batch with a single priced line item
// for the product and returns the line item id. A NULL price is inserted when
// price is empty.
func (tdb *TestDB) CreateTestSupplyItem(productID int64, price string, amount int) int64 {
	tdb.t.Helper()

	supplyID := tdb.insertReturningID(`
		INSERT INTO supplies (supp_date, doc_num, commenst)
		VALUES (CURRENT_DATE, 'SUP-TEST', '') RETURNING id_supplies
	`)

	if price == "" {
		return tdb.insertReturningID(`
			INSERT INTO supply_list_items (price, amount, comment, id_supplies, id_products)
			VALUES (NULL, ?, '', ?, ?) RETURNING id_supply_list_items
		`, amount, supplyID, productID)
	}
	return tdb.insertReturningID(`
		INSERT INTO supply_list_items (price, amount, comment, id_supplies, id_products)
		VALUES (?::numeric, ?, '', ?, ?) RETURNING id_supply_list_items
	`, price, amount, supplyID, productID)
}

// CreateTestOrder inserts an order header for a customer and returns its id.
// Pass 0 to leave the customer reference NULL.
func (tdb *TestDB) CreateTestOrder(customerID int64, docNum string) int64 {
	tdb.t.Helper()

	if customerID == 0 {
		return tdb.insertReturningID(`
			INSERT INTO orders (order_date, doc_num, comments)
			VALUES (CURRENT_DATE, ?, '') RETURNING id_orders
		`, docNum)
	}
	return tdb.insertReturningID(`
		INSERT INTO orders (order_date, doc_num, comments, id_customer)
		VALUES (CURRENT_DATE, ?, '', ?) RETURNING id_orders
	`, docNum, customerID)
}

// CreateTestOrderItem inserts an order line item referencing a supply line
// item. A NULL discounted price is inserted when priceWithDiscount is empty.
func (tdb *TestDB) CreateTestOrderItem(orderID, supplyItemID int64, amount int, priceWithDiscount string) int64 {
	tdb.t.Helper()

	if priceWithDiscount == "" {
		return tdb.insertReturningID(`
			INSERT INTO order_list_items (amount, price_with_discount, id_orders, id_supply_list_items)
			VALUES (?, NULL, ?, ?) RETURNING id_order_list_items
		`, amount, orderID, supplyItemID)
	}
	return tdb.insertReturningID(`
		INSERT INTO order_list_items (amount, price_with_discount, id_orders, id_supply_list_items)
		VALUES (?, ?::numeric, ?, ?) RETURNING id_order_list_items
	`, amount, priceWithDiscount, orderID, supplyItemID)
}
