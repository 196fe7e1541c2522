package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/flowershop/backend/internal/domain/catalog"
	"github.com/flowershop/backend/internal/domain/shared"
)

// ProductWithPrice is a product joined with its most recent price list entry
type ProductWithPrice struct {
	ID           int64               `gorm:"column:id_products" json:"id_products"`
	Name         string              `gorm:"column:products_name" json:"products_name"`
	Description  string              `gorm:"column:prod_description" json:"prod_description"`
	CategoryID   *int64              `gorm:"column:id_product_category" json:"category_id"`
	CurrentPrice decimal.NullDecimal `gorm:"column:prise_" json:"current_price"`
	PriceDate    *time.Time          `gorm:"column:date_of_change" json:"price_date"`
}

// ProductService provides read-side product queries that join across tables
type ProductService struct {
	db *gorm.DB
}

// NewProductService creates a new ProductService
func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// GetWithPrice returns the product together with its current price, the
// price list entry with the latest date_of_change. A product without any
// price list entry has no current price and reports shared.ErrNotFound,
// same as a missing product.
func (s *ProductService) GetWithPrice(ctx context.Context, productID int64) (*ProductWithPrice, error) {
	var row ProductWithPrice
	err := s.db.WithContext(ctx).
		Table("products").
		Select("products.id_products, products.products_name, products.prod_description, products.id_product_category, prise_list.prise_, prise_list.date_of_change").
		Joins("JOIN prise_list ON prise_list.id_products = products.id_products").
		Where("products.id_products = ?", productID).
		Order("prise_list.date_of_change DESC").
		Limit(1).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// GetByCategory returns all products in the given category
func (s *ProductService) GetByCategory(ctx context.Context, categoryID int64) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := s.db.WithContext(ctx).
		Where("id_product_category = ?", categoryID).
		Order("id_products ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
