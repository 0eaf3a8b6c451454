package repository

import (
	"go-storefront/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SellerStats is the dashboard overview for one seller
type SellerStats struct {
	SalesCount     int64           `json:"sales_count"`
	Revenue        decimal.Decimal `json:"revenue"`
	ActiveProducts int64           `json:"active_products"`
	UnitsSold      int64           `json:"units_sold"`
}

type SaleRepository interface {
	Create(tx *gorm.DB, sale *model.Sale) error
	FindBySeller(sellerID uuid.UUID) ([]model.Sale, error)
	Recent(sellerID uuid.UUID, limit int) ([]model.Sale, error)
	GetSellerStats(sellerID uuid.UUID) (*SellerStats, error)
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

// Create appends one ledger row. Takes a tx so the insert commits or rolls
// back together with the stock reservation and client creation.
func (r *saleRepo) Create(tx *gorm.DB, sale *model.Sale) error {
	return tx.Create(sale).Error
}

func (r *saleRepo) FindBySeller(sellerID uuid.UUID) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.Preload("Client").Preload("Product").Preload("Category").
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepo) Recent(sellerID uuid.UUID, limit int) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.Preload("Client").
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&sales).Error
	return sales, err
}

func (r *saleRepo) GetSellerStats(sellerID uuid.UUID) (*SellerStats, error) {
	stats := &SellerStats{Revenue: decimal.Zero}

	if err := r.db.Model(&model.Sale{}).
		Where("seller_id = ?", sellerID).
		Count(&stats.SalesCount).Error; err != nil {
		return nil, err
	}

	var revenue decimal.NullDecimal
	if err := r.db.Model(&model.Sale{}).
		Where("seller_id = ?", sellerID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&revenue).Error; err != nil {
		return nil, err
	}
	if revenue.Valid {
		stats.Revenue = revenue.Decimal
	}

	if err := r.db.Model(&model.Product{}).
		Where("seller_id = ? AND is_active = ?", sellerID, true).
		Count(&stats.ActiveProducts).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.Product{}).
		Where("seller_id = ?", sellerID).
		Select("COALESCE(SUM(sold_count), 0)").
		Scan(&stats.UnitsSold).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
