package repository

import (
	"strings"

	"go-storefront/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientRepository interface {
	FindOrCreate(tx *gorm.DB, sellerID uuid.UUID, name string) (*model.Client, error)
	FindBySeller(sellerID uuid.UUID) ([]model.Client, error)
}

type clientRepo struct {
	db *gorm.DB
}

func NewClientRepo(db *gorm.DB) ClientRepository {
	return &clientRepo{db}
}

// FindOrCreate resolves a client scoped to (seller, name). Matching trims
// whitespace and is case-insensitive, so "ana " and "Ana" resolve to the same
// record; the first-seen spelling is what gets stored. Takes a tx so the sale
// recording flow can run it inside its transaction.
func (r *clientRepo) FindOrCreate(tx *gorm.DB, sellerID uuid.UUID, name string) (*model.Client, error) {
	name = strings.TrimSpace(name)

	var client model.Client
	err := tx.Where("seller_id = ? AND LOWER(name) = LOWER(?)", sellerID, name).First(&client).Error
	if err == nil {
		return &client, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	client = model.Client{SellerID: sellerID, Name: name}
	if err := tx.Create(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepo) FindBySeller(sellerID uuid.UUID) ([]model.Client, error) {
	var clients []model.Client
	err := r.db.Where("seller_id = ?", sellerID).Order("name ASC").Find(&clients).Error
	return clients, err
}
