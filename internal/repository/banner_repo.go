package repository

import (
	"go-storefront/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BannerRepository interface {
	Create(banner *model.Banner) error
	FindAll() ([]model.Banner, error)
	FindActive() ([]model.Banner, error)
	FindByID(id uuid.UUID) (*model.Banner, error)
	Delete(id uuid.UUID) error
}

type bannerRepo struct {
	db *gorm.DB
}

func NewBannerRepo(db *gorm.DB) BannerRepository {
	return &bannerRepo{db}
}

func (r *bannerRepo) Create(banner *model.Banner) error {
	return r.db.Create(banner).Error
}

func (r *bannerRepo) FindAll() ([]model.Banner, error) {
	var banners []model.Banner
	err := r.db.Order("display_order ASC").Find(&banners).Error
	return banners, err
}

func (r *bannerRepo) FindActive() ([]model.Banner, error) {
	var banners []model.Banner
	err := r.db.Where("is_active = ?", true).Order("display_order ASC").Find(&banners).Error
	return banners, err
}

func (r *bannerRepo) FindByID(id uuid.UUID) (*model.Banner, error) {
	var banner model.Banner
	if err := r.db.First(&banner, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &banner, nil
}

func (r *bannerRepo) Delete(id uuid.UUID) error {
	return r.db.Unscoped().Delete(&model.Banner{}, "id = ?", id).Error
}
