package service

import (
	"errors"
	"mime/multipart"

	"go-storefront/internal/model"
	"go-storefront/internal/repository"
	"go-storefront/pkg/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BannerService interface {
	List() ([]model.Banner, error)
	Create(title string, image *multipart.FileHeader) (*model.Banner, error)
	Delete(id uuid.UUID) error
}

type bannerService struct {
	bannerRepo repository.BannerRepository
	store      *storage.Store
}

func NewBannerService(bannerRepo repository.BannerRepository, store *storage.Store) BannerService {
	return &bannerService{bannerRepo: bannerRepo, store: store}
}

func (s *bannerService) List() ([]model.Banner, error) {
	return s.bannerRepo.FindAll()
}

func (s *bannerService) Create(title string, image *multipart.FileHeader) (*model.Banner, error) {
	if image == nil {
		return nil, validationErrorf("banner image is required")
	}
	if len(title) > 100 {
		return nil, validationErrorf("title must be at most 100 characters")
	}

	url, err := s.store.Save(image, "banners")
	if err != nil {
		return nil, err
	}

	banner := &model.Banner{ImageURL: url, Title: title, IsActive: true}
	if err := s.bannerRepo.Create(banner); err != nil {
		return nil, err
	}
	return banner, nil
}

func (s *bannerService) Delete(id uuid.UUID) error {
	banner, err := s.bannerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBannerNotFound
		}
		return err
	}

	s.store.Remove(banner.ImageURL)
	return s.bannerRepo.Delete(id)
}
