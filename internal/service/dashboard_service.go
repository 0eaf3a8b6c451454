package service

import (
	"go-storefront/internal/model"
	"go-storefront/internal/repository"

	"github.com/google/uuid"
)

const recentSalesLimit = 10

type DashboardService interface {
	RecentSales(sellerID uuid.UUID) ([]model.Sale, error)
	Stats(sellerID uuid.UUID) (*repository.SellerStats, error)
}

type dashboardService struct {
	saleRepo repository.SaleRepository
}

func NewDashboardService(saleRepo repository.SaleRepository) DashboardService {
	return &dashboardService{saleRepo: saleRepo}
}

func (s *dashboardService) RecentSales(sellerID uuid.UUID) ([]model.Sale, error) {
	return s.saleRepo.Recent(sellerID, recentSalesLimit)
}

func (s *dashboardService) Stats(sellerID uuid.UUID) (*repository.SellerStats, error) {
	return s.saleRepo.GetSellerStats(sellerID)
}
