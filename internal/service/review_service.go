package service

import (
	"errors"

	"go-storefront/internal/model"
	"go-storefront/internal/repository"
	"go-storefront/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewService interface {
	SubmitReview(userID, productID uuid.UUID, rating int, comment string) (*model.Review, error)
}

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo, productRepo: productRepo}
}

// SubmitReview appends one rating+comment to a product. Inserts are
// unconditional: a user may review the same product more than once.
func (s *reviewService) SubmitReview(userID, productID uuid.UUID, rating int, comment string) (*model.Review, error) {
	review := &model.Review{
		UserID:    userID,
		ProductID: productID,
		Rating:    rating,
		Comment:   comment,
	}

	if errs := validator.ValidateStruct(review); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	if _, err := s.productRepo.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}
