package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang-storefront-gateway/internal/models"
	"golang-storefront-gateway/pkg/auth"
	"golang-storefront-gateway/pkg/cache"
)

// ErrInvalidRating bounds review ratings to the 1..5 scale.
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

type ReviewService struct {
	catalogAPI  CatalogAPI
	cache       Cache
	invalidator CacheInvalidator
}

func NewReviewService(catalogAPI CatalogAPI, cache Cache, invalidator CacheInvalidator) *ReviewService {
	return &ReviewService{
		catalogAPI:  catalogAPI,
		cache:       cache,
		invalidator: invalidator,
	}
}

func (s *ReviewService) GetReviews(ctx context.Context, productID string, page, limit int) (*models.ReviewPage, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	// Try cache first
	cacheKey := fmt.Sprintf("reviews:%s:%d:%d", productID, page, limit)
	var cached models.ReviewPage
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	}

	reviews, err := s.catalogAPI.ListReviews(ctx, productID, page, limit)
	if err != nil {
		return nil, err
	}

	// Cache for 10 minutes
	s.cache.Set(ctx, cacheKey, reviews, time.Minute*10)

	return reviews, nil
}

func (s *ReviewService) CreateReview(ctx context.Context, session auth.Session, productID string, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	review := &models.Review{
		ProductID: productID,
		UserID:    session.UserID,
		Rating:    rating,
		Comment:   comment,
	}

	created, err := s.catalogAPI.CreateReview(ctx, session.Token, productID, review)
	if err != nil {
		return nil, err
	}

	s.invalidator.Invalidate(ctx, cache.MutationReviewPosted, productID)
	return created, nil
}
