package handlers

import (
	"context"

	"golang-storefront-gateway/internal/models"
	"golang-storefront-gateway/pkg/auth"
)

// ReviewServiceInterface defines the contract for product reviews
type ReviewServiceInterface interface {
	GetReviews(ctx context.Context, productID string, page, limit int) (*models.ReviewPage, error)
	CreateReview(ctx context.Context, session auth.Session, productID string, rating int, comment string) (*models.Review, error)
}
