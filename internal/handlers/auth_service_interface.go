package handlers

import (
	"context"

	"golang-storefront-gateway/internal/models"
	"golang-storefront-gateway/internal/services"
	"golang-storefront-gateway/pkg/auth"
)

// AuthServiceInterface defines the interface for auth service operations
type AuthServiceInterface interface {
	Register(ctx context.Context, req *services.RegisterRequest) (*services.AuthResponse, error)
	Login(ctx context.Context, req *services.LoginRequest) (*services.AuthResponse, error)
	RefreshToken(ctx context.Context, req *services.RefreshRequest) (*services.AuthResponse, error)
	Logout(ctx context.Context, session auth.Session) error
	GetProfile(ctx context.Context, session auth.Session) (*models.User, error)
	UpdateProfile(ctx context.Context, session auth.Session, user *models.User) (*models.User, error)
}
