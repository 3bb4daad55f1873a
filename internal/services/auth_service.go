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

var (
	// ErrInvalidCredentials never distinguishes unknown email from wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidRefreshToken covers malformed, expired, and revoked tokens.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

// AuthService exchanges credentials for gateway session tokens. Credential
// verification and user storage live in the Account Service; the gateway only
// signs sessions and tracks refresh tokens in Redis.
type AuthService struct {
	accountAPI  AccountAPI
	jwtManager  *auth.JWTManager
	cache       Cache
	invalidator CacheInvalidator
}

func NewAuthService(accountAPI AccountAPI, jwtManager *auth.JWTManager, cache Cache, invalidator CacheInvalidator) *AuthService {
	return &AuthService{
		accountAPI:  accountAPI,
		jwtManager:  jwtManager,
		cache:       cache,
		invalidator: invalidator,
	}
}

// Refresh token storage methods
func (s *AuthService) storeRefreshToken(ctx context.Context, userID, refreshToken string, expiryDays int) error {
	key := fmt.Sprintf("refresh_token:%s", userID)
	expiry := time.Hour * 24 * time.Duration(expiryDays)
	return s.cache.Set(ctx, key, refreshToken, expiry)
}

func (s *AuthService) getStoredRefreshToken(ctx context.Context, userID string) (string, error) {
	key := fmt.Sprintf("refresh_token:%s", userID)
	var token string
	err := s.cache.Get(ctx, key, &token)
	return token, err
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	TokenType    string      `json:"token_type"`
	ExpiresIn    int         `json:"expires_in"` // seconds until access token expires
	User         models.User `json:"user"`
}

func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	user, err := s.accountAPI.CreateUser(ctx, req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		return nil, err
	}
	return s.issueSession(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	user, err := s.accountAPI.VerifyCredentials(ctx, req.Email, req.Password)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueSession(ctx, user)
}

func (s *AuthService) issueSession(ctx context.Context, user *models.User) (*AuthResponse, error) {
	role := user.Role
	if role == "" {
		role = "customer"
	}

	tokenPair, err := s.jwtManager.GenerateTokenPair(user.ID, role, user.Email)
	if err != nil {
		return nil, err
	}

	// Store refresh token in Redis (30 days expiry)
	if err := s.storeRefreshToken(ctx, user.ID, tokenPair.RefreshToken, 30); err != nil {
		return nil, err
	}

	return &AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    3600, // 1 hour in seconds
		User:         *user,
	}, nil
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshToken issues a new access token when the presented refresh token is
// valid and matches the one on record for the user.
func (s *AuthService) RefreshToken(ctx context.Context, req *RefreshRequest) (*AuthResponse, error) {
	claims, err := s.jwtManager.ValidateToken(req.RefreshToken)
	if err != nil || claims.TokenType != auth.RefreshToken {
		return nil, ErrInvalidRefreshToken
	}

	stored, err := s.getStoredRefreshToken(ctx, claims.UserID)
	if err != nil || stored != req.RefreshToken {
		return nil, ErrInvalidRefreshToken
	}

	accessToken, err := s.jwtManager.RefreshAccessToken(req.RefreshToken)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: req.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    3600,
	}, nil
}

// Logout is the explicit session teardown: the stored refresh token goes away
// so the session cannot be renewed.
func (s *AuthService) Logout(ctx context.Context, session auth.Session) error {
	return s.cache.Delete(ctx, fmt.Sprintf("refresh_token:%s", session.UserID))
}

func (s *AuthService) GetProfile(ctx context.Context, session auth.Session) (*models.User, error) {
	// Try cache first
	cacheKey := "profile:" + session.UserID
	var cached models.User
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	}

	user, err := s.accountAPI.GetProfile(ctx, session.Token)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, cacheKey, user, time.Minute*10)

	return user, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, session auth.Session, user *models.User) (*models.User, error) {
	updated, err := s.accountAPI.UpdateProfile(ctx, session.Token, user)
	if err != nil {
		return nil, err
	}
	s.invalidator.Invalidate(ctx, cache.MutationProfileChanged, session.UserID)
	return updated, nil
}
