package services

import (
	"context"
	"fmt"
	"time"

	"golang-storefront-gateway/internal/models"
	"golang-storefront-gateway/pkg/auth"
	"golang-storefront-gateway/pkg/cache"
)

type AddressService struct {
	accountAPI  AccountAPI
	cache       Cache
	invalidator CacheInvalidator
}

func NewAddressService(accountAPI AccountAPI, cache Cache, invalidator CacheInvalidator) *AddressService {
	return &AddressService{
		accountAPI:  accountAPI,
		cache:       cache,
		invalidator: invalidator,
	}
}

func addressesCacheKey(userID string) string {
	return fmt.Sprintf("addresses:%s", userID)
}

func (s *AddressService) GetAddresses(ctx context.Context, session auth.Session) ([]models.Address, error) {
	// Try cache first
	var cached []models.Address
	if err := s.cache.Get(ctx, addressesCacheKey(session.UserID), &cached); err == nil {
		return cached, nil
	}

	addresses, err := s.accountAPI.ListAddresses(ctx, session.Token)
	if err != nil {
		return nil, err
	}

	// Cache for 10 minutes
	s.cache.Set(ctx, addressesCacheKey(session.UserID), addresses, time.Minute*10)

	return addresses, nil
}

func (s *AddressService) CreateAddress(ctx context.Context, session auth.Session, address *models.Address) (*models.Address, error) {
	created, err := s.accountAPI.CreateAddress(ctx, session.Token, address)
	if err != nil {
		return nil, err
	}
	s.invalidator.Invalidate(ctx, cache.MutationAddressChanged, session.UserID)
	return created, nil
}

func (s *AddressService) UpdateAddress(ctx context.Context, session auth.Session, addressID string, address *models.Address) (*models.Address, error) {
	updated, err := s.accountAPI.UpdateAddress(ctx, session.Token, addressID, address)
	if err != nil {
		return nil, err
	}
	s.invalidator.Invalidate(ctx, cache.MutationAddressChanged, session.UserID)
	return updated, nil
}

func (s *AddressService) DeleteAddress(ctx context.Context, session auth.Session, addressID string) error {
	if err := s.accountAPI.DeleteAddress(ctx, session.Token, addressID); err != nil {
		return err
	}
	return s.invalidator.Invalidate(ctx, cache.MutationAddressChanged, session.UserID)
}
