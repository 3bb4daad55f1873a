package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang-storefront-gateway/internal/models"
)

// AccountClient talks to the Account Service, which owns user records,
// credential verification, and saved addresses. The gateway never stores or
// hashes passwords; it forwards credentials once and issues its own session
// tokens on success.
type AccountClient struct {
	client
}

func NewAccountClient(baseURL string, timeout time.Duration) *AccountClient {
	return &AccountClient{client: newClient(baseURL, timeout)}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// VerifyCredentials checks a login attempt and returns the user on success.
func (c *AccountClient) VerifyCredentials(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	req := credentialsRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/users/verify", "", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *AccountClient) CreateUser(ctx context.Context, name, email, phone, password string) (*models.User, error) {
	var user models.User
	req := registerRequest{Name: name, Email: email, Phone: phone, Password: password}
	if err := c.do(ctx, http.MethodPost, "/users", "", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *AccountClient) GetProfile(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/profile", token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *AccountClient) UpdateProfile(ctx context.Context, token string, user *models.User) (*models.User, error) {
	var updated models.User
	if err := c.do(ctx, http.MethodPut, "/profile", token, user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *AccountClient) ListAddresses(ctx context.Context, token string) ([]models.Address, error) {
	var addresses []models.Address
	if err := c.do(ctx, http.MethodGet, "/addresses", token, nil, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

func (c *AccountClient) CreateAddress(ctx context.Context, token string, address *models.Address) (*models.Address, error) {
	var created models.Address
	if err := c.do(ctx, http.MethodPost, "/addresses", token, address, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *AccountClient) UpdateAddress(ctx context.Context, token, addressID string, address *models.Address) (*models.Address, error) {
	var updated models.Address
	path := fmt.Sprintf("/addresses/%s", url.PathEscape(addressID))
	if err := c.do(ctx, http.MethodPut, path, token, address, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *AccountClient) DeleteAddress(ctx context.Context, token, addressID string) error {
	path := fmt.Sprintf("/addresses/%s", url.PathEscape(addressID))
	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}
