package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// All monetary fields are decimal strings on the wire and decimal.Decimal in
// memory. Upstream services are the source of truth for every entity here;
// the gateway only holds read snapshots.

// CartLine is a single line of the user's cart as reported by the Cart Service.
type CartLine struct {
	ProductID      string          `json:"product_id"`
	ProductName    string          `json:"product_name,omitempty"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Quantity       int             `json:"quantity"`
	AvailableStock int             `json:"available_stock"`
}

// CartSnapshot is the cart as of one fetch. It is never mutated locally;
// mutations go to the Cart Service and the snapshot is re-fetched.
type CartSnapshot struct {
	Lines          []CartLine `json:"lines"`
	TotalItemCount int        `json:"total_item_count"`
}

// IsEmpty reports whether the cart has no lines.
func (c *CartSnapshot) IsEmpty() bool {
	return c == nil || len(c.Lines) == 0
}

// ShippingAddress is the checkout shipping form. AddressLine2 is the only
// optional field; the rest must be non-empty to advance past the shipping step.
type ShippingAddress struct {
	FullName     string `json:"full_name" validate:"required"`
	AddressLine1 string `json:"address_line1" validate:"required"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	PostalCode   string `json:"postal_code" validate:"required"`
	Country      string `json:"country" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
}

type PaymentMethod string

const (
	PaymentMethodCard           PaymentMethod = "card"
	PaymentMethodPaypal         PaymentMethod = "paypal"
	PaymentMethodCashOnDelivery PaymentMethod = "cod"
)

// CardDetails is collected on the payment step for display completeness only.
// It never leaves the process; order creation carries just the method name.
type CardDetails struct {
	CardNumber string `json:"card_number" validate:"required"`
	CardHolder string `json:"card_holder" validate:"required"`
	ExpiryDate string `json:"expiry_date" validate:"required"`
	CVV        string `json:"cvv" validate:"required"`
}

// PaymentSelection is a tagged variant: only the card method carries extra fields.
type PaymentSelection struct {
	Method PaymentMethod `json:"method"`
	Card   *CardDetails  `json:"card,omitempty"`
}

// OrderItem is one line of an order-creation request or an existing order.
type OrderItem struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// CreateOrderRequest is the payload sent to the Order Service. Card details
// are deliberately absent; payment processing happens upstream.
type CreateOrderRequest struct {
	ShippingAddress ShippingAddress `json:"shipping_address"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
	Items           []OrderItem     `json:"items"`
}

type CreateOrderResponse struct {
	OrderID string `json:"order_id"`
}

// Order is an order as reported by the Order Service.
type Order struct {
	ID              string          `json:"id"`
	Status          string          `json:"status"`
	Items           []OrderItem     `json:"items"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	CreatedAt       time.Time       `json:"created_at"`
}

// OrderPage is a page of the user's order history.
type OrderPage struct {
	Orders     []Order    `json:"orders"`
	Pagination Pagination `json:"pagination"`
}

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	ImageURL    string          `json:"image_url,omitempty"`
	IsAvailable bool            `json:"is_available"`
	CreatedAt   time.Time       `json:"created_at,omitempty"`
	UpdatedAt   time.Time       `json:"updated_at,omitempty"`
}

// ProductFilter carries the storefront browse filters and pagination.
type ProductFilter struct {
	Category string
	Search   string
	MinPrice string
	MaxPrice string
	Page     int
	Limit    int
}

type ProductPage struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type ReviewPage struct {
	Reviews    []Review   `json:"reviews"`
	Pagination Pagination `json:"pagination"`
}

// Address is a saved address in the user's profile, managed by the Account Service.
type Address struct {
	ID        string `json:"id,omitempty"`
	Label     string `json:"label,omitempty"`
	IsDefault bool   `json:"is_default"`
	ShippingAddress
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role"`
}
