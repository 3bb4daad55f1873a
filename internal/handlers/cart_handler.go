package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"golang-storefront-gateway/internal/middleware"
)

type CartHandler struct {
	cartService CartServiceInterface
}

func NewCartHandler(cartService CartServiceInterface) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// RegisterRoutes registers the routes for cart management
func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware *middleware.AuthMiddleware) {
	// All cart routes require authentication
	cart := router.Group("/cart", authMiddleware.AuthRequired())
	{
		// Get the user's cart with its pricing summary
		cart.GET("", h.GetCart)
		// Add item to cart
		cart.POST("/items", h.AddItem)
		// Update cart item quantity
		cart.PUT("/items/:product_id", h.UpdateItem)
		// Remove item from cart
		cart.DELETE("/items/:product_id", h.RemoveItem)
		// Clear cart
		cart.DELETE("", h.ClearCart)
	}
}

// GetCart godoc
// @Summary Get user's cart
// @Description Get the current user's cart with line items and pricing summary
// @Tags cart
// @Accept json
// @Produce json
// @Success 200 {object} services.CartView
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	view, err := h.cartService.GetCart(c.Request.Context(), session)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// AddItem godoc
// @Summary Add item to cart
// @Description Add a product to the user's cart
// @Tags cart
// @Accept json
// @Produce json
// @Param item body AddItemRequest true "Cart item data"
// @Success 200 {object} services.CartView
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	session, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	view, err := h.cartService.AddItem(c.Request.Context(), session, req.ProductID, req.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// UpdateItem godoc
// @Summary Update cart item quantity
// @Description Set the quantity of a product already in the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param product_id path string true "Product ID"
// @Param item body UpdateItemRequest true "New quantity"
// @Success 200 {object} services.CartView
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /cart/items/{product_id} [put]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	productID := c.Param("product_id")

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	session, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	view, err := h.cartService.UpdateItem(c.Request.Context(), session, productID, req.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// RemoveItem godoc
// @Summary Remove item from cart
// @Description Remove a product from the user's cart
// @Tags cart
// @Accept json
// @Produce json
// @Param product_id path string true "Product ID"
// @Success 200 {object} services.CartView
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cart/items/{product_id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID := c.Param("product_id")

	session, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	view, err := h.cartService.RemoveItem(c.Request.Context(), session, productID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// ClearCart godoc
// @Summary Clear user's cart
// @Description Remove all items from the user's cart
// @Tags cart
// @Accept json
// @Produce json
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.cartService.ClearCart(c.Request.Context(), session); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Request structs
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type UpdateItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}
