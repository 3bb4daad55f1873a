package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"golang-storefront-gateway/internal/middleware"
	"golang-storefront-gateway/internal/models"
)

type CheckoutHandler struct {
	checkoutService CheckoutServiceInterface
}

func NewCheckoutHandler(checkoutService CheckoutServiceInterface) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// RegisterRoutes registers the routes for the checkout wizard
func (h *CheckoutHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware *middleware.AuthMiddleware) {
	co := router.Group("/checkout", authMiddleware.AuthRequired())
	{
		// Start or resume the checkout wizard
		co.POST("", h.Start)
		// Current wizard state with the cart summary panel
		co.GET("", h.GetState)
		// Abandon the draft
		co.DELETE("", h.Cancel)
		// Step 1: shipping address
		co.PUT("/shipping", h.SubmitShipping)
		// Step 2: payment method
		co.PUT("/payment", h.SubmitPayment)
		// Navigate one step back
		co.POST("/back", h.Back)
		// Step 3: place the order
		co.POST("/order", h.PlaceOrder)
	}
}

// Start godoc
// @Summary Start checkout
// @Description Open or resume the checkout wizard; refused while the cart is empty
// @Tags checkout
// @Accept json
// @Produce json
// @Success 200 {object} services.CheckoutView
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /checkout [post]
func (h *CheckoutHandler) Start(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	view, err := h.checkoutService.Start(c.Request.Context(), session)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// GetState godoc
// @Summary Get checkout state
// @Description Get the current wizard step, saved draft fields, and cart summary
// @Tags checkout
// @Accept json
// @Produce json
// @Success 200 {object} services.CheckoutView
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /checkout [get]
func (h *CheckoutHandler) GetState(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	view, err := h.checkoutService.GetState(c.Request.Context(), session)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// SubmitShipping godoc
// @Summary Submit shipping address
// @Description Validate and save the shipping step, advancing to payment
// @Tags checkout
// @Accept json
// @Produce json
// @Param address body models.ShippingAddress true "Shipping address"
// @Success 200 {object} checkout.State
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /checkout/shipping [put]
func (h *CheckoutHandler) SubmitShipping(c *gin.Context) {
	var addr models.ShippingAddress
	if err := c.ShouldBindJSON(&addr); err != nil {
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

	state, err := h.checkoutService.SubmitShipping(session, addr)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// SubmitPayment godoc
// @Summary Submit payment method
// @Description Validate and save the payment step, advancing to review
// @Tags checkout
// @Accept json
// @Produce json
// @Param payment body models.PaymentSelection true "Payment selection"
// @Success 200 {object} checkout.State
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /checkout/payment [put]
func (h *CheckoutHandler) SubmitPayment(c *gin.Context) {
	var sel models.PaymentSelection
	if err := c.ShouldBindJSON(&sel); err != nil {
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

	state, err := h.checkoutService.SubmitPayment(session, sel)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// Back godoc
// @Summary Go back one step
// @Description Move to the previous wizard step; saved fields are kept
// @Tags checkout
// @Accept json
// @Produce json
// @Success 200 {object} checkout.State
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /checkout/back [post]
func (h *CheckoutHandler) Back(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	state, err := h.checkoutService.Back(session)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// Cancel godoc
// @Summary Cancel checkout
// @Description Discard the wizard draft
// @Tags checkout
// @Accept json
// @Produce json
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Router /checkout [delete]
func (h *CheckoutHandler) Cancel(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	h.checkoutService.Cancel(session)
	c.Status(http.StatusNoContent)
}

// PlaceOrder godoc
// @Summary Place the order
// @Description Submit the order built from the wizard draft and the cart as of this request
// @Tags checkout
// @Accept json
// @Produce json
// @Success 201 {object} services.PlaceOrderResult
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /checkout/order [post]
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	result, err := h.checkoutService.PlaceOrder(c.Request.Context(), session)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}
