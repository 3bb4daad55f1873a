package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"golang-storefront-gateway/internal/middleware"
	"golang-storefront-gateway/internal/services"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// RegisterRoutes registers order history routes plus the admin status update
func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware *middleware.AuthMiddleware) {
	orders := router.Group("/orders", authMiddleware.AuthRequired())
	{
		// Order history, paginated
		orders.GET("", h.GetOrders)
		// Order detail / confirmation page
		orders.GET("/:order_id", h.GetOrder)
	}

	admin := router.Group("/admin/orders", authMiddleware.AuthRequired(), authMiddleware.AdminRequired())
	{
		admin.PUT("/:order_id/status", h.UpdateOrderStatus)
	}
}

// @Summary Get order history
// @Description List the user's orders, newest first
// @Tags orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} models.OrderPage
// @Failure 401 {object} ErrorResponse
// @Router /orders [get]
func (h *OrderHandler) GetOrders(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	orders, err := h.orderService.GetOrders(c.Request.Context(), session, page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// @Summary Get an order
// @Description Get a single order the user owns
// @Tags orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param order_id path string true "Order ID"
// @Success 200 {object} models.Order
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /orders/{order_id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), session, c.Param("order_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// @Summary Update order status
// @Description Update an order's fulfillment status (admin only)
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param order_id path string true "Order ID"
// @Param status body UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.Order
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /admin/orders/{order_id}/status [put]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
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

	order, err := h.orderService.UpdateOrderStatus(c.Request.Context(), session, c.Param("order_id"), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
