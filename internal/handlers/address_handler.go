package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"golang-storefront-gateway/internal/middleware"
	"golang-storefront-gateway/internal/models"
	"golang-storefront-gateway/internal/services"
)

type AddressHandler struct {
	addressService *services.AddressService
}

func NewAddressHandler(addressService *services.AddressService) *AddressHandler {
	return &AddressHandler{
		addressService: addressService,
	}
}

// RegisterRoutes registers the saved-address book routes
func (h *AddressHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware *middleware.AuthMiddleware) {
	addresses := router.Group("/addresses", authMiddleware.AuthRequired())
	{
		addresses.GET("", h.GetAddresses)
		addresses.POST("", h.CreateAddress)
		addresses.PUT("/:address_id", h.UpdateAddress)
		addresses.DELETE("/:address_id", h.DeleteAddress)
	}
}

// @Summary List saved addresses
// @Tags addresses
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Address
// @Failure 401 {object} ErrorResponse
// @Router /addresses [get]
func (h *AddressHandler) GetAddresses(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	addresses, err := h.addressService.GetAddresses(c.Request.Context(), session)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, addresses)
}

// @Summary Save an address
// @Tags addresses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param address body models.Address true "Address data"
// @Success 201 {object} models.Address
// @Failure 400 {object} ErrorResponse
// @Router /addresses [post]
func (h *AddressHandler) CreateAddress(c *gin.Context) {
	var address models.Address
	if err := c.ShouldBindJSON(&address); err != nil {
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

	created, err := h.addressService.CreateAddress(c.Request.Context(), session, &address)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary Update a saved address
// @Tags addresses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param address_id path string true "Address ID"
// @Param address body models.Address true "Address data"
// @Success 200 {object} models.Address
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /addresses/{address_id} [put]
func (h *AddressHandler) UpdateAddress(c *gin.Context) {
	var address models.Address
	if err := c.ShouldBindJSON(&address); err != nil {
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

	updated, err := h.addressService.UpdateAddress(c.Request.Context(), session, c.Param("address_id"), &address)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// @Summary Delete a saved address
// @Tags addresses
// @Security BearerAuth
// @Produce json
// @Param address_id path string true "Address ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /addresses/{address_id} [delete]
func (h *AddressHandler) DeleteAddress(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.addressService.DeleteAddress(c.Request.Context(), session, c.Param("address_id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
