package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"golang-storefront-gateway/internal/middleware"
	"golang-storefront-gateway/internal/models"
)

type ProductHandler struct {
	productService ProductServiceInterface
	reviewService  ReviewServiceInterface
}

func NewProductHandler(productService ProductServiceInterface, reviewService ReviewServiceInterface) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		reviewService:  reviewService,
	}
}

// RegisterRoutes registers catalog browse routes plus the admin product CRUD
func (h *ProductHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware *middleware.AuthMiddleware) {
	products := router.Group("/products")
	{
		// Browse the catalog with filters and pagination
		products.GET("", h.GetProducts)
		// Product detail page
		products.GET("/:product_id", h.GetProduct)
		// Reviews for a product
		products.GET("/:product_id/reviews", h.GetReviews)
		// Post a review (requires sign-in)
		products.POST("/:product_id/reviews", authMiddleware.AuthRequired(), h.CreateReview)
	}

	admin := router.Group("/admin/products", authMiddleware.AuthRequired(), authMiddleware.AdminRequired())
	{
		admin.POST("", h.CreateProduct)
		admin.PUT("/:product_id", h.UpdateProduct)
		admin.DELETE("/:product_id", h.DeleteProduct)
	}
}

// @Summary Browse products
// @Description List products filtered by category, search term, and price range
// @Tags products
// @Accept json
// @Produce json
// @Param category query string false "Category filter"
// @Param search query string false "Search term"
// @Param min_price query string false "Minimum price"
// @Param max_price query string false "Maximum price"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} models.ProductPage
// @Failure 502 {object} ErrorResponse
// @Router /products [get]
func (h *ProductHandler) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	filter := models.ProductFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		MinPrice: c.Query("min_price"),
		MaxPrice: c.Query("max_price"),
		Page:     page,
		Limit:    limit,
	}

	pageResp, err := h.productService.GetProducts(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, pageResp)
}

// @Summary Get a product
// @Description Get a single product by ID
// @Tags products
// @Accept json
// @Produce json
// @Param product_id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} ErrorResponse
// @Router /products/{product_id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.GetProduct(c.Request.Context(), c.Param("product_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// @Summary Get product reviews
// @Description List reviews for a product, paginated
// @Tags reviews
// @Accept json
// @Produce json
// @Param product_id path string true "Product ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} models.ReviewPage
// @Failure 404 {object} ErrorResponse
// @Router /products/{product_id}/reviews [get]
func (h *ProductHandler) GetReviews(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	reviews, err := h.reviewService.GetReviews(c.Request.Context(), c.Param("product_id"), page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// @Summary Post a review
// @Description Post a review for a product
// @Tags reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param product_id path string true "Product ID"
// @Param review body CreateReviewRequest true "Review content"
// @Success 201 {object} models.Review
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /products/{product_id}/reviews [post]
func (h *ProductHandler) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
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

	review, err := h.reviewService.CreateReview(c.Request.Context(), session, c.Param("product_id"), req.Rating, req.Comment)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

// @Summary Create a product
// @Description Create a catalog product (admin only)
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param product body models.Product true "Product data"
// @Success 201 {object} models.Product
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /admin/products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
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

	created, err := h.productService.CreateProduct(c.Request.Context(), session, &product)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary Update a product
// @Description Update a catalog product (admin only)
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param product_id path string true "Product ID"
// @Param product body models.Product true "Product data"
// @Success 200 {object} models.Product
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /admin/products/{product_id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
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

	updated, err := h.productService.UpdateProduct(c.Request.Context(), session, c.Param("product_id"), &product)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// @Summary Delete a product
// @Description Delete a catalog product (admin only)
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param product_id path string true "Product ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/products/{product_id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), session, c.Param("product_id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}
