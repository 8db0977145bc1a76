package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/umar710/Inventory-Management-Backend/inventory"
	"github.com/umar710/Inventory-Management-Backend/middleware"
)

const (
	AllProductsCacheKey = "all_products"
	ProductCacheTTL     = 5 * time.Minute
)

// ProductController exposes the inventory service over HTTP. The redis
// client is optional; nil disables response caching.
type ProductController struct {
	service *inventory.Service
	cache   *redis.Client
}

func NewProductController(service *inventory.Service, cache *redis.Client) *ProductController {
	return &ProductController{service: service, cache: cache}
}

// GetProducts godoc
// @Summary List products with search, filter, sort and pagination
// @Tags products
// @Produce json
// @Router /api/products [get]
func (pc *ProductController) GetProducts(c *gin.Context) {
	ctx := c.Request.Context()
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	opts := inventory.ListOptions{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Sort:     c.DefaultQuery("sort", "name"),
		Order:    c.DefaultQuery("order", "asc"),
		Page:     page,
		Limit:    limit,
	}

	// Only the unfiltered default listing is cached; filtered pages go
	// straight to the store.
	cacheable := pc.cache != nil && c.Request.URL.RawQuery == ""
	if cacheable {
		if cached, err := pc.cache.Get(ctx, AllProductsCacheKey).Result(); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
			return
		}
	}

	result, err := pc.service.ListProducts(ctx, opts)
	if err != nil {
		respondError(c, err)
		return
	}

	body := gin.H{
		"products": result.Products,
		"pagination": gin.H{
			"current": result.Page,
			"limit":   result.Limit,
			"total":   result.Total,
			"pages":   result.Pages,
		},
	}
	if cacheable {
		if payload, err := json.Marshal(body); err == nil {
			go pc.cache.Set(context.Background(), AllProductsCacheKey, payload, ProductCacheTTL)
		}
	}
	c.JSON(http.StatusOK, body)
}

// GetProductByID godoc
// @Summary Get a single product by its ID
// @Tags products
// @Produce json
// @Router /api/products/{id} [get]
func (pc *ProductController) GetProductByID(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := parseID(c)
	if !ok {
		return
	}

	cacheKey := "product:" + c.Param("id")
	if pc.cache != nil {
		if cached, err := pc.cache.Get(ctx, cacheKey).Result(); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
			return
		}
	}

	product, err := pc.service.GetProduct(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	if pc.cache != nil {
		if payload, err := json.Marshal(product); err == nil {
			go pc.cache.Set(context.Background(), cacheKey, payload, ProductCacheTTL)
		}
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct godoc
// @Summary Create a new product
// @Tags products
// @Accept json
// @Produce json
// @Router /api/products [post]
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var input inventory.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := pc.service.CreateProduct(c.Request.Context(), input, middleware.Actor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	pc.invalidate("")
	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"product": product,
	})
}

// UpdateProduct godoc
// @Summary Update an existing product
// @Tags products
// @Accept json
// @Produce json
// @Router /api/products/{id} [put]
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input inventory.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := pc.service.UpdateProduct(c.Request.Context(), id, input, middleware.Actor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	pc.invalidate(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"product": product,
	})
}

// DeleteProduct godoc
// @Summary Delete a product
// @Tags products
// @Produce json
// @Router /api/products/{id} [delete]
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := pc.service.DeleteProduct(c.Request.Context(), id, middleware.Actor(c)); err != nil {
		respondError(c, err)
		return
	}

	pc.invalidate(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// GetHistory godoc
// @Summary Inventory history for a product, most recent first
// @Tags products
// @Produce json
// @Router /api/products/{id}/history [get]
func (pc *ProductController) GetHistory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	history, err := pc.service.GetHistory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// GetCategories godoc
// @Summary Distinct product categories
// @Tags products
// @Produce json
// @Router /api/products/data/categories [get]
func (pc *ProductController) GetCategories(c *gin.Context) {
	categories, err := pc.service.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// invalidate drops the cached listing and, when id is set, the cached
// detail view.
func (pc *ProductController) invalidate(id string) {
	if pc.cache == nil {
		return
	}
	keys := []string{AllProductsCacheKey}
	if id != "" {
		keys = append(keys, "product:"+id)
	}
	go pc.cache.Del(context.Background(), keys...)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return 0, false
	}
	return uint(id), true
}

// respondError maps the service error taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var invalid *inventory.InvalidInputError
	switch {
	case errors.Is(err, inventory.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, inventory.ErrDuplicateName):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product name already exists"})
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Reason})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
