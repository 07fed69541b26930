package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-service/internal/models"
	"catalog-service/internal/repository"
)

type ProductsHandler struct {
	store repository.CatalogStore
}

func NewProductsHandler(store repository.CatalogStore) *ProductsHandler {
	return &ProductsHandler{store: store}
}

// GetProducts returns the full catalog
// GET /api/products
func (h *ProductsHandler) GetProducts(c *gin.Context) {
	products, err := h.store.GetAllProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "STORE_ERROR",
				Message: "Failed to fetch products",
			},
		})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProductsByBrand returns products matching a brand, case-insensitively
// GET /api/products/brand/:brand
func (h *ProductsHandler) GetProductsByBrand(c *gin.Context) {
	brand := c.Param("brand")
	products, err := h.store.GetProductsByBrand(c.Request.Context(), brand)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "STORE_ERROR",
				Message: "Failed to fetch products by brand",
			},
		})
		return
	}
	c.JSON(http.StatusOK, products)
}

// SearchProducts matches the query against product name or brand
// GET /api/products/search?q=
func (h *ProductsHandler) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "QUERY_REQUIRED",
				Message: "Search query is required",
			},
		})
		return
	}

	products, err := h.store.SearchProducts(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "STORE_ERROR",
				Message: "Failed to search products",
			},
		})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetBrands returns per-brand product counts sorted by brand name
// GET /api/brands
func (h *ProductsHandler) GetBrands(c *gin.Context) {
	brands, err := h.store.GetAllBrands(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "STORE_ERROR",
				Message: "Failed to fetch brands",
			},
		})
		return
	}
	c.JSON(http.StatusOK, brands)
}

// HealthCheck reports service liveness
// GET /health
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "catalog-service",
	})
}
