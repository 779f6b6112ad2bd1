package http

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecocart/backend/internal/domain"
	"github.com/ecocart/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	aggregator *usecase.Aggregator
	analyzer   domain.ImageAnalyzer
}

// NewHandler creates a new HTTP handler. analyzer may be nil when the
// image-analysis backend is not configured.
func NewHandler(aggregator *usecase.Aggregator, analyzer domain.ImageAnalyzer) *Handler {
	return &Handler{
		aggregator: aggregator,
		analyzer:   analyzer,
	}
}

// HealthCheck returns the health status of the API.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "ecocart-backend",
		"version": "1.0.0",
	})
}

// SearchProducts handles GET /api/products/search?query=...
//
// The search path never answers with a server error: whatever goes wrong
// downstream, the client gets a 200 with products (possibly from the fallback
// catalog, possibly empty) and an explanatory error string. Only a missing
// query parameter is a client error.
func (h *Handler) SearchProducts(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search query is required"})
		return
	}

	// Last line of defense: a programming fault below still resolves to a
	// 200 with an empty list rather than a 5xx.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[http] search %q panicked: %v", query, r)
			c.JSON(http.StatusOK, domain.SearchResponse{
				Products: []domain.Product{},
				Error:    "failed to search for products, please try a different search term",
			})
		}
	}()

	result := h.aggregator.Search(c.Request.Context(), query)
	c.JSON(http.StatusOK, domain.SearchResponse{
		Products: result.Products,
		Error:    result.Message,
	})
}

// ProductDetails handles GET /api/products/details/:id?source=...
func (h *Handler) ProductDetails(c *gin.Context) {
	productID := c.Param("id")
	source := c.Query("source")

	if productID == "" || source == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID and source are required"})
		return
	}

	product, err := h.aggregator.Details(c.Request.Context(), productID, source)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID and source are required"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, domain.DetailResponse{Product: product})
}

// AnalyzeImage handles POST /api/analyze: a multipart screenshot upload
// proxied to the external image-analysis backend.
func (h *Handler) AnalyzeImage(c *gin.Context) {
	if h.analyzer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image analysis is not configured"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "An image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded image"})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded image"})
		return
	}

	verdict, err := h.analyzer.AnalyzeImage(
		c.Request.Context(),
		fileHeader.Filename,
		image,
		c.PostForm("page_url"),
		c.PostForm("title"),
	)
	if err != nil {
		log.Printf("[http] image analysis failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Image analysis failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"analysis": verdict})
}
