package transport

import (
	"net/http"

	"profile-service/internal/middleware"
	"profile-service/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProductHandler handles HTTP requests for product operations
type ProductHandler struct {
	productService service.ProductService
	logger         *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService service.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// RegisterRoutes registers all product routes
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/products", func(r chi.Router) {
		r.Post("/", h.AddProduct)
		r.Get("/", h.GetAllProducts)
		r.Get("/search", h.SearchProducts)
		r.Get("/category/{categoryId}", h.GetProductsByCategory)
		r.Get("/{id}", h.GetProductByID)
		r.Put("/{id}", h.UpdateProduct)
		r.Patch("/{id}/stock", h.UpdateStock)
		r.Delete("/{id}", h.DeleteProduct)
	})
}

// AddProduct handles product creation
func (h *ProductHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	var req service.ProductRequest
	if !decodeRequest(w, r, &req, h.logger) {
		return
	}

	render(w, h.productService.AddProduct(r.Context(), req))
}

// GetProductByID handles fetching a single product
func (h *ProductHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	render(w, h.productService.GetProductByID(r.Context(), id))
}

// GetAllProducts handles the unfiltered paginated listing
func (h *ProductHandler) GetAllProducts(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	render(w, h.productService.GetAllProducts(r.Context(), page, size))
}

// SearchProducts handles filtered product search. Both filters are optional;
// a malformed categoryId is rejected before it reaches the service.
func (h *ProductHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	name := r.URL.Query().Get("name")

	var categoryID *uuid.UUID
	if raw := r.URL.Query().Get("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			middleware.RespondWithError(w, http.StatusBadRequest, "invalid identifier")
			return
		}
		categoryID = &id
	}

	render(w, h.productService.SearchProducts(r.Context(), name, categoryID, page, size))
}

// GetProductsByCategory handles the category-scoped listing
func (h *ProductHandler) GetProductsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := pathID(w, r, "categoryId")
	if !ok {
		return
	}

	page, size := pageParams(r)
	render(w, h.productService.GetProductsByCategory(r.Context(), categoryID, page, size))
}

// UpdateProduct handles full-replace product updates
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req service.ProductRequest
	if !decodeRequest(w, r, &req, h.logger) {
		return
	}

	render(w, h.productService.UpdateProduct(r.Context(), id, req))
}

// UpdateStock handles inventory adjustments
func (h *ProductHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req service.StockUpdateRequest
	if !decodeRequest(w, r, &req, h.logger) {
		return
	}

	render(w, h.productService.UpdateStock(r.Context(), id, req.Stock))
}

// DeleteProduct handles product deletion
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	render(w, h.productService.DeleteProduct(r.Context(), id))
}
