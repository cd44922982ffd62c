package transport

import (
	"net/http"

	"profile-service/internal/middleware"
	"profile-service/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CategoryHandler handles HTTP requests for category operations
type CategoryHandler struct {
	categoryService service.CategoryService
	logger          *zap.Logger
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService service.CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// RegisterRoutes registers all category routes
func (h *CategoryHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/categories", func(r chi.Router) {
		r.Post("/", h.AddCategory)
		r.Get("/", h.GetAllCategories)
		r.Get("/{id}", h.GetCategoryByID)
		r.Put("/{id}", h.UpdateCategory)
		r.Delete("/{id}", h.DeleteCategory)
	})
}

// AddCategory handles category creation
func (h *CategoryHandler) AddCategory(w http.ResponseWriter, r *http.Request) {
	var req service.CategoryRequest
	if !decodeRequest(w, r, &req, h.logger) {
		return
	}

	render(w, h.categoryService.AddCategory(r.Context(), req))
}

// GetCategoryByID handles fetching a single category
func (h *CategoryHandler) GetCategoryByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	render(w, h.categoryService.GetCategoryByID(r.Context(), id))
}

// GetAllCategories handles listing the full category catalog
func (h *CategoryHandler) GetAllCategories(w http.ResponseWriter, r *http.Request) {
	render(w, h.categoryService.GetAllCategories(r.Context()))
}

// UpdateCategory handles overwriting a category's fields
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req service.CategoryRequest
	if !decodeRequest(w, r, &req, h.logger) {
		return
	}

	render(w, h.categoryService.UpdateCategory(r.Context(), id, req))
}

// DeleteCategory handles category deletion
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	render(w, h.categoryService.DeleteCategory(r.Context(), id))
}

// decodeRequest decodes and validates a JSON body, rendering the failure
// itself when the input is malformed. Returns false when handling stopped.
func decodeRequest(w http.ResponseWriter, r *http.Request, v any, logger *zap.Logger) bool {
	if err := middleware.DecodeAndValidate(r, v); err != nil {
		logger.Debug("Request validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return false
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	return true
}

// pathID parses a uuid path parameter
func pathID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid identifier")
		return uuid.Nil, false
	}
	return id, true
}
