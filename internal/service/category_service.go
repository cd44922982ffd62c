package service

import (
	"context"
	"errors"

	"profile-service/internal/domain"
	"profile-service/internal/envelope"
	"profile-service/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Caller-safe failure messages. Raw store errors are logged, never returned.
const (
	msgCategoryNotFound    = "category not found"
	msgCategoryNameTaken   = "a category with that name already exists"
	msgCategoryHasProducts = "category cannot be deleted because it has associated products"
	msgInternalError       = "an unexpected error occurred"
)

// CategoryService enforces category name uniqueness and blocks deletion
// while any product references the category.
type CategoryService interface {
	AddCategory(ctx context.Context, req CategoryRequest) envelope.Envelope
	GetCategoryByID(ctx context.Context, id uuid.UUID) envelope.Envelope
	GetAllCategories(ctx context.Context) envelope.Envelope
	UpdateCategory(ctx context.Context, id uuid.UUID, req CategoryRequest) envelope.Envelope
	DeleteCategory(ctx context.Context, id uuid.UUID) envelope.Envelope
}

type categoryService struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	logger     *zap.Logger
}

// NewCategoryService creates a new instance of CategoryService
func NewCategoryService(
	categories repository.CategoryRepository,
	products repository.ProductRepository,
	logger *zap.Logger,
) CategoryService {
	return &categoryService{
		categories: categories,
		products:   products,
		logger:     logger,
	}
}

// AddCategory persists a new category, rejecting duplicate names with a
// Conflict. The check and insert race is closed by the store's unique
// constraint, which the repository reports as ErrCategoryAlreadyExists.
func (s *categoryService) AddCategory(ctx context.Context, req CategoryRequest) envelope.Envelope {
	exists, err := s.categories.ExistsByName(ctx, req.Name)
	if err != nil {
		return s.internalError("check category name", err)
	}
	if exists {
		return envelope.Fail(envelope.StatusConflict, msgCategoryNameTaken)
	}

	category := &domain.Category{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.categories.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryAlreadyExists) {
			return envelope.Fail(envelope.StatusConflict, msgCategoryNameTaken)
		}
		return s.internalError("create category", err)
	}

	return envelope.Created(toCategoryResponse(category), "category created successfully")
}

// GetCategoryByID retrieves a single category
func (s *categoryService) GetCategoryByID(ctx context.Context, id uuid.UUID) envelope.Envelope {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return envelope.Fail(envelope.StatusNotFound, msgCategoryNotFound)
		}
		return s.internalError("find category", err)
	}

	return envelope.OK(toCategoryResponse(category), "category retrieved successfully")
}

// GetAllCategories returns the full, unpaginated category catalog
func (s *categoryService) GetAllCategories(ctx context.Context) envelope.Envelope {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return s.internalError("list categories", err)
	}

	return envelope.OKList(toCategoryResponses(categories), "categories retrieved successfully")
}

// UpdateCategory overwrites name and description. A name collision with a
// different category is a Conflict; colliding with itself is permitted.
func (s *categoryService) UpdateCategory(ctx context.Context, id uuid.UUID, req CategoryRequest) envelope.Envelope {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return envelope.Fail(envelope.StatusNotFound, msgCategoryNotFound)
		}
		return s.internalError("find category", err)
	}

	existing, err := s.categories.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, repository.ErrCategoryNotFound) {
		return s.internalError("check category name", err)
	}
	if existing != nil && existing.ID != id {
		return envelope.Fail(envelope.StatusConflict, msgCategoryNameTaken)
	}

	category.Name = req.Name
	category.Description = req.Description

	if err := s.categories.Update(ctx, category); err != nil {
		switch {
		case errors.Is(err, repository.ErrCategoryNotFound):
			return envelope.Fail(envelope.StatusNotFound, msgCategoryNotFound)
		case errors.Is(err, repository.ErrCategoryAlreadyExists):
			return envelope.Fail(envelope.StatusConflict, msgCategoryNameTaken)
		}
		return s.internalError("update category", err)
	}

	return envelope.OK(toCategoryResponse(category), "category updated successfully")
}

// DeleteCategory hard-deletes a category unless any product references it.
// A second delete of the same id reports NotFound, not a silent no-op.
func (s *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID) envelope.Envelope {
	exists, err := s.categories.ExistsByID(ctx, id)
	if err != nil {
		return s.internalError("check category", err)
	}
	if !exists {
		return envelope.Fail(envelope.StatusNotFound, msgCategoryNotFound)
	}

	hasProducts, err := s.products.ExistsByCategoryID(ctx, id)
	if err != nil {
		return s.internalError("check category products", err)
	}
	if hasProducts {
		return envelope.Fail(envelope.StatusConflict, msgCategoryHasProducts)
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrCategoryNotFound):
			return envelope.Fail(envelope.StatusNotFound, msgCategoryNotFound)
		case errors.Is(err, repository.ErrCategoryInUse):
			return envelope.Fail(envelope.StatusConflict, msgCategoryHasProducts)
		}
		return s.internalError("delete category", err)
	}

	return envelope.Empty("category deleted successfully")
}

func (s *categoryService) internalError(op string, err error) envelope.Envelope {
	s.logger.Error("category operation failed",
		zap.String("op", op),
		zap.Error(err),
	)
	return envelope.Fail(envelope.StatusInternalError, msgInternalError)
}
