package service

import (
	"context"
	"errors"
	"time"

	"profile-service/internal/domain"
	"profile-service/internal/envelope"
	"profile-service/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	msgProductNotFound = "product not found"
	msgCategoryUnknown = "the specified category does not exist"
	msgSkuTaken        = "a product with that sku already exists"
	msgStockNegative   = "stock cannot be negative"
)

// ProductService enforces category existence on writes, composes paginated
// search over the optional name/category filters, and guards the stock
// invariant.
type ProductService interface {
	AddProduct(ctx context.Context, req ProductRequest) envelope.Envelope
	GetProductByID(ctx context.Context, id uuid.UUID) envelope.Envelope
	GetAllProducts(ctx context.Context, page, size int) envelope.Envelope
	SearchProducts(ctx context.Context, name string, categoryID *uuid.UUID, page, size int) envelope.Envelope
	GetProductsByCategory(ctx context.Context, categoryID uuid.UUID, page, size int) envelope.Envelope
	UpdateProduct(ctx context.Context, id uuid.UUID, req ProductRequest) envelope.Envelope
	UpdateStock(ctx context.Context, id uuid.UUID, stock int) envelope.Envelope
	DeleteProduct(ctx context.Context, id uuid.UUID) envelope.Envelope
}

type productService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	logger     *zap.Logger
}

// NewProductService creates a new instance of ProductService
func NewProductService(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	logger *zap.Logger,
) ProductService {
	return &productService{
		products:   products,
		categories: categories,
		logger:     logger,
	}
}

// AddProduct persists a new product after resolving its category. An
// unresolved category is the caller's fault, so it reports BadRequest. The
// store's foreign key closes the race between the check and the insert.
func (s *productService) AddProduct(ctx context.Context, req ProductRequest) envelope.Envelope {
	category, err := s.categories.FindByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return envelope.Fail(envelope.StatusBadRequest, msgCategoryUnknown)
		}
		return s.internalError("resolve category", err)
	}

	product := newProductFromRequest(req, category, time.Now().UTC())

	if err := s.products.Create(ctx, product); err != nil {
		switch {
		case errors.Is(err, repository.ErrCategoryNotFound):
			return envelope.Fail(envelope.StatusBadRequest, msgCategoryUnknown)
		case errors.Is(err, repository.ErrSkuAlreadyExists):
			return envelope.Fail(envelope.StatusConflict, msgSkuTaken)
		}
		return s.internalError("create product", err)
	}

	return envelope.Created(toProductResponse(product), "product created successfully")
}

// GetProductByID retrieves a single product
func (s *productService) GetProductByID(ctx context.Context, id uuid.UUID) envelope.Envelope {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return envelope.Fail(envelope.StatusNotFound, msgProductNotFound)
		}
		return s.internalError("find product", err)
	}

	return envelope.OK(toProductResponse(product), "product retrieved successfully")
}

// GetAllProducts returns one page of the unfiltered catalog; page is
// zero-based and only the page contents are surfaced, not a total count.
func (s *productService) GetAllProducts(ctx context.Context, page, size int) envelope.Envelope {
	products, err := s.products.List(ctx, page, size)
	if err != nil {
		return s.internalError("list products", err)
	}

	return envelope.OKList(toProductResponses(products), "products retrieved successfully")
}

// SearchProducts composes exactly one of four predicate branches depending on
// which filters are present. No filter combination is rejected; with neither
// filter it degrades to unfiltered pagination.
func (s *productService) SearchProducts(ctx context.Context, name string, categoryID *uuid.UUID, page, size int) envelope.Envelope {
	var (
		products []*domain.Product
		err      error
	)

	switch {
	case name != "" && categoryID != nil:
		products, err = s.products.FindByNameContainingAndCategoryID(ctx, name, *categoryID, page, size)
	case name != "":
		products, err = s.products.FindByNameContaining(ctx, name, page, size)
	case categoryID != nil:
		products, err = s.products.FindByCategoryID(ctx, *categoryID, page, size)
	default:
		products, err = s.products.List(ctx, page, size)
	}

	if err != nil {
		return s.internalError("search products", err)
	}

	return envelope.OKList(toProductResponses(products), "product search completed")
}

// GetProductsByCategory returns a paginated listing scoped to one category,
// rejecting an unresolved category reference with BadRequest.
func (s *productService) GetProductsByCategory(ctx context.Context, categoryID uuid.UUID, page, size int) envelope.Envelope {
	exists, err := s.categories.ExistsByID(ctx, categoryID)
	if err != nil {
		return s.internalError("check category", err)
	}
	if !exists {
		return envelope.Fail(envelope.StatusBadRequest, msgCategoryUnknown)
	}

	products, err := s.products.FindByCategoryID(ctx, categoryID, page, size)
	if err != nil {
		return s.internalError("list products by category", err)
	}

	return envelope.OKList(toProductResponses(products), "products by category retrieved successfully")
}

// UpdateProduct overwrites all mutable fields: full-replace semantics, in
// contrast with the profile's partial patch.
func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, req ProductRequest) envelope.Envelope {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return envelope.Fail(envelope.StatusNotFound, msgProductNotFound)
		}
		return s.internalError("find product", err)
	}

	category, err := s.categories.FindByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return envelope.Fail(envelope.StatusBadRequest, msgCategoryUnknown)
		}
		return s.internalError("resolve category", err)
	}

	applyProductRequest(product, req, category, time.Now().UTC())

	if err := s.products.Update(ctx, product); err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			return envelope.Fail(envelope.StatusNotFound, msgProductNotFound)
		case errors.Is(err, repository.ErrCategoryNotFound):
			return envelope.Fail(envelope.StatusBadRequest, msgCategoryUnknown)
		case errors.Is(err, repository.ErrSkuAlreadyExists):
			return envelope.Fail(envelope.StatusConflict, msgSkuTaken)
		}
		return s.internalError("update product", err)
	}

	return envelope.OK(toProductResponse(product), "product updated successfully")
}

// UpdateStock sets the stock level. Negative stock never reaches the store.
func (s *productService) UpdateStock(ctx context.Context, id uuid.UUID, stock int) envelope.Envelope {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return envelope.Fail(envelope.StatusNotFound, msgProductNotFound)
		}
		return s.internalError("find product", err)
	}

	if stock < 0 {
		return envelope.Fail(envelope.StatusBadRequest, msgStockNegative)
	}

	updatedAt := time.Now().UTC()
	if err := s.products.UpdateStock(ctx, id, stock, updatedAt); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return envelope.Fail(envelope.StatusNotFound, msgProductNotFound)
		}
		return s.internalError("update stock", err)
	}

	product.Stock = stock
	product.UpdatedAt = updatedAt

	return envelope.OK(toProductResponse(product), "stock updated successfully")
}

// DeleteProduct hard-deletes a product; nothing depends on products so there
// is no reference-integrity concern.
func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID) envelope.Envelope {
	if err := s.products.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return envelope.Fail(envelope.StatusNotFound, msgProductNotFound)
		}
		return s.internalError("delete product", err)
	}

	return envelope.Empty("product deleted successfully")
}

func (s *productService) internalError(op string, err error) envelope.Envelope {
	s.logger.Error("product operation failed",
		zap.String("op", op),
		zap.Error(err),
	)
	return envelope.Fail(envelope.StatusInternalError, msgInternalError)
}
