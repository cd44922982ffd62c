package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"profile-service/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrSkuAlreadyExists = errors.New("product with this sku already exists")
)

const productColumns = `
	p.id, p.name, p.description, p.image_url, p.price, p.category_id,
	p.stock, p.sku, p.is_active, p.created_at, p.updated_at,
	c.name, c.description
`

// ProductRepository defines the interface for product data access. Listing
// operations are paginated with a zero-based page index and expose only the
// materialized content, not total counts.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	UpdateStock(ctx context.Context, id uuid.UUID, stock int, updatedAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	ExistsByCategoryID(ctx context.Context, categoryID uuid.UUID) (bool, error)
	List(ctx context.Context, page, size int) ([]*domain.Product, error)
	FindByNameContaining(ctx context.Context, name string, page, size int) ([]*domain.Product, error)
	FindByCategoryID(ctx context.Context, categoryID uuid.UUID, page, size int) ([]*domain.Product, error)
	FindByNameContainingAndCategoryID(ctx context.Context, name string, categoryID uuid.UUID, page, size int) ([]*domain.Product, error)
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new instance of ProductRepository
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

// Create inserts a new product. The foreign key on category_id guarantees the
// category still exists at write time; sku uniqueness is enforced by the
// store and surfaced as ErrSkuAlreadyExists.
func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (id, name, description, image_url, price, category_id, stock, sku, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		product.ID,
		product.Name,
		product.Description,
		product.ImageURL,
		product.Price,
		product.CategoryID,
		product.Stock,
		nullString(product.Sku),
		product.IsActive,
		product.CreatedAt,
		product.UpdatedAt,
	)

	if err != nil {
		switch pgErrCode(err) {
		case pgUniqueViolation:
			return ErrSkuAlreadyExists
		case pgForeignKeyViolation:
			return ErrCategoryNotFound
		}
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// Update overwrites every mutable field of an existing product
func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, image_url = $4, price = $5,
		    category_id = $6, stock = $7, sku = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		product.ID,
		product.Name,
		product.Description,
		product.ImageURL,
		product.Price,
		product.CategoryID,
		product.Stock,
		nullString(product.Sku),
		product.UpdatedAt,
	)

	if err != nil {
		switch pgErrCode(err) {
		case pgUniqueViolation:
			return ErrSkuAlreadyExists
		case pgForeignKeyViolation:
			return ErrCategoryNotFound
		}
		return fmt.Errorf("failed to update product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// UpdateStock sets the stock level and stamps the update time in one write
func (r *productRepository) UpdateStock(ctx context.Context, id uuid.UUID, stock int, updatedAt time.Time) error {
	query := `UPDATE products SET stock = $2, updated_at = $3 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, stock, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update stock: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Delete removes a product from the database using parameterized queries
func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// FindByID retrieves a product with its owning category
func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1
	`, productColumns)

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}

	return product, nil
}

// ExistsByCategoryID reports whether any product references the category
func (r *productRepository) ExistsByCategoryID(ctx context.Context, categoryID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE category_id = $1)`, categoryID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check products by category: %w", err)
	}
	return exists, nil
}

// List retrieves one page of products; page is zero-based
func (r *productRepository) List(ctx context.Context, page, size int) ([]*domain.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		JOIN categories c ON c.id = p.category_id
		ORDER BY p.created_at DESC
		LIMIT $1 OFFSET $2
	`, productColumns)

	return r.queryPage(ctx, query, size, page*size)
}

// FindByNameContaining filters by case-sensitive substring match on name
func (r *productRepository) FindByNameContaining(ctx context.Context, name string, page, size int) ([]*domain.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.name LIKE '%%' || $1 || '%%'
		ORDER BY p.created_at DESC
		LIMIT $2 OFFSET $3
	`, productColumns)

	return r.queryPage(ctx, query, name, size, page*size)
}

// FindByCategoryID retrieves one page of products scoped to a category
func (r *productRepository) FindByCategoryID(ctx context.Context, categoryID uuid.UUID, page, size int) ([]*domain.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.category_id = $1
		ORDER BY p.created_at DESC
		LIMIT $2 OFFSET $3
	`, productColumns)

	return r.queryPage(ctx, query, categoryID, size, page*size)
}

// FindByNameContainingAndCategoryID combines both filters
func (r *productRepository) FindByNameContainingAndCategoryID(ctx context.Context, name string, categoryID uuid.UUID, page, size int) ([]*domain.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.name LIKE '%%' || $1 || '%%' AND p.category_id = $2
		ORDER BY p.created_at DESC
		LIMIT $3 OFFSET $4
	`, productColumns)

	return r.queryPage(ctx, query, name, categoryID, size, page*size)
}

func (r *productRepository) queryPage(ctx context.Context, query string, args ...any) ([]*domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []*domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	product := &domain.Product{}
	var sku sql.NullString

	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.ImageURL,
		&product.Price,
		&product.CategoryID,
		&product.Stock,
		&sku,
		&product.IsActive,
		&product.CreatedAt,
		&product.UpdatedAt,
		&product.Category.Name,
		&product.Category.Description,
	)
	if err != nil {
		return nil, err
	}

	product.Sku = sku.String
	product.Category.ID = product.CategoryID
	return product, nil
}
