package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"profile-service/internal/domain"
	"profile-service/internal/repository"

	"github.com/google/uuid"
)

// Map-backed repository fakes mirroring the store's constraint semantics
// (unique names, unique user ids, restrict-on-delete).

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*domain.Category
	products   *fakeProductRepo
	err        error
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[uuid.UUID]*domain.Category{}}
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *domain.Category) error {
	if f.err != nil {
		return f.err
	}
	for _, c := range f.categories {
		if c.Name == category.Name {
			return repository.ErrCategoryAlreadyExists
		}
	}
	clone := *category
	f.categories[category.ID] = &clone
	return nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, category *domain.Category) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.categories[category.ID]; !ok {
		return repository.ErrCategoryNotFound
	}
	for _, c := range f.categories {
		if c.Name == category.Name && c.ID != category.ID {
			return repository.ErrCategoryAlreadyExists
		}
	}
	clone := *category
	f.categories[category.ID] = &clone
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.categories[id]; !ok {
		return repository.ErrCategoryNotFound
	}
	if f.products != nil {
		for _, p := range f.products.products {
			if p.CategoryID == id {
				return repository.ErrCategoryInUse
			}
		}
	}
	delete(f.categories, id)
	return nil
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	category, ok := f.categories[id]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}
	clone := *category
	return &clone, nil
}

func (f *fakeCategoryRepo) FindByName(_ context.Context, name string) (*domain.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.categories {
		if c.Name == name {
			clone := *c
			return &clone, nil
		}
	}
	return nil, repository.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.categories[id]
	return ok, nil
}

func (f *fakeCategoryRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, c := range f.categories {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategoryRepo) List(_ context.Context) ([]*domain.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	categories := make([]*domain.Category, 0, len(f.categories))
	for _, c := range f.categories {
		clone := *c
		categories = append(categories, &clone)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

type fakeProductRepo struct {
	products   map[uuid.UUID]*domain.Product
	lastFinder string
	err        error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[uuid.UUID]*domain.Product{}}
}

func (f *fakeProductRepo) Create(_ context.Context, product *domain.Product) error {
	if f.err != nil {
		return f.err
	}
	for _, p := range f.products {
		if product.Sku != "" && p.Sku == product.Sku {
			return repository.ErrSkuAlreadyExists
		}
	}
	clone := *product
	f.products[product.ID] = &clone
	return nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *domain.Product) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.products[product.ID]; !ok {
		return repository.ErrProductNotFound
	}
	for _, p := range f.products {
		if product.Sku != "" && p.Sku == product.Sku && p.ID != product.ID {
			return repository.ErrSkuAlreadyExists
		}
	}
	clone := *product
	f.products[product.ID] = &clone
	return nil
}

func (f *fakeProductRepo) UpdateStock(_ context.Context, id uuid.UUID, stock int, updatedAt time.Time) error {
	if f.err != nil {
		return f.err
	}
	product, ok := f.products[id]
	if !ok {
		return repository.ErrProductNotFound
	}
	product.Stock = stock
	product.UpdatedAt = updatedAt
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	product, ok := f.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	clone := *product
	return &clone, nil
}

func (f *fakeProductRepo) ExistsByCategoryID(_ context.Context, categoryID uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, p := range f.products {
		if p.CategoryID == categoryID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProductRepo) List(_ context.Context, page, size int) ([]*domain.Product, error) {
	f.lastFinder = "List"
	if f.err != nil {
		return nil, f.err
	}
	return f.page(f.all(), page, size), nil
}

func (f *fakeProductRepo) FindByNameContaining(_ context.Context, name string, page, size int) ([]*domain.Product, error) {
	f.lastFinder = "FindByNameContaining"
	if f.err != nil {
		return nil, f.err
	}
	matches := []*domain.Product{}
	for _, p := range f.all() {
		if strings.Contains(p.Name, name) {
			matches = append(matches, p)
		}
	}
	return f.page(matches, page, size), nil
}

func (f *fakeProductRepo) FindByCategoryID(_ context.Context, categoryID uuid.UUID, page, size int) ([]*domain.Product, error) {
	f.lastFinder = "FindByCategoryID"
	if f.err != nil {
		return nil, f.err
	}
	matches := []*domain.Product{}
	for _, p := range f.all() {
		if p.CategoryID == categoryID {
			matches = append(matches, p)
		}
	}
	return f.page(matches, page, size), nil
}

func (f *fakeProductRepo) FindByNameContainingAndCategoryID(_ context.Context, name string, categoryID uuid.UUID, page, size int) ([]*domain.Product, error) {
	f.lastFinder = "FindByNameContainingAndCategoryID"
	if f.err != nil {
		return nil, f.err
	}
	matches := []*domain.Product{}
	for _, p := range f.all() {
		if strings.Contains(p.Name, name) && p.CategoryID == categoryID {
			matches = append(matches, p)
		}
	}
	return f.page(matches, page, size), nil
}

func (f *fakeProductRepo) all() []*domain.Product {
	products := make([]*domain.Product, 0, len(f.products))
	for _, p := range f.products {
		clone := *p
		products = append(products, &clone)
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products
}

func (f *fakeProductRepo) page(products []*domain.Product, page, size int) []*domain.Product {
	start := page * size
	if start >= len(products) {
		return []*domain.Product{}
	}
	end := start + size
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*domain.Profile
	err      error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[uuid.UUID]*domain.Profile{}}
}

func (f *fakeProfileRepo) Create(_ context.Context, profile *domain.Profile) error {
	if f.err != nil {
		return f.err
	}
	for _, p := range f.profiles {
		if p.UserID == profile.UserID {
			return repository.ErrProfileAlreadyExists
		}
	}
	clone := *profile
	f.profiles[profile.ID] = &clone
	return nil
}

func (f *fakeProfileRepo) Update(_ context.Context, profile *domain.Profile) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.profiles[profile.ID]; !ok {
		return repository.ErrProfileNotFound
	}
	clone := *profile
	f.profiles[profile.ID] = &clone
	return nil
}

func (f *fakeProfileRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	profile, ok := f.profiles[id]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}
	clone := *profile
	return &clone, nil
}

func (f *fakeProfileRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*domain.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.profiles {
		if p.UserID == userID {
			clone := *p
			return &clone, nil
		}
	}
	return nil, repository.ErrProfileNotFound
}

func (f *fakeProfileRepo) FindPublicProfiles(_ context.Context) ([]*domain.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	profiles := []*domain.Profile{}
	for _, p := range f.profiles {
		if p.IsPublic && p.IsActive {
			clone := *p
			profiles = append(profiles, &clone)
		}
	}
	return profiles, nil
}

func (f *fakeProfileRepo) SearchProfiles(_ context.Context, term string) ([]*domain.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	profiles := []*domain.Profile{}
	for _, p := range f.profiles {
		if !p.IsPublic || !p.IsActive {
			continue
		}
		if strings.Contains(p.FirstName, term) || strings.Contains(p.LastName, term) {
			clone := *p
			profiles = append(profiles, &clone)
		}
	}
	return profiles, nil
}

func (f *fakeProfileRepo) FindByLocation(_ context.Context, location string) ([]*domain.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	profiles := []*domain.Profile{}
	for _, p := range f.profiles {
		if p.IsPublic && p.IsActive && p.Location == location {
			clone := *p
			profiles = append(profiles, &clone)
		}
	}
	return profiles, nil
}

func (f *fakeProfileRepo) CountActiveProfiles(_ context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var count int64
	for _, p := range f.profiles {
		if p.IsActive {
			count++
		}
	}
	return count, nil
}
