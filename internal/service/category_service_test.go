package service

import (
	"context"
	"testing"

	"profile-service/internal/domain"
	"profile-service/internal/envelope"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCategoryFixture() (*fakeCategoryRepo, *fakeProductRepo, CategoryService) {
	categories := newFakeCategoryRepo()
	products := newFakeProductRepo()
	categories.products = products
	return categories, products, NewCategoryService(categories, products, zap.NewNop())
}

func seedCategory(t *testing.T, repo *fakeCategoryRepo, name string) *domain.Category {
	t.Helper()
	category := &domain.Category{ID: uuid.New(), Name: name, Description: "Description of " + name}
	require.NoError(t, repo.Create(context.Background(), category))
	return category
}

func TestAddCategory(t *testing.T) {
	_, _, svc := newCategoryFixture()

	env := svc.AddCategory(context.Background(), CategoryRequest{Name: "Books", Description: "Printed things"})

	assert.True(t, env.Success)
	assert.Equal(t, envelope.StatusCreated, env.Status)
	resp, ok := env.Data.(CategoryResponse)
	require.True(t, ok)
	assert.Equal(t, "Books", resp.Name)
	assert.NotEqual(t, uuid.Nil, resp.ID)
}

func TestAddCategory_DuplicateNameConflicts(t *testing.T) {
	categories, _, svc := newCategoryFixture()
	seedCategory(t, categories, "Books")

	env := svc.AddCategory(context.Background(), CategoryRequest{Name: "Books"})

	assert.False(t, env.Success)
	assert.Equal(t, envelope.StatusConflict, env.Status)
	assert.Nil(t, env.Data)
}

func TestGetCategoryByID_NotFound(t *testing.T) {
	_, _, svc := newCategoryFixture()

	env := svc.GetCategoryByID(context.Background(), uuid.New())

	assert.False(t, env.Success)
	assert.Equal(t, envelope.StatusNotFound, env.Status)
}

func TestGetAllCategories_EmptyCatalogIsSuccess(t *testing.T) {
	_, _, svc := newCategoryFixture()

	env := svc.GetAllCategories(context.Background())

	assert.True(t, env.Success)
	assert.Equal(t, envelope.StatusOK, env.Status)
	responses, ok := env.Data.([]CategoryResponse)
	require.True(t, ok)
	assert.Empty(t, responses)
}

func TestUpdateCategory_NameCollisionWithOtherCategoryConflicts(t *testing.T) {
	categories, _, svc := newCategoryFixture()
	seedCategory(t, categories, "Books")
	music := seedCategory(t, categories, "Music")

	env := svc.UpdateCategory(context.Background(), music.ID, CategoryRequest{Name: "Books"})

	assert.False(t, env.Success)
	assert.Equal(t, envelope.StatusConflict, env.Status)
}

func TestUpdateCategory_KeepingOwnNameSucceeds(t *testing.T) {
	categories, _, svc := newCategoryFixture()
	books := seedCategory(t, categories, "Books")

	env := svc.UpdateCategory(context.Background(), books.ID, CategoryRequest{Name: "Books", Description: "updated"})

	assert.True(t, env.Success)
	resp, ok := env.Data.(CategoryResponse)
	require.True(t, ok)
	assert.Equal(t, "updated", resp.Description)
}

func TestDeleteCategory_BlockedWhileProductsReference(t *testing.T) {
	categories, products, svc := newCategoryFixture()
	books := seedCategory(t, categories, "Books")
	require.NoError(t, products.Create(context.Background(), &domain.Product{
		ID:         uuid.New(),
		Name:       "Novel",
		CategoryID: books.ID,
	}))

	env := svc.DeleteCategory(context.Background(), books.ID)

	assert.False(t, env.Success)
	assert.Equal(t, envelope.StatusConflict, env.Status)

	// Still retrievable after the rejected delete
	assert.True(t, svc.GetCategoryByID(context.Background(), books.ID).Success)
}

func TestDeleteCategory_SecondDeleteReportsNotFound(t *testing.T) {
	categories, _, svc := newCategoryFixture()
	books := seedCategory(t, categories, "Books")

	first := svc.DeleteCategory(context.Background(), books.ID)
	require.True(t, first.Success)
	assert.Equal(t, envelope.KindNone, first.Kind)

	second := svc.DeleteCategory(context.Background(), books.ID)
	assert.False(t, second.Success)
	assert.Equal(t, envelope.StatusNotFound, second.Status)
}

func TestCategoryService_StoreFailureIsNotLeaked(t *testing.T) {
	categories, _, svc := newCategoryFixture()
	categories.err = assert.AnError

	env := svc.GetCategoryByID(context.Background(), uuid.New())

	assert.False(t, env.Success)
	assert.Equal(t, envelope.StatusInternalError, env.Status)
	assert.Equal(t, msgInternalError, env.Message)
	assert.NotContains(t, env.Message, assert.AnError.Error())
}
