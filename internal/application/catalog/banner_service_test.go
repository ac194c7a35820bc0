package catalog

import (
	"context"
	"testing"

	"github.com/nexashop/backend/internal/domain/catalog"
	"github.com/nexashop/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testBanner(t *testing.T, id int64, title string, sortOrder int) *catalog.Banner {
	t.Helper()
	b, err := catalog.NewBanner(title, "", "", "", "", sortOrder)
	require.NoError(t, err)
	b.ID = id
	return b
}

func TestBannerServiceListActive(t *testing.T) {
	bannerRepo := new(MockBannerRepository)
	service := NewBannerService(bannerRepo, zap.NewNop())

	bannerRepo.On("FindActive", mock.Anything).Return([]catalog.Banner{
		*testBanner(t, 1, "Tech Deals", 0),
		*testBanner(t, 2, "Summer Collection", 1),
	}, nil)

	got, err := service.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Tech Deals", got[0].Title)
}

func TestBannerServiceCreateInactive(t *testing.T) {
	bannerRepo := new(MockBannerRepository)
	service := NewBannerService(bannerRepo, zap.NewNop())

	bannerRepo.On("Insert", mock.Anything, mock.AnythingOfType("*catalog.Banner")).Return(nil)

	inactive := false
	got, err := service.Create(context.Background(), CreateBannerRequest{
		Title:    "Hidden Promo",
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestBannerServiceUpdateSortOrder(t *testing.T) {
	bannerRepo := new(MockBannerRepository)
	service := NewBannerService(bannerRepo, zap.NewNop())

	banner := testBanner(t, 5, "Tech Deals", 0)
	bannerRepo.On("FindByID", mock.Anything, int64(5)).Return(banner, nil)
	bannerRepo.On("Update", mock.Anything, mock.AnythingOfType("*catalog.Banner")).Return(nil)

	order := 3
	got, err := service.Update(context.Background(), 5, UpdateBannerRequest{SortOrder: &order})
	require.NoError(t, err)
	assert.Equal(t, 3, got.SortOrder)
	assert.Equal(t, "Tech Deals", got.Title)
}

func TestBannerServiceUpdateNotFound(t *testing.T) {
	bannerRepo := new(MockBannerRepository)
	service := NewBannerService(bannerRepo, zap.NewNop())

	bannerRepo.On("FindByID", mock.Anything, int64(9)).Return(nil, shared.ErrNotFound)

	_, err := service.Update(context.Background(), 9, UpdateBannerRequest{})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCategoryServiceDeleteRejectsNonEmpty(t *testing.T) {
	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	service := NewCategoryService(categoryRepo, productRepo, zap.NewNop())

	productRepo.On("FindByCategory", mock.Anything, int64(1)).Return([]catalog.Product{
		*testProduct(t, 1, "Bluetooth Premium Headphones", "bluetooth-premium-headphones", "299.90"),
	}, nil)

	err := service.Delete(context.Background(), 1)
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CATEGORY_IN_USE", domainErr.Code)
	categoryRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCategoryServiceCreate(t *testing.T) {
	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	service := NewCategoryService(categoryRepo, productRepo, zap.NewNop())

	categoryRepo.On("FindBySlug", mock.Anything, "home-garden").Return(nil, shared.ErrNotFound)
	categoryRepo.On("Insert", mock.Anything, mock.AnythingOfType("*catalog.Category")).Return(nil)

	got, err := service.Create(context.Background(), CreateCategoryRequest{Name: "Home & Garden"})
	require.NoError(t, err)
	assert.Equal(t, "home-garden", got.Slug)
}
