package seed

import (
	"context"
	"testing"

	"github.com/nexashop/backend/internal/domain/shared"
	"github.com/nexashop/backend/internal/infrastructure/persistence/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMemoryRepos() Repositories {
	return Repositories{
		Products:   memory.NewProductRepository(),
		Categories: memory.NewCategoryRepository(),
		Banners:    memory.NewBannerRepository(),
		Users:      memory.NewUserRepository(),
	}
}

func TestRunPopulatesStore(t *testing.T) {
	repos := newMemoryRepos()
	ctx := context.Background()

	require.NoError(t, Run(ctx, repos, zap.NewNop()))

	categories, err := repos.Categories.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 4)
	assert.Equal(t, "electronics", categories[0].Slug)

	products, err := repos.Products.FindAll(ctx, shared.DefaultFilter())
	require.NoError(t, err)
	require.Len(t, products, 8)

	headphones, err := repos.Products.FindBySlug(ctx, "bluetooth-premium-headphones")
	require.NoError(t, err)
	assert.Equal(t, "299.9", headphones.Price.String())
	require.NotNil(t, headphones.ComparePrice)
	assert.Equal(t, "349.9", headphones.ComparePrice.String())
	assert.True(t, headphones.IsFeatured)
	assert.True(t, headphones.InStock)
	assert.Equal(t, categories[0].ID, headphones.CategoryID)

	banners, err := repos.Banners.FindActive(ctx)
	require.NoError(t, err)
	assert.Len(t, banners, 2)

	admin, err := repos.Users.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())
	assert.True(t, admin.VerifyPassword("admin123"))
}

func TestRunIsIdempotent(t *testing.T) {
	repos := newMemoryRepos()
	ctx := context.Background()

	require.NoError(t, Run(ctx, repos, zap.NewNop()))
	require.NoError(t, Run(ctx, repos, zap.NewNop()))

	products, err := repos.Products.FindAll(ctx, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Len(t, products, 8)

	users, err := repos.Users.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.NotNil(t, users)
}
