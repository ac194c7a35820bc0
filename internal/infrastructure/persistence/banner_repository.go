package persistence

import (
	"context"
	"errors"

	"github.com/nexashop/backend/internal/domain/catalog"
	"github.com/nexashop/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormBannerRepository implements catalog.BannerRepository using GORM
type GormBannerRepository struct {
	db *gorm.DB
}

// NewGormBannerRepository creates a new GormBannerRepository
func NewGormBannerRepository(db *gorm.DB) *GormBannerRepository {
	return &GormBannerRepository{db: db}
}

// FindByID finds a banner by its ID
func (r *GormBannerRepository) FindByID(ctx context.Context, id int64) (*catalog.Banner, error) {
	var banner catalog.Banner
	if err := r.db.WithContext(ctx).First(&banner, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &banner, nil
}

// FindAll finds all banners in insertion order
func (r *GormBannerRepository) FindAll(ctx context.Context) ([]catalog.Banner, error) {
	var banners []catalog.Banner
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

// FindActive finds active banners sorted by display order
func (r *GormBannerRepository) FindActive(ctx context.Context) ([]catalog.Banner, error) {
	var banners []catalog.Banner
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, id ASC").
		Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

// Insert stores a new banner
func (r *GormBannerRepository) Insert(ctx context.Context, banner *catalog.Banner) error {
	return r.db.WithContext(ctx).Create(banner).Error
}

// Update saves changes to an existing banner
func (r *GormBannerRepository) Update(ctx context.Context, banner *catalog.Banner) error {
	result := r.db.WithContext(ctx).Model(banner).Select("*").Omit("id", "created_at").Updates(banner)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a banner
func (r *GormBannerRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Banner{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ catalog.BannerRepository = (*GormBannerRepository)(nil)
