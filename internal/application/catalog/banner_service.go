package catalog

import (
	"context"

	"github.com/nexashop/backend/internal/domain/catalog"
	"go.uber.org/zap"
)

// BannerService handles promotional banner listing and admin CRUD
type BannerService struct {
	bannerRepo catalog.BannerRepository
	logger     *zap.Logger
}

// NewBannerService creates a new BannerService
func NewBannerService(bannerRepo catalog.BannerRepository, logger *zap.Logger) *BannerService {
	return &BannerService{
		bannerRepo: bannerRepo,
		logger:     logger,
	}
}

// ListActive returns active banners ordered for display
func (s *BannerService) ListActive(ctx context.Context) ([]BannerResponse, error) {
	banners, err := s.bannerRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	return ToBannerResponses(banners), nil
}

// ListAll returns every banner, active or not
func (s *BannerService) ListAll(ctx context.Context) ([]BannerResponse, error) {
	banners, err := s.bannerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToBannerResponses(banners), nil
}

// Create adds a banner; new banners start active unless the request
// says otherwise.
func (s *BannerService) Create(ctx context.Context, req CreateBannerRequest) (*BannerResponse, error) {
	banner, err := catalog.NewBanner(req.Title, req.Subtitle, req.ImageURL, req.ButtonText, req.ButtonLink, req.SortOrder)
	if err != nil {
		return nil, err
	}
	if req.IsActive != nil && !*req.IsActive {
		banner.Deactivate()
	}

	if err := s.bannerRepo.Insert(ctx, banner); err != nil {
		return nil, err
	}

	s.logger.Info("Banner created", zap.Int64("banner_id", banner.ID))
	return ToBannerResponse(banner), nil
}

// Update applies a partial update to a banner
func (s *BannerService) Update(ctx context.Context, id int64, req UpdateBannerRequest) (*BannerResponse, error) {
	banner, err := s.bannerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	title := banner.Title
	if req.Title != nil {
		title = *req.Title
	}
	subtitle := banner.Subtitle
	if req.Subtitle != nil {
		subtitle = *req.Subtitle
	}
	imageURL := banner.ImageURL
	if req.ImageURL != nil {
		imageURL = *req.ImageURL
	}
	buttonText := banner.ButtonText
	if req.ButtonText != nil {
		buttonText = *req.ButtonText
	}
	buttonLink := banner.ButtonLink
	if req.ButtonLink != nil {
		buttonLink = *req.ButtonLink
	}
	sortOrder := banner.SortOrder
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	}
	isActive := banner.IsActive
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	if err := banner.Update(title, subtitle, imageURL, buttonText, buttonLink, sortOrder, isActive); err != nil {
		return nil, err
	}
	if err := s.bannerRepo.Update(ctx, banner); err != nil {
		return nil, err
	}

	return ToBannerResponse(banner), nil
}

// Delete removes a banner
func (s *BannerService) Delete(ctx context.Context, id int64) error {
	if err := s.bannerRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Banner deleted", zap.Int64("banner_id", id))
	return nil
}
