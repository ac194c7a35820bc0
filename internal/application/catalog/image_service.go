package catalog

import (
	"context"

	"github.com/nexashop/backend/internal/domain/catalog"
	"github.com/nexashop/backend/internal/domain/shared"
	"github.com/nexashop/backend/internal/infrastructure/storage"
	"go.uber.org/zap"
)

// 5 MiB upload ceiling, matching the HTTP body limit for image routes.
const maxImageSize = 5 << 20

// ImageService uploads product images to object storage and records
// the resulting public URL on the product.
type ImageService struct {
	productRepo catalog.ProductRepository
	store       storage.ImageStorage
	logger      *zap.Logger
}

// NewImageService creates a new ImageService
func NewImageService(productRepo catalog.ProductRepository, store storage.ImageStorage, logger *zap.Logger) *ImageService {
	return &ImageService{
		productRepo: productRepo,
		store:       store,
		logger:      logger,
	}
}

// UploadProductImage stores the image bytes and points the product's
// imageUrl at them.
func (s *ImageService) UploadProductImage(ctx context.Context, productID int64, filename, contentType string, data []byte) (*UploadImageResponse, error) {
	if len(data) == 0 {
		return nil, shared.NewDomainError("INVALID_IMAGE", "Image data is empty")
	}
	if len(data) > maxImageSize {
		return nil, shared.NewDomainError("INVALID_IMAGE", "Image exceeds the maximum allowed size")
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	key, err := storage.ImageKey("products", filename)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_IMAGE", "Unsupported image file type")
	}

	url, err := s.store.Upload(ctx, key, data, contentType)
	if err != nil {
		return nil, err
	}

	product.SetImageURL(url)
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("Product image uploaded",
		zap.Int64("product_id", productID),
		zap.String("key", key))

	return &UploadImageResponse{ImageURL: url}, nil
}
