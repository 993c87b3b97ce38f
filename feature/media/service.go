package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"product-catalog/core/storage"
	"product-catalog/feature/catalog/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrProductNotFound is returned when the product the image belongs to does not exist.
	ErrProductNotFound = errors.New("product not found")
	// ErrImageNotFound is returned when the product has no stored image.
	ErrImageNotFound = errors.New("image not found")
)

// Service stores and serves product images in object storage. Images are
// advisory data: deleting a product does not reach into storage, orphaned
// objects are tolerated the same way unreferenced tag rows are.
type Service struct {
	client storage.Client
	bucket string
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new media service.
func NewService(client storage.Client, bucket string, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{client: client, bucket: bucket, db: db, logger: logger}
}

func objectName(productID uint) string {
	return fmt.Sprintf("products/%d/image", productID)
}

// UploadImage stores the image bytes for a product, replacing any previous one.
func (s *Service) UploadImage(ctx context.Context, productID uint, data []byte, contentType string) error {
	if err := s.productExists(ctx, productID); err != nil {
		return err
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = s.client.PutObject(ctx, s.bucket, objectName(productID),
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("failed to upload image: %w", err)
	}

	s.logger.Info("Product image stored",
		zap.Uint("product_id", productID),
		zap.Int("size", len(data)))
	return nil
}

// GetImage returns a reader over the stored image and its content type.
func (s *Service) GetImage(ctx context.Context, productID uint) (io.ReadCloser, string, error) {
	if err := s.productExists(ctx, productID); err != nil {
		return nil, "", err
	}

	info, err := s.client.StatObject(ctx, s.bucket, objectName(productID), minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, "", ErrImageNotFound
		}
		return nil, "", fmt.Errorf("failed to stat image: %w", err)
	}

	reader, err := s.client.GetObject(ctx, s.bucket, objectName(productID), minio.GetObjectOptions{})
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch image: %w", err)
	}

	return reader, info.ContentType, nil
}

// DeleteImage removes the stored image for a product. Deleting an image that
// was never uploaded is not an error.
func (s *Service) DeleteImage(ctx context.Context, productID uint) error {
	if err := s.productExists(ctx, productID); err != nil {
		return err
	}

	if err := s.client.RemoveObject(ctx, s.bucket, objectName(productID), minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove image: %w", err)
	}

	s.logger.Info("Product image removed", zap.Uint("product_id", productID))
	return nil
}

func (s *Service) productExists(ctx context.Context, productID uint) error {
	var product models.Product
	err := s.db.WithContext(ctx).Select("id").First(&product, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrProductNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to load product %d: %w", productID, err)
	}
	return nil
}
