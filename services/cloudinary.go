package services

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/suraj-naithani/ecart-api/models"
)

// ImageStorage is the external image host contract: upload raw bytes and get
// back {public_id, url}, delete by public_id. Failures propagate as-is; a
// partial batch that fails midway is not compensated.
type ImageStorage interface {
	Upload(ctx context.Context, file io.Reader) (models.ProductImage, error)
	Delete(ctx context.Context, publicID string) error
}

type cloudinaryStorage struct {
	client *cloudinary.Cloudinary
}

// NewCloudinaryStorage reads CLOUDINARY_URL from the environment.
func NewCloudinaryStorage() (ImageStorage, error) {
	client, err := cloudinary.New()
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &cloudinaryStorage{client: client}, nil
}

func (s *cloudinaryStorage) Upload(ctx context.Context, file io.Reader) (models.ProductImage, error) {
	resp, err := s.client.Upload.Upload(ctx, file, uploader.UploadParams{Folder: "products"})
	if err != nil {
		return models.ProductImage{}, fmt.Errorf("cloudinary upload: %w", err)
	}
	return models.ProductImage{PublicID: resp.PublicID, URL: resp.SecureURL}, nil
}

func (s *cloudinaryStorage) Delete(ctx context.Context, publicID string) error {
	_, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy %s: %w", publicID, err)
	}
	return nil
}
