package services

import (
	"context"
	"fmt"
	"io"

	"portfolioapi/config"
	"portfolioapi/models"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ImageService fronts the external image host. Uploads return both the stable
// URL and the host-issued public id; callers persist both.
type ImageService interface {
	Upload(ctx context.Context, file io.Reader) (*models.UploadResult, error)
	Delete(ctx context.Context, publicID string) error
}

type cloudinaryService struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewImageService(cfg config.CloudinaryConfig) (ImageService, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}

	return &cloudinaryService{
		cld:    cld,
		folder: cfg.Folder,
	}, nil
}

func (s *cloudinaryService) Upload(ctx context.Context, file io.Reader) (*models.UploadResult, error) {
	resp, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: s.folder,
	})
	if err != nil {
		return nil, fmt.Errorf("image upload failed: %w", err)
	}
	if resp.Error.Message != "" {
		return nil, fmt.Errorf("image upload rejected: %s", resp.Error.Message)
	}

	return &models.UploadResult{
		URL:      resp.SecureURL,
		PublicID: resp.PublicID,
	}, nil
}

func (s *cloudinaryService) Delete(ctx context.Context, publicID string) error {
	resp, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return fmt.Errorf("image deletion failed: %w", err)
	}

	// "not found" counts as deleted; the admin may retry after a partial
	// failure.
	if resp.Result != "ok" && resp.Result != "not found" {
		return fmt.Errorf("image deletion failed: %s", resp.Result)
	}

	return nil
}
