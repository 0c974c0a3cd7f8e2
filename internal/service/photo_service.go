package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/yashalsharma/kirayadoor-backend/internal/domain"
	"github.com/yashalsharma/kirayadoor-backend/internal/repository/storage"
)

const (
	MaxPhotoSize   = 5 * 1024 * 1024 // 5MB
	MinPhotoWidth  = 50
	MinPhotoHeight = 50
	ThumbnailWidth = 200
	DisplayWidth   = 800
	JPEGQuality    = 85
	PhotoURLExpiry = 15 * time.Minute
)

var (
	ErrPhotoTooLarge             = errors.New("file too large. Maximum size is 5MB")
	ErrInvalidPhotoFormat        = errors.New("invalid format. Supported: JPEG, PNG")
	ErrPhotoTooSmall             = errors.New("image too small. Minimum 50x50 pixels")
	ErrInvalidPhotoData          = errors.New("invalid image data")
	ErrPhotoStorageNotConfigured = errors.New("photo storage not configured")
)

// allowedPhotoExtensions maps extensions to content types
var allowedPhotoExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// PhotoURLs contains presigned URLs for the stored variants
type PhotoURLs struct {
	ThumbnailURL string `json:"thumbnailUrl"`
	DisplayURL   string `json:"displayUrl"`
}

// PhotoService processes and stores property photos
type PhotoService struct {
	storage      storage.PhotoRepository
	propertyRepo domain.PropertyRepository
}

// NewPhotoService creates a new PhotoService
func NewPhotoService(storage storage.PhotoRepository, propertyRepo domain.PropertyRepository) *PhotoService {
	return &PhotoService{
		storage:      storage,
		propertyRepo: propertyRepo,
	}
}

// IsEnabled indicates whether uploads are supported (storage configured)
func (s *PhotoService) IsEnabled() bool {
	return s != nil && s.storage != nil
}

// validateAndDecode validates the photo and returns the decoded image
func (s *PhotoService) validateAndDecode(data []byte, filename string) (image.Image, error) {
	if len(data) > MaxPhotoSize {
		return nil, ErrPhotoTooLarge
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedPhotoExtensions[ext]; !ok {
		return nil, ErrInvalidPhotoFormat
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrInvalidPhotoData
	}

	bounds := img.Bounds()
	if bounds.Dx() < MinPhotoWidth || bounds.Dy() < MinPhotoHeight {
		return nil, ErrPhotoTooSmall
	}

	return img, nil
}

// UploadPropertyPhoto validates, resizes and stores a photo for the
// property and records its base object path on the property row.
func (s *PhotoService) UploadPropertyPhoto(ctx context.Context, ownerID, propertyID int32, data []byte, filename string) (*PhotoURLs, error) {
	if !s.IsEnabled() {
		return nil, ErrPhotoStorageNotConfigured
	}

	if _, err := s.propertyRepo.GetByID(ownerID, propertyID); err != nil {
		return nil, err
	}

	img, err := s.validateAndDecode(data, filename)
	if err != nil {
		return nil, err
	}

	photoID := uuid.New().String()
	basePath := fmt.Sprintf("%d/properties/%d/%s", ownerID, propertyID, photoID)

	variants := []struct {
		name     string
		maxWidth int
	}{
		{"thumb", ThumbnailWidth},
		{"display", DisplayWidth},
	}

	for _, variant := range variants {
		processed := img
		if img.Bounds().Dx() > variant.maxWidth {
			// Resize maintaining aspect ratio
			processed = imaging.Resize(img, variant.maxWidth, 0, imaging.Lanczos)
		}

		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, processed, &jpeg.Options{Quality: JPEGQuality}); err != nil {
			return nil, fmt.Errorf("failed to encode photo: %w", err)
		}

		objectPath := fmt.Sprintf("%s_%s.jpg", basePath, variant.name)
		if _, err := s.storage.Upload(ctx, objectPath, bytes.NewReader(buf.Bytes()), "image/jpeg", int64(buf.Len())); err != nil {
			return nil, fmt.Errorf("failed to upload %s variant: %w", variant.name, err)
		}
	}

	if err := s.propertyRepo.SetPhotoPath(ownerID, propertyID, &basePath); err != nil {
		return nil, err
	}

	return s.presignVariants(ctx, basePath)
}

// GetPropertyPhoto returns presigned URLs for the property's photo, or
// nil when no photo has been uploaded.
func (s *PhotoService) GetPropertyPhoto(ctx context.Context, ownerID, propertyID int32) (*PhotoURLs, error) {
	if !s.IsEnabled() {
		return nil, ErrPhotoStorageNotConfigured
	}

	property, err := s.propertyRepo.GetByID(ownerID, propertyID)
	if err != nil {
		return nil, err
	}
	if property.PhotoPath == nil {
		return nil, nil
	}

	return s.presignVariants(ctx, *property.PhotoPath)
}

// DeletePropertyPhoto removes the stored variants and clears the path
func (s *PhotoService) DeletePropertyPhoto(ctx context.Context, ownerID, propertyID int32) error {
	if !s.IsEnabled() {
		return ErrPhotoStorageNotConfigured
	}

	property, err := s.propertyRepo.GetByID(ownerID, propertyID)
	if err != nil {
		return err
	}
	if property.PhotoPath == nil {
		return nil
	}

	for _, variant := range []string{"thumb", "display"} {
		// Best effort; a missing variant is not fatal
		_ = s.storage.Delete(ctx, fmt.Sprintf("%s_%s.jpg", *property.PhotoPath, variant))
	}

	return s.propertyRepo.SetPhotoPath(ownerID, propertyID, nil)
}

func (s *PhotoService) presignVariants(ctx context.Context, basePath string) (*PhotoURLs, error) {
	thumbURL, err := s.storage.GeneratePresignedURL(ctx, basePath+"_thumb.jpg", PhotoURLExpiry)
	if err != nil {
		return nil, err
	}
	displayURL, err := s.storage.GeneratePresignedURL(ctx, basePath+"_display.jpg", PhotoURLExpiry)
	if err != nil {
		return nil, err
	}
	return &PhotoURLs{ThumbnailURL: thumbURL, DisplayURL: displayURL}, nil
}
