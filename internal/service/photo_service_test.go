package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/jpeg"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/yashalsharma/kirayadoor-backend/internal/domain"
	"github.com/yashalsharma/kirayadoor-backend/internal/testutil"
)

// fakePhotoStorage records operations instead of talking to object storage
type fakePhotoStorage struct {
	uploads map[string][]byte
	deleted []string
}

func newFakePhotoStorage() *fakePhotoStorage {
	return &fakePhotoStorage{uploads: make(map[string][]byte)}
}

func (f *fakePhotoStorage) Upload(ctx context.Context, objectPath string, data io.Reader, contentType string, size int64) (string, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return "", err
	}
	f.uploads[objectPath] = buf
	return objectPath, nil
}

func (f *fakePhotoStorage) Delete(ctx context.Context, objectPath string) error {
	f.deleted = append(f.deleted, objectPath)
	delete(f.uploads, objectPath)
	return nil
}

func (f *fakePhotoStorage) GeneratePresignedURL(ctx context.Context, objectPath string, expiry time.Duration) (string, error) {
	return "https://storage.example.com/" + objectPath + "?signed", nil
}

func newPhotoFixture() (*PhotoService, *fakePhotoStorage, *testutil.MockPropertyRepository) {
	store := newFakePhotoStorage()
	propertyRepo := testutil.NewMockPropertyRepository()
	propertyRepo.AddProperty(&domain.Property{ID: 1, OwnerID: 1, Name: "Lakeview"})
	return NewPhotoService(store, propertyRepo), store, propertyRepo
}

// testJPEG encodes a blank image of the given dimensions
func testJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height)), nil); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestUploadPropertyPhoto(t *testing.T) {
	photoService, store, propertyRepo := newPhotoFixture()

	urls, err := photoService.UploadPropertyPhoto(context.Background(), 1, 1, testJPEG(t, 1000, 700), "house.jpg")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(store.uploads) != 2 {
		t.Fatalf("Expected 2 stored variants, got %d", len(store.uploads))
	}
	for path := range store.uploads {
		if !strings.HasPrefix(path, "1/properties/1/") {
			t.Errorf("Unexpected object path %q", path)
		}
		if !strings.HasSuffix(path, "_thumb.jpg") && !strings.HasSuffix(path, "_display.jpg") {
			t.Errorf("Unexpected variant suffix in %q", path)
		}
	}

	if urls == nil || urls.ThumbnailURL == "" || urls.DisplayURL == "" {
		t.Errorf("Expected presigned URLs, got %+v", urls)
	}

	property, _ := propertyRepo.GetByID(1, 1)
	if property.PhotoPath == nil {
		t.Error("Expected the photo path recorded on the property")
	}
}

func TestUploadPropertyPhoto_Validation(t *testing.T) {
	photoService, _, _ := newPhotoFixture()
	ctx := context.Background()

	_, err := photoService.UploadPropertyPhoto(ctx, 1, 1, make([]byte, MaxPhotoSize+1), "big.jpg")
	if !errors.Is(err, ErrPhotoTooLarge) {
		t.Errorf("Expected ErrPhotoTooLarge, got %v", err)
	}

	_, err = photoService.UploadPropertyPhoto(ctx, 1, 1, testJPEG(t, 100, 100), "notes.pdf")
	if !errors.Is(err, ErrInvalidPhotoFormat) {
		t.Errorf("Expected ErrInvalidPhotoFormat, got %v", err)
	}

	_, err = photoService.UploadPropertyPhoto(ctx, 1, 1, []byte("not an image"), "house.jpg")
	if !errors.Is(err, ErrInvalidPhotoData) {
		t.Errorf("Expected ErrInvalidPhotoData, got %v", err)
	}

	_, err = photoService.UploadPropertyPhoto(ctx, 1, 1, testJPEG(t, 20, 20), "tiny.jpg")
	if !errors.Is(err, ErrPhotoTooSmall) {
		t.Errorf("Expected ErrPhotoTooSmall, got %v", err)
	}
}

func TestUploadPropertyPhoto_PropertyNotFound(t *testing.T) {
	photoService, _, _ := newPhotoFixture()

	_, err := photoService.UploadPropertyPhoto(context.Background(), 1, 99, testJPEG(t, 100, 100), "house.jpg")
	if !errors.Is(err, domain.ErrPropertyNotFound) {
		t.Errorf("Expected ErrPropertyNotFound, got %v", err)
	}
}

func TestGetPropertyPhoto_NoPhoto(t *testing.T) {
	photoService, _, _ := newPhotoFixture()

	urls, err := photoService.GetPropertyPhoto(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if urls != nil {
		t.Errorf("Expected nil URLs for a property without a photo, got %+v", urls)
	}
}

func TestDeletePropertyPhoto(t *testing.T) {
	photoService, store, propertyRepo := newPhotoFixture()
	ctx := context.Background()

	if _, err := photoService.UploadPropertyPhoto(ctx, 1, 1, testJPEG(t, 1000, 700), "house.jpg"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := photoService.DeletePropertyPhoto(ctx, 1, 1); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(store.uploads) != 0 {
		t.Errorf("Expected all variants deleted, %d remain", len(store.uploads))
	}
	property, _ := propertyRepo.GetByID(1, 1)
	if property.PhotoPath != nil {
		t.Error("Expected the photo path cleared")
	}
}

func TestPhotoService_Disabled(t *testing.T) {
	propertyRepo := testutil.NewMockPropertyRepository()
	photoService := NewPhotoService(nil, propertyRepo)

	if photoService.IsEnabled() {
		t.Error("Expected IsEnabled false without storage")
	}
	if _, err := photoService.UploadPropertyPhoto(context.Background(), 1, 1, nil, "x.jpg"); !errors.Is(err, ErrPhotoStorageNotConfigured) {
		t.Errorf("Expected ErrPhotoStorageNotConfigured, got %v", err)
	}
}
