package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/yashalsharma/kirayadoor-backend/internal/domain"
	"github.com/yashalsharma/kirayadoor-backend/internal/middleware"
	"github.com/yashalsharma/kirayadoor-backend/internal/service"
)

// PhotoHandler handles property photo HTTP requests
type PhotoHandler struct {
	photoService *service.PhotoService
}

// NewPhotoHandler creates a new PhotoHandler
func NewPhotoHandler(photoService *service.PhotoService) *PhotoHandler {
	return &PhotoHandler{photoService: photoService}
}

// UploadPhoto handles POST /api/v1/properties/:id/photo
func (h *PhotoHandler) UploadPhoto(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	propertyID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid property ID", nil)
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "photo", Message: "A photo file is required"},
		})
	}

	src, err := file.Open()
	if err != nil {
		log.Error().Err(err).Msg("Failed to open uploaded file")
		return NewInternalError(c, "Failed to read uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, service.MaxPhotoSize+1))
	if err != nil {
		log.Error().Err(err).Msg("Failed to read uploaded file")
		return NewInternalError(c, "Failed to read uploaded file")
	}

	urls, err := h.photoService.UploadPropertyPhoto(c.Request().Context(), ownerID, int32(propertyID), data, file.Filename)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPropertyNotFound), errors.Is(err, domain.ErrNotFound):
			return NewNotFoundError(c, "Property not found")
		case errors.Is(err, service.ErrPhotoTooLarge),
			errors.Is(err, service.ErrInvalidPhotoFormat),
			errors.Is(err, service.ErrPhotoTooSmall),
			errors.Is(err, service.ErrInvalidPhotoData):
			return NewValidationError(c, err.Error(), []ValidationError{
				{Field: "photo", Message: err.Error()},
			})
		case errors.Is(err, service.ErrPhotoStorageNotConfigured):
			return NewInternalError(c, "Photo storage is not configured")
		}
		log.Error().Err(err).Int32("owner_id", ownerID).Int("property_id", propertyID).Msg("Failed to upload photo")
		return NewInternalError(c, "Failed to upload photo")
	}

	log.Info().Int32("owner_id", ownerID).Int("property_id", propertyID).Msg("Property photo uploaded")
	return c.JSON(http.StatusCreated, urls)
}

// GetPhoto handles GET /api/v1/properties/:id/photo
func (h *PhotoHandler) GetPhoto(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	propertyID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid property ID", nil)
	}

	urls, err := h.photoService.GetPropertyPhoto(c.Request().Context(), ownerID, int32(propertyID))
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) || errors.Is(err, domain.ErrNotFound) {
			return NewNotFoundError(c, "Property not found")
		}
		if errors.Is(err, service.ErrPhotoStorageNotConfigured) {
			return NewInternalError(c, "Photo storage is not configured")
		}
		log.Error().Err(err).Int32("owner_id", ownerID).Int("property_id", propertyID).Msg("Failed to get photo")
		return NewInternalError(c, "Failed to get photo")
	}
	if urls == nil {
		return NewNotFoundError(c, "Property has no photo")
	}

	return c.JSON(http.StatusOK, urls)
}

// DeletePhoto handles DELETE /api/v1/properties/:id/photo
func (h *PhotoHandler) DeletePhoto(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	propertyID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid property ID", nil)
	}

	if err := h.photoService.DeletePropertyPhoto(c.Request().Context(), ownerID, int32(propertyID)); err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) || errors.Is(err, domain.ErrNotFound) {
			return NewNotFoundError(c, "Property not found")
		}
		if errors.Is(err, service.ErrPhotoStorageNotConfigured) {
			return NewInternalError(c, "Photo storage is not configured")
		}
		log.Error().Err(err).Int32("owner_id", ownerID).Int("property_id", propertyID).Msg("Failed to delete photo")
		return NewInternalError(c, "Failed to delete photo")
	}

	log.Info().Int32("owner_id", ownerID).Int("property_id", propertyID).Msg("Property photo deleted")
	return c.NoContent(http.StatusNoContent)
}
