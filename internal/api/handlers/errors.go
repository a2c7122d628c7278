package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"dicom-ingest-service/internal/apperrors"
)

// respondError maps the ingestion error taxonomy to HTTP status codes. The
// transport layer alone decides the external status encoding.
func respondError(c *fiber.Ctx, err error) error {
	return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
}

func statusForError(err error) int {
	var extractionErr *apperrors.ExtractionError
	var fetchErr *apperrors.FetchError

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicateFile):
		return fiber.StatusConflict
	case errors.Is(err, apperrors.ErrInvalidFormat),
		errors.Is(err, apperrors.ErrUnsupportedExtension),
		errors.As(err, &extractionErr),
		errors.As(err, &fetchErr):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
