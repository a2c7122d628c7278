package handlers

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"dicom-ingest-service/internal/domain/dtos"
	"dicom-ingest-service/internal/services"
)

type IngestHandler struct {
	ingestService services.IngestServiceContract
	logger        *zap.SugaredLogger
}

func NewIngestHandler(is services.IngestServiceContract, logger *zap.SugaredLogger) *IngestHandler {
	return &IngestHandler{
		ingestService: is,
		logger:        logger,
	}
}

// Upload ingests a DICOM file sent as the multipart form field "file".
func (h *IngestHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.logger.Warnw("upload request without file field", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "multipart field 'file' is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "could not open uploaded file: " + err.Error(),
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not read uploaded file: " + err.Error(),
		})
	}

	resp, err := h.ingestService.IngestUpload(c.Context(), fileHeader.Filename, data)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// UploadFromURL ingests a DICOM file downloaded from a caller-supplied URL.
func (h *IngestHandler) UploadFromURL(c *fiber.Ctx) error {
	var req dtos.IngestFromURLRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Warnw("could not parse upload-from-url body", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "could not parse request body: " + err.Error(),
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	resp, err := h.ingestService.IngestFromURL(c.Context(), req.URL)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func RegisterIngestRoutes(app *fiber.App, h *IngestHandler) {
	app.Post("/upload", h.Upload)
	app.Post("/upload-from-url", h.UploadFromURL)
}
