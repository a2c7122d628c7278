package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"dicom-ingest-service/internal/services"
)

type MetadataHandler struct {
	metadataService services.MetadataServiceContract
	logger          *zap.SugaredLogger
}

func NewMetadataHandler(ms services.MetadataServiceContract, logger *zap.SugaredLogger) *MetadataHandler {
	return &MetadataHandler{
		metadataService: ms,
		logger:          logger,
	}
}

// GetMetadata returns the short metadata view for one ingested file.
func (h *MetadataHandler) GetMetadata(c *fiber.Ctx) error {
	meta, err := h.metadataService.GetMetadata(c.Context(), c.Params("filename"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(meta)
}

// GetDetail returns every stored field for one ingested file.
func (h *MetadataHandler) GetDetail(c *fiber.Ctx) error {
	detail, err := h.metadataService.GetDetail(c.Context(), c.Params("filename"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(detail)
}

// ListFiles returns summaries of every ingested file.
func (h *MetadataHandler) ListFiles(c *fiber.Ctx) error {
	summaries, err := h.metadataService.ListFiles(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summaries)
}

// DeleteAll wipes every record and restarts the ID sequence.
func (h *MetadataHandler) DeleteAll(c *fiber.Ctx) error {
	if err := h.metadataService.ResetAll(c.Context()); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "All records deleted and ID sequence reset to 1"})
}

func RegisterMetadataRoutes(app *fiber.App, h *MetadataHandler) {
	app.Get("/metadata/:filename", h.GetMetadata)
	app.Get("/files", h.ListFiles)
	app.Get("/files/:filename", h.GetDetail)
	app.Delete("/delete-all", h.DeleteAll)
}
