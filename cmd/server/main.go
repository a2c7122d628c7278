package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"dicom-ingest-service/internal/adapters"
	"dicom-ingest-service/internal/api/handlers"
	"dicom-ingest-service/internal/config"
	"dicom-ingest-service/internal/domain/entities"
	"dicom-ingest-service/internal/domain/repositories"
	"dicom-ingest-service/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("could not load configuration: %v", err)
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("could not initialize logger: %v", err)
	}
	defer zapLogger.Sync()
	logger := zapLogger.Sugar()

	// TranslateError makes unique-constraint violations surface as
	// gorm.ErrDuplicatedKey, which the repository depends on.
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatalw("could not connect to database", "error", err)
	}
	if err := db.AutoMigrate(&entities.DicomFile{}); err != nil {
		logger.Fatalw("could not migrate schema", "error", err)
	}

	fileStore, err := adapters.NewLocalFileStore(cfg.UploadDir, logger)
	if err != nil {
		logger.Fatalw("could not prepare upload directory", "dir", cfg.UploadDir, "error", err)
	}
	fetcher := adapters.NewHTTPFetcher(cfg.FetchTimeout, logger)

	fileRepo := repositories.NewDicomFileRepository(db, logger)
	ingestService := services.NewIngestService(fileRepo, fileStore, fetcher, logger)
	metadataService := services.NewMetadataService(fileRepo, logger)

	app := fiber.New(fiber.Config{
		BodyLimit: 64 * 1024 * 1024, // DICOM files are large
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	handlers.RegisterIngestRoutes(app, handlers.NewIngestHandler(ingestService, logger))
	handlers.RegisterMetadataRoutes(app, handlers.NewMetadataHandler(metadataService, logger))

	logger.Infow("server starting", "addr", cfg.ListenAddr, "upload_dir", cfg.UploadDir)
	if err := app.Listen(cfg.ListenAddr); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}
