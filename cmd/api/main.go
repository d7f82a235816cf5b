package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/snapfest/snapfest-backend/internal/config"
	"github.com/snapfest/snapfest-backend/internal/handler"
	"github.com/snapfest/snapfest-backend/internal/middleware"
	"github.com/snapfest/snapfest-backend/internal/repository"
	"github.com/snapfest/snapfest-backend/internal/service"
	"github.com/snapfest/snapfest-backend/pkg/qrcode"
	"github.com/snapfest/snapfest-backend/pkg/storage"
	"github.com/snapfest/snapfest-backend/pkg/utils"
)

func main() {
	// .env is optional outside development
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer zapLogger.Sync()

	// Repositories
	locks := repository.NewEventLocks()
	eventRepo, err := repository.NewEventRepository(cfg.DataDir, locks)
	if err != nil {
		zapLogger.Fatal("failed to initialize event repository", zap.Error(err))
	}
	metadataRepo := repository.NewMetadataRepository(cfg.DataDir, locks)

	// Blob storage
	blobs, err := newBlobStorage(cfg)
	if err != nil {
		zapLogger.Fatal("failed to initialize blob storage", zap.Error(err))
	}

	// Services
	accessService := service.NewAccessService(eventRepo, cfg.OwnerToken)
	eventService := service.NewEventService(eventRepo, blobs, zapLogger)
	galleryService := service.NewGalleryService(eventRepo, metadataRepo, blobs, accessService, zapLogger)
	qrService := qrcode.NewQRService(cfg.PublicURL)

	validator := utils.NewValidator()

	// Handlers
	ownerHandler := handler.NewOwnerHandler(eventService, qrService, validator)
	galleryHandler := handler.NewGalleryHandler(galleryService, accessService, validator)

	// Router
	app := fiber.New(fiber.Config{
		BodyLimit: 32 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, X-Owner-Token",
		AllowMethods: "GET, POST, DELETE",
	}))
	app.Use(logger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	api := app.Group("/api")

	// Owner portal
	owner := api.Group("/owner", middleware.OwnerAuth(accessService))
	owner.Post("/events", ownerHandler.CreateEvent)
	owner.Get("/events", ownerHandler.ListEvents)
	owner.Delete("/events/:eventId", ownerHandler.DeleteEvent)
	owner.Get("/events/:eventId/qr", ownerHandler.EventQR)

	// Guest routes
	events := api.Group("/events")
	events.Post("/:eventId/verify", galleryHandler.VerifyCode)
	events.Post("/:eventId/uploads", galleryHandler.UploadImage)
	events.Get("/:eventId/images", galleryHandler.ListImages)
	events.Get("/:eventId/files/:storedName", galleryHandler.GetFile)
	events.Delete("/:eventId/uploads/:storedName", galleryHandler.DeleteUpload)

	zapLogger.Info("server starting",
		zap.String("port", cfg.Port),
		zap.String("storage_driver", cfg.StorageDriver),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}

func newBlobStorage(cfg *config.Config) (storage.BlobStorage, error) {
	switch cfg.StorageDriver {
	case "s3":
		return storage.NewS3Storage(cfg.S3)
	case "memory":
		return storage.NewMemoryStorage(), nil
	default:
		return storage.NewFSStorage(cfg.DataDir)
	}
}
