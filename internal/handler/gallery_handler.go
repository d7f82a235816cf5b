package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/snapfest/snapfest-backend/internal/models"
	"github.com/snapfest/snapfest-backend/internal/service"
	"github.com/snapfest/snapfest-backend/pkg/utils"
)

// GalleryHandler serves the guest-facing flows: code verification,
// anonymous uploads, gallery listing, blob download and admin deletes.
type GalleryHandler struct {
	galleryService *service.GalleryService
	accessService  *service.AccessService
	validator      *utils.Validator
}

func NewGalleryHandler(galleryService *service.GalleryService, accessService *service.AccessService, validator *utils.Validator) *GalleryHandler {
	return &GalleryHandler{
		galleryService: galleryService,
		accessService:  accessService,
		validator:      validator,
	}
}

type uploadedImage struct {
	MimeType string `validate:"required,supported_image"`
}

func (h *GalleryHandler) VerifyCode(c *fiber.Ctx) error {
	eventID := c.Params("eventId")

	var req models.VerifyCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("missing code"))
	}

	role, err := h.accessService.VerifyCode(eventID, req.Code)
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}
	return c.JSON(models.SuccessResponse(models.VerifyCodeResponse{Role: role}, "Code accepted"))
}

func (h *GalleryHandler) UploadImage(c *fiber.Ctx) error {
	eventID := c.Params("eventId")

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("no file supplied"))
	}
	if err := h.validator.Struct(uploadedImage{MimeType: fileHeader.Header.Get("Content-Type")}); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("unsupported image type"))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("failed to read upload"))
	}
	defer src.Close()

	record, err := h.galleryService.Upload(c.Context(), eventID, c.FormValue("uploader"), fileHeader.Filename, src)
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}
	return c.JSON(models.SuccessResponse(record, "Image uploaded successfully"))
}

func (h *GalleryHandler) ListImages(c *fiber.Ctx) error {
	eventID := c.Params("eventId")

	items, err := h.galleryService.ListGallery(c.Context(), eventID)
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}
	return c.JSON(models.SuccessResponse(items, "Gallery retrieved successfully"))
}

func (h *GalleryHandler) GetFile(c *fiber.Ctx) error {
	eventID := c.Params("eventId")
	storedName := c.Params("storedName")

	blob, err := h.galleryService.FetchBlob(c.Context(), eventID, storedName)
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}
	return c.SendStream(blob)
}

func (h *GalleryHandler) DeleteUpload(c *fiber.Ctx) error {
	eventID := c.Params("eventId")
	storedName := c.Params("storedName")

	var req models.DeleteUploadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	if err := h.galleryService.DeleteUpload(c.Context(), eventID, storedName, req.AdminCode); err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}
	return c.JSON(models.SuccessResponse(nil, "Image deleted successfully"))
}
