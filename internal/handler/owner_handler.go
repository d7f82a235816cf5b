package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/snapfest/snapfest-backend/internal/models"
	"github.com/snapfest/snapfest-backend/internal/service"
	"github.com/snapfest/snapfest-backend/pkg/qrcode"
	"github.com/snapfest/snapfest-backend/pkg/utils"
)

// OwnerHandler serves the owner portal: event creation, listing with
// codes, deletion and printable QR codes. All routes sit behind the
// owner token middleware.
type OwnerHandler struct {
	eventService *service.EventService
	qrService    *qrcode.QRService
	validator    *utils.Validator
}

func NewOwnerHandler(eventService *service.EventService, qrService *qrcode.QRService, validator *utils.Validator) *OwnerHandler {
	return &OwnerHandler{
		eventService: eventService,
		qrService:    qrService,
		validator:    validator,
	}
}

func (h *OwnerHandler) CreateEvent(c *fiber.Ctx) error {
	var req models.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	event, err := h.eventService.Create(req.Alias)
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}
	return c.JSON(models.SuccessResponse(event, "Event created successfully"))
}

func (h *OwnerHandler) ListEvents(c *fiber.Ctx) error {
	events, err := h.eventService.List()
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}
	return c.JSON(models.SuccessResponse(events, "Events retrieved successfully"))
}

func (h *OwnerHandler) DeleteEvent(c *fiber.Ctx) error {
	eventID := c.Params("eventId")

	if err := h.eventService.Delete(c.Context(), eventID); err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}
	return c.JSON(models.SuccessResponse(nil, "Event successfully deleted"))
}

func (h *OwnerHandler) EventQR(c *fiber.Ctx) error {
	eventID := c.Params("eventId")

	if _, err := h.eventService.Get(eventID); err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	png, err := h.qrService.GenerateEventQR(eventID, 512)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
