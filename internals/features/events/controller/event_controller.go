package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventDto "eventpoint_backend/internals/features/events/dto"
	eventModel "eventpoint_backend/internals/features/events/model"
	eventService "eventpoint_backend/internals/features/events/service"
	notifService "eventpoint_backend/internals/features/notifications/service"
	helper "eventpoint_backend/internals/helpers"
)

var validate = validator.New()

type EventController struct {
	DB      *gorm.DB
	Service *eventService.EventService
}

func NewEventController(db *gorm.DB, fcm *notifService.FcmService) *EventController {
	return &EventController{
		DB:      db,
		Service: eventService.New(db, fcm),
	}
}

// 🔒👑 POST / — buat event, broadcast ke user opt-in kalau flag menyala
func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	var req eventDto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.Service.CreateEvent(m); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Event dibuat", eventDto.ToEventResponse(m))
}

// 🔒 GET / — semua event, dengan pagination
func (ctrl *EventController) ListEvents(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&eventModel.EventModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung event")
	}

	var events []eventModel.EventModel
	if err := ctrl.DB.
		Order("event_date DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}

	out := make([]eventDto.EventResponse, 0, len(events))
	for i := range events {
		out = append(out, eventDto.ToEventResponse(&events[i]))
	}
	return helper.JsonList(c, "Daftar event", out, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// 🔒 GET /upcoming — event mendatang + penanda sudah daftar
func (ctrl *EventController) UpcomingEvents(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	rows, err := ctrl.Service.UpcomingEvents(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil event mendatang")
	}
	return helper.JsonOK(c, "Event mendatang", rows)
}

// 🔒 GET /stats — rekap join vs hadir milik user
func (ctrl *EventController) MyEventStats(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	stats, err := ctrl.Service.UserEventStats(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}
	return helper.JsonOK(c, "Statistik event kamu", stats)
}

// 🔒 GET /:eventId
func (ctrl *EventController) GetEventByID(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("eventId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "eventId tidak valid")
	}

	var event eventModel.EventModel
	if err := ctrl.DB.First(&event, "event_id = ?", eventID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
	}
	return helper.JsonOK(c, "Event ditemukan", eventDto.ToEventResponse(&event))
}

// 🔒👑 PATCH /:eventId
func (ctrl *EventController) UpdateEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("eventId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "eventId tidak valid")
	}

	var req eventDto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	event, err := ctrl.Service.UpdateEvent(eventID, &req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Event diperbarui", eventDto.ToEventResponse(event))
}

// 🔒👑 DELETE /:eventId
func (ctrl *EventController) DeleteEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("eventId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "eventId tidak valid")
	}

	if err := ctrl.Service.DeleteEvent(eventID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Event dihapus", nil)
}
