package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventDto "eventpoint_backend/internals/features/events/dto"
	eventService "eventpoint_backend/internals/features/events/service"
	notifService "eventpoint_backend/internals/features/notifications/service"
	helper "eventpoint_backend/internals/helpers"
)

type OutsideEventController struct {
	DB      *gorm.DB
	Service *eventService.EventService
}

func NewOutsideEventController(db *gorm.DB, fcm *notifService.FcmService) *OutsideEventController {
	return &OutsideEventController{
		DB:      db,
		Service: eventService.New(db, fcm),
	}
}

// 🔒 POST / — ajukan event mandiri (403 kalau fitur dimatikan admin)
func (ctrl *OutsideEventController) CreateOutsideEvent(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req eventDto.CreateOutsideEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel(userID)
	if err := ctrl.Service.CreateOutsideEvent(m); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Event mandiri diajukan, menunggu review admin", eventDto.ToOutsideEventResponse(m))
}

// 🔒👑 GET /pending — antrean review
func (ctrl *OutsideEventController) ListUnapproved(c *fiber.Ctx) error {
	rows, err := ctrl.Service.ListUnapprovedOutsideEvents()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil antrean review")
	}
	return helper.JsonOK(c, "Outside event menunggu review", rows)
}

// 🔒👑 PATCH /:outsideEventId/approve
func (ctrl *OutsideEventController) Approve(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("outsideEventId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "outsideEventId tidak valid")
	}

	oe, err := ctrl.Service.ApproveOutsideEvent(id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Outside event disetujui", eventDto.ToOutsideEventResponse(oe))
}

// 🔒👑 DELETE /:outsideEventId/reject — tolak = hapus baris
func (ctrl *OutsideEventController) Reject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("outsideEventId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "outsideEventId tidak valid")
	}

	if err := ctrl.Service.RejectOutsideEvent(id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Outside event ditolak", nil)
}

// 🔒 GET /approved — riwayat event mandiri yang disetujui
func (ctrl *OutsideEventController) MyApproved(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	rows, err := ctrl.Service.ApprovedOutsideEvents(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat")
	}

	out := make([]eventDto.OutsideEventResponse, 0, len(rows))
	for i := range rows {
		out = append(out, eventDto.ToOutsideEventResponse(&rows[i]))
	}
	return helper.JsonOK(c, "Outside event disetujui", out)
}

// 🔒 DELETE /:outsideEventId — pemilik hapus pengajuan yang belum disetujui
func (ctrl *OutsideEventController) DeleteMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("outsideEventId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "outsideEventId tidak valid")
	}

	if err := ctrl.Service.DeleteOutsideEvent(id, userID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Pengajuan dihapus", nil)
}
