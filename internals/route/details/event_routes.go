package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventpoint_backend/internals/constants"
	eventController "eventpoint_backend/internals/features/events/controller"
	notifService "eventpoint_backend/internals/features/notifications/service"
	authMiddleware "eventpoint_backend/internals/middlewares/auth"
)

// EventRoutes: katalog event + pengajuan event mandiri (outside)
func EventRoutes(r fiber.Router, db *gorm.DB, fcm *notifService.FcmService) {
	ctrl := eventController.NewEventController(db, fcm)
	outsideCtrl := eventController.NewOutsideEventController(db, fcm)

	adminGuard := authMiddleware.OnlyRolesSlice(
		constants.RoleErrorAdmin("manajemen event"), constants.AdminOnly)

	events := r.Group("/events")
	events.Get("/", ctrl.ListEvents)
	events.Get("/upcoming", ctrl.UpcomingEvents)
	events.Get("/stats", ctrl.MyEventStats)
	events.Post("/", adminGuard, ctrl.CreateEvent)

	outside := r.Group("/outside-events")
	outside.Post("/", outsideCtrl.CreateOutsideEvent)
	outside.Get("/approved", outsideCtrl.MyApproved)
	outside.Get("/pending", adminGuard, outsideCtrl.ListUnapproved)
	outside.Patch("/:outsideEventId/approve", adminGuard, outsideCtrl.Approve)
	outside.Delete("/:outsideEventId/reject", adminGuard, outsideCtrl.Reject)
	outside.Delete("/:outsideEventId", outsideCtrl.DeleteMine)

	// :eventId paling akhir supaya tidak menelan path statis di atasnya
	events.Get("/:eventId", ctrl.GetEventByID)
	events.Patch("/:eventId", adminGuard, ctrl.UpdateEvent)
	events.Delete("/:eventId", adminGuard, ctrl.DeleteEvent)
}
