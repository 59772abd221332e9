// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/BotDogs4645/theLAW/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the operator API using service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}

// Register mounts all routes on the fiber app.
func (h *Handler) Register(app *fiber.App) {
	app.Post("/sync", h.PostSync)
	app.Post("/roster/import", h.PostRosterImport)
	app.Get("/member", h.GetMember)
	app.Post("/identity", h.PostIdentity)
	app.Delete("/identity/:discord_id", h.DeleteIdentity)
}
