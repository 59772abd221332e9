package handlers_fiber

import (
	"net/http"

	"github.com/BotDogs4645/theLAW/internal/mapper"
	"github.com/gofiber/fiber/v2"
)

// PostSync runs a full role sync pass. Partial failure still returns the
// summary with 200; only structural errors surface as a failure status.
func (h *Handler) PostSync(c *fiber.Ctx) error {
	report, err := h.uc.SyncRoles(c.Context())
	if err != nil {
		h.log.Errorw("sync aborted", "error", err)
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToOAPISyncSummary(report))
}
