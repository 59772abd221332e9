package handlers_fiber

import (
	"net/http"

	"github.com/BotDogs4645/theLAW/internal/mapper"
	"github.com/BotDogs4645/theLAW/internal/oapi"
	"github.com/gofiber/fiber/v2"
)

// PostRosterImport accepts a multipart CSV upload and runs an import batch.
func (h *Handler) PostRosterImport(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(oapi.INVALIDARGUMENT, "multipart field 'file' is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(oapi.INVALIDARGUMENT, "cannot read upload"))
	}
	defer func() { _ = file.Close() }()

	report, err := h.uc.ImportRoster(c.Context(), file)
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Report oapi.ImportReport `json:"report"`
	}{Report: mapper.ToOAPIImportReport(report)})
}

// GetMember returns a roster record by email.
func (h *Handler) GetMember(c *fiber.Ctx) error {
	email := c.Query("email")

	member, err := h.uc.Member(c.Context(), email)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToOAPIMember(*member))
}
