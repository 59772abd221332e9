package handlers_fiber

import (
	"net/http"
	"strings"

	"github.com/BotDogs4645/theLAW/internal/entities"
	"github.com/BotDogs4645/theLAW/internal/oapi"
	"github.com/gofiber/fiber/v2"
)

// PostIdentity records a verified discord-to-email link. Called by the
// verification flow once it has confirmed the member against the roster.
func (h *Handler) PostIdentity(c *fiber.Ctx) error {
	var body struct {
		DiscordID string `json:"discord_id"`
		Email     string `json:"email"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(oapi.INVALIDARGUMENT, "invalid body"))
	}

	identity := entities.LinkedIdentity{
		DiscordID: strings.TrimSpace(body.DiscordID),
		Email:     strings.TrimSpace(body.Email),
	}
	if err := h.uc.LinkIdentity(c.Context(), identity); err != nil {
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusCreated)
}

// DeleteIdentity removes a link, typically after the member left the guild.
func (h *Handler) DeleteIdentity(c *fiber.Ctx) error {
	discordID := c.Params("discord_id")

	if err := h.uc.UnlinkIdentity(c.Context(), discordID); err != nil {
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}
