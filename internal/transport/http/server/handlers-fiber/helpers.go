package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/BotDogs4645/theLAW/internal/entities"
	"github.com/BotDogs4645/theLAW/internal/oapi"
	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := oapi.NOTFOUND
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = oapi.INVALIDARGUMENT
		msg = err.Error()
	case errors.Is(err, entities.ErrMemberNotFound), errors.Is(err, entities.ErrIdentityNotFound):
		status = http.StatusNotFound
		code = oapi.NOTFOUND
		msg = "resource not found"
	case errors.Is(err, entities.ErrIdentityLinked):
		status = http.StatusConflict
		code = oapi.IDENTITYLINKED
		msg = "identity already linked"
	case errors.Is(err, entities.ErrRoleMapInvalid):
		status = http.StatusBadGateway
		code = oapi.SYNCFAILED
		msg = err.Error()
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code oapi.ErrorResponseErrorCode, msg string) oapi.ErrorResponse {
	return oapi.ErrorResponse{Error: struct {
		Code    oapi.ErrorResponseErrorCode `json:"code"`
		Message string                      `json:"message"`
	}{Code: code, Message: msg}}
}
