package server

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"cardsmith/pkg/card"
	"cardsmith/pkg/utils"
)

func respondError(c echo.Context, err error) error {
	id := requestID(c)

	var outErr *card.ModelOutputError
	switch {
	case errors.Is(err, card.ErrInvalidRequest):
		return c.JSON(http.StatusBadRequest, utils.ErrJSON(err.Error()))
	case errors.As(err, &outErr):
		log.Error("invalid model output", "request_id", id, "error", err)
		return c.JSON(http.StatusBadGateway, utils.ErrJSON(err.Error(), outErr.Raw))
	case errors.Is(err, card.ErrGenerationFailed):
		log.Error("card generation failed", "request_id", id, "error", err)
		return c.JSON(http.StatusBadGateway, utils.ErrJSON(err.Error()))
	default:
		log.Error("internal error", "request_id", id, "error", err)
		return c.JSON(http.StatusInternalServerError, utils.ErrJSON("internal error"))
	}
}
