package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"cardsmith/pkg/card"
	"cardsmith/pkg/utils"
)

// POST /generate_card
func (s *Server) handlePostGenerateCard(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return he
		}
		return c.JSON(http.StatusBadRequest, utils.ErrJSON("could not read request body"))
	}

	req, err := card.DecodeRequest(body)
	if err != nil {
		return respondError(c, err)
	}

	log.Debug("generating card", "request_id", requestID(c), "name", req.Name, "element", req.Element)

	result, err := s.Generator.Generate(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
