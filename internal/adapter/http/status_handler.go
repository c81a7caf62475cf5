package http

import (
	"net/http"

	statusuc "bark-backend/internal/usecase/status"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type StatusHandler struct {
	uc  *statusuc.Usecase
	log *zap.Logger
}

func NewStatusHandler(uc *statusuc.Usecase, log *zap.Logger) *StatusHandler {
	return &StatusHandler{uc: uc, log: log}
}

func (h *StatusHandler) List(c echo.Context) error {
	rows, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *StatusHandler) Get(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return writeError(c, h.log, err)
	}
	s, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *StatusHandler) Create(c echo.Context) error {
	var req statusuc.StatusInput
	if err := bind(c, &req); err != nil {
		return writeError(c, h.log, err)
	}
	s, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *StatusHandler) Update(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return writeError(c, h.log, err)
	}
	var req statusuc.StatusInput
	if err := bind(c, &req); err != nil {
		return writeError(c, h.log, err)
	}
	s, err := h.uc.Update(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *StatusHandler) Delete(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return writeError(c, h.log, err)
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}
