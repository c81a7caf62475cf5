package http

import (
	"net/http"

	jobuc "bark-backend/internal/usecase/job"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type TrackerJobHandler struct {
	uc  *jobuc.Usecase
	log *zap.Logger
}

func NewTrackerJobHandler(uc *jobuc.Usecase, log *zap.Logger) *TrackerJobHandler {
	return &TrackerJobHandler{uc: uc, log: log}
}

func (h *TrackerJobHandler) Create(c echo.Context) error {
	var req jobuc.CreateInput
	if err := bind(c, &req); err != nil {
		return writeError(c, h.log, err)
	}
	dto, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *TrackerJobHandler) List(c echo.Context) error {
	rows, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *TrackerJobHandler) Get(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return writeError(c, h.log, err)
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *TrackerJobHandler) UpdateDetails(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return writeError(c, h.log, err)
	}
	var req jobuc.UpdateDetailsInput
	if err := bind(c, &req); err != nil {
		return writeError(c, h.log, err)
	}
	dto, err := h.uc.UpdateDetails(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *TrackerJobHandler) Transition(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return writeError(c, h.log, err)
	}
	var req jobuc.TransitionInput
	if err := bind(c, &req); err != nil {
		return writeError(c, h.log, err)
	}
	dto, err := h.uc.Transition(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *TrackerJobHandler) History(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return writeError(c, h.log, err)
	}
	rows, err := h.uc.History(c.Request().Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, rows)
}
