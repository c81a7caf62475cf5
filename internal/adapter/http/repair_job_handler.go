package http

import (
	"net/http"
	"strconv"
	"strings"

	repairjobuc "bark-backend/internal/usecase/repairjob"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type RepairJobHandler struct {
	uc  *repairjobuc.Usecase
	log *zap.Logger
}

func NewRepairJobHandler(uc *repairjobuc.Usecase, log *zap.Logger) *RepairJobHandler {
	return &RepairJobHandler{uc: uc, log: log}
}

func uidParam(c echo.Context) (string, error) {
	uid := c.Param("uid")
	if err := uuid.Validate(uid); err != nil {
		return "", &badRequest{msg: "invalid uid path param"}
	}
	return uid, nil
}

func (h *RepairJobHandler) Create(c echo.Context) error {
	var req repairjobuc.CreateInput
	if err := bind(c, &req); err != nil {
		return writeError(c, h.log, err)
	}
	dto, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *RepairJobHandler) List(c echo.Context) error {
	req := repairjobuc.ListInput{
		Priority: c.QueryParam("priority"),
		Search:   strings.TrimSpace(c.QueryParam("search")),
	}
	if raw := c.QueryParam("status"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 0)
		if err != nil {
			return writeError(c, h.log, &badRequest{msg: "invalid status query param"})
		}
		statusID := uint(id)
		req.StatusID = &statusID
	}
	rows, err := h.uc.List(c.Request().Context(), req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *RepairJobHandler) Get(c echo.Context) error {
	uid, err := uidParam(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	dto, err := h.uc.Get(c.Request().Context(), uid)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *RepairJobHandler) UpdateEstimate(c echo.Context) error {
	uid, err := uidParam(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	var req repairjobuc.UpdateEstimateInput
	if err := bind(c, &req); err != nil {
		return writeError(c, h.log, err)
	}
	dto, err := h.uc.UpdateEstimate(c.Request().Context(), uid, req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *RepairJobHandler) Approve(c echo.Context) error {
	uid, err := uidParam(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	var req repairjobuc.ApproveInput
	if err := bind(c, &req); err != nil {
		return writeError(c, h.log, err)
	}
	dto, err := h.uc.Approve(c.Request().Context(), uid, req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *RepairJobHandler) Transition(c echo.Context) error {
	uid, err := uidParam(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	var req repairjobuc.TransitionInput
	if err := bind(c, &req); err != nil {
		return writeError(c, h.log, err)
	}
	dto, err := h.uc.Transition(c.Request().Context(), uid, req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *RepairJobHandler) History(c echo.Context) error {
	uid, err := uidParam(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	rows, err := h.uc.History(c.Request().Context(), uid)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, rows)
}
