package http

import (
	"net/http"

	customeruc "bark-backend/internal/usecase/customer"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CustomerHandler serves customers, their vehicles and the insurer list.
type CustomerHandler struct {
	uc  *customeruc.Usecase
	log *zap.Logger
}

func NewCustomerHandler(uc *customeruc.Usecase, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{uc: uc, log: log}
}

func (h *CustomerHandler) Upsert(c echo.Context) error {
	var req customeruc.UpsertInput
	if err := bind(c, &req); err != nil {
		return writeError(c, h.log, err)
	}
	cust, created, err := h.uc.Upsert(c.Request().Context(), req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	code := http.StatusOK
	if created {
		code = http.StatusCreated
	}
	return c.JSON(code, cust)
}

func (h *CustomerHandler) ListUnsynced(c echo.Context) error {
	rows, err := h.uc.ListUnsynced(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *CustomerHandler) MarkSynced(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return writeError(c, h.log, err)
	}
	var req customeruc.SyncInput
	if err := bind(c, &req); err != nil {
		return writeError(c, h.log, err)
	}
	cust, err := h.uc.MarkSynced(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, cust)
}

func (h *CustomerHandler) AddVehicle(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return writeError(c, h.log, err)
	}
	var req customeruc.VehicleInput
	if err := bind(c, &req); err != nil {
		return writeError(c, h.log, err)
	}
	v, created, err := h.uc.AddVehicle(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	code := http.StatusOK
	if created {
		code = http.StatusCreated
	}
	return c.JSON(code, v)
}

func (h *CustomerHandler) ListInsurers(c echo.Context) error {
	rows, err := h.uc.ListInsurers(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *CustomerHandler) CreateInsurer(c echo.Context) error {
	var req customeruc.InsurerInput
	if err := bind(c, &req); err != nil {
		return writeError(c, h.log, err)
	}
	ins, err := h.uc.CreateInsurer(c.Request().Context(), req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, ins)
}
