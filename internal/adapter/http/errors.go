package http

import (
	"errors"
	"net/http"
	"strconv"

	"bark-backend/internal/domain/customer"
	"bark-backend/internal/domain/insurance"
	"bark-backend/internal/domain/job"
	"bark-backend/internal/domain/repairjob"
	"bark-backend/internal/domain/status"
	"bark-backend/internal/domain/vehicle"
	"bark-backend/internal/domain/workflow"
	analyticsuc "bark-backend/internal/usecase/analytics"
	customeruc "bark-backend/internal/usecase/customer"
	statusuc "bark-backend/internal/usecase/status"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// badRequest marks malformed input caught before the usecase runs.
type badRequest struct{ msg string }

func (e *badRequest) Error() string { return e.msg }

var (
	notFound = []error{
		status.ErrNotFound, customer.ErrNotFound, vehicle.ErrNotFound,
		insurance.ErrNotFound, job.ErrNotFound, repairjob.ErrNotFound,
	}
	conflicts = []error{
		status.ErrInUse, insurance.ErrDuplicateName, repairjob.ErrDuplicateJobNumber,
	}
	invalid = []error{
		customeruc.ErrInvalidInput, statusuc.ErrInvalidCategory, analyticsuc.ErrUnknownReport,
	}
)

func isAny(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

// writeError is the single place usecase errors become HTTP responses.
func writeError(c echo.Context, log *zap.Logger, err error) error {
	var (
		te *workflow.TransitionError
		ve validator.ValidationErrors
		br *badRequest
	)
	switch {
	case errors.As(err, &te):
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   te.Message,
			Kind:    te.Code(),
			Details: []FieldError{{Field: te.Field, Message: te.Message}},
		})
	case errors.As(err, &br):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: br.msg})
	case errors.As(err, &ve):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	case isAny(err, notFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case isAny(err, conflicts):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case isAny(err, invalid):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	}
	if log != nil {
		log.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Error(err))
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// bind decodes the request into v and validates it.
func bind(c echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		return &badRequest{msg: "invalid request"}
	}
	return c.Validate(v)
}

func uintParam(c echo.Context, name string) (uint, error) {
	n, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || n == 0 {
		return 0, &badRequest{msg: "invalid " + name + " path param"}
	}
	return uint(n), nil
}
