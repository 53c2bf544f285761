package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/maestro/ent"
	"github.com/codeready-toolchain/maestro/pkg/approval"
	"github.com/codeready-toolchain/maestro/pkg/registry"
	"github.com/codeready-toolchain/maestro/pkg/services"
)

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	if errors.Is(err, services.ErrNotFound) || ent.IsNotFound(err) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	if errors.Is(err, services.ErrConflict) {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	if errors.Is(err, services.ErrAlreadyExists) || ent.IsConstraintError(err) {
		return echo.NewHTTPError(http.StatusConflict, "resource already exists")
	}
	if errors.Is(err, approval.ErrAlreadyDecided) {
		return echo.NewHTTPError(http.StatusConflict, "approval request is already decided")
	}
	if errors.Is(err, approval.ErrApprovalExpired) {
		return echo.NewHTTPError(http.StatusConflict, "approval request has expired")
	}
	if errors.Is(err, registry.ErrConcurrentModification) {
		return echo.NewHTTPError(http.StatusConflict, "resource was modified concurrently, retry with the current version")
	}
	if errors.Is(err, registry.ErrInvalidTransition) {
		return echo.NewHTTPError(http.StatusConflict, "invalid lifecycle transition")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
