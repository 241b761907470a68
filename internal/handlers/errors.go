package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/school_fund_ledger/internal/apperrors"
	"github.com/SscSPs/school_fund_ledger/internal/dto"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondError maps a service error to its HTTP status and structured result.
// Unexpected failures are logged, reported to Sentry and answered with fallback.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	var fieldErr *apperrors.FieldError
	var balanceErr *apperrors.InsufficientBalanceError
	var appErr *apperrors.AppError

	switch {
	case errors.As(err, &balanceErr):
		logger.Warn("Withdrawal rejected", slog.String("error", err.Error()))
		available, requested := balanceErr.Available, balanceErr.Requested
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResult{
			Message:   balanceErr.Error(),
			Source:    balanceErr.Source,
			Available: &available,
			Requested: &requested,
		})
	case errors.As(err, &fieldErr):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResult{Message: fieldErr.Error(), Field: fieldErr.Field})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResult{Message: err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, dto.ErrorResult{Message: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, dto.ErrorResult{Message: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, dto.ErrorResult{Message: err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
		status := http.StatusInternalServerError
		if errors.As(err, &appErr) && appErr.Code >= 400 {
			status = appErr.Code
		}
		c.JSON(status, dto.ErrorResult{Message: fallback})
	}
}

// respondBindError answers a request whose body or query failed to bind.
func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		c.JSON(http.StatusBadRequest, dto.ErrorResult{
			Message: fmt.Sprintf("%s: failed on the '%s' rule", fe.Field(), fe.Tag()),
			Field:   fe.Field(),
		})
		return
	}
	c.JSON(http.StatusBadRequest, dto.ErrorResult{Message: "Invalid request format: " + err.Error()})
}
