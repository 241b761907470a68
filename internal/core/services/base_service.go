package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/school_fund_ledger/internal/apperrors"
	"github.com/SscSPs/school_fund_ledger/internal/core/domain"
	"github.com/SscSPs/school_fund_ledger/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Now func() time.Time
}

// Clock returns the current time, honouring an injected clock.
func (s *BaseService) Clock() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// RequirePrivileged fails with apperrors.ErrForbidden unless role is director or admin.
func (s *BaseService) RequirePrivileged(ctx context.Context, role domain.UserRole, action string) error {
	if role.IsPrivileged() {
		return nil
	}
	s.LogWarn(ctx, "Privileged action refused", slog.String("action", action), slog.String("role", string(role)))
	return fmt.Errorf("%w: only a director or an admin may %s", apperrors.ErrForbidden, action)
}
