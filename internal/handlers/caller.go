package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/school_fund_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/school_fund_ledger/internal/core/ports/services"
	"github.com/SscSPs/school_fund_ledger/internal/dto"
	"github.com/SscSPs/school_fund_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// resolveCaller loads the authenticated user with their role. It writes the
// error response itself and returns false when the caller cannot be resolved.
func resolveCaller(c *gin.Context, identity portssvc.IdentitySvc, logger *slog.Logger) (*domain.User, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResult{Message: "Unauthorized"})
		return nil, false
	}

	user, err := identity.ResolveUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to resolve user")
		return nil, false
	}
	return user, true
}
