package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/school_fund_ledger/internal/apperrors"
	"github.com/SscSPs/school_fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/school_fund_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/school_fund_ledger/internal/core/ports/services"
)

type identityService struct {
	BaseService
	userRepo portsrepo.UserReader
}

// NewIdentityService creates a new IdentitySvc.
func NewIdentityService(userRepo portsrepo.UserReader) portssvc.IdentitySvc {
	return &identityService{userRepo: userRepo}
}

func (s *identityService) ResolveUser(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, apperrors.NewFieldError("userID", "is required")
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to resolve user", slog.String("user_id", userID))
		}
		return nil, fmt.Errorf("failed to resolve user %s: %w", userID, err)
	}
	return user, nil
}
