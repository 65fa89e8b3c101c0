package service

import (
	"context"
	"errors"
	"time"

	"carlink-backend/internal/apperr"
	"carlink-backend/internal/domain"
	"carlink-backend/internal/repository"
)

type commissionService struct {
	commissionRepo repository.CommissionRepository
	access         AccessService
}

func NewCommissionService(commissionRepo repository.CommissionRepository, access AccessService) CommissionService {
	return &commissionService{commissionRepo: commissionRepo, access: access}
}

func (s *commissionService) ListByPartner(ctx context.Context, caller Caller, partnerID int32, status string, page, pageSize int32) ([]domain.CommissionLog, int32, error) {
	if err := s.access.VerifyPartnerOwnership(caller, partnerID); err != nil {
		return nil, 0, err
	}
	if status != "" && status != string(domain.CommissionStatusPending) && status != string(domain.CommissionStatusPaid) {
		return nil, 0, apperr.Validationf("unknown commission status %q", status)
	}
	return s.commissionRepo.ListByPartner(ctx, partnerID, status, page, pageSize)
}

func (s *commissionService) ListAll(ctx context.Context, status string, page, pageSize int32) ([]domain.CommissionLog, int32, error) {
	if status != "" && status != string(domain.CommissionStatusPending) && status != string(domain.CommissionStatusPaid) {
		return nil, 0, apperr.Validationf("unknown commission status %q", status)
	}
	return s.commissionRepo.ListAll(ctx, status, page, pageSize)
}

// MarkPaid accepts only "PAID" as the target status. The PENDING to PAID
// transition is one-way; a record that is already PAID stays untouched and
// the second attempt is rejected.
func (s *commissionService) MarkPaid(ctx context.Context, commissionLogID int32, targetStatus string) (*domain.CommissionLog, error) {
	if targetStatus != string(domain.CommissionStatusPaid) {
		return nil, apperr.Validation("status must be PAID")
	}

	log, err := s.commissionRepo.MarkPaid(ctx, commissionLogID, time.Now())
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("commission log")
	}
	if errors.Is(err, repository.ErrConflict) {
		return nil, apperr.Conflict("commission log is already marked as paid")
	}
	if err != nil {
		return nil, err
	}
	return log, nil
}
