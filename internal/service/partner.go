package service

import (
	"context"
	"errors"

	"carlink-backend/internal/apperr"
	"carlink-backend/internal/domain"
	"carlink-backend/internal/repository"
)

type partnerService struct {
	partnerRepo repository.PartnerRepository
}

func NewPartnerService(partnerRepo repository.PartnerRepository) PartnerService {
	return &partnerService{partnerRepo: partnerRepo}
}

func (s *partnerService) AddPartner(ctx context.Context, partner *domain.Partner) error {
	if err := validatePartner(partner); err != nil {
		return err
	}
	if partner.Status == "" {
		partner.Status = domain.PartnerStatusActive
	}
	if !partner.Status.Valid() {
		return apperr.Validationf("unknown partner status: %s", partner.Status)
	}
	return s.partnerRepo.Create(ctx, partner)
}

func (s *partnerService) UpdatePartner(ctx context.Context, partner *domain.Partner) error {
	if err := validatePartner(partner); err != nil {
		return err
	}
	if !partner.Status.Valid() {
		return apperr.Validationf("unknown partner status: %s", partner.Status)
	}
	err := s.partnerRepo.Update(ctx, partner)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound("partner")
	}
	return err
}

func (s *partnerService) ListPartners(ctx context.Context, page, pageSize int32) ([]domain.Partner, int32, error) {
	return s.partnerRepo.List(ctx, page, pageSize)
}

func validatePartner(p *domain.Partner) error {
	if p.Name == "" || p.Email == "" {
		return apperr.Validation("partner name and email are required")
	}
	if p.CommissionRatePct < 0 || p.CommissionRatePct > 100 {
		return apperr.Validation("commission rate must be between 0 and 100")
	}
	return nil
}
