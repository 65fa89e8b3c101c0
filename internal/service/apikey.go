package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"carlink-backend/internal/apperr"
	"carlink-backend/internal/domain"
	"carlink-backend/internal/repository"
	"carlink-backend/internal/security"
)

type apiKeyService struct {
	keyRepo repository.ApiKeyRepository
}

func NewApiKeyService(keyRepo repository.ApiKeyRepository) ApiKeyService {
	return &apiKeyService{keyRepo: keyRepo}
}

func (s *apiKeyService) Issue(ctx context.Context, input IssueApiKeyInput) (*domain.ApiKey, string, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, "", apperr.Validation("api key name is required")
	}
	if len(input.Permissions) == 0 {
		return nil, "", apperr.Validation("at least one permission is required")
	}
	perms := make([]domain.ApiKeyPermission, 0, len(input.Permissions))
	for _, p := range input.Permissions {
		perm := domain.ApiKeyPermission(p)
		if !perm.Valid() {
			return nil, "", apperr.Validationf("unknown permission %q", p)
		}
		perms = append(perms, perm)
	}
	if input.ExpiresAt != nil && input.ExpiresAt.Before(time.Now()) {
		return nil, "", apperr.Validation("expiry must be in the future")
	}

	plaintext, prefix, hash, err := security.GenerateApiKey()
	if err != nil {
		return nil, "", err
	}

	key := &domain.ApiKey{
		Name:        input.Name,
		KeyHash:     hash,
		KeyPrefix:   prefix,
		Permissions: perms,
		PartnerID:   input.PartnerID,
		ExpiresAt:   input.ExpiresAt,
		Active:      true,
	}
	if err := s.keyRepo.Create(ctx, key); err != nil {
		return nil, "", err
	}

	// The plaintext leaves this function exactly once; only the hash is stored.
	return key, plaintext, nil
}

func (s *apiKeyService) List(ctx context.Context) ([]domain.ApiKey, error) {
	return s.keyRepo.List(ctx)
}

func (s *apiKeyService) Revoke(ctx context.Context, keyID int32) error {
	err := s.keyRepo.Deactivate(ctx, keyID)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound("api key")
	}
	return err
}

func (s *apiKeyService) Authenticate(ctx context.Context, plaintext string) (*domain.ApiKey, error) {
	key, err := s.keyRepo.GetByHash(ctx, security.HashApiKey(plaintext))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.Unauthorized("invalid API key")
	}
	if err != nil {
		return nil, err
	}
	if !key.Active {
		return nil, apperr.Unauthorized("invalid API key")
	}
	if key.Expired(time.Now()) {
		return nil, apperr.Unauthorized("invalid API key")
	}

	// Best effort; authentication must not fail on a bookkeeping write.
	_ = s.keyRepo.TouchLastUsed(ctx, key.ID, time.Now())

	return key, nil
}
