package service_test

import (
	"context"
	"testing"
	"time"

	"carlink-backend/internal/apperr"
	"carlink-backend/internal/domain"
	"carlink-backend/internal/repository"
	"carlink-backend/internal/security"
	"carlink-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestApiKeyService_Issue(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockApiKeyRepo)
		svc := service.NewApiKeyService(repo)

		repo.On("Create", ctx, mock.AnythingOfType("*domain.ApiKey")).Return(nil)

		key, plaintext, err := svc.Issue(ctx, service.IssueApiKeyInput{
			Name:        "fleet-sync",
			Permissions: []string{"read", "write"},
		})
		assert.NoError(t, err)
		assert.Regexp(t, `^clk_[0-9a-f]{40}$`, plaintext)
		assert.Equal(t, plaintext[:12], key.KeyPrefix)
		assert.Equal(t, security.HashApiKey(plaintext), key.KeyHash)
		assert.True(t, key.Active)
		assert.Equal(t, []domain.ApiKeyPermission{domain.ApiKeyPermissionRead, domain.ApiKeyPermissionWrite}, key.Permissions)
	})

	t.Run("NameRequired", func(t *testing.T) {
		svc := service.NewApiKeyService(new(MockApiKeyRepo))

		_, _, err := svc.Issue(ctx, service.IssueApiKeyInput{Permissions: []string{"read"}})
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("PermissionRequired", func(t *testing.T) {
		svc := service.NewApiKeyService(new(MockApiKeyRepo))

		_, _, err := svc.Issue(ctx, service.IssueApiKeyInput{Name: "fleet-sync"})
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("UnknownPermission", func(t *testing.T) {
		svc := service.NewApiKeyService(new(MockApiKeyRepo))

		_, _, err := svc.Issue(ctx, service.IssueApiKeyInput{Name: "fleet-sync", Permissions: []string{"admin"}})
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("ExpiryInPast", func(t *testing.T) {
		svc := service.NewApiKeyService(new(MockApiKeyRepo))

		past := time.Now().Add(-time.Hour)
		_, _, err := svc.Issue(ctx, service.IssueApiKeyInput{Name: "fleet-sync", Permissions: []string{"read"}, ExpiresAt: &past})
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})
}

func TestApiKeyService_Authenticate(t *testing.T) {
	ctx := context.Background()
	plaintext := "clk_0123456789abcdef0123456789abcdef01234567"
	hash := security.HashApiKey(plaintext)

	activeKey := func() *domain.ApiKey {
		return &domain.ApiKey{
			ID:          1,
			Name:        "fleet-sync",
			KeyHash:     hash,
			Permissions: []domain.ApiKeyPermission{domain.ApiKeyPermissionRead},
			Active:      true,
		}
	}

	t.Run("Success", func(t *testing.T) {
		repo := new(MockApiKeyRepo)
		svc := service.NewApiKeyService(repo)

		repo.On("GetByHash", ctx, hash).Return(activeKey(), nil)
		repo.On("TouchLastUsed", ctx, int32(1), mock.AnythingOfType("time.Time")).Return(nil)

		key, err := svc.Authenticate(ctx, plaintext)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), key.ID)
		repo.AssertCalled(t, "TouchLastUsed", ctx, int32(1), mock.AnythingOfType("time.Time"))
	})

	t.Run("UnknownKey", func(t *testing.T) {
		repo := new(MockApiKeyRepo)
		svc := service.NewApiKeyService(repo)

		repo.On("GetByHash", ctx, mock.AnythingOfType("string")).Return(nil, repository.ErrNotFound)

		_, err := svc.Authenticate(ctx, "clk_wrong")
		assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
	})

	t.Run("RevokedKey", func(t *testing.T) {
		repo := new(MockApiKeyRepo)
		svc := service.NewApiKeyService(repo)

		key := activeKey()
		key.Active = false
		repo.On("GetByHash", ctx, hash).Return(key, nil)

		_, err := svc.Authenticate(ctx, plaintext)
		assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
		repo.AssertNotCalled(t, "TouchLastUsed", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ExpiredKey", func(t *testing.T) {
		repo := new(MockApiKeyRepo)
		svc := service.NewApiKeyService(repo)

		key := activeKey()
		expired := time.Now().Add(-time.Minute)
		key.ExpiresAt = &expired
		repo.On("GetByHash", ctx, hash).Return(key, nil)

		_, err := svc.Authenticate(ctx, plaintext)
		assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
	})
}

func TestApiKeyService_Revoke(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockApiKeyRepo)
		svc := service.NewApiKeyService(repo)

		repo.On("Deactivate", ctx, int32(1)).Return(nil)
		assert.NoError(t, svc.Revoke(ctx, 1))
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockApiKeyRepo)
		svc := service.NewApiKeyService(repo)

		repo.On("Deactivate", ctx, int32(99)).Return(repository.ErrNotFound)
		err := svc.Revoke(ctx, 99)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}
