package service_test

import (
	"context"
	"testing"
	"time"

	"carlink-backend/internal/apperr"
	"carlink-backend/internal/domain"
	"carlink-backend/internal/repository"
	"carlink-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCommissionService_MarkPaid(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockCommissionRepo)
		svc := service.NewCommissionService(repo, service.NewAccessService())

		paidAt := time.Now()
		repo.On("MarkPaid", ctx, int32(5), mock.AnythingOfType("time.Time")).
			Return(&domain.CommissionLog{ID: 5, Status: domain.CommissionStatusPaid, PaidAt: &paidAt}, nil)

		log, err := svc.MarkPaid(ctx, 5, "PAID")
		assert.NoError(t, err)
		assert.Equal(t, domain.CommissionStatusPaid, log.Status)
		assert.NotNil(t, log.PaidAt)
	})

	t.Run("OnlyPaidAccepted", func(t *testing.T) {
		repo := new(MockCommissionRepo)
		svc := service.NewCommissionService(repo, service.NewAccessService())

		for _, status := range []string{"PENDING", "pending", "paid", "CANCELLED", ""} {
			_, err := svc.MarkPaid(ctx, 5, status)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err), "status %q", status)
		}
		repo.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("AlreadyPaid", func(t *testing.T) {
		repo := new(MockCommissionRepo)
		svc := service.NewCommissionService(repo, service.NewAccessService())

		repo.On("MarkPaid", ctx, int32(5), mock.AnythingOfType("time.Time")).
			Return(nil, repository.ErrConflict)

		_, err := svc.MarkPaid(ctx, 5, "PAID")
		assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockCommissionRepo)
		svc := service.NewCommissionService(repo, service.NewAccessService())

		repo.On("MarkPaid", ctx, int32(99), mock.AnythingOfType("time.Time")).
			Return(nil, repository.ErrNotFound)

		_, err := svc.MarkPaid(ctx, 99, "PAID")
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestCommissionService_ListByPartner(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockCommissionRepo)
		svc := service.NewCommissionService(repo, service.NewAccessService())

		repo.On("ListByPartner", ctx, int32(3), "PENDING", int32(1), int32(20)).
			Return([]domain.CommissionLog{{ID: 5, PartnerID: 3}}, int32(1), nil)

		logs, total, err := svc.ListByPartner(ctx, partnerCaller(3), 3, "PENDING", 1, 20)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), total)
		assert.Len(t, logs, 1)
	})

	t.Run("CrossPartnerForbidden", func(t *testing.T) {
		repo := new(MockCommissionRepo)
		svc := service.NewCommissionService(repo, service.NewAccessService())

		_, _, err := svc.ListByPartner(ctx, partnerCaller(99), 3, "", 1, 20)
		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
		repo.AssertNotCalled(t, "ListByPartner", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("UnknownStatusRejected", func(t *testing.T) {
		svc := service.NewCommissionService(new(MockCommissionRepo), service.NewAccessService())

		_, _, err := svc.ListByPartner(ctx, partnerCaller(3), 3, "REFUNDED", 1, 20)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})
}
