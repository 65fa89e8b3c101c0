package service_test

import (
	"context"
	"testing"

	"carlink-backend/internal/apperr"
	"carlink-backend/internal/domain"
	"carlink-backend/internal/repository"
	"carlink-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCarService_GetPublicCar(t *testing.T) {
	ctx := context.Background()

	t.Run("ApprovedCarVisible", func(t *testing.T) {
		carRepo := new(MockCarRepo)
		svc := service.NewCarService(carRepo, service.NewAccessService())

		carRepo.On("GetByID", ctx, int32(7)).Return(approvedCar(), nil)

		car, err := svc.GetPublicCar(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), car.ID)
	})

	t.Run("PendingCarHidden", func(t *testing.T) {
		carRepo := new(MockCarRepo)
		svc := service.NewCarService(carRepo, service.NewAccessService())

		car := approvedCar()
		car.ApprovalStatus = domain.ApprovalStatusPending
		carRepo.On("GetByID", ctx, int32(7)).Return(car, nil)

		_, err := svc.GetPublicCar(ctx, 7)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("NotFound", func(t *testing.T) {
		carRepo := new(MockCarRepo)
		svc := service.NewCarService(carRepo, service.NewAccessService())

		carRepo.On("GetByID", ctx, int32(99)).Return(nil, repository.ErrNotFound)

		_, err := svc.GetPublicCar(ctx, 99)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestCarService_AddCar(t *testing.T) {
	ctx := context.Background()

	newCar := func() *domain.Car {
		return &domain.Car{
			PartnerID:        3,
			Brand:            "Toyota",
			Model:            "Yaris",
			PricePerDayCents: 1000,
			// Client-supplied statuses must not survive creation.
			ApprovalStatus: domain.ApprovalStatusApproved,
			RentalStatus:   domain.RentalStatusRented,
		}
	}

	t.Run("ForcesPendingApproval", func(t *testing.T) {
		carRepo := new(MockCarRepo)
		svc := service.NewCarService(carRepo, service.NewAccessService())

		carRepo.On("Create", ctx, mock.AnythingOfType("*domain.Car")).Return(nil)

		car := newCar()
		err := svc.AddCar(ctx, partnerCaller(3), car)
		assert.NoError(t, err)
		assert.Equal(t, domain.ApprovalStatusPending, car.ApprovalStatus)
		assert.Equal(t, domain.RentalStatusAvailable, car.RentalStatus)
	})

	t.Run("CrossPartnerForbidden", func(t *testing.T) {
		carRepo := new(MockCarRepo)
		svc := service.NewCarService(carRepo, service.NewAccessService())

		err := svc.AddCar(ctx, partnerCaller(99), newCar())
		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
		carRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("NonPositivePrice", func(t *testing.T) {
		svc := service.NewCarService(new(MockCarRepo), service.NewAccessService())

		car := newCar()
		car.PricePerDayCents = 0
		err := svc.AddCar(ctx, partnerCaller(3), car)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})
}

func TestCarService_SetRentalStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		carRepo := new(MockCarRepo)
		svc := service.NewCarService(carRepo, service.NewAccessService())

		carRepo.On("GetByID", ctx, int32(7)).Return(approvedCar(), nil)
		carRepo.On("SetRentalStatus", ctx, int32(7), domain.RentalStatusMaintenance).Return(nil)

		assert.NoError(t, svc.SetRentalStatus(ctx, partnerCaller(3), 7, domain.RentalStatusMaintenance))
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		svc := service.NewCarService(new(MockCarRepo), service.NewAccessService())

		err := svc.SetRentalStatus(ctx, partnerCaller(3), 7, domain.RentalStatus("PARKED"))
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("CrossPartnerForbidden", func(t *testing.T) {
		carRepo := new(MockCarRepo)
		svc := service.NewCarService(carRepo, service.NewAccessService())

		carRepo.On("GetByID", ctx, int32(7)).Return(approvedCar(), nil)

		err := svc.SetRentalStatus(ctx, partnerCaller(99), 7, domain.RentalStatusMaintenance)
		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
		carRepo.AssertNotCalled(t, "SetRentalStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCarService_ApproveCar(t *testing.T) {
	ctx := context.Background()

	t.Run("Approve", func(t *testing.T) {
		carRepo := new(MockCarRepo)
		svc := service.NewCarService(carRepo, service.NewAccessService())

		carRepo.On("SetApproval", ctx, int32(7), domain.ApprovalStatusApproved).Return(nil)
		assert.NoError(t, svc.ApproveCar(ctx, 7, domain.ApprovalStatusApproved))
	})

	t.Run("BackToPendingRejected", func(t *testing.T) {
		svc := service.NewCarService(new(MockCarRepo), service.NewAccessService())

		err := svc.ApproveCar(ctx, 7, domain.ApprovalStatusPending)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("NotFound", func(t *testing.T) {
		carRepo := new(MockCarRepo)
		svc := service.NewCarService(carRepo, service.NewAccessService())

		carRepo.On("SetApproval", ctx, int32(99), domain.ApprovalStatusRejected).Return(repository.ErrNotFound)
		err := svc.ApproveCar(ctx, 99, domain.ApprovalStatusRejected)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}
