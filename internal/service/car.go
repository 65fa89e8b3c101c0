package service

import (
	"context"
	"errors"
	"time"

	"carlink-backend/internal/apperr"
	"carlink-backend/internal/domain"
	"carlink-backend/internal/repository"
)

type carService struct {
	carRepo repository.CarRepository
	access  AccessService
}

func NewCarService(carRepo repository.CarRepository, access AccessService) CarService {
	return &carService{carRepo: carRepo, access: access}
}

func (s *carService) ListPublicCars(ctx context.Context, filter domain.CarFilter, page, pageSize int32) ([]domain.Car, int32, error) {
	return s.carRepo.ListPublic(ctx, filter, time.Now(), page, pageSize)
}

func (s *carService) GetPublicCar(ctx context.Context, carID int32) (*domain.Car, error) {
	car, err := s.carRepo.GetByID(ctx, carID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("car")
	}
	if err != nil {
		return nil, err
	}
	// Unapproved cars are invisible to the public surface.
	if car.ApprovalStatus != domain.ApprovalStatusApproved {
		return nil, apperr.NotFound("car")
	}
	return car, nil
}

func (s *carService) AddCar(ctx context.Context, caller Caller, car *domain.Car) error {
	if err := s.access.VerifyPartnerOwnership(caller, car.PartnerID); err != nil {
		return err
	}
	if car.PricePerDayCents <= 0 {
		return apperr.Validation("price per day must be positive")
	}
	// New cars wait for platform approval before listing.
	car.ApprovalStatus = domain.ApprovalStatusPending
	car.RentalStatus = domain.RentalStatusAvailable
	return s.carRepo.Create(ctx, car)
}

func (s *carService) UpdateCar(ctx context.Context, caller Caller, car *domain.Car) error {
	existing, err := s.getOwned(ctx, caller, car.ID)
	if err != nil {
		return err
	}
	if car.PricePerDayCents <= 0 {
		return apperr.Validation("price per day must be positive")
	}
	car.PartnerID = existing.PartnerID
	err = s.carRepo.Update(ctx, car)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound("car")
	}
	return err
}

func (s *carService) SetRentalStatus(ctx context.Context, caller Caller, carID int32, status domain.RentalStatus) error {
	if !status.Valid() {
		return apperr.Validationf("unknown rental status %q", status)
	}
	if _, err := s.getOwned(ctx, caller, carID); err != nil {
		return err
	}
	err := s.carRepo.SetRentalStatus(ctx, carID, status)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound("car")
	}
	return err
}

func (s *carService) ListPartnerCars(ctx context.Context, caller Caller, partnerID int32, page, pageSize int32) ([]domain.Car, int32, error) {
	if err := s.access.VerifyPartnerOwnership(caller, partnerID); err != nil {
		return nil, 0, err
	}
	return s.carRepo.ListByPartner(ctx, partnerID, page, pageSize)
}

func (s *carService) ApproveCar(ctx context.Context, carID int32, status domain.ApprovalStatus) error {
	if status != domain.ApprovalStatusApproved && status != domain.ApprovalStatusRejected {
		return apperr.Validation("approval status must be APPROVED or REJECTED")
	}
	err := s.carRepo.SetApproval(ctx, carID, status)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound("car")
	}
	return err
}

func (s *carService) getOwned(ctx context.Context, caller Caller, carID int32) (*domain.Car, error) {
	car, err := s.carRepo.GetByID(ctx, carID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("car")
	}
	if err != nil {
		return nil, err
	}
	if err := s.access.VerifyPartnerOwnership(caller, car.PartnerID); err != nil {
		return nil, err
	}
	return car, nil
}
