package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"carlink-backend/internal/apperr"
	"carlink-backend/internal/domain"
	"carlink-backend/internal/pricing"
	"carlink-backend/internal/repository"

	"github.com/google/uuid"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	carRepo     repository.CarRepository
	partnerRepo repository.PartnerRepository
	access      AccessService
	emailSvc    EmailService
	holdTTL     time.Duration
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	carRepo repository.CarRepository,
	partnerRepo repository.PartnerRepository,
	access AccessService,
	emailSvc EmailService,
	holdTTL time.Duration,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		carRepo:     carRepo,
		partnerRepo: partnerRepo,
		access:      access,
		emailSvc:    emailSvc,
		holdTTL:     holdTTL,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if strings.TrimSpace(input.CustomerName) == "" {
		return nil, apperr.Validation("customer name is required")
	}
	if strings.TrimSpace(input.CustomerPhone) == "" {
		return nil, apperr.Validation("customer phone is required")
	}
	if input.ReturnDatetime.Before(input.PickupDatetime) {
		return nil, apperr.Validation("return date must not be before pickup date")
	}

	car, err := s.carRepo.GetByID(ctx, input.CarID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("car")
	}
	if err != nil {
		return nil, err
	}
	if car.ApprovalStatus != domain.ApprovalStatusApproved || car.RentalStatus != domain.RentalStatusAvailable {
		return nil, apperr.Conflict("car is not available for booking")
	}

	reservedUntil := time.Now().Add(s.holdTTL)
	booking := &domain.Booking{
		BookingNumber:   newBookingNumber(input.PickupDatetime),
		CustomerID:      input.CustomerID,
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		CustomerEmail:   input.CustomerEmail,
		CarID:           car.ID,
		PartnerID:       car.PartnerID,
		PickupDatetime:  input.PickupDatetime,
		ReturnDatetime:  input.ReturnDatetime,
		PickupLocation:  input.PickupLocation,
		ReturnLocation:  input.ReturnLocation,
		TotalPriceCents: pricing.TotalCents(input.PickupDatetime, input.ReturnDatetime, car.PricePerDayCents),
		LeadStatus:      domain.LeadStatusNew,
		ReservedUntil:   &reservedUntil,
	}

	if err := s.bookingRepo.CreateWithHoldCheck(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, apperr.Conflict("car is currently reserved by another customer")
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, caller Caller, bookingID int32) (*domain.Booking, error) {
	return s.getOwned(ctx, caller, bookingID)
}

func (s *bookingService) ListPartnerBookings(ctx context.Context, caller Caller, partnerID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	if err := s.access.VerifyPartnerOwnership(caller, partnerID); err != nil {
		return nil, 0, err
	}
	if status != "" && !domain.LeadStatus(status).Valid() {
		return nil, 0, apperr.Validationf("unknown lead status %q", status)
	}
	return s.bookingRepo.ListByPartner(ctx, partnerID, status, page, pageSize)
}

func (s *bookingService) ClaimBooking(ctx context.Context, caller Caller, bookingID int32) (*domain.Booking, error) {
	b, err := s.getOwned(ctx, caller, bookingID)
	if err != nil {
		return nil, err
	}
	if !b.LeadStatus.CanTransitionTo(domain.LeadStatusClaimed) {
		return nil, apperr.Conflict("booking can no longer be claimed")
	}

	if err := s.updateStatus(ctx, b, domain.LeadStatusClaimed); err != nil {
		return nil, err
	}

	if b.CustomerEmail != "" {
		car, cerr := s.carRepo.GetByID(ctx, b.CarID)
		partner, perr := s.partnerRepo.GetByID(ctx, b.PartnerID)
		if cerr == nil && perr == nil {
			_ = s.emailSvc.SendLeadClaimedNotification(ctx, b.CustomerEmail, b.CustomerName, carName(car), partner.Name)
		}
	}
	return b, nil
}

func (s *bookingService) AdvanceBooking(ctx context.Context, caller Caller, bookingID int32, target domain.LeadStatus) (*domain.Booking, error) {
	if !target.Valid() {
		return nil, apperr.Validationf("unknown lead status %q", target)
	}
	if target == domain.LeadStatusCancelled {
		return s.CancelBooking(ctx, caller, bookingID)
	}

	b, err := s.getOwned(ctx, caller, bookingID)
	if err != nil {
		return nil, err
	}
	if !b.LeadStatus.CanTransitionTo(target) {
		return nil, apperr.Conflictf("booking cannot move from %s to %s", b.LeadStatus, target)
	}

	if err := s.updateStatus(ctx, b, target); err != nil {
		return nil, err
	}

	if target == domain.LeadStatusCompleted && b.CustomerEmail != "" {
		if car, cerr := s.carRepo.GetByID(ctx, b.CarID); cerr == nil {
			_ = s.emailSvc.SendLeadCompletedNotification(ctx, b.CustomerEmail, b.CustomerName, carName(car), b.TotalPriceCents)
		}
	}
	return b, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, caller Caller, bookingID int32) (*domain.Booking, error) {
	b, err := s.getOwned(ctx, caller, bookingID)
	if err != nil {
		return nil, err
	}
	if !b.LeadStatus.CanTransitionTo(domain.LeadStatusCancelled) {
		return nil, apperr.Conflict("booking is already closed")
	}
	if err := s.updateStatus(ctx, b, domain.LeadStatusCancelled); err != nil {
		return nil, err
	}
	return b, nil
}

// EditBooking applies partial field updates while the lead is still in an
// editable state. The return date may only be extended through this path;
// the pickup date moves freely. Any date change recomputes the total from
// the car's current daily rate.
func (s *bookingService) EditBooking(ctx context.Context, caller Caller, bookingID int32, input EditBookingInput) (*domain.Booking, error) {
	b, err := s.getOwned(ctx, caller, bookingID)
	if err != nil {
		return nil, err
	}
	if !b.LeadStatus.Editable() {
		return nil, apperr.Conflict("booking can no longer be edited")
	}

	if input.ReturnDatetime != nil && input.ReturnDatetime.Before(b.ReturnDatetime) {
		return nil, apperr.Validation("return date can only be extended, not shortened")
	}

	prevStatus := b.LeadStatus
	datesChanged := false
	if input.PickupDatetime != nil && !input.PickupDatetime.Equal(b.PickupDatetime) {
		b.PickupDatetime = *input.PickupDatetime
		datesChanged = true
	}
	if input.ReturnDatetime != nil && !input.ReturnDatetime.Equal(b.ReturnDatetime) {
		b.ReturnDatetime = *input.ReturnDatetime
		datesChanged = true
	}
	if b.ReturnDatetime.Before(b.PickupDatetime) {
		return nil, apperr.Validation("return date must not be before pickup date")
	}

	if input.CustomerName != nil {
		b.CustomerName = *input.CustomerName
	}
	if input.CustomerPhone != nil {
		b.CustomerPhone = *input.CustomerPhone
	}
	if input.CustomerEmail != nil {
		b.CustomerEmail = *input.CustomerEmail
	}
	if input.PickupLocation != nil {
		b.PickupLocation = *input.PickupLocation
	}
	if input.ReturnLocation != nil {
		b.ReturnLocation = *input.ReturnLocation
	}

	if datesChanged {
		car, err := s.carRepo.GetByID(ctx, b.CarID)
		if err != nil {
			return nil, err
		}
		b.TotalPriceCents = pricing.TotalCents(b.PickupDatetime, b.ReturnDatetime, car.PricePerDayCents)
	}

	if err := s.bookingRepo.UpdateEditable(ctx, b, prevStatus); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, apperr.Conflict("booking status changed, please reload and retry")
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("booking")
		}
		return nil, err
	}
	return b, nil
}

// getOwned fetches the booking and enforces the partner ownership gate.
func (s *bookingService) getOwned(ctx context.Context, caller Caller, bookingID int32) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("booking")
	}
	if err != nil {
		return nil, err
	}
	if err := s.access.VerifyPartnerOwnership(caller, b.PartnerID); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *bookingService) updateStatus(ctx context.Context, b *domain.Booking, target domain.LeadStatus) error {
	err := s.bookingRepo.UpdateStatus(ctx, b.ID, b.LeadStatus, target)
	if errors.Is(err, repository.ErrConflict) {
		return apperr.Conflict("booking status changed, please reload and retry")
	}
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound("booking")
	}
	if err != nil {
		return err
	}
	b.LeadStatus = target
	return nil
}

func newBookingNumber(pickup time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("BK-%s-%s", pickup.Format("20060102"), suffix)
}

func carName(car *domain.Car) string {
	return strings.TrimSpace(car.Brand + " " + car.Model)
}
