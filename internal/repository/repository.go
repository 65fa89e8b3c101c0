package repository

import (
	"context"
	"errors"
	"time"

	"carlink-backend/internal/domain"
)

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a conditional write matched no row because
	// the row's state no longer satisfies the condition.
	ErrConflict = errors.New("record state conflict")
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int32, passwordHash string) error
}

type PartnerRepository interface {
	Create(ctx context.Context, partner *domain.Partner) error
	GetByID(ctx context.Context, id int32) (*domain.Partner, error)
	Update(ctx context.Context, partner *domain.Partner) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Partner, int32, error)
}

type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	GetByID(ctx context.Context, id int32) (*domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	SetApproval(ctx context.Context, id int32, status domain.ApprovalStatus) error
	SetRentalStatus(ctx context.Context, id int32, status domain.RentalStatus) error

	// ListPublic returns approved, available cars that are not under an
	// unexpired NEW-status reservation hold as of now.
	ListPublic(ctx context.Context, filter domain.CarFilter, now time.Time, page, pageSize int32) ([]domain.Car, int32, error)
	ListByPartner(ctx context.Context, partnerID int32, page, pageSize int32) ([]domain.Car, int32, error)
}

type BookingRepository interface {
	// CreateWithHoldCheck inserts the booking inside a transaction that takes
	// a per-car advisory lock and then verifies the car carries no unexpired
	// NEW-status hold. Returns ErrConflict when the car is held.
	CreateWithHoldCheck(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int32) (*domain.Booking, error)
	ListByPartner(ctx context.Context, partnerID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error)

	// UpdateStatus moves the booking from one status to another as a single
	// conditional statement. Returns ErrConflict when the stored status is no
	// longer from, ErrNotFound when the booking does not exist.
	UpdateStatus(ctx context.Context, id int32, from, to domain.LeadStatus) error

	// UpdateEditable writes the editable fields conditionally on the stored
	// status still being fromStatus. Same error contract as UpdateStatus.
	UpdateEditable(ctx context.Context, booking *domain.Booking, fromStatus domain.LeadStatus) error

	// ListExpiredHolds returns NEW bookings whose reservation hold has lapsed.
	ListExpiredHolds(ctx context.Context, now time.Time) ([]domain.Booking, error)
}

type CommissionRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.CommissionLog, error)
	ListByPartner(ctx context.Context, partnerID int32, status string, page, pageSize int32) ([]domain.CommissionLog, int32, error)
	ListAll(ctx context.Context, status string, page, pageSize int32) ([]domain.CommissionLog, int32, error)

	// MarkPaid flips PENDING to PAID and stamps paid_at, conditionally on the
	// record still being PENDING. Returns ErrConflict when already paid,
	// ErrNotFound when the record does not exist.
	MarkPaid(ctx context.Context, id int32, paidAt time.Time) (*domain.CommissionLog, error)

	// CreateMissingForCompleted inserts a PENDING commission log for every
	// completed booking that has none yet, deriving the amount from the
	// partner's commission rate. Returns the number of rows created.
	CreateMissingForCompleted(ctx context.Context) (int64, error)
}

type ApiKeyRepository interface {
	Create(ctx context.Context, key *domain.ApiKey) error
	GetByHash(ctx context.Context, keyHash string) (*domain.ApiKey, error)
	List(ctx context.Context) ([]domain.ApiKey, error)
	Deactivate(ctx context.Context, id int32) error
	TouchLastUsed(ctx context.Context, id int32, usedAt time.Time) error
}
