package service

import (
	"context"
	"time"

	"carlink-backend/internal/domain"
)

// Caller identifies the authenticated principal behind a request.
// PartnerID is set only for partner admins.
type Caller struct {
	UserID    int32
	Role      domain.UserRole
	PartnerID *int32
}

// AccessService is the ownership gate. A role check alone is never enough:
// the caller must be authorized for the specific resource instance.
type AccessService interface {
	VerifyPartnerOwnership(caller Caller, targetPartnerID int32) error
	VerifyUserOwnership(caller Caller, targetUserID int32) error
}

type RegisterInput struct {
	Name        string
	Email       string
	PhoneNumber string
	Password    string
}

type AuthService interface {
	// Register creates a customer account and logs it in.
	Register(ctx context.Context, input RegisterInput) (string, string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, string, *domain.User, error) // access, refresh
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
	// ForgotPassword reports success regardless of whether the email is
	// registered, so the endpoint cannot be used as an account oracle.
	ForgotPassword(ctx context.Context, email string) error
	// ResetPassword redeems the token mailed by ForgotPassword.
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type CreateBookingInput struct {
	CustomerID     *int32
	CustomerName   string
	CustomerPhone  string
	CustomerEmail  string
	CarID          int32
	PickupDatetime time.Time
	ReturnDatetime time.Time
	PickupLocation string
	ReturnLocation string
}

// EditBookingInput carries partial updates; nil fields are left unchanged.
type EditBookingInput struct {
	CustomerName   *string
	CustomerPhone  *string
	CustomerEmail  *string
	PickupDatetime *time.Time
	ReturnDatetime *time.Time
	PickupLocation *string
	ReturnLocation *string
}

type BookingService interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	GetBooking(ctx context.Context, caller Caller, bookingID int32) (*domain.Booking, error)
	ListPartnerBookings(ctx context.Context, caller Caller, partnerID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error)
	ClaimBooking(ctx context.Context, caller Caller, bookingID int32) (*domain.Booking, error)
	AdvanceBooking(ctx context.Context, caller Caller, bookingID int32, target domain.LeadStatus) (*domain.Booking, error)
	CancelBooking(ctx context.Context, caller Caller, bookingID int32) (*domain.Booking, error)
	EditBooking(ctx context.Context, caller Caller, bookingID int32, input EditBookingInput) (*domain.Booking, error)
}

type CarService interface {
	ListPublicCars(ctx context.Context, filter domain.CarFilter, page, pageSize int32) ([]domain.Car, int32, error)
	GetPublicCar(ctx context.Context, carID int32) (*domain.Car, error)
	AddCar(ctx context.Context, caller Caller, car *domain.Car) error
	UpdateCar(ctx context.Context, caller Caller, car *domain.Car) error
	SetRentalStatus(ctx context.Context, caller Caller, carID int32, status domain.RentalStatus) error
	ListPartnerCars(ctx context.Context, caller Caller, partnerID int32, page, pageSize int32) ([]domain.Car, int32, error)
	ApproveCar(ctx context.Context, carID int32, status domain.ApprovalStatus) error
}

// PartnerService is the platform-admin provisioning surface for rental shops.
// Role gating happens at the router, so no caller is threaded through.
type PartnerService interface {
	AddPartner(ctx context.Context, partner *domain.Partner) error
	UpdatePartner(ctx context.Context, partner *domain.Partner) error
	ListPartners(ctx context.Context, page, pageSize int32) ([]domain.Partner, int32, error)
}

type CommissionService interface {
	ListByPartner(ctx context.Context, caller Caller, partnerID int32, status string, page, pageSize int32) ([]domain.CommissionLog, int32, error)
	ListAll(ctx context.Context, status string, page, pageSize int32) ([]domain.CommissionLog, int32, error)
	MarkPaid(ctx context.Context, commissionLogID int32, targetStatus string) (*domain.CommissionLog, error)
}

type IssueApiKeyInput struct {
	Name        string
	Permissions []string
	PartnerID   *int32
	ExpiresAt   *time.Time
}

type ApiKeyService interface {
	// Issue returns the stored record and the one-time plaintext key.
	Issue(ctx context.Context, input IssueApiKeyInput) (*domain.ApiKey, string, error)
	List(ctx context.Context) ([]domain.ApiKey, error)
	Revoke(ctx context.Context, keyID int32) error
	// Authenticate resolves a presented plaintext key to its active,
	// unexpired record and stamps last_used.
	Authenticate(ctx context.Context, plaintext string) (*domain.ApiKey, error)
}

type EmailService interface {
	SendLeadClaimedNotification(ctx context.Context, customerEmail, customerName, carName, partnerName string) error
	SendLeadCompletedNotification(ctx context.Context, customerEmail, customerName, carName string, totalCents int32) error
	SendHoldLapsedNotification(ctx context.Context, partnerEmail, bookingNumber, carName string) error
	SendPasswordResetEmail(ctx context.Context, email, name, token string) error
}
