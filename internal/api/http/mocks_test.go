package http_test

import (
	"context"

	"carlink-backend/internal/domain"
	"carlink-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockBookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) CreateBooking(ctx context.Context, input service.CreateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) GetBooking(ctx context.Context, caller service.Caller, bookingID int32) (*domain.Booking, error) {
	args := m.Called(ctx, caller, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) ListPartnerBookings(ctx context.Context, caller service.Caller, partnerID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, caller, partnerID, status, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}
func (m *MockBookingService) ClaimBooking(ctx context.Context, caller service.Caller, bookingID int32) (*domain.Booking, error) {
	args := m.Called(ctx, caller, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) AdvanceBooking(ctx context.Context, caller service.Caller, bookingID int32, target domain.LeadStatus) (*domain.Booking, error) {
	args := m.Called(ctx, caller, bookingID, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) CancelBooking(ctx context.Context, caller service.Caller, bookingID int32) (*domain.Booking, error) {
	args := m.Called(ctx, caller, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) EditBooking(ctx context.Context, caller service.Caller, bookingID int32, input service.EditBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, caller, bookingID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

// MockCarService
type MockCarService struct {
	mock.Mock
}

func (m *MockCarService) ListPublicCars(ctx context.Context, filter domain.CarFilter, page, pageSize int32) ([]domain.Car, int32, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]domain.Car), args.Get(1).(int32), args.Error(2)
}
func (m *MockCarService) GetPublicCar(ctx context.Context, carID int32) (*domain.Car, error) {
	args := m.Called(ctx, carID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}
func (m *MockCarService) AddCar(ctx context.Context, caller service.Caller, car *domain.Car) error {
	args := m.Called(ctx, caller, car)
	return args.Error(0)
}
func (m *MockCarService) UpdateCar(ctx context.Context, caller service.Caller, car *domain.Car) error {
	args := m.Called(ctx, caller, car)
	return args.Error(0)
}
func (m *MockCarService) SetRentalStatus(ctx context.Context, caller service.Caller, carID int32, status domain.RentalStatus) error {
	args := m.Called(ctx, caller, carID, status)
	return args.Error(0)
}
func (m *MockCarService) ListPartnerCars(ctx context.Context, caller service.Caller, partnerID int32, page, pageSize int32) ([]domain.Car, int32, error) {
	args := m.Called(ctx, caller, partnerID, page, pageSize)
	return args.Get(0).([]domain.Car), args.Get(1).(int32), args.Error(2)
}
func (m *MockCarService) ApproveCar(ctx context.Context, carID int32, status domain.ApprovalStatus) error {
	args := m.Called(ctx, carID, status)
	return args.Error(0)
}

// MockCommissionService
type MockCommissionService struct {
	mock.Mock
}

func (m *MockCommissionService) ListByPartner(ctx context.Context, caller service.Caller, partnerID int32, status string, page, pageSize int32) ([]domain.CommissionLog, int32, error) {
	args := m.Called(ctx, caller, partnerID, status, page, pageSize)
	return args.Get(0).([]domain.CommissionLog), args.Get(1).(int32), args.Error(2)
}
func (m *MockCommissionService) ListAll(ctx context.Context, status string, page, pageSize int32) ([]domain.CommissionLog, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.CommissionLog), args.Get(1).(int32), args.Error(2)
}
func (m *MockCommissionService) MarkPaid(ctx context.Context, commissionLogID int32, targetStatus string) (*domain.CommissionLog, error) {
	args := m.Called(ctx, commissionLogID, targetStatus)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommissionLog), args.Error(1)
}

// MockApiKeyService
type MockApiKeyService struct {
	mock.Mock
}

func (m *MockApiKeyService) Issue(ctx context.Context, input service.IssueApiKeyInput) (*domain.ApiKey, string, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.ApiKey), args.String(1), args.Error(2)
}
func (m *MockApiKeyService) List(ctx context.Context) ([]domain.ApiKey, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ApiKey), args.Error(1)
}
func (m *MockApiKeyService) Revoke(ctx context.Context, keyID int32) error {
	args := m.Called(ctx, keyID)
	return args.Error(0)
}
func (m *MockApiKeyService) Authenticate(ctx context.Context, plaintext string) (*domain.ApiKey, error) {
	args := m.Called(ctx, plaintext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApiKey), args.Error(1)
}

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, input service.RegisterInput) (string, string, *domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(2) == nil {
		return args.String(0), args.String(1), nil, args.Error(3)
	}
	return args.String(0), args.String(1), args.Get(2).(*domain.User), args.Error(3)
}
func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, string, *domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(2) == nil {
		return args.String(0), args.String(1), nil, args.Error(3)
	}
	return args.String(0), args.String(1), args.Get(2).(*domain.User), args.Error(3)
}
func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.String(1), args.Error(2)
}
func (m *MockAuthService) ForgotPassword(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}
func (m *MockAuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	args := m.Called(ctx, token, newPassword)
	return args.Error(0)
}

// MockPartnerService
type MockPartnerService struct {
	mock.Mock
}

func (m *MockPartnerService) AddPartner(ctx context.Context, partner *domain.Partner) error {
	args := m.Called(ctx, partner)
	return args.Error(0)
}
func (m *MockPartnerService) UpdatePartner(ctx context.Context, partner *domain.Partner) error {
	args := m.Called(ctx, partner)
	return args.Error(0)
}
func (m *MockPartnerService) ListPartners(ctx context.Context, page, pageSize int32) ([]domain.Partner, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Partner), args.Get(1).(int32), args.Error(2)
}
