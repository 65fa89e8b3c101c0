package service_test

import (
	"context"
	"time"

	"carlink-backend/internal/domain"
	"carlink-backend/internal/security"

	"github.com/stretchr/testify/mock"
)

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) CreateWithHoldCheck(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByPartner(ctx context.Context, partnerID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, partnerID, status, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}
func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id int32, from, to domain.LeadStatus) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}
func (m *MockBookingRepo) UpdateEditable(ctx context.Context, booking *domain.Booking, fromStatus domain.LeadStatus) error {
	args := m.Called(ctx, booking, fromStatus)
	return args.Error(0)
}
func (m *MockBookingRepo) ListExpiredHolds(ctx context.Context, now time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, now)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

// MockCarRepo
type MockCarRepo struct {
	mock.Mock
}

func (m *MockCarRepo) Create(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}
func (m *MockCarRepo) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}
func (m *MockCarRepo) Update(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}
func (m *MockCarRepo) SetApproval(ctx context.Context, id int32, status domain.ApprovalStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockCarRepo) SetRentalStatus(ctx context.Context, id int32, status domain.RentalStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockCarRepo) ListPublic(ctx context.Context, filter domain.CarFilter, now time.Time, page, pageSize int32) ([]domain.Car, int32, error) {
	args := m.Called(ctx, filter, now, page, pageSize)
	return args.Get(0).([]domain.Car), args.Get(1).(int32), args.Error(2)
}
func (m *MockCarRepo) ListByPartner(ctx context.Context, partnerID int32, page, pageSize int32) ([]domain.Car, int32, error) {
	args := m.Called(ctx, partnerID, page, pageSize)
	return args.Get(0).([]domain.Car), args.Get(1).(int32), args.Error(2)
}

// MockPartnerRepo
type MockPartnerRepo struct {
	mock.Mock
}

func (m *MockPartnerRepo) Create(ctx context.Context, partner *domain.Partner) error {
	args := m.Called(ctx, partner)
	return args.Error(0)
}
func (m *MockPartnerRepo) GetByID(ctx context.Context, id int32) (*domain.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}
func (m *MockPartnerRepo) Update(ctx context.Context, partner *domain.Partner) error {
	args := m.Called(ctx, partner)
	return args.Error(0)
}
func (m *MockPartnerRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Partner, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Partner), args.Get(1).(int32), args.Error(2)
}

// MockCommissionRepo
type MockCommissionRepo struct {
	mock.Mock
}

func (m *MockCommissionRepo) GetByID(ctx context.Context, id int32) (*domain.CommissionLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommissionLog), args.Error(1)
}
func (m *MockCommissionRepo) ListByPartner(ctx context.Context, partnerID int32, status string, page, pageSize int32) ([]domain.CommissionLog, int32, error) {
	args := m.Called(ctx, partnerID, status, page, pageSize)
	return args.Get(0).([]domain.CommissionLog), args.Get(1).(int32), args.Error(2)
}
func (m *MockCommissionRepo) ListAll(ctx context.Context, status string, page, pageSize int32) ([]domain.CommissionLog, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.CommissionLog), args.Get(1).(int32), args.Error(2)
}
func (m *MockCommissionRepo) MarkPaid(ctx context.Context, id int32, paidAt time.Time) (*domain.CommissionLog, error) {
	args := m.Called(ctx, id, paidAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommissionLog), args.Error(1)
}
func (m *MockCommissionRepo) CreateMissingForCompleted(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockApiKeyRepo
type MockApiKeyRepo struct {
	mock.Mock
}

func (m *MockApiKeyRepo) Create(ctx context.Context, key *domain.ApiKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
func (m *MockApiKeyRepo) GetByHash(ctx context.Context, keyHash string) (*domain.ApiKey, error) {
	args := m.Called(ctx, keyHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApiKey), args.Error(1)
}
func (m *MockApiKeyRepo) List(ctx context.Context) ([]domain.ApiKey, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ApiKey), args.Error(1)
}
func (m *MockApiKeyRepo) Deactivate(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockApiKeyRepo) TouchLastUsed(ctx context.Context, id int32, usedAt time.Time) error {
	args := m.Called(ctx, id, usedAt)
	return args.Error(0)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdatePassword(ctx context.Context, id int32, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendLeadClaimedNotification(ctx context.Context, customerEmail, customerName, carName, partnerName string) error {
	args := m.Called(ctx, customerEmail, customerName, carName, partnerName)
	return args.Error(0)
}
func (m *MockEmailService) SendLeadCompletedNotification(ctx context.Context, customerEmail, customerName, carName string, totalCents int32) error {
	args := m.Called(ctx, customerEmail, customerName, carName, totalCents)
	return args.Error(0)
}
func (m *MockEmailService) SendHoldLapsedNotification(ctx context.Context, partnerEmail, bookingNumber, carName string) error {
	args := m.Called(ctx, partnerEmail, bookingNumber, carName)
	return args.Error(0)
}
func (m *MockEmailService) SendPasswordResetEmail(ctx context.Context, email, name, token string) error {
	args := m.Called(ctx, email, name, token)
	return args.Error(0)
}

// MockTokenManager
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateAccessToken(user *domain.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) GenerateRefreshToken(user *domain.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) GenerateResetToken(user *domain.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) ValidateToken(tokenString string) (*security.UserClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.UserClaims), args.Error(1)
}
