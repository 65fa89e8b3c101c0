package postgres

import (
	"database/sql"

	"carlink-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.PartnerRepository
	repository.CarRepository
	repository.BookingRepository
	repository.CommissionRepository
	repository.ApiKeyRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                   db,
		UserRepository:       NewUserRepository(db),
		PartnerRepository:    NewPartnerRepository(db),
		CarRepository:        NewCarRepository(db),
		BookingRepository:    NewBookingRepository(db),
		CommissionRepository: NewCommissionRepository(db),
		ApiKeyRepository:     NewApiKeyRepository(db),
	}
}
