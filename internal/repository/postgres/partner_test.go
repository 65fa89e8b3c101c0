package postgres_test

import (
	"context"
	"testing"
	"time"

	"carlink-backend/internal/domain"
	"carlink-backend/internal/repository"
	"carlink-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func partnerRowColumns() []string {
	return []string{"id", "name", "email", "phone_number", "address", "commission_rate_pct", "status",
		"created_on", "updated_on"}
}

func TestPartnerRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPartnerRepository(db)
	ctx := context.Background()

	p := &domain.Partner{
		Name:              "Lisboa Rentals",
		Email:             "contact@lisboarentals.pt",
		PhoneNumber:       "+351210000000",
		Address:           "Av. da Liberdade 1, Lisboa",
		CommissionRatePct: 12.5,
		Status:            domain.PartnerStatusActive,
	}

	mock.ExpectQuery("INSERT INTO partners").
		WithArgs(p.Name, p.Email, p.PhoneNumber, p.Address, p.CommissionRatePct, p.Status,
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	assert.NoError(t, repo.Create(ctx, p))
	assert.Equal(t, int32(3), p.ID)
}

func TestPartnerRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPartnerRepository(db)
	ctx := context.Background()

	p := &domain.Partner{
		ID:                3,
		Name:              "Lisboa Rentals",
		Email:             "contact@lisboarentals.pt",
		CommissionRatePct: 15.0,
		Status:            domain.PartnerStatusSuspended,
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE partners SET name").
			WithArgs(p.Name, p.Email, p.PhoneNumber, p.Address, p.CommissionRatePct, p.Status,
				sqlmock.AnyArg(), p.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Update(ctx, p))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE partners SET name").
			WithArgs(p.Name, p.Email, p.PhoneNumber, p.Address, p.CommissionRatePct, p.Status,
				sqlmock.AnyArg(), p.ID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, p)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestPartnerRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPartnerRepository(db)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery("SELECT (.+) FROM partners ORDER BY created_on").
		WithArgs(int32(20), int32(0)).
		WillReturnRows(sqlmock.NewRows(partnerRowColumns()).
			AddRow(3, "Lisboa Rentals", "contact@lisboarentals.pt", "+351210000000", "Av. da Liberdade 1", 12.5, "ACTIVE", now, now).
			AddRow(4, "Porto Cars", "hello@portocars.pt", "+351220000000", "Rua de Cedofeita 2", 10.0, "ACTIVE", now, now))

	partners, total, err := repo.List(ctx, 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int32(2), total)
	assert.Len(t, partners, 2)
	assert.Equal(t, "Porto Cars", partners[1].Name)
}
