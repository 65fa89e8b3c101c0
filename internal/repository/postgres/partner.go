package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carlink-backend/internal/domain"
	"carlink-backend/internal/repository"
)

const partnerColumns = `id, name, email, phone_number, address, commission_rate_pct, status, created_on, updated_on`

type partnerRepository struct {
	db *sql.DB
}

func NewPartnerRepository(db *sql.DB) repository.PartnerRepository {
	return &partnerRepository{db: db}
}

func (r *partnerRepository) Create(ctx context.Context, p *domain.Partner) error {
	now := time.Now()
	query := `INSERT INTO partners (name, email, phone_number, address, commission_rate_pct, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		p.Name, p.Email, p.PhoneNumber, p.Address, p.CommissionRatePct, p.Status, now, now).Scan(&p.ID)
}

func (r *partnerRepository) GetByID(ctx context.Context, id int32) (*domain.Partner, error) {
	p := &domain.Partner{}
	query := `SELECT ` + partnerColumns + ` FROM partners WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Email, &p.PhoneNumber, &p.Address, &p.CommissionRatePct,
		&p.Status, &p.CreatedOn, &p.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *partnerRepository) Update(ctx context.Context, p *domain.Partner) error {
	query := `UPDATE partners SET name = $1, email = $2, phone_number = $3, address = $4,
	              commission_rate_pct = $5, status = $6, updated_on = $7
	          WHERE id = $8`
	res, err := r.db.ExecContext(ctx, query,
		p.Name, p.Email, p.PhoneNumber, p.Address, p.CommissionRatePct, p.Status, time.Now(), p.ID)
	if err != nil {
		return err
	}
	return noRowsAsNotFound(res)
}

func (r *partnerRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Partner, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM partners`).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + partnerColumns + ` FROM partners ORDER BY created_on DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var partners []domain.Partner
	for rows.Next() {
		var p domain.Partner
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Email, &p.PhoneNumber, &p.Address, &p.CommissionRatePct,
			&p.Status, &p.CreatedOn, &p.UpdatedOn); err != nil {
			return nil, 0, err
		}
		partners = append(partners, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return partners, count, nil
}
