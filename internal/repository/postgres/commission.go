package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"carlink-backend/internal/domain"
	"carlink-backend/internal/repository"
)

const commissionColumns = `id, partner_id, booking_id, amount_cents, status, paid_at, created_on`

type commissionRepository struct {
	db *sql.DB
}

func NewCommissionRepository(db *sql.DB) repository.CommissionRepository {
	return &commissionRepository{db: db}
}

func (r *commissionRepository) GetByID(ctx context.Context, id int32) (*domain.CommissionLog, error) {
	c := &domain.CommissionLog{}
	query := `SELECT ` + commissionColumns + ` FROM commission_logs WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.PartnerID, &c.BookingID, &c.AmountCents, &c.Status, &c.PaidAt, &c.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *commissionRepository) ListByPartner(ctx context.Context, partnerID int32, status string, page, pageSize int32) ([]domain.CommissionLog, int32, error) {
	query := `SELECT ` + commissionColumns + ` FROM commission_logs WHERE partner_id = $1`
	args := []interface{}{partnerID}
	if status != "" {
		query += " AND status = $2"
		args = append(args, status)
	}
	return r.list(ctx, query, args, page, pageSize)
}

func (r *commissionRepository) ListAll(ctx context.Context, status string, page, pageSize int32) ([]domain.CommissionLog, int32, error) {
	query := `SELECT ` + commissionColumns + ` FROM commission_logs WHERE true`
	var args []interface{}
	if status != "" {
		query += " AND status = $1"
		args = append(args, status)
	}
	return r.list(ctx, query, args, page, pageSize)
}

func (r *commissionRepository) list(ctx context.Context, query string, args []interface{}, page, pageSize int32) ([]domain.CommissionLog, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	argIdx := len(args) + 1
	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var logs []domain.CommissionLog
	for rows.Next() {
		var c domain.CommissionLog
		if err := rows.Scan(&c.ID, &c.PartnerID, &c.BookingID, &c.AmountCents, &c.Status, &c.PaidAt, &c.CreatedOn); err != nil {
			return nil, 0, err
		}
		logs = append(logs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return logs, count, nil
}

// MarkPaid is a one-way ratchet: the conditional update succeeds at most once
// per record, so a concurrent second attempt loses without a read-then-write
// race window.
func (r *commissionRepository) MarkPaid(ctx context.Context, id int32, paidAt time.Time) (*domain.CommissionLog, error) {
	query := `UPDATE commission_logs SET status = 'PAID', paid_at = $1 WHERE id = $2 AND status = 'PENDING'`
	res, err := r.db.ExecContext(ctx, query, paidAt, id)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		var exists bool
		if err := r.db.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM commission_logs WHERE id = $1)`, id).Scan(&exists); err != nil {
			return nil, err
		}
		if !exists {
			return nil, repository.ErrNotFound
		}
		return nil, repository.ErrConflict
	}
	return r.GetByID(ctx, id)
}

func (r *commissionRepository) CreateMissingForCompleted(ctx context.Context) (int64, error) {
	query := `INSERT INTO commission_logs (partner_id, booking_id, amount_cents, status, created_on)
	          SELECT b.partner_id, b.id,
	                 ROUND(b.total_price_cents * p.commission_rate_pct / 100.0)::int,
	                 'PENDING', $1
	          FROM bookings b
	          JOIN partners p ON p.id = b.partner_id
	          WHERE b.lead_status = 'COMPLETED'
	            AND NOT EXISTS (SELECT 1 FROM commission_logs c WHERE c.booking_id = b.id)`
	res, err := r.db.ExecContext(ctx, query, time.Now())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
