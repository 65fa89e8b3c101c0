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

const bookingColumns = `id, booking_number, customer_id, customer_name, customer_phone, customer_email,
	car_id, partner_id, pickup_datetime, return_datetime, pickup_location, return_location,
	total_price_cents, lead_status, reserved_until, created_on, updated_on`

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) CreateWithHoldCheck(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Per-car advisory lock: two transactions racing for the same car
	// serialize here, so both cannot pass the hold check below. Released
	// automatically at commit/rollback.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, b.CarID); err != nil {
		return err
	}

	var held bool
	holdQuery := `SELECT EXISTS (
		SELECT 1 FROM bookings
		WHERE car_id = $1 AND lead_status = 'NEW' AND reserved_until > $2)`
	if err := tx.QueryRowContext(ctx, holdQuery, b.CarID, time.Now()).Scan(&held); err != nil {
		return err
	}
	if held {
		return repository.ErrConflict
	}

	now := time.Now()
	insert := `INSERT INTO bookings (booking_number, customer_id, customer_name, customer_phone, customer_email,
	               car_id, partner_id, pickup_datetime, return_datetime, pickup_location, return_location,
	               total_price_cents, lead_status, reserved_until, created_on, updated_on)
	           VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16) RETURNING id`
	err = tx.QueryRowContext(ctx, insert,
		b.BookingNumber, b.CustomerID, b.CustomerName, b.CustomerPhone, b.CustomerEmail,
		b.CarID, b.PartnerID, b.PickupDatetime, b.ReturnDatetime, b.PickupLocation, b.ReturnLocation,
		b.TotalPriceCents, b.LeadStatus, b.ReservedUntil, now, now).Scan(&b.ID)
	if err != nil {
		return err
	}
	b.CreatedOn = now
	b.UpdatedOn = now

	return tx.Commit()
}

func (r *bookingRepository) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	b := &domain.Booking{}
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.BookingNumber, &b.CustomerID, &b.CustomerName, &b.CustomerPhone, &b.CustomerEmail,
		&b.CarID, &b.PartnerID, &b.PickupDatetime, &b.ReturnDatetime, &b.PickupLocation, &b.ReturnLocation,
		&b.TotalPriceCents, &b.LeadStatus, &b.ReservedUntil, &b.CreatedOn, &b.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) ListByPartner(ctx context.Context, partnerID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE partner_id = $1`

	args := []interface{}{partnerID}
	argIdx := 2
	if status != "" {
		query += " AND lead_status = $2"
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(
			&b.ID, &b.BookingNumber, &b.CustomerID, &b.CustomerName, &b.CustomerPhone, &b.CustomerEmail,
			&b.CarID, &b.PartnerID, &b.PickupDatetime, &b.ReturnDatetime, &b.PickupLocation, &b.ReturnLocation,
			&b.TotalPriceCents, &b.LeadStatus, &b.ReservedUntil, &b.CreatedOn, &b.UpdatedOn); err != nil {
			return nil, 0, err
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return bookings, count, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id int32, from, to domain.LeadStatus) error {
	query := `UPDATE bookings SET lead_status = $1, updated_on = $2 WHERE id = $3 AND lead_status = $4`
	res, err := r.db.ExecContext(ctx, query, to, time.Now(), id, from)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return r.missOrConflict(ctx, id)
	}
	return nil
}

func (r *bookingRepository) UpdateEditable(ctx context.Context, b *domain.Booking, fromStatus domain.LeadStatus) error {
	query := `UPDATE bookings SET customer_name = $1, customer_phone = $2, customer_email = $3,
	              pickup_datetime = $4, return_datetime = $5, pickup_location = $6, return_location = $7,
	              total_price_cents = $8, updated_on = $9
	          WHERE id = $10 AND lead_status = $11`
	res, err := r.db.ExecContext(ctx, query,
		b.CustomerName, b.CustomerPhone, b.CustomerEmail,
		b.PickupDatetime, b.ReturnDatetime, b.PickupLocation, b.ReturnLocation,
		b.TotalPriceCents, time.Now(), b.ID, fromStatus)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return r.missOrConflict(ctx, b.ID)
	}
	return nil
}

func (r *bookingRepository) ListExpiredHolds(ctx context.Context, now time.Time) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
	          WHERE lead_status = 'NEW' AND reserved_until IS NOT NULL AND reserved_until <= $1
	          ORDER BY reserved_until`
	rows, err := r.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(
			&b.ID, &b.BookingNumber, &b.CustomerID, &b.CustomerName, &b.CustomerPhone, &b.CustomerEmail,
			&b.CarID, &b.PartnerID, &b.PickupDatetime, &b.ReturnDatetime, &b.PickupLocation, &b.ReturnLocation,
			&b.TotalPriceCents, &b.LeadStatus, &b.ReservedUntil, &b.CreatedOn, &b.UpdatedOn); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return bookings, nil
}

// missOrConflict decides whether a zero-row conditional update was a missing
// booking or a status that moved underneath the caller.
func (r *bookingRepository) missOrConflict(ctx context.Context, id int32) error {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return repository.ErrNotFound
	}
	return repository.ErrConflict
}
