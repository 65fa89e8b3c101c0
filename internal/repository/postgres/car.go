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

const carColumns = `id, partner_id, brand, model, year, license_plate, category, transmission, fuel,
	price_per_day_cents, approval_status, rental_status, created_on, updated_on`

type carRepository struct {
	db *sql.DB
}

func NewCarRepository(db *sql.DB) repository.CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) Create(ctx context.Context, c *domain.Car) error {
	now := time.Now()
	query := `INSERT INTO cars (partner_id, brand, model, year, license_plate, category, transmission, fuel,
	              price_per_day_cents, approval_status, rental_status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		c.PartnerID, c.Brand, c.Model, c.Year, c.LicensePlate, c.Category, c.Transmission, c.Fuel,
		c.PricePerDayCents, c.ApprovalStatus, c.RentalStatus, now, now).Scan(&c.ID)
}

func (r *carRepository) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	c := &domain.Car{}
	query := `SELECT ` + carColumns + ` FROM cars WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.PartnerID, &c.Brand, &c.Model, &c.Year, &c.LicensePlate, &c.Category, &c.Transmission,
		&c.Fuel, &c.PricePerDayCents, &c.ApprovalStatus, &c.RentalStatus, &c.CreatedOn, &c.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *carRepository) Update(ctx context.Context, c *domain.Car) error {
	query := `UPDATE cars SET brand = $1, model = $2, year = $3, license_plate = $4, category = $5,
	              transmission = $6, fuel = $7, price_per_day_cents = $8, updated_on = $9
	          WHERE id = $10`
	res, err := r.db.ExecContext(ctx, query,
		c.Brand, c.Model, c.Year, c.LicensePlate, c.Category, c.Transmission, c.Fuel,
		c.PricePerDayCents, time.Now(), c.ID)
	if err != nil {
		return err
	}
	return noRowsAsNotFound(res)
}

func (r *carRepository) SetApproval(ctx context.Context, id int32, status domain.ApprovalStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE cars SET approval_status = $1, updated_on = $2 WHERE id = $3`, status, time.Now(), id)
	if err != nil {
		return err
	}
	return noRowsAsNotFound(res)
}

func (r *carRepository) SetRentalStatus(ctx context.Context, id int32, status domain.RentalStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE cars SET rental_status = $1, updated_on = $2 WHERE id = $3`, status, time.Now(), id)
	if err != nil {
		return err
	}
	return noRowsAsNotFound(res)
}

// ListPublic applies the reservation gate: a car under an unexpired NEW-status
// hold is absent from results until the hold lapses or the lead is claimed.
// This is a point-in-time filter, not a lock.
func (r *carRepository) ListPublic(ctx context.Context, filter domain.CarFilter, now time.Time, page, pageSize int32) ([]domain.Car, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + carColumns + ` FROM cars c
	          WHERE c.approval_status = 'APPROVED' AND c.rental_status = 'AVAILABLE'
	          AND NOT EXISTS (
	              SELECT 1 FROM bookings b
	              WHERE b.car_id = c.id AND b.lead_status = 'NEW' AND b.reserved_until > $1)`

	args := []interface{}{now}
	argIdx := 2
	if filter.Category != "" {
		query += fmt.Sprintf(" AND c.category = $%d", argIdx)
		args = append(args, filter.Category)
		argIdx++
	}
	if filter.Transmission != "" {
		query += fmt.Sprintf(" AND c.transmission = $%d", argIdx)
		args = append(args, filter.Transmission)
		argIdx++
	}
	if filter.Fuel != "" {
		query += fmt.Sprintf(" AND c.fuel = $%d", argIdx)
		args = append(args, filter.Fuel)
		argIdx++
	}
	if filter.MaxPriceCents > 0 {
		query += fmt.Sprintf(" AND c.price_per_day_cents <= $%d", argIdx)
		args = append(args, filter.MaxPriceCents)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY c.created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	return r.queryCars(ctx, query, args, count)
}

func (r *carRepository) ListByPartner(ctx context.Context, partnerID int32, page, pageSize int32) ([]domain.Car, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	if err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM cars WHERE partner_id = $1`, partnerID).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + carColumns + ` FROM cars WHERE partner_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	return r.queryCars(ctx, query, []interface{}{partnerID, pageSize, offset}, count)
}

func (r *carRepository) queryCars(ctx context.Context, query string, args []interface{}, count int32) ([]domain.Car, int32, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		var c domain.Car
		if err := rows.Scan(
			&c.ID, &c.PartnerID, &c.Brand, &c.Model, &c.Year, &c.LicensePlate, &c.Category, &c.Transmission,
			&c.Fuel, &c.PricePerDayCents, &c.ApprovalStatus, &c.RentalStatus, &c.CreatedOn, &c.UpdatedOn); err != nil {
			return nil, 0, err
		}
		cars = append(cars, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return cars, count, nil
}

func noRowsAsNotFound(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
