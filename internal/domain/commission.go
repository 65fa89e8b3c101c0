package domain

import "time"

type CommissionStatus string

const (
	CommissionStatusPending CommissionStatus = "PENDING"
	CommissionStatusPaid    CommissionStatus = "PAID"
)

// CommissionLog is derived from a completed booking and the partner's
// commission rate. Immutable except for the one-way PENDING to PAID
// transition, which stamps PaidAt exactly once.
type CommissionLog struct {
	ID          int32            `json:"id"`
	PartnerID   int32            `json:"partner_id"`
	BookingID   int32            `json:"booking_id"`
	AmountCents int32            `json:"amount_cents"`
	Status      CommissionStatus `json:"status"`
	PaidAt      *time.Time       `json:"paid_at,omitempty"`
	CreatedOn   time.Time        `json:"created_on"`
}
