package domain

import "time"

type PartnerStatus string

const (
	PartnerStatusActive    PartnerStatus = "ACTIVE"
	PartnerStatusSuspended PartnerStatus = "SUSPENDED"
)

func (s PartnerStatus) Valid() bool {
	switch s {
	case PartnerStatusActive, PartnerStatusSuspended:
		return true
	}
	return false
}

// Partner is a rental shop. It owns cars, receives leads, and owes the
// platform a commission on completed bookings at CommissionRatePct.
type Partner struct {
	ID                int32         `json:"id"`
	Name              string        `json:"name"`
	Email             string        `json:"email"`
	PhoneNumber       string        `json:"phone_number"`
	Address           string        `json:"address"`
	CommissionRatePct float64       `json:"commission_rate_pct"`
	Status            PartnerStatus `json:"status"`
	CreatedOn         time.Time     `json:"created_on"`
	UpdatedOn         time.Time     `json:"updated_on"`
}
