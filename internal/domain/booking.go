package domain

import "time"

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "NEW"
	LeadStatusClaimed   LeadStatus = "CLAIMED"
	LeadStatusPickup    LeadStatus = "PICKUP"
	LeadStatusActive    LeadStatus = "ACTIVE"
	LeadStatusReturn    LeadStatus = "RETURN"
	LeadStatusCompleted LeadStatus = "COMPLETED"
	LeadStatusCancelled LeadStatus = "CANCELLED"
)

// leadPipeline is the forward path of a lead from creation to completion.
// Cancellation is handled separately: it is reachable from any non-terminal state.
var leadPipeline = map[LeadStatus]LeadStatus{
	LeadStatusNew:     LeadStatusClaimed,
	LeadStatusClaimed: LeadStatusPickup,
	LeadStatusPickup:  LeadStatusActive,
	LeadStatusActive:  LeadStatusReturn,
	LeadStatusReturn:  LeadStatusCompleted,
}

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusClaimed, LeadStatusPickup, LeadStatusActive,
		LeadStatusReturn, LeadStatusCompleted, LeadStatusCancelled:
		return true
	}
	return false
}

func (s LeadStatus) IsTerminal() bool {
	return s == LeadStatusCompleted || s == LeadStatusCancelled
}

// Next returns the next status in the pipeline, if any.
func (s LeadStatus) Next() (LeadStatus, bool) {
	next, ok := leadPipeline[s]
	return next, ok
}

// CanTransitionTo reports whether the status may move to target: one step
// forward along the pipeline, or to CANCELLED from any non-terminal state.
func (s LeadStatus) CanTransitionTo(target LeadStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if target == LeadStatusCancelled {
		return true
	}
	next, ok := leadPipeline[s]
	return ok && next == target
}

// Editable reports whether booking fields may still be changed by the partner.
// Once a lead advances past CLAIMED the schedule is committed.
func (s LeadStatus) Editable() bool {
	return s == LeadStatusNew || s == LeadStatusClaimed
}

// Booking is a customer's rental request (a "lead") tracked through the
// status pipeline. Customer identity fields are denormalized copies taken at
// creation time; CustomerID is set only when the customer was logged in.
type Booking struct {
	ID              int32      `json:"id"`
	BookingNumber   string     `json:"booking_number"`
	CustomerID      *int32     `json:"customer_id,omitempty"`
	CustomerName    string     `json:"customer_name"`
	CustomerPhone   string     `json:"customer_phone"`
	CustomerEmail   string     `json:"customer_email"`
	CarID           int32      `json:"car_id"`
	PartnerID       int32      `json:"partner_id"`
	PickupDatetime  time.Time  `json:"pickup_datetime"`
	ReturnDatetime  time.Time  `json:"return_datetime"`
	PickupLocation  string     `json:"pickup_location"`
	ReturnLocation  string     `json:"return_location"`
	TotalPriceCents int32      `json:"total_price_cents"`
	LeadStatus      LeadStatus `json:"lead_status"`
	// ReservedUntil is only meaningful while LeadStatus is NEW; the public
	// listing hides the car until it passes or the lead is claimed.
	ReservedUntil *time.Time `json:"reserved_until,omitempty"`
	CreatedOn     time.Time  `json:"created_on"`
	UpdatedOn     time.Time  `json:"updated_on"`
}
