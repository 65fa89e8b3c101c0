package domain

import "time"

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "PENDING"
	ApprovalStatusApproved ApprovalStatus = "APPROVED"
	ApprovalStatusRejected ApprovalStatus = "REJECTED"
)

func (s ApprovalStatus) Valid() bool {
	switch s {
	case ApprovalStatusPending, ApprovalStatusApproved, ApprovalStatusRejected:
		return true
	}
	return false
}

type RentalStatus string

const (
	RentalStatusAvailable   RentalStatus = "AVAILABLE"
	RentalStatusRented      RentalStatus = "RENTED"
	RentalStatusMaintenance RentalStatus = "MAINTENANCE"
)

func (s RentalStatus) Valid() bool {
	switch s {
	case RentalStatusAvailable, RentalStatusRented, RentalStatusMaintenance:
		return true
	}
	return false
}

type CarCategory string

const (
	CarCategoryEco    CarCategory = "ECO"
	CarCategorySedan  CarCategory = "SEDAN"
	CarCategorySUV    CarCategory = "SUV"
	CarCategoryPickup CarCategory = "PICKUP"
	CarCategoryVan    CarCategory = "VAN"
)

type Transmission string

const (
	TransmissionAuto   Transmission = "AUTO"
	TransmissionManual Transmission = "MANUAL"
)

type FuelType string

const (
	FuelTypePetrol   FuelType = "PETROL"
	FuelTypeDiesel   FuelType = "DIESEL"
	FuelTypeHybrid   FuelType = "HYBRID"
	FuelTypeElectric FuelType = "ELECTRIC"
)

// Car is owned by exactly one Partner. It appears in the public listing only
// when approved, available, and not under an active reservation hold.
type Car struct {
	ID               int32          `json:"id"`
	PartnerID        int32          `json:"partner_id"`
	Brand            string         `json:"brand"`
	Model            string         `json:"model"`
	Year             int32          `json:"year"`
	LicensePlate     string         `json:"license_plate"`
	Category         CarCategory    `json:"category"`
	Transmission     Transmission   `json:"transmission"`
	Fuel             FuelType       `json:"fuel"`
	PricePerDayCents int32          `json:"price_per_day_cents"`
	ApprovalStatus   ApprovalStatus `json:"approval_status"`
	RentalStatus     RentalStatus   `json:"rental_status"`
	CreatedOn        time.Time      `json:"created_on"`
	UpdatedOn        time.Time      `json:"updated_on"`
}

// CarFilter narrows the public car listing. Zero values mean "no constraint".
type CarFilter struct {
	Category      CarCategory  `json:"category,omitempty"`
	Transmission  Transmission `json:"transmission,omitempty"`
	Fuel          FuelType     `json:"fuel,omitempty"`
	MaxPriceCents int32        `json:"max_price_cents,omitempty"`
}
