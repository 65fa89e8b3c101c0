package http

import (
	"net/http"
	"strconv"

	"carlink-backend/internal/apperr"
	"carlink-backend/internal/domain"
	"carlink-backend/internal/service"
)

type CarHandler struct {
	carSvc service.CarService
}

func NewCarHandler(carSvc service.CarService) *CarHandler {
	return &CarHandler{carSvc: carSvc}
}

// ListPublic serves the customer-facing catalogue. Only approved, available,
// unreserved cars are returned.
func (h *CarHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	filter, err := carFilterFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	page, pageSize := pagination(r)

	cars, total, err := h.carSvc.ListPublicCars(r.Context(), filter, page, pageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writePaged(w, cars, total, page, pageSize)
}

func (h *CarHandler) GetPublic(w http.ResponseWriter, r *http.Request) {
	carID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	car, err := h.carSvc.GetPublicCar(r.Context(), carID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

func (h *CarHandler) Add(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFrom(r.Context())
	if !ok {
		writeError(w, r, apperr.Unauthorized("authentication required"))
		return
	}

	var car domain.Car
	if err := decodeBody(r, &car); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.carSvc.AddCar(r.Context(), caller, &car); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, car)
}

func (h *CarHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFrom(r.Context())
	if !ok {
		writeError(w, r, apperr.Unauthorized("authentication required"))
		return
	}
	carID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var car domain.Car
	if err := decodeBody(r, &car); err != nil {
		writeError(w, r, err)
		return
	}
	car.ID = carID

	if err := h.carSvc.UpdateCar(r.Context(), caller, &car); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

type rentalStatusRequest struct {
	RentalStatus domain.RentalStatus `json:"rental_status"`
}

func (h *CarHandler) SetRentalStatus(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFrom(r.Context())
	if !ok {
		writeError(w, r, apperr.Unauthorized("authentication required"))
		return
	}
	carID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req rentalStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.carSvc.SetRentalStatus(r.Context(), caller, carID, req.RentalStatus); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "rental status updated"})
}

func (h *CarHandler) ListPartner(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFrom(r.Context())
	if !ok {
		writeError(w, r, apperr.Unauthorized("authentication required"))
		return
	}
	partnerID, err := partnerIDForCaller(r, caller)
	if err != nil {
		writeError(w, r, err)
		return
	}
	page, pageSize := pagination(r)

	cars, total, err := h.carSvc.ListPartnerCars(r.Context(), caller, partnerID, page, pageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writePaged(w, cars, total, page, pageSize)
}

type approvalRequest struct {
	ApprovalStatus domain.ApprovalStatus `json:"approval_status"`
}

func (h *CarHandler) Approve(w http.ResponseWriter, r *http.Request) {
	carID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req approvalRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.carSvc.ApproveCar(r.Context(), carID, req.ApprovalStatus); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "approval status updated"})
}

func carFilterFromQuery(r *http.Request) (domain.CarFilter, error) {
	var filter domain.CarFilter
	q := r.URL.Query()

	filter.Category = domain.CarCategory(q.Get("category"))
	filter.Transmission = domain.Transmission(q.Get("transmission"))
	filter.Fuel = domain.FuelType(q.Get("fuel"))

	if raw := q.Get("max_price_cents"); raw != "" {
		maxPrice, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || maxPrice < 0 {
			return filter, apperr.Validation("max_price_cents must be a non-negative integer")
		}
		filter.MaxPriceCents = int32(maxPrice)
	}
	return filter, nil
}

// partnerIDForCaller resolves which partner's resources a request targets.
// Partner admins are pinned to their own partner; platform admins may select
// one with the partner_id query parameter.
func partnerIDForCaller(r *http.Request, caller service.Caller) (int32, error) {
	if caller.PartnerID != nil {
		return *caller.PartnerID, nil
	}
	raw := r.URL.Query().Get("partner_id")
	if raw == "" {
		return 0, apperr.Validation("partner_id is required")
	}
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, apperr.Validation("partner_id must be a positive integer")
	}
	return int32(id), nil
}
