package http

import (
	"net/http"
	"time"

	"carlink-backend/internal/apperr"
	"carlink-backend/internal/domain"
	"carlink-backend/internal/service"
)

type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

type createBookingRequest struct {
	CarID          int32     `json:"car_id"`
	CustomerName   string    `json:"customer_name"`
	CustomerPhone  string    `json:"customer_phone"`
	CustomerEmail  string    `json:"customer_email"`
	PickupDatetime time.Time `json:"pickup_datetime"`
	ReturnDatetime time.Time `json:"return_datetime"`
	PickupLocation string    `json:"pickup_location"`
	ReturnLocation string    `json:"return_location"`
}

// Create accepts bookings from both guests and logged-in customers. When a
// bearer token is present the booking is linked to that account.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	input := service.CreateBookingInput{
		CarID:          req.CarID,
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
		CustomerEmail:  req.CustomerEmail,
		PickupDatetime: req.PickupDatetime,
		ReturnDatetime: req.ReturnDatetime,
		PickupLocation: req.PickupLocation,
		ReturnLocation: req.ReturnLocation,
	}
	if caller, ok := CallerFrom(r.Context()); ok {
		userID := caller.UserID
		input.CustomerID = &userID
	}

	booking, err := h.bookingSvc.CreateBooking(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFrom(r.Context())
	if !ok {
		writeError(w, r, apperr.Unauthorized("authentication required"))
		return
	}
	bookingID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	booking, err := h.bookingSvc.GetBooking(r.Context(), caller, bookingID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) ListPartnerLeads(w http.ResponseWriter, r *http.Request) {
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
	status := r.URL.Query().Get("status")

	bookings, total, err := h.bookingSvc.ListPartnerBookings(r.Context(), caller, partnerID, status, page, pageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writePaged(w, bookings, total, page, pageSize)
}

func (h *BookingHandler) Claim(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFrom(r.Context())
	if !ok {
		writeError(w, r, apperr.Unauthorized("authentication required"))
		return
	}
	bookingID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	booking, err := h.bookingSvc.ClaimBooking(r.Context(), caller, bookingID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

type advanceStatusRequest struct {
	LeadStatus domain.LeadStatus `json:"lead_status"`
}

func (h *BookingHandler) AdvanceStatus(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFrom(r.Context())
	if !ok {
		writeError(w, r, apperr.Unauthorized("authentication required"))
		return
	}
	bookingID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req advanceStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	booking, err := h.bookingSvc.AdvanceBooking(r.Context(), caller, bookingID, req.LeadStatus)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFrom(r.Context())
	if !ok {
		writeError(w, r, apperr.Unauthorized("authentication required"))
		return
	}
	bookingID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	booking, err := h.bookingSvc.CancelBooking(r.Context(), caller, bookingID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

type editBookingRequest struct {
	CustomerName   *string    `json:"customer_name"`
	CustomerPhone  *string    `json:"customer_phone"`
	CustomerEmail  *string    `json:"customer_email"`
	PickupDatetime *time.Time `json:"pickup_datetime"`
	ReturnDatetime *time.Time `json:"return_datetime"`
	PickupLocation *string    `json:"pickup_location"`
	ReturnLocation *string    `json:"return_location"`
}

func (h *BookingHandler) Edit(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFrom(r.Context())
	if !ok {
		writeError(w, r, apperr.Unauthorized("authentication required"))
		return
	}
	bookingID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req editBookingRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	input := service.EditBookingInput{
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
		CustomerEmail:  req.CustomerEmail,
		PickupDatetime: req.PickupDatetime,
		ReturnDatetime: req.ReturnDatetime,
		PickupLocation: req.PickupLocation,
		ReturnLocation: req.ReturnLocation,
	}

	booking, err := h.bookingSvc.EditBooking(r.Context(), caller, bookingID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}
