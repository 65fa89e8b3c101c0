package http

import (
	"net/http"
	"strconv"

	"carlink-backend/internal/apperr"
	"carlink-backend/internal/domain"
	"carlink-backend/internal/service"
)

// ExternalHandler serves machine-to-machine integrations authenticated with
// API keys rather than user tokens.
type ExternalHandler struct {
	bookingSvc service.BookingService
}

func NewExternalHandler(bookingSvc service.BookingService) *ExternalHandler {
	return &ExternalHandler{bookingSvc: bookingSvc}
}

// ListLeads returns leads for the partner the key is scoped to. Unscoped keys
// must name a partner explicitly.
func (h *ExternalHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	key, ok := APIKeyFrom(r.Context())
	if !ok {
		writeError(w, r, apperr.Unauthorized("invalid API key"))
		return
	}

	var partnerID int32
	switch {
	case key.PartnerID != nil:
		partnerID = *key.PartnerID
	default:
		raw := r.URL.Query().Get("partner_id")
		if raw == "" {
			writeError(w, r, apperr.Validation("partner_id is required"))
			return
		}
		id, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || id <= 0 {
			writeError(w, r, apperr.Validation("partner_id must be a positive integer"))
			return
		}
		partnerID = int32(id)
	}

	page, pageSize := pagination(r)
	status := r.URL.Query().Get("status")

	// API keys act with platform scope; partner scoping was applied above
	// from the key record itself.
	caller := service.Caller{Role: domain.UserRolePlatformAdmin}
	bookings, total, err := h.bookingSvc.ListPartnerBookings(r.Context(), caller, partnerID, status, page, pageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writePaged(w, bookings, total, page, pageSize)
}
