package http

import (
	"net/http"

	"carlink-backend/internal/domain"
	"carlink-backend/internal/service"
)

type PartnerHandler struct {
	partnerSvc service.PartnerService
}

func NewPartnerHandler(partnerSvc service.PartnerService) *PartnerHandler {
	return &PartnerHandler{partnerSvc: partnerSvc}
}

func (h *PartnerHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	partners, total, err := h.partnerSvc.ListPartners(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writePaged(w, partners, total, page, pageSize)
}

func (h *PartnerHandler) Add(w http.ResponseWriter, r *http.Request) {
	var partner domain.Partner
	if err := decodeBody(r, &partner); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.partnerSvc.AddPartner(r.Context(), &partner); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, partner)
}

func (h *PartnerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var partner domain.Partner
	if err := decodeBody(r, &partner); err != nil {
		writeError(w, r, err)
		return
	}
	partner.ID = id

	if err := h.partnerSvc.UpdatePartner(r.Context(), &partner); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, partner)
}
