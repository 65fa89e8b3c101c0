package http

import (
	"net/http"

	"carlink-backend/internal/apperr"
	"carlink-backend/internal/service"
)

type CommissionHandler struct {
	commissionSvc service.CommissionService
}

func NewCommissionHandler(commissionSvc service.CommissionService) *CommissionHandler {
	return &CommissionHandler{commissionSvc: commissionSvc}
}

func (h *CommissionHandler) ListPartner(w http.ResponseWriter, r *http.Request) {
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

	logs, total, err := h.commissionSvc.ListByPartner(r.Context(), caller, partnerID, status, page, pageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writePaged(w, logs, total, page, pageSize)
}

func (h *CommissionHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	status := r.URL.Query().Get("status")

	logs, total, err := h.commissionSvc.ListAll(r.Context(), status, page, pageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writePaged(w, logs, total, page, pageSize)
}

type markPaidRequest struct {
	Status string `json:"status"`
}

func (h *CommissionHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	logID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req markPaidRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	log, err := h.commissionSvc.MarkPaid(r.Context(), logID, req.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, log)
}
