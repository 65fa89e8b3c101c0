package http

import (
	"net/http"
	"time"

	"carlink-backend/internal/domain"
	"carlink-backend/internal/service"
)

type ApiKeyHandler struct {
	keySvc service.ApiKeyService
}

func NewApiKeyHandler(keySvc service.ApiKeyService) *ApiKeyHandler {
	return &ApiKeyHandler{keySvc: keySvc}
}

type issueApiKeyRequest struct {
	Name        string     `json:"name"`
	Permissions []string   `json:"permissions"`
	PartnerID   *int32     `json:"partner_id"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

type issueApiKeyResponse struct {
	Key *domain.ApiKey `json:"key"`
	// Plaintext is shown exactly once; only its hash is stored.
	Plaintext string `json:"plaintext"`
}

func (h *ApiKeyHandler) Issue(w http.ResponseWriter, r *http.Request) {
	var req issueApiKeyRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	key, plaintext, err := h.keySvc.Issue(r.Context(), service.IssueApiKeyInput{
		Name:        req.Name,
		Permissions: req.Permissions,
		PartnerID:   req.PartnerID,
		ExpiresAt:   req.ExpiresAt,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, issueApiKeyResponse{Key: key, Plaintext: plaintext})
}

func (h *ApiKeyHandler) List(w http.ResponseWriter, r *http.Request) {
	keys, err := h.keySvc.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, keys)
}

func (h *ApiKeyHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	keyID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.keySvc.Revoke(r.Context(), keyID); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "api key revoked"})
}
