package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"carlink-backend/internal/apperr"
	"carlink-backend/internal/logger"

	"github.com/gorilla/mux"
)

type errorResponse struct {
	Error string `json:"error"`
}

// pagedResponse is the envelope for all listing endpoints.
type pagedResponse struct {
	Items      interface{} `json:"items"`
	TotalCount int32       `json:"total_count"`
	Page       int32       `json:"page"`
	PageSize   int32       `json:"page_size"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

// writeError maps an error to the taxonomy's HTTP status. Internal errors are
// logged in full and surfaced only as a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if apperr.KindOf(err) == apperr.KindInternal {
		logger.Error("request failed", "error", err, "method", r.Method, "path", r.URL.Path)
	}
	writeJSON(w, apperr.HTTPStatus(err), errorResponse{Error: apperr.Message(err)})
}

func writePaged(w http.ResponseWriter, items interface{}, total, page, pageSize int32) {
	writeJSON(w, http.StatusOK, pagedResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
	})
}

func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.Validation("invalid request body")
	}
	return nil
}

func pathID(r *http.Request) (int32, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, apperr.Validation("invalid id")
	}
	return int32(id), nil
}

// maxPage keeps page*pageSize comfortably inside int32 when repositories
// compute an OFFSET from it.
const maxPage = 1_000_000

func pagination(r *http.Request) (page, pageSize int32) {
	page, pageSize = 1, 20
	if v, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 32); err == nil && v > 0 {
		page = int32(v)
		if page > maxPage {
			page = maxPage
		}
	}
	if v, err := strconv.ParseInt(r.URL.Query().Get("page_size"), 10, 32); err == nil && v > 0 && v <= 100 {
		pageSize = int32(v)
	}
	return page, pageSize
}
