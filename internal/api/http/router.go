package http

import (
	"net/http"

	"carlink-backend/internal/domain"

	"github.com/gorilla/mux"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Auth       *AuthHandler
	Car        *CarHandler
	Booking    *BookingHandler
	Partner    *PartnerHandler
	Commission *CommissionHandler
	ApiKey     *ApiKeyHandler
	External   *ExternalHandler
}

// NewRouter wires all routes. Three trust zones: public (optionally
// authenticated), token-authenticated with role gates, and API-key
// authenticated under /external.
func NewRouter(h Handlers, mw *Middleware) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// Auth
	r.HandleFunc("/auth/register", h.Auth.Register).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)
	r.HandleFunc("/auth/refresh", h.Auth.Refresh).Methods(http.MethodPost)
	r.HandleFunc("/auth/forgot-password", h.Auth.ForgotPassword).Methods(http.MethodPost)
	r.HandleFunc("/auth/reset-password", h.Auth.ResetPassword).Methods(http.MethodPost)

	// Public catalogue
	r.HandleFunc("/cars", h.Car.ListPublic).Methods(http.MethodGet)
	r.HandleFunc("/cars/{id:[0-9]+}", h.Car.GetPublic).Methods(http.MethodGet)

	// Booking creation is open to guests; a token links the booking to the
	// customer account.
	r.Handle("/bookings", mw.OptionalAuth(http.HandlerFunc(h.Booking.Create))).Methods(http.MethodPost)

	// Partner surface
	partner := r.PathPrefix("/partner").Subrouter()
	partner.Use(mux.MiddlewareFunc(mw.RequireAuth))
	partner.Use(mw.RequireRole(domain.UserRolePartnerAdmin, domain.UserRolePlatformAdmin))
	partner.HandleFunc("/leads", h.Booking.ListPartnerLeads).Methods(http.MethodGet)
	partner.HandleFunc("/leads/{id:[0-9]+}", h.Booking.Get).Methods(http.MethodGet)
	partner.HandleFunc("/leads/{id:[0-9]+}/claim", h.Booking.Claim).Methods(http.MethodPost)
	partner.HandleFunc("/leads/{id:[0-9]+}/status", h.Booking.AdvanceStatus).Methods(http.MethodPost)
	partner.HandleFunc("/leads/{id:[0-9]+}/cancel", h.Booking.Cancel).Methods(http.MethodPost)
	partner.HandleFunc("/leads/{id:[0-9]+}/edit", h.Booking.Edit).Methods(http.MethodPatch)
	partner.HandleFunc("/cars", h.Car.ListPartner).Methods(http.MethodGet)
	partner.HandleFunc("/cars", h.Car.Add).Methods(http.MethodPost)
	partner.HandleFunc("/cars/{id:[0-9]+}", h.Car.Update).Methods(http.MethodPut)
	partner.HandleFunc("/cars/{id:[0-9]+}/rental-status", h.Car.SetRentalStatus).Methods(http.MethodPatch)
	partner.HandleFunc("/commissions", h.Commission.ListPartner).Methods(http.MethodGet)

	// Platform admin surface
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(mux.MiddlewareFunc(mw.RequireAuth))
	admin.Use(mw.RequireRole(domain.UserRolePlatformAdmin))
	admin.HandleFunc("/cars/{id:[0-9]+}/approval", h.Car.Approve).Methods(http.MethodPatch)
	admin.HandleFunc("/partners", h.Partner.List).Methods(http.MethodGet)
	admin.HandleFunc("/partners", h.Partner.Add).Methods(http.MethodPost)
	admin.HandleFunc("/partners/{id:[0-9]+}", h.Partner.Update).Methods(http.MethodPut)
	admin.HandleFunc("/commissions", h.Commission.ListAll).Methods(http.MethodGet)
	admin.HandleFunc("/commissions/{id:[0-9]+}", h.Commission.MarkPaid).Methods(http.MethodPatch)
	admin.HandleFunc("/api-keys", h.ApiKey.Issue).Methods(http.MethodPost)
	admin.HandleFunc("/api-keys", h.ApiKey.List).Methods(http.MethodGet)
	admin.HandleFunc("/api-keys/{id:[0-9]+}", h.ApiKey.Revoke).Methods(http.MethodDelete)

	// External machine-to-machine surface
	external := r.PathPrefix("/external").Subrouter()
	external.Use(mw.RequireAPIKey(domain.ApiKeyPermissionRead))
	external.HandleFunc("/leads", h.External.ListLeads).Methods(http.MethodGet)

	return r
}
