package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes creates the HTTP router for the wallet backend.
// Login is open; wallet and transfer endpoints require a valid session
// token issued by the auth service.
func Routes(h *Handlers, jwtSecret []byte) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("healthy"))
	})

	r.Post("/login", h.LoginHandler)

	r.Group(func(r chi.Router) {
		r.Use(JWTAuthMiddleware(jwtSecret))

		r.Get("/wallet", h.WalletHandler)
		r.Get("/beneficiaries", h.ListBeneficiariesHandler)
		r.Post("/transfers", h.TransferHandler)
	})

	return r
}
