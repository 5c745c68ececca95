package wire

import (
	"net/http"

	"github.com/Mohammed-hani69/adsvairl/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

type guard = func(http.Handler) http.Handler

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, auth guard) {
	r.Post("/api/users", authHandler.Register)
	r.Post("/api/register", authHandler.Register)
	r.Post("/api/login", authHandler.Login)

	r.With(auth).Post("/api/logout", authHandler.Logout)
}
