package wire

import (
	"github.com/Mohammed-hani69/adsvairl/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler, auth, admin guard) {
	r.With(auth).Get("/api/user/profile", userHandler.GetProfile)

	// GET /api/admin/users?page=1&per_page=20
	r.With(auth, admin).Get("/api/admin/users", userHandler.GetAllUsers)
}
