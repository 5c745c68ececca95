package wire

import (
	"github.com/Mohammed-hani69/adsvairl/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCategory(r chi.Router, categoryHandler *adaptor.CategoryHandler, auth, admin guard) {
	r.Get("/api/categories", categoryHandler.GetCategories)
	r.Get("/api/categories/{id}", categoryHandler.GetCategory)

	r.With(auth, admin).Post("/api/admin/categories", categoryHandler.CreateCategory)
}
