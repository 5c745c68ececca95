package wire

import (
	"github.com/Mohammed-hani69/adsvairl/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireLocation(r chi.Router, locationHandler *adaptor.LocationHandler, auth, admin guard) {
	r.Get("/api/vip/countries", locationHandler.GetCountries)
	r.Get("/api/vip/states/{countryId}", locationHandler.GetStates)
	r.Get("/api/vip/cities/{stateId}", locationHandler.GetCities)

	r.Group(func(r chi.Router) {
		r.Use(auth, admin)

		r.Get("/api/admin/countries", locationHandler.GetAllCountries)
		r.Post("/api/admin/countries", locationHandler.CreateCountry)
		r.Patch("/api/admin/countries/{id}", locationHandler.UpdateCountry)
		r.Post("/api/admin/states", locationHandler.CreateState)
		r.Post("/api/admin/cities", locationHandler.CreateCity)
		r.Delete("/api/admin/countries/{id}", locationHandler.DeleteCountry)
		r.Delete("/api/admin/states/{id}", locationHandler.DeleteState)
		r.Delete("/api/admin/cities/{id}", locationHandler.DeleteCity)
	})
}
