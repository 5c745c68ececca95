package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/Mohammed-hani69/adsvairl/internal/dto/request"
	"github.com/Mohammed-hani69/adsvairl/internal/usecase"
	"github.com/Mohammed-hani69/adsvairl/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type LocationHandler struct {
	service usecase.LocationService
	log     *zap.Logger
}

func NewLocationHandler(service usecase.LocationService, log *zap.Logger) *LocationHandler {
	return &LocationHandler{
		service: service,
		log:     log.With(zap.String("handler", "location")),
	}
}

// GetCountries handles GET /api/vip/countries
func (h *LocationHandler) GetCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.service.GetCountries(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get countries", "خطأ في جلب الدول")
		return
	}

	utils.ResponseSuccess(w, "success", countries)
}

// GetStates handles GET /api/vip/states/{countryId}
func (h *LocationHandler) GetStates(w http.ResponseWriter, r *http.Request) {
	states, err := h.service.GetStates(r.Context(), chi.URLParam(r, "countryId"))
	if err != nil {
		handleServiceError(w, h.log, err, "get states", "خطأ في جلب المحافظات")
		return
	}

	utils.ResponseSuccess(w, "success", states)
}

// GetCities handles GET /api/vip/cities/{stateId}
func (h *LocationHandler) GetCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.service.GetCities(r.Context(), chi.URLParam(r, "stateId"))
	if err != nil {
		handleServiceError(w, h.log, err, "get cities", "خطأ في جلب المدن")
		return
	}

	utils.ResponseSuccess(w, "success", cities)
}

// GetAllCountries handles GET /api/admin/countries
func (h *LocationHandler) GetAllCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.service.GetAllCountries(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get all countries", "خطأ في جلب الدول")
		return
	}

	utils.ResponseSuccess(w, "success", countries)
}

// CreateCountry handles POST /api/admin/countries
func (h *LocationHandler) CreateCountry(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCountryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "بيانات غير صحيحة", nil)
		return
	}

	country, err := h.service.CreateCountry(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create country", "خطأ في إضافة الدولة")
		return
	}

	utils.ResponseCreated(w, "تمت إضافة الدولة بنجاح", country)
}

// UpdateCountry handles PATCH /api/admin/countries/{id}
func (h *LocationHandler) UpdateCountry(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateCountryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "بيانات غير صحيحة", nil)
		return
	}

	country, err := h.service.UpdateCountry(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update country", "خطأ في تحديث الدولة")
		return
	}

	utils.ResponseSuccess(w, "تم تحديث الدولة", country)
}

// CreateState handles POST /api/admin/states
func (h *LocationHandler) CreateState(w http.ResponseWriter, r *http.Request) {
	var req request.CreateStateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "بيانات غير صحيحة", nil)
		return
	}

	state, err := h.service.CreateState(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create state", "خطأ في إضافة المحافظة")
		return
	}

	utils.ResponseCreated(w, "تمت إضافة المحافظة بنجاح", state)
}

// CreateCity handles POST /api/admin/cities
func (h *LocationHandler) CreateCity(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "بيانات غير صحيحة", nil)
		return
	}

	city, err := h.service.CreateCity(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create city", "خطأ في إضافة المدينة")
		return
	}

	utils.ResponseCreated(w, "تمت إضافة المدينة بنجاح", city)
}

// DeleteCountry handles DELETE /api/admin/countries/{id}
func (h *LocationHandler) DeleteCountry(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCountry(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete country", "خطأ في حذف الدولة")
		return
	}

	utils.ResponseSuccess(w, "تم حذف الدولة", nil)
}

// DeleteState handles DELETE /api/admin/states/{id}
func (h *LocationHandler) DeleteState(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteState(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete state", "خطأ في حذف المحافظة")
		return
	}

	utils.ResponseSuccess(w, "تم حذف المحافظة", nil)
}

// DeleteCity handles DELETE /api/admin/cities/{id}
func (h *LocationHandler) DeleteCity(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCity(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete city", "خطأ في حذف المدينة")
		return
	}

	utils.ResponseSuccess(w, "تم حذف المدينة", nil)
}
