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

type AdHandler struct {
	service usecase.AdService
	images  ImageStore
	log     *zap.Logger
}

func NewAdHandler(service usecase.AdService, images ImageStore, log *zap.Logger) *AdHandler {
	return &AdHandler{
		service: service,
		images:  images,
		log:     log.With(zap.String("handler", "ad")),
	}
}

// ListAds handles GET /api/ads
func (h *AdHandler) ListAds(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ListAdsRequest{
		CategoryID:       query.Get("categoryId"),
		Location:         query.Get("location"),
		MinPrice:         query.Get("minPrice"),
		MaxPrice:         query.Get("maxPrice"),
		Search:           query.Get("search"),
		PaginatedRequest: paginationFromQuery(r, 12),
	}

	ads, err := h.service.ListAds(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list ads", "خطأ في جلب الإعلانات")
		return
	}

	utils.ResponseSuccess(w, "success", ads)
}

// GetFeaturedAds handles GET /api/ads/featured
func (h *AdHandler) GetFeaturedAds(w http.ResponseWriter, r *http.Request) {
	ads, err := h.service.GetFeaturedAds(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get featured ads", "خطأ في جلب الإعلانات المميزة")
		return
	}

	utils.ResponseSuccess(w, "success", ads)
}

// GetAd handles GET /api/ads/{id}
func (h *AdHandler) GetAd(w http.ResponseWriter, r *http.Request) {
	ad, err := h.service.GetAd(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get ad", "خطأ في جلب الإعلان")
		return
	}

	utils.ResponseSuccess(w, "success", ad)
}

// CreateAd handles POST /api/ads (protected, multipart)
func (h *AdHandler) CreateAd(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "يجب تسجيل الدخول أولاً")
		return
	}

	if !parseMultipart(w, r, h.images) {
		return
	}

	price, err := utils.ParseOptionalInt64(r.FormValue("price"))
	if err != nil {
		utils.ResponseBadRequest(w, "بيانات غير صحيحة", map[string]string{"price": "السعر يجب أن يكون رقماً"})
		return
	}

	req := &request.CreateAdRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Price:       price,
		Currency:    r.FormValue("currency"),
		CategoryID:  r.FormValue("categoryId"),
		Location:    r.FormValue("location"),
		Phone:       r.FormValue("phone"),
		Email:       formOptionalString(r, "email"),
	}

	// reject bad fields before touching the disk
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "بيانات غير صحيحة", validationErrors)
		return
	}

	images, ok := saveImages(w, r, h.images, h.log, "images")
	if !ok {
		return
	}
	req.Images = images

	ad, err := h.service.CreateAd(r.Context(), userID, req)
	if err != nil {
		h.images.Remove(images...)
		handleServiceError(w, h.log, err, "create ad", "خطأ في إنشاء الإعلان")
		return
	}

	utils.ResponseCreated(w, "تم إرسال الإعلان للمراجعة", ad)
}

// UpdateAd handles PATCH /api/ads/{id} (owner or admin)
func (h *AdHandler) UpdateAd(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "يجب تسجيل الدخول أولاً")
		return
	}

	var req request.UpdateAdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "بيانات غير صحيحة", nil)
		return
	}

	ad, err := h.service.UpdateAd(r.Context(), actor, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update ad", "خطأ في تحديث الإعلان")
		return
	}

	utils.ResponseSuccess(w, "تم تحديث الإعلان", ad)
}

// DeleteAd handles DELETE /api/ads/{id} (owner or admin) and DELETE /api/admin/ads/{id}
func (h *AdHandler) DeleteAd(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "يجب تسجيل الدخول أولاً")
		return
	}

	if err := h.service.DeleteAd(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete ad", "خطأ في حذف الإعلان")
		return
	}

	utils.ResponseSuccess(w, "تم حذف الإعلان بنجاح", nil)
}

// GetUserAds handles GET /api/user/ads (protected)
func (h *AdHandler) GetUserAds(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "يجب تسجيل الدخول أولاً")
		return
	}

	ads, err := h.service.GetUserAds(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get user ads", "خطأ في جلب الإعلانات")
		return
	}

	utils.ResponseSuccess(w, "success", ads)
}
