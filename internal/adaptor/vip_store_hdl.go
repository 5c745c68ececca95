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

type VipStoreHandler struct {
	service usecase.VipStoreService
	images  ImageStore
	log     *zap.Logger
}

func NewVipStoreHandler(service usecase.VipStoreService, images ImageStore, log *zap.Logger) *VipStoreHandler {
	return &VipStoreHandler{
		service: service,
		images:  images,
		log:     log.With(zap.String("handler", "vip_store")),
	}
}

// ListStores handles GET /api/vip/stores
func (h *VipStoreHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	stores, err := h.service.ListStores(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list stores", "خطأ في جلب المتاجر")
		return
	}

	utils.ResponseSuccess(w, "success", stores)
}

// GetStore handles GET /api/vip/stores/{id} (optional session)
func (h *VipStoreHandler) GetStore(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromRequest(r)
	store, err := h.service.GetStore(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get store", "خطأ في جلب المتجر")
		return
	}

	utils.ResponseSuccess(w, "success", store)
}

// GetUserStore handles GET /api/user/vip-store (protected)
func (h *VipStoreHandler) GetUserStore(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "يجب تسجيل الدخول أولاً")
		return
	}

	store, err := h.service.GetUserStore(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get user store", "خطأ في جلب المتجر")
		return
	}

	utils.ResponseSuccess(w, "success", store)
}

// CreateStore handles POST /api/vip/stores (protected, multipart)
func (h *VipStoreHandler) CreateStore(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "يجب تسجيل الدخول أولاً")
		return
	}

	if !parseMultipart(w, r, h.images) {
		return
	}

	req := &request.CreateVipStoreRequest{
		StoreName: r.FormValue("store_name"),
		BrandName: r.FormValue("brand_name"),
		Specialty: r.FormValue("specialty"),
		Address:   r.FormValue("address"),
		Phone:     r.FormValue("phone"),
		CountryID: r.FormValue("country_id"),
		StateID:   r.FormValue("state_id"),
		CityID:    r.FormValue("city_id"),
	}
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "بيانات غير صحيحة", validationErrors)
		return
	}

	logo, ok := saveImage(w, r, h.images, h.log, "logoFile")
	if !ok {
		return
	}
	banner, ok := saveImage(w, r, h.images, h.log, "bannerFile")
	if !ok {
		h.images.Remove(collectURLs(logo)...)
		return
	}
	req.Logo, req.Banner = logo, banner

	store, err := h.service.CreateStore(r.Context(), userID, req)
	if err != nil {
		h.images.Remove(collectURLs(logo, banner)...)
		handleServiceError(w, h.log, err, "create store", "خطأ في إنشاء المتجر")
		return
	}

	utils.ResponseCreated(w, "تم إنشاء المتجر بنجاح", store)
}

// UpdateStore handles PATCH /api/vip/stores/{id} (owner or admin)
func (h *VipStoreHandler) UpdateStore(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "يجب تسجيل الدخول أولاً")
		return
	}

	var req request.UpdateVipStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "بيانات غير صحيحة", nil)
		return
	}

	store, err := h.service.UpdateStore(r.Context(), actor, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update store", "خطأ في تحديث المتجر")
		return
	}

	utils.ResponseSuccess(w, "تم تحديث المتجر", store)
}

// UpdateLogo handles PATCH /api/vip/stores/{id}/logo (owner or admin, multipart logoFile)
func (h *VipStoreHandler) UpdateLogo(w http.ResponseWriter, r *http.Request) {
	h.replaceImage(w, r, usecase.StoreLogo, "logoFile")
}

// UpdateBanner handles PATCH /api/vip/stores/{id}/banner (owner or admin, multipart bannerFile)
func (h *VipStoreHandler) UpdateBanner(w http.ResponseWriter, r *http.Request) {
	h.replaceImage(w, r, usecase.StoreBanner, "bannerFile")
}

func (h *VipStoreHandler) replaceImage(w http.ResponseWriter, r *http.Request, kind usecase.StoreImage, field string) {
	actor, ok := actorFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "يجب تسجيل الدخول أولاً")
		return
	}

	if !parseMultipart(w, r, h.images) {
		return
	}
	if len(r.MultipartForm.File[field]) == 0 {
		utils.ResponseBadRequest(w, "يرجى اختيار صورة", map[string]string{field: "الصورة مطلوبة"})
		return
	}

	url, ok := saveImage(w, r, h.images, h.log, field)
	if !ok {
		return
	}

	store, previous, err := h.service.ReplaceImage(r.Context(), actor, chi.URLParam(r, "id"), kind, *url)
	if err != nil {
		h.images.Remove(*url)
		handleServiceError(w, h.log, err, "replace store "+string(kind), "خطأ في تحديث صورة المتجر")
		return
	}
	h.images.Remove(collectURLs(previous)...)

	utils.ResponseSuccess(w, "تم تحديث صورة المتجر", store)
}

// ListAllStores handles GET /api/admin/vip/stores
func (h *VipStoreHandler) ListAllStores(w http.ResponseWriter, r *http.Request) {
	stores, err := h.service.ListAllStores(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list all stores", "خطأ في جلب المتاجر")
		return
	}

	utils.ResponseSuccess(w, "success", stores)
}

// ApproveStore handles PATCH /api/admin/vip/stores/{id}/approve
func (h *VipStoreHandler) ApproveStore(w http.ResponseWriter, r *http.Request) {
	store, err := h.service.ApproveStore(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "approve store", "خطأ في اعتماد المتجر")
		return
	}

	utils.ResponseSuccess(w, "تم اعتماد المتجر", store)
}
