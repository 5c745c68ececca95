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

type StoreProductHandler struct {
	service usecase.StoreProductService
	images  ImageStore
	log     *zap.Logger
}

func NewStoreProductHandler(service usecase.StoreProductService, images ImageStore, log *zap.Logger) *StoreProductHandler {
	return &StoreProductHandler{
		service: service,
		images:  images,
		log:     log.With(zap.String("handler", "store_product")),
	}
}

// ListProducts handles GET /api/vip/stores/{id}/products (optional session)
func (h *StoreProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromRequest(r)
	products, err := h.service.ListProducts(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "list products", "خطأ في جلب المنتجات")
		return
	}

	utils.ResponseSuccess(w, "success", products)
}

// CreateProduct handles POST /api/vip/stores/{id}/products (store owner, multipart)
func (h *StoreProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "يجب تسجيل الدخول أولاً")
		return
	}

	if !parseMultipart(w, r, h.images) {
		return
	}

	price, err := utils.ParseOptionalInt64(r.FormValue("price"))
	if err != nil || price == nil {
		utils.ResponseBadRequest(w, "بيانات غير صحيحة", map[string]string{"price": "السعر يجب أن يكون رقماً"})
		return
	}

	req := &request.CreateStoreProductRequest{
		Name:        r.FormValue("name"),
		Description: formOptionalString(r, "description"),
		Price:       *price,
		Currency:    r.FormValue("currency"),
	}
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "بيانات غير صحيحة", validationErrors)
		return
	}

	images, ok := saveImages(w, r, h.images, h.log, "images")
	if !ok {
		return
	}
	req.Images = images

	product, err := h.service.CreateProduct(r.Context(), actor, chi.URLParam(r, "id"), req)
	if err != nil {
		h.images.Remove(images...)
		handleServiceError(w, h.log, err, "create product", "خطأ في إضافة المنتج")
		return
	}

	utils.ResponseCreated(w, "تمت إضافة المنتج بنجاح", product)
}

// UpdateProduct handles PATCH /api/vip/products/{id}
func (h *StoreProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "يجب تسجيل الدخول أولاً")
		return
	}

	var req request.UpdateStoreProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "بيانات غير صحيحة", nil)
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), actor, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update product", "خطأ في تحديث المنتج")
		return
	}

	utils.ResponseSuccess(w, "تم تحديث المنتج", product)
}

// DeleteProduct handles DELETE /api/vip/products/{id}
func (h *StoreProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "يجب تسجيل الدخول أولاً")
		return
	}

	if err := h.service.DeleteProduct(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete product", "خطأ في حذف المنتج")
		return
	}

	utils.ResponseSuccess(w, "تم حذف المنتج", nil)
}
