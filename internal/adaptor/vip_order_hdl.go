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

type VipOrderHandler struct {
	service usecase.VipOrderService
	images  ImageStore
	log     *zap.Logger
}

func NewVipOrderHandler(service usecase.VipOrderService, images ImageStore, log *zap.Logger) *VipOrderHandler {
	return &VipOrderHandler{
		service: service,
		images:  images,
		log:     log.With(zap.String("handler", "vip_order")),
	}
}

// CreateOrder handles POST /api/vip/orders (protected, multipart)
func (h *VipOrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "يجب تسجيل الدخول أولاً")
		return
	}

	if !parseMultipart(w, r, h.images) {
		return
	}

	req := &request.CreateVipOrderRequest{
		StoreID:         r.FormValue("store_id"),
		PaymentMethod:   r.FormValue("payment_method"),
		StripePaymentID: formOptionalString(r, "stripe_payment_id"),
	}
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "بيانات غير صحيحة", validationErrors)
		return
	}

	proof, ok := saveImage(w, r, h.images, h.log, "transferProof")
	if !ok {
		return
	}
	req.TransferProof = proof

	order, err := h.service.CreateOrder(r.Context(), userID, req)
	if err != nil {
		h.images.Remove(collectURLs(proof)...)
		handleServiceError(w, h.log, err, "create order", "خطأ في إنشاء الطلب")
		return
	}

	utils.ResponseCreated(w, "تم إرسال طلب الاشتراك للمراجعة", order)
}

// GetUserOrders handles GET /api/vip/orders (protected)
func (h *VipOrderHandler) GetUserOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "يجب تسجيل الدخول أولاً")
		return
	}

	orders, err := h.service.GetUserOrders(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get user orders", "خطأ في جلب الطلبات")
		return
	}

	utils.ResponseSuccess(w, "success", orders)
}

// ListOrders handles GET /api/admin/vip/orders?status=
func (h *VipOrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		handleServiceError(w, h.log, err, "list orders", "خطأ في جلب الطلبات")
		return
	}

	utils.ResponseSuccess(w, "success", orders)
}

// UpdateOrderStatus handles PATCH /api/admin/vip/orders/{id}
func (h *VipOrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	adminID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "يجب تسجيل الدخول أولاً")
		return
	}

	var req request.UpdateVipOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "بيانات غير صحيحة", nil)
		return
	}

	order, err := h.service.UpdateOrderStatus(r.Context(), adminID, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update order status", "خطأ في تحديث الطلب")
		return
	}

	utils.ResponseSuccess(w, "تم تحديث حالة الطلب", order)
}
