package adaptor

import (
	"net/http"

	"github.com/Mohammed-hani69/adsvairl/internal/data/entity"
	"github.com/Mohammed-hani69/adsvairl/internal/dto/request"
	"github.com/Mohammed-hani69/adsvairl/internal/usecase"
	"github.com/Mohammed-hani69/adsvairl/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ModerationHandler struct {
	service usecase.ModerationService
	log     *zap.Logger
}

func NewModerationHandler(service usecase.ModerationService, log *zap.Logger) *ModerationHandler {
	return &ModerationHandler{
		service: service,
		log:     log.With(zap.String("handler", "moderation")),
	}
}

// GetPendingAds handles GET /api/admin/ads/pending
func (h *ModerationHandler) GetPendingAds(w http.ResponseWriter, r *http.Request) {
	h.listAds(w, r, string(entity.AdStatusPending), "خطأ في جلب الإعلانات المعلقة")
}

// ListAds handles GET /api/admin/ads?status=
func (h *ModerationHandler) ListAds(w http.ResponseWriter, r *http.Request) {
	h.listAds(w, r, r.URL.Query().Get("status"), "خطأ في جلب الإعلانات")
}

func (h *ModerationHandler) listAds(w http.ResponseWriter, r *http.Request, status, fallback string) {
	req := &request.ModerationListRequest{
		Status:           status,
		PaginatedRequest: paginationFromQuery(r, 20),
	}

	ads, err := h.service.ListAds(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list moderation ads", fallback)
		return
	}

	utils.ResponseSuccess(w, "success", ads)
}

// ApproveAd handles PATCH /api/admin/ads/{id}/approve
func (h *ModerationHandler) ApproveAd(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ApproveAd(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "approve ad", "خطأ في اعتماد الإعلان")
		return
	}

	utils.ResponseSuccess(w, "تم اعتماد الإعلان بنجاح", nil)
}

// RejectAd handles PATCH /api/admin/ads/{id}/reject
func (h *ModerationHandler) RejectAd(w http.ResponseWriter, r *http.Request) {
	if err := h.service.RejectAd(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "reject ad", "خطأ في رفض الإعلان")
		return
	}

	utils.ResponseSuccess(w, "تم رفض الإعلان", nil)
}

// ToggleFeatured handles PATCH /api/admin/ads/{id}/feature
func (h *ModerationHandler) ToggleFeatured(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ToggleFeatured(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "toggle featured", "خطأ في تمييز الإعلان")
		return
	}

	message := "تم إلغاء تمييز الإعلان"
	if result.IsFeatured {
		message = "تم تمييز الإعلان"
	}
	utils.ResponseSuccess(w, message, result)
}

// GetStats handles GET /api/admin/stats
func (h *ModerationHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get stats", "خطأ في جلب الإحصائيات")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}
