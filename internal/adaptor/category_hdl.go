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

type CategoryHandler struct {
	service usecase.CategoryService
	log     *zap.Logger
}

func NewCategoryHandler(service usecase.CategoryService, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		log:     log.With(zap.String("handler", "category")),
	}
}

// GetCategories handles GET /api/categories
func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetCategories(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get categories", "خطأ في جلب الفئات")
		return
	}

	utils.ResponseSuccess(w, "success", categories)
}

// GetCategory handles GET /api/categories/{id}
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.service.GetCategoryByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get category", "خطأ في جلب الفئة")
		return
	}

	utils.ResponseSuccess(w, "success", category)
}

// CreateCategory handles POST /api/admin/categories (admin)
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "بيانات غير صحيحة", nil)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create category", "خطأ في إنشاء الفئة")
		return
	}

	utils.ResponseCreated(w, "تم إنشاء الفئة بنجاح", category)
}
