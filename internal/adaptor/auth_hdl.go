package adaptor

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/Mohammed-hani69/adsvairl/internal/dto/request"
	"github.com/Mohammed-hani69/adsvairl/internal/usecase"
	"github.com/Mohammed-hani69/adsvairl/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Register handles POST /api/users and POST /api/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "بيانات غير صحيحة", nil)
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "register", "خطأ في إنشاء المستخدم")
		return
	}

	utils.ResponseCreated(w, "تم إنشاء الحساب بنجاح", user)
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "بيانات غير صحيحة", nil)
		return
	}

	client := usecase.ClientInfo{UserAgent: r.UserAgent(), IPAddress: r.RemoteAddr}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		client.IPAddress = host
	}

	auth, err := h.service.Login(r.Context(), &req, client)
	if err != nil {
		handleServiceError(w, h.log, err, "login", "خطأ في تسجيل الدخول")
		return
	}

	utils.ResponseSuccess(w, "تم تسجيل الدخول بنجاح", auth)
}

// Logout handles POST /api/logout (protected)
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "يجب تسجيل الدخول أولاً")
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		handleServiceError(w, h.log, err, "logout", "خطأ في تسجيل الخروج")
		return
	}

	utils.ResponseSuccess(w, "تم تسجيل الخروج", nil)
}
