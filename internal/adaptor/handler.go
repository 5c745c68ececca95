package adaptor

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/Mohammed-hani69/adsvairl/internal/dto/request"
	"github.com/Mohammed-hani69/adsvairl/internal/usecase"
	"github.com/Mohammed-hani69/adsvairl/pkg/utils"

	"go.uber.org/zap"
)

// ImageStore persists uploaded images and returns their public URLs.
type ImageStore interface {
	Save(field string, files []*multipart.FileHeader) ([]string, error)
	Remove(urls ...string)
	MaxRequestBytes() int64
}

// Pinger reports whether the database answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Category     *CategoryHandler
	Ad           *AdHandler
	Moderation   *ModerationHandler
	Location     *LocationHandler
	VipStore     *VipStoreHandler
	VipOrder     *VipOrderHandler
	StoreProduct *StoreProductHandler
	Upload       *UploadHandler
	Health       *HealthHandler
}

func NewHandler(service *usecase.Service, images ImageStore, uploadDir string, db Pinger, log *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(service.Auth, log),
		User:         NewUserHandler(service.User, log),
		Category:     NewCategoryHandler(service.Category, log),
		Ad:           NewAdHandler(service.Ad, images, log),
		Moderation:   NewModerationHandler(service.Moderation, log),
		Location:     NewLocationHandler(service.Location, log),
		VipStore:     NewVipStoreHandler(service.VipStore, images, log),
		VipOrder:     NewVipOrderHandler(service.VipOrder, images, log),
		StoreProduct: NewStoreProductHandler(service.StoreProduct, images, log),
		Upload:       NewUploadHandler(uploadDir, log),
		Health:       NewHealthHandler(db, log),
	}
}

// handleServiceError maps service errors to a status code and an Arabic message.
// fallback is shown for unexpected failures.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation, fallback string) {
	message := fallback
	var fields map[string]string

	var appErr *usecase.Error
	if errors.As(err, &appErr) {
		message = appErr.Message
		fields = appErr.Fields
	}

	switch {
	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, message, fields)

	case errors.Is(err, usecase.ErrInvalidInput):
		log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, message, nil)

	case errors.Is(err, usecase.ErrNotFound):
		log.Debug(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, message)

	case errors.Is(err, usecase.ErrInvalidCredentials):
		utils.ResponseUnauthorized(w, message)

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, message)

	case errors.Is(err, usecase.ErrConflict), errors.Is(err, usecase.ErrInvalidTransition):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, message)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, fallback)
	}
}

// actorFromRequest returns the caller resolved by AuthSession.
func actorFromRequest(r *http.Request) (usecase.Actor, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return usecase.Actor{}, false
	}
	return usecase.Actor{UserID: userID, IsAdmin: utils.IsAdminFromContext(r.Context())}, true
}

func paginationFromQuery(r *http.Request, defaultPerPage int) request.PaginatedRequest {
	query := r.URL.Query()
	return request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), defaultPerPage),
	}
}

// formOptionalString is nil when the field is missing or blank.
func formOptionalString(r *http.Request, key string) *string {
	if value := r.FormValue(key); value != "" {
		return &value
	}
	return nil
}
