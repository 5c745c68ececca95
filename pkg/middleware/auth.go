package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Mohammed-hani69/adsvairl/internal/data/entity"
	"github.com/Mohammed-hani69/adsvairl/internal/data/repository"
	"github.com/Mohammed-hani69/adsvairl/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// sessionUser resolves the Bearer token of r. It returns a client message when
// the request must be refused, or a non-nil err on a storage failure.
func sessionUser(r *http.Request, sessionRepo repository.SessionRepository, userRepo repository.UserRepository) (user *entity.User, token uuid.UUID, reason string, err error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, uuid.Nil, "يجب تسجيل الدخول أولاً", nil
	}

	scheme, rawToken, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return nil, uuid.Nil, "صيغة رمز الدخول غير صحيحة", nil
	}

	token, err = uuid.Parse(strings.TrimSpace(rawToken))
	if err != nil {
		return nil, uuid.Nil, "صيغة رمز الدخول غير صحيحة", nil
	}

	session, err := sessionRepo.FindValidSession(r.Context(), token)
	if err != nil {
		return nil, uuid.Nil, "", fmt.Errorf("validate session: %w", err)
	}
	if session == nil {
		return nil, uuid.Nil, "انتهت صلاحية الجلسة، يرجى تسجيل الدخول مجدداً", nil
	}

	user, err = userRepo.FindByID(r.Context(), session.UserID)
	if err != nil {
		return nil, uuid.Nil, "", fmt.Errorf("load session user %s: %w", session.UserID, err)
	}
	if user == nil || !user.IsActive {
		return nil, uuid.Nil, "الحساب غير مفعل", nil
	}

	return user, token, "", nil
}

func withSessionUser(r *http.Request, user *entity.User, token uuid.UUID) *http.Request {
	ctx := utils.SetUserContext(r.Context(), user.ID, user.IsAdmin)
	ctx = utils.SetTokenContext(ctx, token.String())
	return r.WithContext(ctx)
}

// AuthSession resolves the Bearer session token into the user ID and admin flag.
func AuthSession(sessionRepo repository.SessionRepository, userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, token, reason, err := sessionUser(r, sessionRepo, userRepo)
			if err != nil {
				logger.Error("Failed to resolve session", zap.Error(err))
				utils.ResponseInternalError(w, "خطأ في الخادم")
				return
			}
			if user == nil {
				logger.Warn("Rejected unauthenticated request",
					zap.String("path", r.URL.Path),
					zap.String("reason", reason))
				utils.ResponseUnauthorized(w, reason)
				return
			}

			next.ServeHTTP(w, withSessionUser(r, user, token))
		})
	}
}

// OptionalSession attaches the session user when a valid token is sent and
// otherwise lets the request through anonymously.
func OptionalSession(sessionRepo repository.SessionRepository, userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, token, _, err := sessionUser(r, sessionRepo, userRepo)
			if err != nil {
				logger.Error("Failed to resolve optional session", zap.Error(err))
			}
			if user == nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, withSessionUser(r, user, token))
		})
	}
}

// Admin must run after AuthSession.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "يجب تسجيل الدخول أولاً")
				return
			}

			if !utils.IsAdminFromContext(r.Context()) {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("user_id", userID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "هذه الصفحة مخصصة للمشرفين فقط")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
