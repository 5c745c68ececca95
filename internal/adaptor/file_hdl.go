package adaptor

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Mohammed-hani69/adsvairl/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UploadHandler serves stored images by file name.
type UploadHandler struct {
	dir string
	log *zap.Logger
}

func NewUploadHandler(dir string, log *zap.Logger) *UploadHandler {
	return &UploadHandler{
		dir: dir,
		log: log.With(zap.String("handler", "upload")),
	}
}

// Serve handles GET /uploads/{name}
func (h *UploadHandler) Serve(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		utils.ResponseNotFound(w, "الملف غير موجود")
		return
	}

	path := filepath.Join(h.dir, name)
	info, err := os.Stat(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			h.log.Error("Failed to stat upload", zap.String("name", name), zap.Error(err))
		}
		utils.ResponseNotFound(w, "الملف غير موجود")
		return
	}
	if info.IsDir() {
		utils.ResponseNotFound(w, "الملف غير موجود")
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=86400")
	http.ServeFile(w, r, path)
}

// HealthHandler reports process and database liveness.
type HealthHandler struct {
	db  Pinger
	log *zap.Logger
}

func NewHealthHandler(db Pinger, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:  db,
		log: log.With(zap.String("handler", "health")),
	}
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.Error("Database ping failed", zap.Error(err))
		utils.ResponseJSON(w, http.StatusServiceUnavailable, false, "قاعدة البيانات غير متاحة", nil, nil)
		return
	}

	utils.ResponseSuccess(w, "ok", map[string]string{"database": "up"})
}
