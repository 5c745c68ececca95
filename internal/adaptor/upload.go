package adaptor

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Mohammed-hani69/adsvairl/pkg/storage"
	"github.com/Mohammed-hani69/adsvairl/pkg/utils"

	"go.uber.org/zap"
)

const multipartMemory = 8 << 20

var errTooManyFiles = fmt.Errorf("single file field: %w", storage.ErrTooManyFiles)

// parseMultipart bounds the body and parses the form. It answers the client itself on failure.
func parseMultipart(w http.ResponseWriter, r *http.Request, images ImageStore) bool {
	r.Body = http.MaxBytesReader(w, r.Body, images.MaxRequestBytes())

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			utils.ResponseBadRequest(w, "حجم الملفات يتجاوز الحد المسموح", nil)
			return false
		}
		utils.ResponseBadRequest(w, "بيانات غير صحيحة", nil)
		return false
	}
	return true
}

// saveImages stores every file of field. It answers the client itself on failure.
func saveImages(w http.ResponseWriter, r *http.Request, images ImageStore, log *zap.Logger, field string) ([]string, bool) {
	urls, err := images.Save(field, r.MultipartForm.File[field])
	if err != nil {
		writeUploadError(w, log, err, field)
		return nil, false
	}
	return urls, true
}

// saveImage stores at most one file of field.
func saveImage(w http.ResponseWriter, r *http.Request, images ImageStore, log *zap.Logger, field string) (*string, bool) {
	files := r.MultipartForm.File[field]
	if len(files) == 0 {
		return nil, true
	}
	if len(files) > 1 {
		writeUploadError(w, log, errTooManyFiles, field)
		return nil, false
	}

	urls, ok := saveImages(w, r, images, log, field)
	if !ok {
		return nil, false
	}
	return &urls[0], true
}

func writeUploadError(w http.ResponseWriter, log *zap.Logger, err error, field string) {
	switch {
	case errors.Is(err, storage.ErrUnsupportedType):
		log.Warn("Rejected upload", zap.String("field", field), zap.Error(err))
		utils.ResponseBadRequest(w, "صيغة الصورة غير مدعومة. يُرجى استخدام JPEG, PNG أو WebP", nil)
	case errors.Is(err, storage.ErrFileTooLarge):
		utils.ResponseBadRequest(w, "حجم الصورة يتجاوز الحد المسموح", nil)
	case errors.Is(err, storage.ErrTooManyFiles):
		utils.ResponseBadRequest(w, "عدد الصور يتجاوز الحد المسموح", nil)
	default:
		log.Error("Failed to store upload", zap.String("field", field), zap.Error(err))
		utils.ResponseInternalError(w, "خطأ في رفع الملفات")
	}
}

// collectURLs flattens optional single-file URLs for cleanup.
func collectURLs(urls ...*string) []string {
	var out []string
	for _, url := range urls {
		if url != nil {
			out = append(out, *url)
		}
	}
	return out
}
