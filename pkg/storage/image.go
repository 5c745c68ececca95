package storage

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/Mohammed-hani69/adsvairl/pkg/utils"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

// URLPrefix is where saved images are served from.
const URLPrefix = "/uploads"

var (
	ErrUnsupportedType = errors.New("unsupported image type")
	ErrFileTooLarge    = errors.New("file too large")
	ErrTooManyFiles    = errors.New("too many files")
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

var allowedMimeTypes = []string{"image/jpeg", "image/png", "image/webp"}

// ImageStore writes uploaded images to a local directory.
type ImageStore struct {
	dir      string
	maxFiles int
	maxSize  int64
	log      *zap.Logger
}

func NewImageStore(cfg utils.UploadConfig, log *zap.Logger) (*ImageStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", cfg.Dir, err)
	}

	return &ImageStore{
		dir:      cfg.Dir,
		maxFiles: cfg.MaxFiles,
		maxSize:  int64(cfg.MaxSizeMB) << 20,
		log:      log.With(zap.String("storage", "image")),
	}, nil
}

func (s *ImageStore) Dir() string {
	return s.dir
}

// MaxRequestBytes bounds a multipart body carrying the maximum number of files.
func (s *ImageStore) MaxRequestBytes() int64 {
	return int64(s.maxFiles)*s.maxSize + 1<<20
}

// Save stores every file of one form field and returns their public URLs.
// Nothing is left on disk when any file is rejected.
func (s *ImageStore) Save(field string, files []*multipart.FileHeader) ([]string, error) {
	if len(files) > s.maxFiles {
		return nil, fmt.Errorf("%d files in %s: %w", len(files), field, ErrTooManyFiles)
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := s.saveFile(field, fh)
		if err != nil {
			s.Remove(urls...)
			return nil, err
		}
		urls = append(urls, url)
	}

	return urls, nil
}

// Remove deletes previously saved files by URL. Unknown paths are ignored.
func (s *ImageStore) Remove(urls ...string) {
	for _, url := range urls {
		name := path.Base(url)
		if !strings.HasPrefix(url, URLPrefix+"/") || name == "." || name == "/" {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
			s.log.Warn("Failed to remove upload", zap.String("file", name), zap.Error(err))
		}
	}
}

func (s *ImageStore) saveFile(field string, fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%s: %w", fh.Filename, ErrUnsupportedType)
	}
	if fh.Size > s.maxSize {
		return "", fmt.Errorf("%s is %d bytes: %w", fh.Filename, fh.Size, ErrFileTooLarge)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %w", fh.Filename, err)
	}
	defer src.Close()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return "", fmt.Errorf("detect type of %s: %w", fh.Filename, err)
	}
	if !mimetype.EqualsAny(mtype.String(), allowedMimeTypes...) {
		return "", fmt.Errorf("%s detected as %s: %w", fh.Filename, mtype.String(), ErrUnsupportedType)
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind %s: %w", fh.Filename, err)
	}

	name := fmt.Sprintf("%s-%d-%d%s", field, time.Now().UnixMilli(), rand.IntN(1e9), ext)
	dst, err := os.OpenFile(filepath.Join(s.dir, name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}

	// the header size comes from the client, so cap the copy as well
	written, err := io.Copy(dst, io.LimitReader(src, s.maxSize+1))
	closeErr := dst.Close()
	if err == nil && written > s.maxSize {
		err = fmt.Errorf("%s: %w", fh.Filename, ErrFileTooLarge)
	}
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(filepath.Join(s.dir, name))
		return "", err
	}

	s.log.Debug("Image stored",
		zap.String("field", field),
		zap.String("file", name),
		zap.Int64("bytes", written),
	)

	return URLPrefix + "/" + name, nil
}
