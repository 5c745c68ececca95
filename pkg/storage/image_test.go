package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Mohammed-hani69/adsvairl/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	pngHeader  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")
	jpegHeader = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00\x01\x01\x00\x00\x01\x00\x01\x00\x00")
)

type upload struct {
	name    string
	content []byte
}

// formFiles builds real multipart headers the way net/http parses them.
func formFiles(t *testing.T, field string, uploads ...upload) []*multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for _, u := range uploads {
		fw, err := mw.CreateFormFile(field, u.name)
		require.NoError(t, err)
		_, err = fw.Write(u.content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File[field]
}

func newStore(t *testing.T, maxFiles, maxSizeMB int) *ImageStore {
	t.Helper()
	store, err := NewImageStore(utils.UploadConfig{
		Dir:       t.TempDir(),
		MaxFiles:  maxFiles,
		MaxSizeMB: maxSizeMB,
	}, zap.NewNop())
	require.NoError(t, err)
	return store
}

func dirEntries(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return len(entries)
}

func TestImageStore_Save(t *testing.T) {
	store := newStore(t, 5, 1)

	files := formFiles(t, "images",
		upload{name: "front.png", content: pngHeader},
		upload{name: "Side.JPG", content: jpegHeader},
	)

	urls, err := store.Save("images", files)
	require.NoError(t, err)
	require.Len(t, urls, 2)

	for _, url := range urls {
		assert.True(t, strings.HasPrefix(url, "/uploads/images-"), url)
		_, err := os.Stat(filepath.Join(store.Dir(), filepath.Base(url)))
		assert.NoError(t, err)
	}
	assert.True(t, strings.HasSuffix(urls[1], ".jpg"))
}

func TestImageStore_Rejections(t *testing.T) {
	big := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 2<<20)...)

	tests := []struct {
		name    string
		uploads []upload
		wantErr error
	}{
		{
			name:    "wrong extension",
			uploads: []upload{{name: "doc.gif", content: pngHeader}},
			wantErr: ErrUnsupportedType,
		},
		{
			name:    "content is not an image",
			uploads: []upload{{name: "fake.png", content: []byte("#!/bin/sh\necho hi\n")}},
			wantErr: ErrUnsupportedType,
		},
		{
			name:    "too large",
			uploads: []upload{{name: "big.png", content: big}},
			wantErr: ErrFileTooLarge,
		},
		{
			name: "too many",
			uploads: []upload{
				{name: "1.png", content: pngHeader},
				{name: "2.png", content: pngHeader},
				{name: "3.png", content: pngHeader},
			},
			wantErr: ErrTooManyFiles,
		},
		{
			name: "second file bad, first cleaned up",
			uploads: []upload{
				{name: "ok.png", content: pngHeader},
				{name: "bad.png", content: []byte("plain text")},
			},
			wantErr: ErrUnsupportedType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStore(t, 2, 1)

			urls, err := store.Save("images", formFiles(t, "images", tt.uploads...))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, urls)
			assert.Equal(t, 0, dirEntries(t, store.Dir()))
		})
	}
}

func TestImageStore_Remove(t *testing.T) {
	store := newStore(t, 5, 1)

	urls, err := store.Save("logoFile", formFiles(t, "logoFile", upload{name: "logo.png", content: pngHeader}))
	require.NoError(t, err)
	require.Equal(t, 1, dirEntries(t, store.Dir()))

	store.Remove("/elsewhere/logo.png", "")
	assert.Equal(t, 1, dirEntries(t, store.Dir()))

	store.Remove(urls...)
	assert.Equal(t, 0, dirEntries(t, store.Dir()))
}

func TestImageStore_MaxRequestBytes(t *testing.T) {
	store := newStore(t, 5, 5)
	assert.Equal(t, int64(5*5<<20+1<<20), store.MaxRequestBytes())
}
