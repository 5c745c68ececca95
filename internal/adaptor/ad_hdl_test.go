package adaptor

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Mohammed-hani69/adsvairl/internal/dto/request"
	"github.com/Mohammed-hani69/adsvairl/internal/dto/response"
	"github.com/Mohammed-hani69/adsvairl/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAdService struct {
	usecase.AdService
	createReq *request.CreateAdRequest
	createErr error
	updateBy  usecase.Actor
	getErr    error
}

func (s *fakeAdService) CreateAd(_ context.Context, userID uuid.UUID, req *request.CreateAdRequest) (*response.AdResponse, error) {
	s.createReq = req
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &response.AdResponse{ID: uuid.NewString(), UserID: userID.String(), Title: req.Title, Images: req.Images}, nil
}

func (s *fakeAdService) UpdateAd(_ context.Context, actor usecase.Actor, adID string, req *request.UpdateAdRequest) (*response.AdResponse, error) {
	s.updateBy = actor
	return &response.AdResponse{ID: adID}, nil
}

func (s *fakeAdService) GetAd(_ context.Context, adID string) (*response.AdResponse, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &response.AdResponse{ID: adID}, nil
}

func adForm(t *testing.T, fields map[string]string, images int) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	for i := 0; i < images; i++ {
		part, err := writer.CreateFormFile("images", "photo.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("\x89PNG\r\n\x1a\n"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func validAdFields() map[string]string {
	return map[string]string{
		"title":       "شقة للبيع",
		"description": "ثلاث غرف",
		"price":       "250000",
		"categoryId":  uuid.NewString(),
		"location":    "القاهرة",
		"phone":       "0100000000",
	}
}

func TestAdHandler_CreateAd(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name        string
		fields      func() map[string]string
		images      int
		serviceErr  error
		withUser    bool
		wantStatus  int
		wantSaved   int
		wantRemoved int
	}{
		{
			name:       "created with images",
			fields:     validAdFields,
			images:     2,
			withUser:   true,
			wantStatus: http.StatusCreated,
			wantSaved:  2,
		},
		{
			name:       "anonymous",
			fields:     validAdFields,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "non numeric price",
			fields: func() map[string]string {
				f := validAdFields()
				f["price"] = "cheap"
				return f
			},
			images:     1,
			withUser:   true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing title saves nothing",
			fields: func() map[string]string {
				f := validAdFields()
				delete(f, "title")
				return f
			},
			images:     1,
			withUser:   true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:        "service failure removes images",
			fields:      validAdFields,
			images:      2,
			withUser:    true,
			serviceErr:  &usecase.Error{Kind: usecase.ErrInvalidInput, Message: "الفئة غير موجودة"},
			wantStatus:  http.StatusBadRequest,
			wantSaved:   2,
			wantRemoved: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &fakeAdService{createErr: tt.serviceErr}
			images := &fakeImages{}
			handler := NewAdHandler(service, images, zap.NewNop())

			body, contentType := adForm(t, tt.fields(), tt.images)
			req := httptest.NewRequest(http.MethodPost, "/api/ads", body)
			req.Header.Set("Content-Type", contentType)
			if tt.withUser {
				req = withUser(req, userID, false)
			}
			rec := httptest.NewRecorder()

			handler.CreateAd(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Len(t, images.saved, tt.wantSaved)
			assert.Len(t, images.removed, tt.wantRemoved)
			if tt.wantStatus == http.StatusCreated {
				require.NotNil(t, service.createReq)
				assert.Equal(t, int64(250000), *service.createReq.Price)
				assert.Equal(t, images.saved, service.createReq.Images)
			}
		})
	}
}

func TestAdHandler_UpdateAdPassesActor(t *testing.T) {
	service := &fakeAdService{}
	handler := NewAdHandler(service, &fakeImages{}, zap.NewNop())
	adminID := uuid.New()

	r := chi.NewRouter()
	r.Patch("/api/ads/{id}", handler.UpdateAd)

	req := httptest.NewRequest(http.MethodPatch, "/api/ads/abc", strings.NewReader(`{"title":"جديد"}`))
	req = withUser(req, adminID, true)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, usecase.Actor{UserID: adminID, IsAdmin: true}, service.updateBy)
}

func TestAdHandler_UpdateAdBadJSON(t *testing.T) {
	handler := NewAdHandler(&fakeAdService{}, &fakeImages{}, zap.NewNop())

	req := withUser(httptest.NewRequest(http.MethodPatch, "/api/ads/abc", strings.NewReader(`{`)), uuid.New(), false)
	rec := httptest.NewRecorder()
	handler.UpdateAd(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "بيانات غير صحيحة", decode(t, rec).Message)
}

func TestAdHandler_GetAdNotFound(t *testing.T) {
	service := &fakeAdService{getErr: &usecase.Error{Kind: usecase.ErrNotFound, Message: "الإعلان غير موجود"}}
	handler := NewAdHandler(service, &fakeImages{}, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/api/ads/{id}", handler.GetAd)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ads/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "الإعلان غير موجود", decode(t, rec).Message)
}
