package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Mohammed-hani69/adsvairl/internal/data/entity"
	"github.com/Mohammed-hani69/adsvairl/internal/data/repository"
	"github.com/Mohammed-hani69/adsvairl/internal/dto/request"
	"github.com/Mohammed-hani69/adsvairl/pkg/cache"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newLocationFixture(t *testing.T, countries ...*entity.Country) (*fakeLocationRepo, LocationService) {
	t.Helper()

	repo := &fakeLocationRepo{countries: countries}
	c := cache.NewMemory(0)
	t.Cleanup(func() { c.Close() })

	return repo, NewLocationService(repo, c, time.Minute, zap.NewNop())
}

func TestLocationService_GetCountriesCached(t *testing.T) {
	active := &entity.Country{BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()}, Code: "EG", IsActive: true}
	hidden := &entity.Country{BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()}, Code: "KW"}
	repo, service := newLocationFixture(t, active, hidden)
	ctx := context.Background()

	first, err := service.GetCountries(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "EG", first[0].Code)

	second, err := service.GetCountries(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.calls)
}

func TestLocationService_CreateCountryInvalidatesCache(t *testing.T) {
	repo, service := newLocationFixture(t)
	ctx := context.Background()

	countries, err := service.GetCountries(ctx)
	require.NoError(t, err)
	assert.Empty(t, countries)

	_, err = service.CreateCountry(ctx, &request.CreateCountryRequest{
		Name:           "الكويت",
		NameEn:         "Kuwait",
		Code:           "kw",
		Currency:       "دينار",
		VipPrice:       30,
		PaymentMethods: []string{"bank_transfer"},
	})
	require.NoError(t, err)

	countries, err = service.GetCountries(ctx)
	require.NoError(t, err)
	require.Len(t, countries, 1)
	assert.Equal(t, 2, repo.calls)
}

func TestLocationService_CreateCountryRejects(t *testing.T) {
	existing := &entity.Country{BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()}, Code: "EG", IsActive: true}

	tests := []struct {
		name      string
		req       request.CreateCountryRequest
		createErr error
		wantErr   error
	}{
		{
			name:    "unknown payment method",
			req:     request.CreateCountryRequest{Name: "x", NameEn: "x", Code: "QA", Currency: "x", PaymentMethods: []string{"paypal"}},
			wantErr: ErrValidation,
		},
		{
			name:    "negative price",
			req:     request.CreateCountryRequest{Name: "x", NameEn: "x", Code: "QA", Currency: "x", VipPrice: -1, PaymentMethods: []string{"stripe"}},
			wantErr: ErrValidation,
		},
		{
			name:    "duplicate code",
			req:     request.CreateCountryRequest{Name: "x", NameEn: "x", Code: "EG", Currency: "x", PaymentMethods: []string{"stripe"}},
			wantErr: ErrConflict,
		},
		{
			name:      "code inserted concurrently",
			req:       request.CreateCountryRequest{Name: "x", NameEn: "x", Code: "QA", Currency: "x", PaymentMethods: []string{"stripe"}},
			createErr: fmt.Errorf("create country QA: %w", repository.ErrDuplicate),
			wantErr:   ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, service := newLocationFixture(t, existing)
			repo.createErr = tt.createErr

			_, err := service.CreateCountry(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.created)
		})
	}
}

func TestLocationService_GetStatesInvalidID(t *testing.T) {
	_, service := newLocationFixture(t)

	_, err := service.GetStates(context.Background(), "egypt")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLocationService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		deleteErr error
		id        string
		wantErr   error
	}{
		{name: "deleted", id: uuid.NewString()},
		{name: "missing row", id: uuid.NewString(), deleteErr: fmt.Errorf("countries: %w", repository.ErrNoRows), wantErr: ErrNotFound},
		{name: "still referenced", id: uuid.NewString(), deleteErr: fmt.Errorf("delete countries: %w", repository.ErrInUse), wantErr: ErrConflict},
		{name: "malformed id", id: "egypt", wantErr: ErrNotFound},
		{name: "storage failure", id: uuid.NewString(), deleteErr: errors.New("connection reset")},
	}

	deletes := map[string]func(LocationService) func(context.Context, string) error{
		"country": func(s LocationService) func(context.Context, string) error { return s.DeleteCountry },
		"state":   func(s LocationService) func(context.Context, string) error { return s.DeleteState },
		"city":    func(s LocationService) func(context.Context, string) error { return s.DeleteCity },
	}

	for kind, del := range deletes {
		for _, tt := range tests {
			t.Run(kind+"/"+tt.name, func(t *testing.T) {
				repo, service := newLocationFixture(t)
				repo.deleteErr = tt.deleteErr

				err := del(service)(context.Background(), tt.id)
				switch {
				case tt.wantErr != nil:
					assert.ErrorIs(t, err, tt.wantErr)
					assert.Empty(t, repo.deleted)
				case tt.deleteErr != nil:
					assert.ErrorIs(t, err, tt.deleteErr)
				default:
					require.NoError(t, err)
					assert.Equal(t, []uuid.UUID{uuid.MustParse(tt.id)}, repo.deleted)
				}
			})
		}
	}
}

func TestLocationService_DeleteInvalidatesCache(t *testing.T) {
	country := &entity.Country{BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()}, Code: "EG", IsActive: true}
	repo, service := newLocationFixture(t, country)
	ctx := context.Background()

	_, err := service.GetCountries(ctx)
	require.NoError(t, err)

	require.NoError(t, service.DeleteCity(ctx, uuid.NewString()))

	_, err = service.GetCountries(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}
