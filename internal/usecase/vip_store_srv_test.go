package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/Mohammed-hani69/adsvairl/internal/data/entity"
	"github.com/Mohammed-hani69/adsvairl/internal/data/repository"
	"github.com/Mohammed-hani69/adsvairl/internal/dto/request"
	"github.com/Mohammed-hani69/adsvairl/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// storeLocations is a country with one state and one city, plus a second
// country whose state and city must not mix with the first.
type storeLocations struct {
	country, otherCountry, closed *entity.Country
	state, otherState             *entity.State
	city, otherCity               *entity.City
}

func newStoreLocations() *storeLocations {
	l := &storeLocations{
		country:      &entity.Country{BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()}, Code: "EG", Currency: "جنيه", IsActive: true},
		otherCountry: &entity.Country{BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()}, Code: "SA", Currency: "ريال", IsActive: true},
		closed:       &entity.Country{BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()}, Code: "KW", Currency: "دينار"},
	}
	l.state = &entity.State{BaseSimple: entity.BaseSimple{ID: uuid.New()}, CountryID: l.country.ID}
	l.otherState = &entity.State{BaseSimple: entity.BaseSimple{ID: uuid.New()}, CountryID: l.otherCountry.ID}
	l.city = &entity.City{BaseSimple: entity.BaseSimple{ID: uuid.New()}, StateID: l.state.ID}
	l.otherCity = &entity.City{BaseSimple: entity.BaseSimple{ID: uuid.New()}, StateID: l.otherState.ID}
	return l
}

type storeFixture struct {
	locations *storeLocations
	stores    *fakeVipStoreRepo
	products  *fakeStoreProductRepo
	repo      *repository.Repository
	service   VipStoreService
}

func newStoreFixture(stores ...*entity.VipStoreWithLocation) *storeFixture {
	l := newStoreLocations()
	f := &storeFixture{
		locations: l,
		stores:    &fakeVipStoreRepo{stores: map[uuid.UUID]*entity.VipStoreWithLocation{}},
		products:  &fakeStoreProductRepo{products: map[uuid.UUID]*entity.StoreProduct{}},
	}
	for _, s := range stores {
		f.stores.stores[s.ID] = s
	}

	f.repo = &repository.Repository{
		VipStore:     f.stores,
		StoreProduct: f.products,
		Location: &fakeLocationRepo{
			countries: []*entity.Country{l.country, l.otherCountry, l.closed},
			states:    []*entity.State{l.state, l.otherState},
			cities:    []*entity.City{l.city, l.otherCity},
		},
	}
	f.service = NewVipStoreService(f.repo, zap.NewNop())
	return f
}

func (f *storeFixture) createRequest() *request.CreateVipStoreRequest {
	return &request.CreateVipStoreRequest{
		BrandName: "  متجر النور ",
		Specialty: "إلكترونيات",
		Address:   "شارع التحرير",
		Phone:     "01000000000",
		CountryID: f.locations.country.ID.String(),
		StateID:   f.locations.state.ID.String(),
		CityID:    f.locations.city.ID.String(),
	}
}

func TestVipStoreService_CreateStore(t *testing.T) {
	owner := uuid.New()

	tests := []struct {
		name      string
		existing  bool
		createErr error
		mutate    func(f *storeFixture, req *request.CreateVipStoreRequest)
		wantErr   error
	}{
		{name: "created pending approval"},
		{
			name:    "missing brand",
			mutate:  func(_ *storeFixture, req *request.CreateVipStoreRequest) { req.BrandName = "" },
			wantErr: ErrValidation,
		},
		{
			name: "inactive country",
			mutate: func(f *storeFixture, req *request.CreateVipStoreRequest) {
				req.CountryID = f.locations.closed.ID.String()
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "state of another country",
			mutate: func(f *storeFixture, req *request.CreateVipStoreRequest) {
				req.StateID = f.locations.otherState.ID.String()
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "city of another state",
			mutate: func(f *storeFixture, req *request.CreateVipStoreRequest) {
				req.CityID = f.locations.otherCity.ID.String()
			},
			wantErr: ErrInvalidInput,
		},
		{name: "user already has a store", existing: true, wantErr: ErrConflict},
		{
			name:      "concurrent create hits the unique owner",
			createErr: fmt.Errorf("create vip store: %w", repository.ErrDuplicate),
			wantErr:   ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newStoreFixture()
			f.stores.createErr = tt.createErr
			if tt.existing {
				first := storeIn(owner, *f.locations.country, false)
				f.stores.stores[first.ID] = first
			}
			req := f.createRequest()
			if tt.mutate != nil {
				tt.mutate(f, req)
			}

			store, err := f.service.CreateStore(context.Background(), owner, req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "متجر النور", store.BrandName)
			assert.Equal(t, "متجر النور", store.StoreName, "store name falls back to the brand")
			assert.False(t, store.IsApproved)
			assert.Len(t, f.stores.stores, 1)
		})
	}
}

func TestVipStoreService_UpdateStore(t *testing.T) {
	owner := uuid.New()

	tests := []struct {
		name    string
		actor   Actor
		wantErr error
	}{
		{name: "owner", actor: Actor{UserID: owner}},
		{name: "admin", actor: Actor{UserID: uuid.New(), IsAdmin: true}},
		{name: "another member", actor: Actor{UserID: uuid.New()}, wantErr: ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newStoreLocations()
			store := storeIn(owner, *l.country, true)
			f := newStoreFixture(store)

			resp, err := f.service.UpdateStore(context.Background(), tt.actor, store.ID.String(),
				&request.UpdateVipStoreRequest{Specialty: utils.StringPtr(" ملابس ")})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, f.stores.updated)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "ملابس", resp.Specialty)
			require.Len(t, f.stores.updated, 1)
		})
	}
}

func TestVipStoreService_GetStore(t *testing.T) {
	owner := uuid.New()
	l := newStoreLocations()

	tests := []struct {
		name     string
		approved bool
		actor    Actor
		wantErr  error
	}{
		{name: "approved store is public", approved: true},
		{name: "pending store hidden from anonymous", wantErr: ErrNotFound},
		{name: "pending store hidden from other members", actor: Actor{UserID: uuid.New()}, wantErr: ErrNotFound},
		{name: "pending store visible to its owner", actor: Actor{UserID: owner}},
		{name: "pending store visible to admins", actor: Actor{UserID: uuid.New(), IsAdmin: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storeIn(owner, *l.country, tt.approved)
			f := newStoreFixture(store)

			resp, err := f.service.GetStore(context.Background(), tt.actor, store.ID.String())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, store.ID.String(), resp.ID)
		})
	}
}

func TestVipStoreService_GetStore_Invalid(t *testing.T) {
	f := newStoreFixture()

	_, err := f.service.GetStore(context.Background(), Actor{}, "not-a-uuid")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.service.GetStore(context.Background(), Actor{}, uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVipStoreService_ApproveStore(t *testing.T) {
	owner := uuid.New()
	l := newStoreLocations()
	store := storeIn(owner, *l.country, false)
	f := newStoreFixture(store)

	resp, err := f.service.ApproveStore(context.Background(), store.ID.String())
	require.NoError(t, err)

	assert.True(t, resp.IsApproved)
	assert.Equal(t, []uuid.UUID{store.ID}, f.stores.approvedIDs)
	assert.True(t, f.stores.stores[store.ID].OwnerIsVip)
}

func TestVipStoreService_ReplaceImage(t *testing.T) {
	owner := uuid.New()
	oldLogo := "/uploads/logoFile-old.png"

	tests := []struct {
		name         string
		actor        Actor
		kind         StoreImage
		wantPrevious *string
		wantErr      error
	}{
		{name: "logo returns the replaced file", actor: Actor{UserID: owner}, kind: StoreLogo, wantPrevious: &oldLogo},
		{name: "first banner has nothing to replace", actor: Actor{UserID: owner}, kind: StoreBanner},
		{name: "another member", actor: Actor{UserID: uuid.New()}, kind: StoreLogo, wantErr: ErrForbidden},
		{name: "unknown slot", actor: Actor{UserID: owner}, kind: "avatar", wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newStoreLocations()
			store := storeIn(owner, *l.country, true)
			store.Logo = utils.StringPtr(oldLogo)
			f := newStoreFixture(store)
			url := "/uploads/new.png"

			resp, previous, err := f.service.ReplaceImage(context.Background(), tt.actor, store.ID.String(), tt.kind, url)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, f.stores.updated)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantPrevious, previous)
			saved := f.stores.stores[store.ID]
			switch tt.kind {
			case StoreLogo:
				assert.Equal(t, &url, saved.Logo)
				assert.Equal(t, &url, resp.Logo)
			case StoreBanner:
				assert.Equal(t, &url, saved.Banner)
				assert.Equal(t, &oldLogo, saved.Logo)
			}
		})
	}
}
