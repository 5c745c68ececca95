package usecase

import (
	"testing"

	"github.com/Mohammed-hani69/adsvairl/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAdFilter(t *testing.T) {
	categoryID := uuid.New()

	tests := []struct {
		name    string
		req     request.ListAdsRequest
		wantErr bool
		check   func(t *testing.T, req request.ListAdsRequest)
	}{
		{
			name: "empty query matches everything",
			req:  request.ListAdsRequest{},
		},
		{
			name: "all filters",
			req: request.ListAdsRequest{
				CategoryID: categoryID.String(),
				Location:   "  Cairo ",
				MinPrice:   "100",
				MaxPrice:   "500",
				Search:     "iphone",
			},
		},
		{name: "bad category id", req: request.ListAdsRequest{CategoryID: "nope"}, wantErr: true},
		{name: "non numeric min price", req: request.ListAdsRequest{MinPrice: "cheap"}, wantErr: true},
		{name: "non numeric max price", req: request.ListAdsRequest{MaxPrice: "1e3"}, wantErr: true},
		{name: "min above max", req: request.ListAdsRequest{MinPrice: "900", MaxPrice: "100"}, wantErr: true},
		{name: "equal bounds", req: request.ListAdsRequest{MinPrice: "100", MaxPrice: "100"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := buildAdFilter(&tt.req)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)

			if tt.req.CategoryID == "" {
				assert.Nil(t, filter.CategoryID)
			}
			if tt.req.MinPrice == "" {
				assert.Nil(t, filter.MinPrice)
			}
		})
	}
}

func TestBuildAdFilter_TrimsText(t *testing.T) {
	categoryID := uuid.New()

	filter, err := buildAdFilter(&request.ListAdsRequest{
		CategoryID: categoryID.String(),
		Location:   "  Cairo ",
		Search:     "   ",
		MinPrice:   "100",
		MaxPrice:   "500",
	})
	require.NoError(t, err)

	require.NotNil(t, filter.CategoryID)
	assert.Equal(t, categoryID, *filter.CategoryID)
	require.NotNil(t, filter.Location)
	assert.Equal(t, "Cairo", *filter.Location)
	assert.Nil(t, filter.Search)
	assert.Equal(t, int64(100), *filter.MinPrice)
	assert.Equal(t, int64(500), *filter.MaxPrice)
}

func TestActorOwns(t *testing.T) {
	owner := uuid.New()

	assert.True(t, Actor{UserID: owner}.Owns(owner))
	assert.False(t, Actor{UserID: uuid.New()}.Owns(owner))
	assert.True(t, Actor{UserID: uuid.New(), IsAdmin: true}.Owns(owner))
}
