package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Mohammed-hani69/adsvairl/internal/data/entity"
	"github.com/Mohammed-hani69/adsvairl/internal/data/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestModerationService_GetStats(t *testing.T) {
	ads := &fakeAdRepo{counts: map[entity.AdModerationStatus]int64{
		entity.AdStatusAll:      12,
		entity.AdStatusPending:  3,
		entity.AdStatusApproved: 8,
		entity.AdStatusFeatured: 2,
	}}
	users := newFakeUserRepo()
	users.count = 40

	repo := &repository.Repository{
		Ad:       ads,
		User:     users,
		VipStore: &fakeVipStoreRepo{approved: 5},
		VipOrder: &fakeVipOrderRepo{pending: 1},
	}
	service := NewModerationService(repo, zap.NewNop())

	stats, err := service.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(12), stats.TotalAds)
	assert.Equal(t, int64(3), stats.PendingAds)
	assert.Equal(t, int64(8), stats.ApprovedAds)
	assert.Equal(t, int64(2), stats.FeaturedAds)
	assert.Equal(t, int64(40), stats.TotalUsers)
	assert.Equal(t, int64(5), stats.VipStores)
	assert.Equal(t, int64(1), stats.PendingVipOrders)
}

func TestModerationService_GetStats_Error(t *testing.T) {
	boom := errors.New("connection reset")
	repo := &repository.Repository{
		Ad:       &fakeAdRepo{countErr: boom},
		User:     newFakeUserRepo(),
		VipStore: &fakeVipStoreRepo{},
		VipOrder: &fakeVipOrderRepo{},
	}

	_, err := NewModerationService(repo, zap.NewNop()).GetStats(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestModerationService_InvalidID(t *testing.T) {
	service := NewModerationService(&repository.Repository{Ad: &fakeAdRepo{}}, zap.NewNop())

	assert.ErrorIs(t, service.ApproveAd(context.Background(), "42"), ErrNotFound)
	assert.ErrorIs(t, service.RejectAd(context.Background(), "42"), ErrNotFound)
	_, err := service.ToggleFeatured(context.Background(), "42")
	assert.ErrorIs(t, err, ErrNotFound)
}
