package usecase

import (
	"context"
	"testing"

	"github.com/Mohammed-hani69/adsvairl/internal/data/entity"
	"github.com/Mohammed-hani69/adsvairl/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUserService_GetProfile(t *testing.T) {
	user := &entity.User{Base: entity.Base{ID: uuid.New()}, Username: "sara", Email: "sara@example.com", IsVip: true}
	service := NewUserService(newFakeUserRepo(user), zap.NewNop())

	profile, err := service.GetProfile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "sara", profile.Username)
	assert.True(t, profile.IsVip)

	_, err = service.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserService_GetAllUsers(t *testing.T) {
	tests := []struct {
		name       string
		req        request.PaginatedRequest
		total      int64
		wantLimit  int
		wantOffset int
		wantPage   int
		wantPages  int
	}{
		{name: "second page", req: request.PaginatedRequest{Page: 2, PerPage: 20}, total: 45, wantLimit: 20, wantOffset: 20, wantPage: 2, wantPages: 3},
		{name: "oversized page is clamped", req: request.PaginatedRequest{Page: 2, PerPage: 500}, total: 150, wantLimit: 100, wantOffset: 100, wantPage: 2, wantPages: 2},
		{name: "page zero reads the first page", req: request.PaginatedRequest{Page: 0, PerPage: 20}, total: 5, wantLimit: 20, wantOffset: 0, wantPage: 1, wantPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeUserRepo(&entity.User{Base: entity.Base{ID: uuid.New()}, Username: "a"})
			repo.count = tt.total
			service := NewUserService(repo, zap.NewNop())

			page, err := service.GetAllUsers(context.Background(), &tt.req)
			require.NoError(t, err)

			assert.Equal(t, tt.wantLimit, repo.limit)
			assert.Equal(t, tt.wantOffset, repo.offset)
			assert.Equal(t, tt.wantPage, page.Pagination.Page)
			assert.Equal(t, tt.wantLimit, page.Pagination.PerPage)
			assert.Equal(t, tt.wantPages, page.Pagination.TotalPages)
			assert.Len(t, page.Data, 1)
		})
	}
}
