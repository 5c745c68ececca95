package usecase

import (
	"context"
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

func newCategoryFixture(t *testing.T, categories ...*entity.Category) (*fakeCategoryRepo, CategoryService) {
	t.Helper()

	repo := &fakeCategoryRepo{categories: categories}
	c := cache.NewMemory(0)
	t.Cleanup(func() { c.Close() })

	return repo, NewCategoryService(repo, c, time.Minute, zap.NewNop())
}

func testCategory(nameEn string, active bool) *entity.Category {
	return &entity.Category{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		Name:         nameEn,
		NameEn:       nameEn,
		IsActive:     active,
	}
}

func TestCategoryService_CreateCategory(t *testing.T) {
	tests := []struct {
		name      string
		req       request.CreateCategoryRequest
		createErr error
		wantErr   error
	}{
		{
			name: "created",
			req:  request.CreateCategoryRequest{Name: "وظائف", NameEn: " Jobs ", Icon: "briefcase", Color: "#10B981"},
		},
		{
			name:    "name_en already used",
			req:     request.CreateCategoryRequest{Name: "سيارات", NameEn: "CARS", Icon: "car", Color: "#3B82F6"},
			wantErr: ErrConflict,
		},
		{
			name:      "concurrent insert of the same name_en",
			req:       request.CreateCategoryRequest{Name: "وظائف", NameEn: "jobs", Icon: "briefcase", Color: "#10B981"},
			createErr: fmt.Errorf("create category jobs: %w", repository.ErrDuplicate),
			wantErr:   ErrConflict,
		},
		{
			name:    "bad color",
			req:     request.CreateCategoryRequest{Name: "وظائف", NameEn: "jobs", Icon: "briefcase", Color: "green"},
			wantErr: ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, service := newCategoryFixture(t, testCategory("cars", true))
			repo.createErr = tt.createErr

			created, err := service.CreateCategory(context.Background(), &tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Len(t, repo.categories, 1)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "jobs", created.NameEn)
			assert.Len(t, repo.categories, 2)
		})
	}
}

func TestCategoryService_CreateInvalidatesCache(t *testing.T) {
	repo, service := newCategoryFixture(t, testCategory("cars", true), testCategory("archived", false))
	ctx := context.Background()

	first, err := service.GetCategories(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	_, err = service.GetCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls, "second read served from cache")

	_, err = service.CreateCategory(ctx, &request.CreateCategoryRequest{
		Name: "عقارات", NameEn: "real-estate", Icon: "home", Color: "#F59E0B",
	})
	require.NoError(t, err)

	after, err := service.GetCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, after, 2)
	assert.Equal(t, 2, repo.listCalls)
}

func TestCategoryService_GetCategoryByID(t *testing.T) {
	cars := testCategory("cars", true)
	_, service := newCategoryFixture(t, cars)
	ctx := context.Background()

	got, err := service.GetCategoryByID(ctx, cars.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "cars", got.NameEn)

	_, err = service.GetCategoryByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = service.GetCategoryByID(ctx, "cars")
	assert.ErrorIs(t, err, ErrNotFound)
}
