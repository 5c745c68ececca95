package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Mohammed-hani69/adsvairl/internal/data/entity"
	"github.com/Mohammed-hani69/adsvairl/internal/data/repository"
	"github.com/Mohammed-hani69/adsvairl/internal/dto/request"
	"github.com/Mohammed-hani69/adsvairl/internal/dto/response"
	"github.com/Mohammed-hani69/adsvairl/pkg/cache"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CategoryService interface {
	GetCategories(ctx context.Context) ([]response.CategoryResponse, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*response.CategoryResponse, error)
	CreateCategory(ctx context.Context, req *request.CreateCategoryRequest) (*response.CategoryResponse, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	cache        cache.Cache
	ttl          time.Duration
	log          *zap.Logger
}

func NewCategoryService(categoryRepo repository.CategoryRepository, c cache.Cache, ttl time.Duration, log *zap.Logger) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		cache:        c,
		ttl:          ttl,
		log:          log.With(zap.String("service", "category")),
	}
}

func (s *categoryService) GetCategories(ctx context.Context) ([]response.CategoryResponse, error) {
	return readThrough(ctx, s.cache, s.log, cacheKeyCategories, s.ttl, func() ([]response.CategoryResponse, error) {
		categories, err := s.categoryRepo.FindAllActive(ctx)
		if err != nil {
			return nil, fmt.Errorf("list categories: %w", err)
		}

		out := make([]response.CategoryResponse, len(categories))
		for i, category := range categories {
			out[i] = response.CategoryToResponse(category)
		}
		return out, nil
	})
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*response.CategoryResponse, error) {
	id, err := uuid.Parse(categoryID)
	if err != nil {
		return nil, notFound("الفئة غير موجودة")
	}

	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find category %s: %w", id, err)
	}
	if category == nil {
		return nil, notFound("الفئة غير موجودة")
	}

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req *request.CreateCategoryRequest) (*response.CategoryResponse, error) {
	req.NameEn = strings.ToLower(strings.TrimSpace(req.NameEn))
	if err := validate(req); err != nil {
		return nil, err
	}

	existing, err := s.categoryRepo.FindBySlug(ctx, req.NameEn)
	if err != nil {
		return nil, fmt.Errorf("check category slug: %w", err)
	}
	if existing != nil {
		return nil, newError(ErrConflict, "الفئة موجودة مسبقاً")
	}

	now := time.Now()
	category := &entity.Category{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		NameEn:      req.NameEn,
		Icon:        req.Icon,
		Color:       req.Color,
		Description: req.Description,
		IsActive:    true,
	}
	if req.DisplayOrder != nil {
		category.DisplayOrder = *req.DisplayOrder
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, newError(ErrConflict, "الفئة موجودة مسبقاً")
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	invalidate(ctx, s.cache, s.log, cacheKeyCategories)

	s.log.Info("Category created",
		zap.String("category_id", category.ID.String()),
		zap.String("name_en", category.NameEn))

	resp := response.CategoryToResponse(category)
	return &resp, nil
}
