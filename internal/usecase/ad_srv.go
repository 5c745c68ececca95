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
	"github.com/Mohammed-hani69/adsvairl/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const featuredAdsLimit = 6

type AdService interface {
	ListAds(ctx context.Context, req *request.ListAdsRequest) (*response.PaginatedResponse[response.AdResponse], error)
	GetFeaturedAds(ctx context.Context) ([]response.AdResponse, error)
	GetAd(ctx context.Context, adID string) (*response.AdResponse, error)
	CreateAd(ctx context.Context, userID uuid.UUID, req *request.CreateAdRequest) (*response.AdResponse, error)
	UpdateAd(ctx context.Context, actor Actor, adID string, req *request.UpdateAdRequest) (*response.AdResponse, error)
	DeleteAd(ctx context.Context, actor Actor, adID string) error
	GetUserAds(ctx context.Context, userID uuid.UUID) ([]response.AdResponse, error)
}

type adService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAdService(repo *repository.Repository, log *zap.Logger) AdService {
	return &adService{
		repo: repo,
		log:  log.With(zap.String("service", "ad")),
	}
}

// buildAdFilter turns the raw query parameters into a typed filter.
func buildAdFilter(req *request.ListAdsRequest) (entity.AdFilter, error) {
	var filter entity.AdFilter

	if categoryID := strings.TrimSpace(req.CategoryID); categoryID != "" {
		id, err := uuid.Parse(categoryID)
		if err != nil {
			return filter, invalidInput("معرّف الفئة غير صالح")
		}
		filter.CategoryID = &id
	}

	minPrice, err := utils.ParseOptionalInt64(req.MinPrice)
	if err != nil {
		return filter, invalidInput("الحد الأدنى للسعر غير صالح")
	}
	maxPrice, err := utils.ParseOptionalInt64(req.MaxPrice)
	if err != nil {
		return filter, invalidInput("الحد الأقصى للسعر غير صالح")
	}
	if minPrice != nil && maxPrice != nil && *minPrice > *maxPrice {
		return filter, invalidInput("الحد الأدنى للسعر أكبر من الحد الأقصى")
	}
	filter.MinPrice = minPrice
	filter.MaxPrice = maxPrice

	if location := strings.TrimSpace(req.Location); location != "" {
		filter.Location = &location
	}
	if search := strings.TrimSpace(req.Search); search != "" {
		filter.Search = &search
	}

	return filter, nil
}

func (s *adService) ListAds(ctx context.Context, req *request.ListAdsRequest) (*response.PaginatedResponse[response.AdResponse], error) {
	filter, err := buildAdFilter(req)
	if err != nil {
		return nil, err
	}

	ads, err := s.repo.Ad.FindPublished(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list ads: %w", err)
	}

	total, err := s.repo.Ad.CountPublished(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count ads: %w", err)
	}

	return response.NewPaginatedResponse(response.AdsToResponse(ads), req.CurrentPage(), req.Limit(), total), nil
}

func (s *adService) GetFeaturedAds(ctx context.Context) ([]response.AdResponse, error) {
	ads, err := s.repo.Ad.FindFeatured(ctx, featuredAdsLimit)
	if err != nil {
		return nil, fmt.Errorf("list featured ads: %w", err)
	}
	return response.AdsToResponse(ads), nil
}

// GetAd counts a view and returns the public ad. Unpublished ads are not found.
func (s *adService) GetAd(ctx context.Context, adID string) (*response.AdResponse, error) {
	id, err := uuid.Parse(adID)
	if err != nil {
		return nil, notFound("الإعلان غير موجود")
	}

	if _, err := s.repo.Ad.IncrementViews(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, notFound("الإعلان غير موجود")
		}
		return nil, fmt.Errorf("count view of %s: %w", id, err)
	}

	ad, err := s.repo.Ad.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find ad %s: %w", id, err)
	}
	if ad == nil {
		return nil, notFound("الإعلان غير موجود")
	}

	resp := response.AdWithCategoryToResponse(ad)
	return &resp, nil
}

func (s *adService) CreateAd(ctx context.Context, userID uuid.UUID, req *request.CreateAdRequest) (*response.AdResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	categoryID := uuid.MustParse(req.CategoryID)
	category, err := s.repo.Category.FindByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("find category %s: %w", categoryID, err)
	}
	if category == nil {
		return nil, invalidInput("الفئة غير موجودة")
	}

	currency := strings.TrimSpace(req.Currency)
	if currency == "" {
		currency = entity.DefaultCurrency
	}
	if req.Email != nil && strings.TrimSpace(*req.Email) == "" {
		req.Email = nil
	}

	now := time.Now()
	ad := &entity.Ad{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Price:       req.Price,
		Currency:    currency,
		CategoryID:  categoryID,
		UserID:      userID,
		Location:    strings.TrimSpace(req.Location),
		Phone:       strings.TrimSpace(req.Phone),
		Email:       req.Email,
		Images:      req.Images,
		IsActive:    true,
	}
	if ad.Images == nil {
		ad.Images = []string{}
	}

	if err := s.repo.Ad.Create(ctx, ad); err != nil {
		return nil, fmt.Errorf("create ad: %w", err)
	}

	s.log.Info("Ad submitted for review",
		zap.String("ad_id", ad.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Int("images", len(ad.Images)))

	resp := response.AdToResponse(ad)
	categoryResp := response.CategoryToResponse(category)
	resp.Category = &categoryResp
	return &resp, nil
}

func (s *adService) findOwned(ctx context.Context, actor Actor, adID string) (*entity.AdWithCategory, error) {
	id, err := uuid.Parse(adID)
	if err != nil {
		return nil, notFound("الإعلان غير موجود")
	}

	ad, err := s.repo.Ad.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find ad %s: %w", id, err)
	}
	if ad == nil {
		return nil, notFound("الإعلان غير موجود")
	}
	if !actor.Owns(ad.UserID) {
		s.log.Warn("Ad access denied",
			zap.String("ad_id", id.String()),
			zap.String("user_id", actor.UserID.String()))
		return nil, newError(ErrForbidden, "لا تملك صلاحية تعديل هذا الإعلان")
	}

	return ad, nil
}

// UpdateAd applies the non-nil fields. An edit by the owner sends the ad back to review.
func (s *adService) UpdateAd(ctx context.Context, actor Actor, adID string, req *request.UpdateAdRequest) (*response.AdResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	ad, err := s.findOwned(ctx, actor, adID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		ad.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		ad.Description = *req.Description
	}
	if req.Price != nil {
		ad.Price = req.Price
	}
	if req.Currency != nil {
		ad.Currency = strings.TrimSpace(*req.Currency)
		if ad.Currency == "" {
			ad.Currency = entity.DefaultCurrency
		}
	}
	if req.Location != nil {
		ad.Location = strings.TrimSpace(*req.Location)
	}
	if req.Phone != nil {
		ad.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		ad.Email = req.Email
		if strings.TrimSpace(*req.Email) == "" {
			ad.Email = nil
		}
	}
	if !actor.IsAdmin {
		ad.IsApproved = false
	}
	ad.UpdatedAt = time.Now()

	if err := s.repo.Ad.Update(ctx, &ad.Ad); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, notFound("الإعلان غير موجود")
		}
		return nil, fmt.Errorf("update ad %s: %w", ad.ID, err)
	}

	s.log.Info("Ad updated",
		zap.String("ad_id", ad.ID.String()),
		zap.Bool("by_admin", actor.IsAdmin),
		zap.Bool("needs_review", !ad.IsApproved))

	resp := response.AdWithCategoryToResponse(ad)
	return &resp, nil
}

func (s *adService) DeleteAd(ctx context.Context, actor Actor, adID string) error {
	ad, err := s.findOwned(ctx, actor, adID)
	if err != nil {
		return err
	}

	if err := s.repo.Ad.SoftDelete(ctx, ad.ID); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return notFound("الإعلان غير موجود")
		}
		return fmt.Errorf("delete ad %s: %w", ad.ID, err)
	}

	return nil
}

func (s *adService) GetUserAds(ctx context.Context, userID uuid.UUID) ([]response.AdResponse, error) {
	ads, err := s.repo.Ad.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list ads of %s: %w", userID, err)
	}
	return response.AdsToResponse(ads), nil
}
