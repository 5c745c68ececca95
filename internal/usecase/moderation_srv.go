package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mohammed-hani69/adsvairl/internal/data/entity"
	"github.com/Mohammed-hani69/adsvairl/internal/data/repository"
	"github.com/Mohammed-hani69/adsvairl/internal/dto/request"
	"github.com/Mohammed-hani69/adsvairl/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type ModerationService interface {
	ListAds(ctx context.Context, req *request.ModerationListRequest) (*response.PaginatedResponse[response.AdResponse], error)
	ApproveAd(ctx context.Context, adID string) error
	RejectAd(ctx context.Context, adID string) error
	ToggleFeatured(ctx context.Context, adID string) (*response.FeatureToggleResponse, error)
	GetStats(ctx context.Context) (*response.AdStatsResponse, error)
}

type moderationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewModerationService(repo *repository.Repository, log *zap.Logger) ModerationService {
	return &moderationService{
		repo: repo,
		log:  log.With(zap.String("service", "moderation")),
	}
}

func (s *moderationService) ListAds(ctx context.Context, req *request.ModerationListRequest) (*response.PaginatedResponse[response.AdResponse], error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	status := entity.AdModerationStatus(req.Status)
	if status == "" {
		status = entity.AdStatusAll
	}

	ads, err := s.repo.Ad.FindForModeration(ctx, status, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list %s ads: %w", status, err)
	}

	total, err := s.repo.Ad.CountByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("count %s ads: %w", status, err)
	}

	return response.NewPaginatedResponse(response.AdsToResponse(ads), req.CurrentPage(), req.Limit(), total), nil
}

func (s *moderationService) setFlag(ctx context.Context, adID, action string, apply func(context.Context, uuid.UUID) error) error {
	id, err := uuid.Parse(adID)
	if err != nil {
		return notFound("الإعلان غير موجود")
	}

	if err := apply(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return notFound("الإعلان غير موجود")
		}
		return fmt.Errorf("%s ad %s: %w", action, id, err)
	}

	s.log.Info("Ad moderated", zap.String("ad_id", id.String()), zap.String("action", action))
	return nil
}

func (s *moderationService) ApproveAd(ctx context.Context, adID string) error {
	return s.setFlag(ctx, adID, "approve", s.repo.Ad.Approve)
}

func (s *moderationService) RejectAd(ctx context.Context, adID string) error {
	return s.setFlag(ctx, adID, "reject", s.repo.Ad.Reject)
}

func (s *moderationService) ToggleFeatured(ctx context.Context, adID string) (*response.FeatureToggleResponse, error) {
	var featured bool
	err := s.setFlag(ctx, adID, "feature", func(ctx context.Context, id uuid.UUID) error {
		var err error
		featured, err = s.repo.Ad.ToggleFeatured(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &response.FeatureToggleResponse{ID: adID, IsFeatured: featured}, nil
}

// GetStats runs the dashboard counters concurrently.
func (s *moderationService) GetStats(ctx context.Context) (*response.AdStatsResponse, error) {
	var stats entity.AdStats
	g, ctx := errgroup.WithContext(ctx)

	countAds := func(dst *int64, status entity.AdModerationStatus) {
		g.Go(func() error {
			n, err := s.repo.Ad.CountByStatus(ctx, status)
			*dst = n
			return err
		})
	}
	countAds(&stats.TotalAds, entity.AdStatusAll)
	countAds(&stats.PendingAds, entity.AdStatusPending)
	countAds(&stats.ApprovedAds, entity.AdStatusApproved)
	countAds(&stats.FeaturedAds, entity.AdStatusFeatured)

	g.Go(func() error {
		n, err := s.repo.User.CountAll(ctx)
		stats.TotalUsers = n
		return err
	})
	g.Go(func() error {
		n, err := s.repo.VipStore.CountApproved(ctx)
		stats.VipStores = n
		return err
	})
	g.Go(func() error {
		n, err := s.repo.VipOrder.CountByStatus(ctx, entity.VipOrderPending)
		stats.PendingVipOrders = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("collect stats: %w", err)
	}

	resp := response.AdStatsToResponse(&stats)
	return &resp, nil
}
