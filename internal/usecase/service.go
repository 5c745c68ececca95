package usecase

import (
	"github.com/Mohammed-hani69/adsvairl/internal/data/repository"
	"github.com/Mohammed-hani69/adsvairl/pkg/cache"
	"github.com/Mohammed-hani69/adsvairl/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	User         UserService
	Category     CategoryService
	Ad           AdService
	Moderation   ModerationService
	Location     LocationService
	VipStore     VipStoreService
	VipOrder     VipOrderService
	StoreProduct StoreProductService
	Seed         SeedService
}

func NewService(repo *repository.Repository, c cache.Cache, config *utils.Config, log *zap.Logger) *Service {
	ttl := cacheTTL(config.Cache.TTLMinutes)

	return &Service{
		Auth:         NewAuthService(repo, config, log),
		User:         NewUserService(repo.User, log),
		Category:     NewCategoryService(repo.Category, c, ttl, log),
		Ad:           NewAdService(repo, log),
		Moderation:   NewModerationService(repo, log),
		Location:     NewLocationService(repo.Location, c, ttl, log),
		VipStore:     NewVipStoreService(repo, log),
		VipOrder:     NewVipOrderService(repo, log),
		StoreProduct: NewStoreProductService(repo, log),
		Seed:         NewSeedService(repo, config, log),
	}
}
