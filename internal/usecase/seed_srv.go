package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Mohammed-hani69/adsvairl/internal/data/entity"
	"github.com/Mohammed-hani69/adsvairl/internal/data/repository"
	"github.com/Mohammed-hani69/adsvairl/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SeedService interface {
	Seed(ctx context.Context) error
}

type seedService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewSeedService(repo *repository.Repository, config *utils.Config, log *zap.Logger) SeedService {
	return &seedService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "seed")),
	}
}

var defaultCategories = []entity.Category{
	{Name: "عقارات", NameEn: "real-estate", Icon: "fas fa-home", Color: "#EF4444", Description: utils.StringPtr("بيع وشراء وإيجار العقارات")},
	{Name: "سيارات", NameEn: "cars", Icon: "fas fa-car", Color: "#8B5CF6", Description: utils.StringPtr("بيع وشراء السيارات والمركبات")},
	{Name: "وظائف", NameEn: "jobs", Icon: "fas fa-briefcase", Color: "#06B6D4", Description: utils.StringPtr("الوظائف والفرص المهنية")},
	{Name: "إلكترونيات", NameEn: "electronics", Icon: "fas fa-laptop", Color: "#EC4899", Description: utils.StringPtr("الأجهزة الإلكترونية والتقنية")},
	{Name: "خدمات", NameEn: "services", Icon: "fas fa-tools", Color: "#84CC16", Description: utils.StringPtr("الخدمات المتنوعة")},
	{Name: "أزياء وموضة", NameEn: "fashion", Icon: "fas fa-tshirt", Color: "#F59E0B", Description: utils.StringPtr("الملابس والإكسسوارات")},
}

type seedState struct {
	name, nameEn string
	cities       [][2]string
}

type seedCountry struct {
	country entity.Country
	states  []seedState
}

var defaultCountries = []seedCountry{
	{
		country: entity.Country{
			Name: "مصر", NameEn: "Egypt", Code: "EG", Currency: "جنيه مصري", VipPrice: 350,
			PaymentMethods:        []string{string(entity.PaymentBankTransfer)},
			RequiresTransferProof: true,
		},
		states: []seedState{{
			name: "القاهرة", nameEn: "Cairo",
			cities: [][2]string{{"مدينة نصر", "Nasr City"}, {"المعادي", "Maadi"}, {"الزمالك", "Zamalek"}},
		}},
	},
	{
		country: entity.Country{
			Name: "السعودية", NameEn: "Saudi Arabia", Code: "SA", Currency: "ريال سعودي", VipPrice: 525,
			PaymentMethods: []string{string(entity.PaymentBankTransfer), string(entity.PaymentStripe)},
		},
	},
	{
		country: entity.Country{
			Name: "الإمارات", NameEn: "UAE", Code: "AE", Currency: "درهم إماراتي", VipPrice: 515,
			PaymentMethods: []string{string(entity.PaymentBankTransfer), string(entity.PaymentStripe)},
		},
	},
}

// Seed fills empty reference tables and makes sure the configured admin exists.
// It is safe to run on every start.
func (s *seedService) Seed(ctx context.Context) error {
	if err := s.seedAdmin(ctx); err != nil {
		return err
	}
	if err := s.seedCategories(ctx); err != nil {
		return err
	}
	return s.seedCountries(ctx)
}

func (s *seedService) seedAdmin(ctx context.Context) error {
	cfg := s.config.Admin
	email := strings.ToLower(strings.TrimSpace(cfg.Email))
	if email == "" || cfg.Password == "" {
		s.log.Warn("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin account")
		return nil
	}

	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("find admin %s: %w", email, err)
	}

	if user != nil {
		if user.IsAdmin && user.IsActive {
			return nil
		}
		user.IsAdmin = true
		user.IsActive = true
		user.UpdatedAt = time.Now()
		if err := s.repo.User.Update(ctx, user); err != nil {
			return fmt.Errorf("promote admin %s: %w", email, err)
		}
		s.log.Info("Existing user promoted to admin", zap.String("email", email))
		return nil
	}

	hashedPassword, err := utils.HashPassword(cfg.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	now := time.Now()
	admin := &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Username:     cfg.Username,
		Email:        email,
		PasswordHash: hashedPassword,
		IsAdmin:      true,
		IsActive:     true,
	}
	if err := s.repo.User.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin %s: %w", email, err)
	}

	s.log.Info("Admin account created", zap.String("email", email))
	return nil
}

func (s *seedService) seedCategories(ctx context.Context) error {
	count, err := s.repo.Category.Count(ctx)
	if err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	for i, category := range defaultCategories {
		category.BaseNoDelete = entity.BaseNoDelete{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
		category.DisplayOrder = i + 1
		category.IsActive = true

		if err := s.repo.Category.Create(ctx, &category); err != nil {
			return fmt.Errorf("seed category %s: %w", category.NameEn, err)
		}
	}

	s.log.Info("Default categories created", zap.Int("count", len(defaultCategories)))
	return nil
}

func (s *seedService) seedCountries(ctx context.Context) error {
	existing, err := s.repo.Location.FindCountries(ctx, false)
	if err != nil {
		return fmt.Errorf("list countries: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now()
	for _, seed := range defaultCountries {
		country := seed.country
		country.BaseNoDelete = entity.BaseNoDelete{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
		country.IsActive = true

		if err := s.repo.Location.CreateCountry(ctx, &country); err != nil {
			return fmt.Errorf("seed country %s: %w", country.Code, err)
		}

		for _, st := range seed.states {
			state := &entity.State{
				BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
				Name:       st.name,
				NameEn:     st.nameEn,
				CountryID:  country.ID,
			}
			if err := s.repo.Location.CreateState(ctx, state); err != nil {
				return fmt.Errorf("seed state %s: %w", st.nameEn, err)
			}

			for _, c := range st.cities {
				city := &entity.City{
					BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
					Name:       c[0],
					NameEn:     c[1],
					StateID:    state.ID,
				}
				if err := s.repo.Location.CreateCity(ctx, city); err != nil {
					return fmt.Errorf("seed city %s: %w", c[1], err)
				}
			}
		}
	}

	s.log.Info("Default countries created", zap.Int("count", len(defaultCountries)))
	return nil
}
