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

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type VipStoreService interface {
	ListStores(ctx context.Context) ([]response.VipStoreResponse, error)
	GetStore(ctx context.Context, actor Actor, storeID string) (*response.VipStoreResponse, error)
	GetUserStore(ctx context.Context, userID uuid.UUID) (*response.VipStoreResponse, error)
	CreateStore(ctx context.Context, userID uuid.UUID, req *request.CreateVipStoreRequest) (*response.VipStoreResponse, error)
	UpdateStore(ctx context.Context, actor Actor, storeID string, req *request.UpdateVipStoreRequest) (*response.VipStoreResponse, error)
	ReplaceImage(ctx context.Context, actor Actor, storeID string, kind StoreImage, url string) (*response.VipStoreResponse, *string, error)

	ListAllStores(ctx context.Context) ([]response.VipStoreResponse, error)
	ApproveStore(ctx context.Context, storeID string) (*response.VipStoreResponse, error)
}

// StoreImage names one of the two single-image slots of a store.
type StoreImage string

const (
	StoreLogo   StoreImage = "logo"
	StoreBanner StoreImage = "banner"
)

type vipStoreService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewVipStoreService(repo *repository.Repository, log *zap.Logger) VipStoreService {
	return &vipStoreService{
		repo: repo,
		log:  log.With(zap.String("service", "vip_store")),
	}
}

func (s *vipStoreService) ListStores(ctx context.Context) ([]response.VipStoreResponse, error) {
	stores, err := s.repo.VipStore.FindAll(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list approved stores: %w", err)
	}
	return response.VipStoresToResponse(stores), nil
}

func (s *vipStoreService) ListAllStores(ctx context.Context) ([]response.VipStoreResponse, error) {
	stores, err := s.repo.VipStore.FindAll(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	return response.VipStoresToResponse(stores), nil
}

func (s *vipStoreService) findStore(ctx context.Context, storeID string) (*entity.VipStoreWithLocation, error) {
	id, err := uuid.Parse(storeID)
	if err != nil {
		return nil, notFound("المتجر غير موجود")
	}

	store, err := s.repo.VipStore.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find store %s: %w", id, err)
	}
	if store == nil {
		return nil, notFound("المتجر غير موجود")
	}
	return store, nil
}

// GetStore hides stores awaiting approval from everyone but their owner and admins.
func (s *vipStoreService) GetStore(ctx context.Context, actor Actor, storeID string) (*response.VipStoreResponse, error) {
	store, err := s.findStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if !store.IsApproved && !actor.Owns(store.UserID) {
		return nil, notFound("المتجر غير موجود")
	}

	resp := response.VipStoreToResponse(store)
	return &resp, nil
}

func (s *vipStoreService) GetUserStore(ctx context.Context, userID uuid.UUID) (*response.VipStoreResponse, error) {
	store, err := s.repo.VipStore.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find store of %s: %w", userID, err)
	}
	if store == nil {
		return nil, notFound("لا يوجد متجر لهذا الحساب")
	}

	resp := response.VipStoreToResponse(store)
	return &resp, nil
}

// checkLocation verifies that the city is in the state and the state in the country.
func (s *vipStoreService) checkLocation(ctx context.Context, countryID, stateID, cityID uuid.UUID) error {
	country, err := s.repo.Location.FindCountryByID(ctx, countryID)
	if err != nil {
		return fmt.Errorf("find country %s: %w", countryID, err)
	}
	if country == nil || !country.IsActive {
		return invalidInput("الدولة غير موجودة")
	}

	state, err := s.repo.Location.FindStateByID(ctx, stateID)
	if err != nil {
		return fmt.Errorf("find state %s: %w", stateID, err)
	}
	if state == nil || state.CountryID != countryID {
		return invalidInput("المحافظة لا تتبع الدولة المختارة")
	}

	city, err := s.repo.Location.FindCityByID(ctx, cityID)
	if err != nil {
		return fmt.Errorf("find city %s: %w", cityID, err)
	}
	if city == nil || city.StateID != stateID {
		return invalidInput("المدينة لا تتبع المحافظة المختارة")
	}

	return nil
}

func (s *vipStoreService) CreateStore(ctx context.Context, userID uuid.UUID, req *request.CreateVipStoreRequest) (*response.VipStoreResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	existing, err := s.repo.VipStore.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check store of %s: %w", userID, err)
	}
	if existing != nil {
		return nil, newError(ErrConflict, "لديك متجر مسجل مسبقاً")
	}

	countryID := uuid.MustParse(req.CountryID)
	stateID := uuid.MustParse(req.StateID)
	cityID := uuid.MustParse(req.CityID)
	if err := s.checkLocation(ctx, countryID, stateID, cityID); err != nil {
		return nil, err
	}

	storeName := strings.TrimSpace(req.StoreName)
	if storeName == "" {
		storeName = strings.TrimSpace(req.BrandName)
	}

	now := time.Now()
	store := &entity.VipStore{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:    userID,
		StoreName: storeName,
		BrandName: strings.TrimSpace(req.BrandName),
		Specialty: strings.TrimSpace(req.Specialty),
		Logo:      req.Logo,
		Banner:    req.Banner,
		Address:   strings.TrimSpace(req.Address),
		CountryID: countryID,
		StateID:   stateID,
		CityID:    cityID,
		Phone:     strings.TrimSpace(req.Phone),
		IsActive:  true,
	}

	if err := s.repo.VipStore.Create(ctx, store); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, newError(ErrConflict, "لديك متجر مسجل مسبقاً")
		}
		return nil, fmt.Errorf("create store: %w", err)
	}

	s.log.Info("VIP store submitted",
		zap.String("store_id", store.ID.String()),
		zap.String("user_id", userID.String()))

	created, err := s.repo.VipStore.FindByID(ctx, store.ID)
	if err != nil {
		return nil, fmt.Errorf("reload store %s: %w", store.ID, err)
	}
	if created == nil {
		return nil, notFound("المتجر غير موجود")
	}

	resp := response.VipStoreToResponse(created)
	return &resp, nil
}

func (s *vipStoreService) UpdateStore(ctx context.Context, actor Actor, storeID string, req *request.UpdateVipStoreRequest) (*response.VipStoreResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	store, err := s.findStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if !actor.Owns(store.UserID) {
		return nil, newError(ErrForbidden, "لا تملك صلاحية تعديل هذا المتجر")
	}

	if req.StoreName != nil {
		store.StoreName = strings.TrimSpace(*req.StoreName)
	}
	if req.BrandName != nil {
		store.BrandName = strings.TrimSpace(*req.BrandName)
	}
	if req.Specialty != nil {
		store.Specialty = strings.TrimSpace(*req.Specialty)
	}
	if req.Address != nil {
		store.Address = strings.TrimSpace(*req.Address)
	}
	if req.Phone != nil {
		store.Phone = strings.TrimSpace(*req.Phone)
	}
	store.UpdatedAt = time.Now()

	if err := s.repo.VipStore.Update(ctx, &store.VipStore); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, notFound("المتجر غير موجود")
		}
		return nil, fmt.Errorf("update store %s: %w", store.ID, err)
	}

	resp := response.VipStoreToResponse(store)
	return &resp, nil
}

// ReplaceImage swaps the store logo or banner and returns the URL it replaced so the caller can drop the old file.
func (s *vipStoreService) ReplaceImage(ctx context.Context, actor Actor, storeID string, kind StoreImage, url string) (*response.VipStoreResponse, *string, error) {
	store, err := s.findStore(ctx, storeID)
	if err != nil {
		return nil, nil, err
	}
	if !actor.Owns(store.UserID) {
		return nil, nil, newError(ErrForbidden, "لا تملك صلاحية تعديل هذا المتجر")
	}

	var previous *string
	switch kind {
	case StoreLogo:
		previous, store.Logo = store.Logo, &url
	case StoreBanner:
		previous, store.Banner = store.Banner, &url
	default:
		return nil, nil, invalidInput("نوع الصورة غير معروف")
	}
	store.UpdatedAt = time.Now()

	if err := s.repo.VipStore.Update(ctx, &store.VipStore); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, nil, notFound("المتجر غير موجود")
		}
		return nil, nil, fmt.Errorf("replace %s of store %s: %w", kind, store.ID, err)
	}

	s.log.Info("Store image replaced",
		zap.String("store_id", store.ID.String()),
		zap.String("kind", string(kind)))

	resp := response.VipStoreToResponse(store)
	return &resp, previous, nil
}

func (s *vipStoreService) ApproveStore(ctx context.Context, storeID string) (*response.VipStoreResponse, error) {
	store, err := s.findStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.VipStore.Approve(ctx, store.ID); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, notFound("المتجر غير موجود")
		}
		return nil, fmt.Errorf("approve store %s: %w", store.ID, err)
	}

	store.IsApproved = true
	store.IsActive = true
	store.OwnerIsVip = true

	resp := response.VipStoreToResponse(store)
	return &resp, nil
}
