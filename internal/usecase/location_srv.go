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

type LocationService interface {
	GetCountries(ctx context.Context) ([]response.CountryResponse, error)
	GetStates(ctx context.Context, countryID string) ([]response.StateResponse, error)
	GetCities(ctx context.Context, stateID string) ([]response.CityResponse, error)

	GetAllCountries(ctx context.Context) ([]response.CountryResponse, error)
	CreateCountry(ctx context.Context, req *request.CreateCountryRequest) (*response.CountryResponse, error)
	UpdateCountry(ctx context.Context, countryID string, req *request.UpdateCountryRequest) (*response.CountryResponse, error)
	CreateState(ctx context.Context, req *request.CreateStateRequest) (*response.StateResponse, error)
	CreateCity(ctx context.Context, req *request.CreateCityRequest) (*response.CityResponse, error)
	DeleteCountry(ctx context.Context, countryID string) error
	DeleteState(ctx context.Context, stateID string) error
	DeleteCity(ctx context.Context, cityID string) error
}

type locationService struct {
	locationRepo repository.LocationRepository
	cache        cache.Cache
	ttl          time.Duration
	log          *zap.Logger
}

func NewLocationService(locationRepo repository.LocationRepository, c cache.Cache, ttl time.Duration, log *zap.Logger) LocationService {
	return &locationService{
		locationRepo: locationRepo,
		cache:        c,
		ttl:          ttl,
		log:          log.With(zap.String("service", "location")),
	}
}

func countriesToResponse(countries []*entity.Country) []response.CountryResponse {
	out := make([]response.CountryResponse, len(countries))
	for i, country := range countries {
		out[i] = response.CountryToResponse(country)
	}
	return out
}

// GetCountries lists the countries where a VIP subscription can be bought.
func (s *locationService) GetCountries(ctx context.Context) ([]response.CountryResponse, error) {
	return readThrough(ctx, s.cache, s.log, cacheKeyCountries, s.ttl, func() ([]response.CountryResponse, error) {
		countries, err := s.locationRepo.FindCountries(ctx, true)
		if err != nil {
			return nil, fmt.Errorf("list countries: %w", err)
		}
		return countriesToResponse(countries), nil
	})
}

func (s *locationService) GetStates(ctx context.Context, countryID string) ([]response.StateResponse, error) {
	id, err := uuid.Parse(countryID)
	if err != nil {
		return nil, invalidInput("معرّف الدولة غير صالح")
	}

	return readThrough(ctx, s.cache, s.log, cachePrefixStates+id.String(), s.ttl, func() ([]response.StateResponse, error) {
		states, err := s.locationRepo.FindStatesByCountry(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("list states of %s: %w", id, err)
		}

		out := make([]response.StateResponse, len(states))
		for i, state := range states {
			out[i] = response.StateToResponse(state)
		}
		return out, nil
	})
}

func (s *locationService) GetCities(ctx context.Context, stateID string) ([]response.CityResponse, error) {
	id, err := uuid.Parse(stateID)
	if err != nil {
		return nil, invalidInput("معرّف المحافظة غير صالح")
	}

	return readThrough(ctx, s.cache, s.log, cachePrefixCities+id.String(), s.ttl, func() ([]response.CityResponse, error) {
		cities, err := s.locationRepo.FindCitiesByState(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("list cities of %s: %w", id, err)
		}

		out := make([]response.CityResponse, len(cities))
		for i, city := range cities {
			out[i] = response.CityToResponse(city)
		}
		return out, nil
	})
}

func (s *locationService) GetAllCountries(ctx context.Context) ([]response.CountryResponse, error) {
	countries, err := s.locationRepo.FindCountries(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list all countries: %w", err)
	}
	return countriesToResponse(countries), nil
}

func (s *locationService) CreateCountry(ctx context.Context, req *request.CreateCountryRequest) (*response.CountryResponse, error) {
	req.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	if err := validate(req); err != nil {
		return nil, err
	}

	existing, err := s.locationRepo.FindCountryByCode(ctx, req.Code)
	if err != nil {
		return nil, fmt.Errorf("check country code: %w", err)
	}
	if existing != nil {
		return nil, newError(ErrConflict, "الدولة موجودة مسبقاً")
	}

	now := time.Now()
	country := &entity.Country{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:                  req.Name,
		NameEn:                req.NameEn,
		Code:                  req.Code,
		Currency:              req.Currency,
		VipPrice:              req.VipPrice,
		PaymentMethods:        req.PaymentMethods,
		RequiresTransferProof: req.RequiresTransferProof,
		IsActive:              req.IsActive == nil || *req.IsActive,
	}

	if err := s.locationRepo.CreateCountry(ctx, country); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, newError(ErrConflict, "الدولة موجودة مسبقاً")
		}
		return nil, fmt.Errorf("create country: %w", err)
	}
	invalidate(ctx, s.cache, s.log, cachePrefixAll)

	s.log.Info("Country created", zap.String("code", country.Code))

	resp := response.CountryToResponse(country)
	return &resp, nil
}

func (s *locationService) UpdateCountry(ctx context.Context, countryID string, req *request.UpdateCountryRequest) (*response.CountryResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(countryID)
	if err != nil {
		return nil, notFound("الدولة غير موجودة")
	}

	country, err := s.locationRepo.FindCountryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find country %s: %w", id, err)
	}
	if country == nil {
		return nil, notFound("الدولة غير موجودة")
	}

	if req.Currency != nil {
		country.Currency = *req.Currency
	}
	if req.VipPrice != nil {
		country.VipPrice = *req.VipPrice
	}
	if req.PaymentMethods != nil {
		country.PaymentMethods = req.PaymentMethods
	}
	if req.RequiresTransferProof != nil {
		country.RequiresTransferProof = *req.RequiresTransferProof
	}
	if req.IsActive != nil {
		country.IsActive = *req.IsActive
	}
	country.UpdatedAt = time.Now()

	if err := s.locationRepo.UpdateCountry(ctx, country); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, notFound("الدولة غير موجودة")
		}
		return nil, fmt.Errorf("update country %s: %w", id, err)
	}
	invalidate(ctx, s.cache, s.log, cachePrefixAll)

	s.log.Info("Country updated",
		zap.String("code", country.Code),
		zap.Float64("vip_price", country.VipPrice),
		zap.Strings("payment_methods", country.PaymentMethods))

	resp := response.CountryToResponse(country)
	return &resp, nil
}

func (s *locationService) CreateState(ctx context.Context, req *request.CreateStateRequest) (*response.StateResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	countryID := uuid.MustParse(req.CountryID)
	country, err := s.locationRepo.FindCountryByID(ctx, countryID)
	if err != nil {
		return nil, fmt.Errorf("find country %s: %w", countryID, err)
	}
	if country == nil {
		return nil, invalidInput("الدولة غير موجودة")
	}

	state := &entity.State{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Name:       req.Name,
		NameEn:     req.NameEn,
		CountryID:  countryID,
	}
	if err := s.locationRepo.CreateState(ctx, state); err != nil {
		return nil, fmt.Errorf("create state: %w", err)
	}
	invalidate(ctx, s.cache, s.log, cachePrefixStates+countryID.String())

	resp := response.StateToResponse(state)
	return &resp, nil
}

func (s *locationService) CreateCity(ctx context.Context, req *request.CreateCityRequest) (*response.CityResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	stateID := uuid.MustParse(req.StateID)
	state, err := s.locationRepo.FindStateByID(ctx, stateID)
	if err != nil {
		return nil, fmt.Errorf("find state %s: %w", stateID, err)
	}
	if state == nil {
		return nil, invalidInput("المحافظة غير موجودة")
	}

	city := &entity.City{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Name:       req.Name,
		NameEn:     req.NameEn,
		StateID:    stateID,
	}
	if err := s.locationRepo.CreateCity(ctx, city); err != nil {
		return nil, fmt.Errorf("create city: %w", err)
	}
	invalidate(ctx, s.cache, s.log, cachePrefixCities+stateID.String())

	resp := response.CityToResponse(city)
	return &resp, nil
}

// deleteLocation maps a blocked delete to a conflict and drops every cached location list.
func (s *locationService) deleteLocation(ctx context.Context, rawID, notFoundMsg, inUseMsg string, del func(context.Context, uuid.UUID) error) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return notFound(notFoundMsg)
	}

	if err := del(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNoRows):
			return notFound(notFoundMsg)
		case errors.Is(err, repository.ErrInUse):
			return newError(ErrConflict, inUseMsg)
		}
		return err
	}
	invalidate(ctx, s.cache, s.log, cachePrefixAll)

	s.log.Info("Location deleted", zap.String("id", id.String()))
	return nil
}

func (s *locationService) DeleteCountry(ctx context.Context, countryID string) error {
	return s.deleteLocation(ctx, countryID, "الدولة غير موجودة",
		"لا يمكن حذف الدولة لوجود محافظات أو متاجر مرتبطة بها", s.locationRepo.DeleteCountry)
}

func (s *locationService) DeleteState(ctx context.Context, stateID string) error {
	return s.deleteLocation(ctx, stateID, "المحافظة غير موجودة",
		"لا يمكن حذف المحافظة لوجود مدن أو متاجر مرتبطة بها", s.locationRepo.DeleteState)
}

func (s *locationService) DeleteCity(ctx context.Context, cityID string) error {
	return s.deleteLocation(ctx, cityID, "المدينة غير موجودة",
		"لا يمكن حذف المدينة لوجود متاجر مرتبطة بها", s.locationRepo.DeleteCity)
}
