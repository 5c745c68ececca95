package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mohammed-hani69/adsvairl/internal/data/entity"
	"github.com/Mohammed-hani69/adsvairl/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// LocationRepository covers the country -> state -> city hierarchy.
type LocationRepository interface {
	CreateCountry(ctx context.Context, country *entity.Country) error
	FindCountryByID(ctx context.Context, id uuid.UUID) (*entity.Country, error)
	FindCountryByCode(ctx context.Context, code string) (*entity.Country, error)
	FindCountries(ctx context.Context, activeOnly bool) ([]*entity.Country, error)
	UpdateCountry(ctx context.Context, country *entity.Country) error
	DeleteCountry(ctx context.Context, id uuid.UUID) error

	CreateState(ctx context.Context, state *entity.State) error
	FindStateByID(ctx context.Context, id uuid.UUID) (*entity.State, error)
	FindStatesByCountry(ctx context.Context, countryID uuid.UUID) ([]*entity.State, error)
	DeleteState(ctx context.Context, id uuid.UUID) error

	CreateCity(ctx context.Context, city *entity.City) error
	FindCityByID(ctx context.Context, id uuid.UUID) (*entity.City, error)
	FindCitiesByState(ctx context.Context, stateID uuid.UUID) ([]*entity.City, error)
	DeleteCity(ctx context.Context, id uuid.UUID) error
}

type locationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLocationRepository(db database.PgxIface, log *zap.Logger) LocationRepository {
	return &locationRepository{
		db:  db,
		log: log.With(zap.String("repository", "location")),
	}
}

// ==================== COUNTRIES ====================

const countryColumns = `id, name, name_en, code, currency, vip_price, payment_methods,
	requires_transfer_proof, is_active, created_at, updated_at`

func scanCountry(row pgx.Row) (*entity.Country, error) {
	var c entity.Country
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.NameEn,
		&c.Code,
		&c.Currency,
		&c.VipPrice,
		&c.PaymentMethods,
		&c.RequiresTransferProof,
		&c.IsActive,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *locationRepository) CreateCountry(ctx context.Context, country *entity.Country) error {
	query := `
		INSERT INTO countries (id, name, name_en, code, currency, vip_price, payment_methods,
		                       requires_transfer_proof, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		country.ID,
		country.Name,
		country.NameEn,
		country.Code,
		country.Currency,
		country.VipPrice,
		country.PaymentMethods,
		country.RequiresTransferProof,
		country.IsActive,
		country.CreatedAt,
		country.UpdatedAt,
	)
	err = duplicate(err)
	if err != nil {
		r.log.Error("Failed to create country",
			zap.Error(err),
			zap.String("code", country.Code),
		)
		return fmt.Errorf("create country %s: %w", country.Code, err)
	}

	return nil
}

func (r *locationRepository) findCountry(ctx context.Context, where string, arg any) (*entity.Country, error) {
	query := `SELECT ` + countryColumns + ` FROM countries WHERE ` + where

	country, err := scanCountry(r.db.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find country", zap.Error(err), zap.Any("key", arg))
		return nil, fmt.Errorf("find country %v: %w", arg, err)
	}

	return country, nil
}

func (r *locationRepository) FindCountryByID(ctx context.Context, id uuid.UUID) (*entity.Country, error) {
	return r.findCountry(ctx, "id = $1", id)
}

func (r *locationRepository) FindCountryByCode(ctx context.Context, code string) (*entity.Country, error) {
	return r.findCountry(ctx, "code = UPPER($1)", code)
}

func (r *locationRepository) FindCountries(ctx context.Context, activeOnly bool) ([]*entity.Country, error) {
	query := `SELECT ` + countryColumns + ` FROM countries`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name_en`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list countries", zap.Error(err))
		return nil, fmt.Errorf("list countries: %w", err)
	}
	defer rows.Close()

	countries := []*entity.Country{}
	for rows.Next() {
		country, err := scanCountry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan country row: %w", err)
		}
		countries = append(countries, country)
	}

	return countries, rows.Err()
}

func (r *locationRepository) UpdateCountry(ctx context.Context, country *entity.Country) error {
	query := `
		UPDATE countries
		SET name = $2, name_en = $3, currency = $4, vip_price = $5, payment_methods = $6,
		    requires_transfer_proof = $7, is_active = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		country.ID,
		country.Name,
		country.NameEn,
		country.Currency,
		country.VipPrice,
		country.PaymentMethods,
		country.RequiresTransferProof,
		country.IsActive,
		country.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update country",
			zap.Error(err),
			zap.String("country_id", country.ID.String()),
		)
		return fmt.Errorf("update country %s: %w", country.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("country %s: %w", country.ID, ErrNoRows)
	}

	return nil
}

// ==================== STATES ====================

func (r *locationRepository) CreateState(ctx context.Context, state *entity.State) error {
	query := `INSERT INTO states (id, name, name_en, country_id, created_at) VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query, state.ID, state.Name, state.NameEn, state.CountryID, state.CreatedAt)
	if err != nil {
		r.log.Error("Failed to create state",
			zap.Error(err),
			zap.String("country_id", state.CountryID.String()),
		)
		return fmt.Errorf("create state %s: %w", state.NameEn, err)
	}

	return nil
}

func (r *locationRepository) FindStateByID(ctx context.Context, id uuid.UUID) (*entity.State, error) {
	query := `SELECT id, name, name_en, country_id, created_at FROM states WHERE id = $1`

	var s entity.State
	err := r.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.NameEn, &s.CountryID, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find state %s: %w", id, err)
	}

	return &s, nil
}

func (r *locationRepository) FindStatesByCountry(ctx context.Context, countryID uuid.UUID) ([]*entity.State, error) {
	query := `
		SELECT id, name, name_en, country_id, created_at
		FROM states
		WHERE country_id = $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, countryID)
	if err != nil {
		r.log.Error("Failed to list states",
			zap.Error(err),
			zap.String("country_id", countryID.String()),
		)
		return nil, fmt.Errorf("list states of %s: %w", countryID, err)
	}
	defer rows.Close()

	states := []*entity.State{}
	for rows.Next() {
		var s entity.State
		if err := rows.Scan(&s.ID, &s.Name, &s.NameEn, &s.CountryID, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan state row: %w", err)
		}
		states = append(states, &s)
	}

	return states, rows.Err()
}

// ==================== CITIES ====================

func (r *locationRepository) CreateCity(ctx context.Context, city *entity.City) error {
	query := `INSERT INTO cities (id, name, name_en, state_id, created_at) VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query, city.ID, city.Name, city.NameEn, city.StateID, city.CreatedAt)
	if err != nil {
		r.log.Error("Failed to create city",
			zap.Error(err),
			zap.String("state_id", city.StateID.String()),
		)
		return fmt.Errorf("create city %s: %w", city.NameEn, err)
	}

	return nil
}

func (r *locationRepository) FindCityByID(ctx context.Context, id uuid.UUID) (*entity.City, error) {
	query := `SELECT id, name, name_en, state_id, created_at FROM cities WHERE id = $1`

	var c entity.City
	err := r.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.NameEn, &c.StateID, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find city %s: %w", id, err)
	}

	return &c, nil
}

func (r *locationRepository) FindCitiesByState(ctx context.Context, stateID uuid.UUID) ([]*entity.City, error) {
	query := `
		SELECT id, name, name_en, state_id, created_at
		FROM cities
		WHERE state_id = $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, stateID)
	if err != nil {
		r.log.Error("Failed to list cities",
			zap.Error(err),
			zap.String("state_id", stateID.String()),
		)
		return nil, fmt.Errorf("list cities of %s: %w", stateID, err)
	}
	defer rows.Close()

	cities := []*entity.City{}
	for rows.Next() {
		var c entity.City
		if err := rows.Scan(&c.ID, &c.Name, &c.NameEn, &c.StateID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan city row: %w", err)
		}
		cities = append(cities, &c)
	}

	return cities, rows.Err()
}

// ==================== DELETES ====================

// deleteLocation removes one row. Rows still referenced by child locations,
// stores or orders fail with ErrInUse.
func (r *locationRepository) deleteLocation(ctx context.Context, table string, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err = referenced(err); err != nil {
		if !errors.Is(err, ErrInUse) {
			r.log.Error("Failed to delete location",
				zap.Error(err),
				zap.String("table", table),
				zap.String("id", id.String()),
			)
		}
		return fmt.Errorf("delete %s %s: %w", table, id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", table, id, ErrNoRows)
	}

	return nil
}

func (r *locationRepository) DeleteCountry(ctx context.Context, id uuid.UUID) error {
	return r.deleteLocation(ctx, "countries", id)
}

func (r *locationRepository) DeleteState(ctx context.Context, id uuid.UUID) error {
	return r.deleteLocation(ctx, "states", id)
}

func (r *locationRepository) DeleteCity(ctx context.Context, id uuid.UUID) error {
	return r.deleteLocation(ctx, "cities", id)
}
