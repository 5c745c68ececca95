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

type VipStoreRepository interface {
	Create(ctx context.Context, store *entity.VipStore) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.VipStoreWithLocation, error)
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.VipStoreWithLocation, error)
	FindAll(ctx context.Context, approvedOnly bool) ([]*entity.VipStoreWithLocation, error)
	Update(ctx context.Context, store *entity.VipStore) error
	Approve(ctx context.Context, id uuid.UUID) error
	CountApproved(ctx context.Context) (int64, error)
}

type vipStoreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVipStoreRepository(db database.PgxIface, log *zap.Logger) VipStoreRepository {
	return &vipStoreRepository{
		db:  db,
		log: log.With(zap.String("repository", "vip_store")),
	}
}

const vipStoreSelect = `
	SELECT s.id, s.user_id, s.store_name, s.brand_name, s.specialty, s.logo, s.banner,
	       s.address, s.country_id, s.state_id, s.city_id, s.phone, s.is_active,
	       s.is_approved, s.created_at, s.updated_at,
	       co.id, co.name, co.name_en, co.code, co.currency, co.vip_price, co.payment_methods,
	       co.requires_transfer_proof, co.is_active, co.created_at, co.updated_at,
	       st.id, st.name, st.name_en, st.country_id, st.created_at,
	       ci.id, ci.name, ci.name_en, ci.state_id, ci.created_at,
	       u.username, u.is_vip
	FROM vip_stores s
	JOIN countries co ON co.id = s.country_id
	JOIN states st ON st.id = s.state_id
	JOIN cities ci ON ci.id = s.city_id
	JOIN users u ON u.id = s.user_id
`

func scanVipStore(row pgx.Row) (*entity.VipStoreWithLocation, error) {
	var s entity.VipStoreWithLocation
	err := row.Scan(
		&s.ID, &s.UserID, &s.StoreName, &s.BrandName, &s.Specialty, &s.Logo, &s.Banner,
		&s.Address, &s.CountryID, &s.StateID, &s.CityID, &s.Phone, &s.IsActive,
		&s.IsApproved, &s.CreatedAt, &s.UpdatedAt,
		&s.Country.ID, &s.Country.Name, &s.Country.NameEn, &s.Country.Code, &s.Country.Currency,
		&s.Country.VipPrice, &s.Country.PaymentMethods, &s.Country.RequiresTransferProof,
		&s.Country.IsActive, &s.Country.CreatedAt, &s.Country.UpdatedAt,
		&s.State.ID, &s.State.Name, &s.State.NameEn, &s.State.CountryID, &s.State.CreatedAt,
		&s.City.ID, &s.City.Name, &s.City.NameEn, &s.City.StateID, &s.City.CreatedAt,
		&s.OwnerName, &s.OwnerIsVip,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *vipStoreRepository) Create(ctx context.Context, store *entity.VipStore) error {
	query := `
		INSERT INTO vip_stores (id, user_id, store_name, brand_name, specialty, logo, banner,
		                        address, country_id, state_id, city_id, phone, is_active,
		                        is_approved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.db.Exec(ctx, query,
		store.ID,
		store.UserID,
		store.StoreName,
		store.BrandName,
		store.Specialty,
		store.Logo,
		store.Banner,
		store.Address,
		store.CountryID,
		store.StateID,
		store.CityID,
		store.Phone,
		store.IsActive,
		store.IsApproved,
		store.CreatedAt,
		store.UpdatedAt,
	)
	err = duplicate(err)
	if err != nil {
		r.log.Error("Failed to create VIP store",
			zap.Error(err),
			zap.String("user_id", store.UserID.String()),
			zap.String("brand_name", store.BrandName),
		)
		return fmt.Errorf("create vip store %s: %w", store.BrandName, err)
	}

	return nil
}

func (r *vipStoreRepository) findOne(ctx context.Context, where string, arg uuid.UUID) (*entity.VipStoreWithLocation, error) {
	store, err := scanVipStore(r.db.QueryRow(ctx, vipStoreSelect+" WHERE "+where, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find VIP store",
			zap.Error(err),
			zap.String("key", arg.String()),
		)
		return nil, fmt.Errorf("find vip store %s: %w", arg, err)
	}
	return store, nil
}

func (r *vipStoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.VipStoreWithLocation, error) {
	return r.findOne(ctx, "s.id = $1", id)
}

func (r *vipStoreRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.VipStoreWithLocation, error) {
	return r.findOne(ctx, "s.user_id = $1", userID)
}

func (r *vipStoreRepository) FindAll(ctx context.Context, approvedOnly bool) ([]*entity.VipStoreWithLocation, error) {
	query := vipStoreSelect
	if approvedOnly {
		query += " WHERE s.is_approved = TRUE AND s.is_active = TRUE"
	}
	query += " ORDER BY s.created_at DESC"

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list VIP stores", zap.Error(err))
		return nil, fmt.Errorf("list vip stores: %w", err)
	}
	defer rows.Close()

	stores := []*entity.VipStoreWithLocation{}
	for rows.Next() {
		store, err := scanVipStore(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vip store row: %w", err)
		}
		stores = append(stores, store)
	}

	return stores, rows.Err()
}

func (r *vipStoreRepository) Update(ctx context.Context, store *entity.VipStore) error {
	query := `
		UPDATE vip_stores
		SET store_name = $2, brand_name = $3, specialty = $4, logo = $5, banner = $6,
		    address = $7, phone = $8, is_active = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		store.ID,
		store.StoreName,
		store.BrandName,
		store.Specialty,
		store.Logo,
		store.Banner,
		store.Address,
		store.Phone,
		store.IsActive,
		store.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update VIP store",
			zap.Error(err),
			zap.String("store_id", store.ID.String()),
		)
		return fmt.Errorf("update vip store %s: %w", store.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("vip store %s: %w", store.ID, ErrNoRows)
	}

	return nil
}

// Approve marks the store approved and its owner VIP in one transaction.
func (r *vipStoreRepository) Approve(ctx context.Context, id uuid.UUID) error {
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		return approveStoreTx(ctx, tx, id)
	})
	if err != nil {
		r.log.Error("Failed to approve VIP store",
			zap.Error(err),
			zap.String("store_id", id.String()),
		)
		return err
	}

	r.log.Info("VIP store approved", zap.String("store_id", id.String()))
	return nil
}

func approveStoreTx(ctx context.Context, tx pgx.Tx, storeID uuid.UUID) error {
	var ownerID uuid.UUID
	err := tx.QueryRow(ctx, `
		UPDATE vip_stores SET is_approved = TRUE, is_active = TRUE, updated_at = NOW()
		WHERE id = $1
		RETURNING user_id
	`, storeID).Scan(&ownerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("vip store %s: %w", storeID, ErrNoRows)
	}
	if err != nil {
		return fmt.Errorf("approve vip store %s: %w", storeID, err)
	}

	if _, err := tx.Exec(ctx, `UPDATE users SET is_vip = TRUE, updated_at = NOW() WHERE id = $1`, ownerID); err != nil {
		return fmt.Errorf("mark user %s vip: %w", ownerID, err)
	}

	return nil
}

func (r *vipStoreRepository) CountApproved(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM vip_stores WHERE is_approved = TRUE AND is_active = TRUE`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count vip stores: %w", err)
	}
	return total, nil
}
