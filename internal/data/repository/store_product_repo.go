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

type StoreProductRepository interface {
	Create(ctx context.Context, product *entity.StoreProduct) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.StoreProduct, error)
	FindByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.StoreProduct, error)
	Update(ctx context.Context, product *entity.StoreProduct) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type storeProductRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStoreProductRepository(db database.PgxIface, log *zap.Logger) StoreProductRepository {
	return &storeProductRepository{
		db:  db,
		log: log.With(zap.String("repository", "store_product")),
	}
}

const storeProductColumns = `id, store_id, name, description, price, currency, images, is_active, created_at, updated_at`

func scanStoreProduct(row pgx.Row) (*entity.StoreProduct, error) {
	var p entity.StoreProduct
	err := row.Scan(
		&p.ID,
		&p.StoreID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Currency,
		&p.Images,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *storeProductRepository) Create(ctx context.Context, product *entity.StoreProduct) error {
	query := `
		INSERT INTO store_products (id, store_id, name, description, price, currency, images,
		                            is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		product.ID,
		product.StoreID,
		product.Name,
		product.Description,
		product.Price,
		product.Currency,
		product.Images,
		product.IsActive,
		product.CreatedAt,
		product.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create store product",
			zap.Error(err),
			zap.String("store_id", product.StoreID.String()),
		)
		return fmt.Errorf("create store product %s: %w", product.Name, err)
	}

	return nil
}

func (r *storeProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.StoreProduct, error) {
	query := `SELECT ` + storeProductColumns + ` FROM store_products WHERE id = $1`

	product, err := scanStoreProduct(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find store product %s: %w", id, err)
	}

	return product, nil
}

func (r *storeProductRepository) FindByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.StoreProduct, error) {
	query := `
		SELECT ` + storeProductColumns + `
		FROM store_products
		WHERE store_id = $1 AND is_active = TRUE
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, storeID)
	if err != nil {
		r.log.Error("Failed to list store products",
			zap.Error(err),
			zap.String("store_id", storeID.String()),
		)
		return nil, fmt.Errorf("list products of %s: %w", storeID, err)
	}
	defer rows.Close()

	products := []*entity.StoreProduct{}
	for rows.Next() {
		product, err := scanStoreProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan store product row: %w", err)
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

func (r *storeProductRepository) Update(ctx context.Context, product *entity.StoreProduct) error {
	query := `
		UPDATE store_products
		SET name = $2, description = $3, price = $4, currency = $5, images = $6,
		    is_active = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.Currency,
		product.Images,
		product.IsActive,
		product.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update store product",
			zap.Error(err),
			zap.String("product_id", product.ID.String()),
		)
		return fmt.Errorf("update store product %s: %w", product.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("store product %s: %w", product.ID, ErrNoRows)
	}

	return nil
}

func (r *storeProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM store_products WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete store product",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return fmt.Errorf("delete store product %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("store product %s: %w", id, ErrNoRows)
	}

	return nil
}
