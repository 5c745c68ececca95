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

// ErrOrderNumberTaken means the generated order number already exists; callers retry with a new one.
var ErrOrderNumberTaken = errors.New("order number taken")

const orderNumberConstraint = "vip_orders_order_number_key"

type VipOrderRepository interface {
	Create(ctx context.Context, order *entity.VipOrder) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.VipOrder, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.VipOrder, error)
	FindAll(ctx context.Context, status *entity.VipOrderStatus) ([]*entity.VipOrder, error)
	HasPendingForStore(ctx context.Context, storeID uuid.UUID) (bool, error)
	Resolve(ctx context.Context, order *entity.VipOrder) error
	CountByStatus(ctx context.Context, status entity.VipOrderStatus) (int64, error)
}

type vipOrderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVipOrderRepository(db database.PgxIface, log *zap.Logger) VipOrderRepository {
	return &vipOrderRepository{
		db:  db,
		log: log.With(zap.String("repository", "vip_order")),
	}
}

const vipOrderColumns = `id, order_number, user_id, store_id, country_id, amount, currency,
	payment_method, transfer_proof_image, stripe_payment_id, status, admin_notes,
	processed_at, processed_by, created_at, updated_at`

func scanVipOrder(row pgx.Row) (*entity.VipOrder, error) {
	var o entity.VipOrder
	err := row.Scan(
		&o.ID,
		&o.OrderNumber,
		&o.UserID,
		&o.StoreID,
		&o.CountryID,
		&o.Amount,
		&o.Currency,
		&o.PaymentMethod,
		&o.TransferProofImage,
		&o.StripePaymentID,
		&o.Status,
		&o.AdminNotes,
		&o.ProcessedAt,
		&o.ProcessedBy,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *vipOrderRepository) Create(ctx context.Context, order *entity.VipOrder) error {
	query := `
		INSERT INTO vip_orders (id, order_number, user_id, store_id, country_id, amount, currency,
		                        payment_method, transfer_proof_image, stripe_payment_id, status,
		                        created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		order.ID,
		order.OrderNumber,
		order.UserID,
		order.StoreID,
		order.CountryID,
		order.Amount,
		order.Currency,
		order.PaymentMethod,
		order.TransferProofImage,
		order.StripePaymentID,
		order.Status,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if code, constraint := pgCode(err); code == pgUniqueViolation && constraint == orderNumberConstraint {
		return fmt.Errorf("create vip order %s: %w", order.OrderNumber, ErrOrderNumberTaken)
	}
	err = duplicate(err)
	if err != nil {
		r.log.Error("Failed to create VIP order",
			zap.Error(err),
			zap.String("order_number", order.OrderNumber),
			zap.String("store_id", order.StoreID.String()),
		)
		return fmt.Errorf("create vip order %s: %w", order.OrderNumber, err)
	}

	return nil
}

func (r *vipOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.VipOrder, error) {
	query := `SELECT ` + vipOrderColumns + ` FROM vip_orders WHERE id = $1`

	order, err := scanVipOrder(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find VIP order",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return nil, fmt.Errorf("find vip order %s: %w", id, err)
	}

	return order, nil
}

func (r *vipOrderRepository) list(ctx context.Context, query string, args ...any) ([]*entity.VipOrder, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list VIP orders", zap.Error(err))
		return nil, fmt.Errorf("list vip orders: %w", err)
	}
	defer rows.Close()

	orders := []*entity.VipOrder{}
	for rows.Next() {
		order, err := scanVipOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vip order row: %w", err)
		}
		orders = append(orders, order)
	}

	return orders, rows.Err()
}

func (r *vipOrderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.VipOrder, error) {
	query := `SELECT ` + vipOrderColumns + ` FROM vip_orders WHERE user_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

func (r *vipOrderRepository) FindAll(ctx context.Context, status *entity.VipOrderStatus) ([]*entity.VipOrder, error) {
	if status != nil {
		query := `SELECT ` + vipOrderColumns + ` FROM vip_orders WHERE status = $1 ORDER BY created_at DESC`
		return r.list(ctx, query, *status)
	}
	return r.list(ctx, `SELECT `+vipOrderColumns+` FROM vip_orders ORDER BY created_at DESC`)
}

func (r *vipOrderRepository) HasPendingForStore(ctx context.Context, storeID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM vip_orders WHERE store_id = $1 AND status = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, storeID, entity.VipOrderPending).Scan(&exists); err != nil {
		return false, fmt.Errorf("check pending orders of %s: %w", storeID, err)
	}
	return exists, nil
}

// Resolve persists the admin decision. The status guard in the WHERE clause keeps two
// admins from deciding the same order twice. Approval also approves the store.
func (r *vipOrderRepository) Resolve(ctx context.Context, order *entity.VipOrder) error {
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		result, err := tx.Exec(ctx, `
			UPDATE vip_orders
			SET status = $2, admin_notes = $3, processed_at = $4, processed_by = $5, updated_at = $6
			WHERE id = $1 AND status = $7
		`,
			order.ID,
			order.Status,
			order.AdminNotes,
			order.ProcessedAt,
			order.ProcessedBy,
			order.UpdatedAt,
			entity.VipOrderPending,
		)
		if err != nil {
			return fmt.Errorf("update vip order %s: %w", order.ID, err)
		}
		if result.RowsAffected() == 0 {
			return fmt.Errorf("pending vip order %s: %w", order.ID, ErrNoRows)
		}

		if order.Status == entity.VipOrderApproved {
			return approveStoreTx(ctx, tx, order.StoreID)
		}
		return nil
	})
	if err != nil {
		r.log.Error("Failed to resolve VIP order",
			zap.Error(err),
			zap.String("order_id", order.ID.String()),
			zap.String("status", string(order.Status)),
		)
		return err
	}

	return nil
}

func (r *vipOrderRepository) CountByStatus(ctx context.Context, status entity.VipOrderStatus) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM vip_orders WHERE status = $1`, status).Scan(&total); err != nil {
		return 0, fmt.Errorf("count %s vip orders: %w", status, err)
	}
	return total, nil
}
