package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mohammed-hani69/adsvairl/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

var (
	// ErrNoRows is returned by updates and deletes that matched nothing.
	ErrNoRows = errors.New("no rows affected")
	// ErrDuplicate is returned when a write hits a unique constraint.
	ErrDuplicate = errors.New("duplicate key")
	// ErrInUse is returned when a delete is blocked by rows still referencing the target.
	ErrInUse = errors.New("row still referenced")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// pgCode returns the SQLSTATE and constraint of a Postgres error.
func pgCode(err error) (code, constraint string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}

// duplicate maps a unique violation onto ErrDuplicate and leaves other errors untouched.
func duplicate(err error) error {
	if code, constraint := pgCode(err); code == pgUniqueViolation {
		return fmt.Errorf("%w: %s", ErrDuplicate, constraint)
	}
	return err
}

// referenced maps a foreign key violation raised by a delete onto ErrInUse.
func referenced(err error) error {
	if code, constraint := pgCode(err); code == pgForeignKeyViolation {
		return fmt.Errorf("%w: %s", ErrInUse, constraint)
	}
	return err
}

type Repository struct {
	User         UserRepository
	Session      SessionRepository
	Category     CategoryRepository
	Ad           AdRepository
	Location     LocationRepository
	VipStore     VipStoreRepository
	VipOrder     VipOrderRepository
	StoreProduct StoreProductRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Session:      NewSessionRepository(db, log),
		Category:     NewCategoryRepository(db, log),
		Ad:           NewAdRepository(db, log),
		Location:     NewLocationRepository(db, log),
		VipStore:     NewVipStoreRepository(db, log),
		VipOrder:     NewVipOrderRepository(db, log),
		StoreProduct: NewStoreProductRepository(db, log),
	}
}

// withTx runs fn inside a transaction, rolling back on error.
func withTx(ctx context.Context, db database.PgxIface, fn func(tx pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
