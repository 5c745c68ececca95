package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Mohammed-hani69/adsvairl/internal/data/entity"
	"github.com/Mohammed-hani69/adsvairl/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AdRepository interface {
	Create(ctx context.Context, ad *entity.Ad) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AdWithCategory, error)
	FindPublished(ctx context.Context, filter entity.AdFilter, limit, offset int) ([]*entity.AdWithCategory, error)
	CountPublished(ctx context.Context, filter entity.AdFilter) (int64, error)
	FindFeatured(ctx context.Context, limit int) ([]*entity.AdWithCategory, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.AdWithCategory, error)
	FindForModeration(ctx context.Context, status entity.AdModerationStatus, limit, offset int) ([]*entity.AdWithCategory, error)
	CountByStatus(ctx context.Context, status entity.AdModerationStatus) (int64, error)
	Update(ctx context.Context, ad *entity.Ad) error
	IncrementViews(ctx context.Context, id uuid.UUID) (int, error)
	Approve(ctx context.Context, id uuid.UUID) error
	Reject(ctx context.Context, id uuid.UUID) error
	ToggleFeatured(ctx context.Context, id uuid.UUID) (bool, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type adRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAdRepository(db database.PgxIface, log *zap.Logger) AdRepository {
	return &adRepository{
		db:  db,
		log: log.With(zap.String("repository", "ad")),
	}
}

const adSelect = `
	SELECT a.id, a.title, a.description, a.price, a.currency, a.category_id, a.user_id,
	       a.location, a.phone, a.email, a.images, a.is_featured, a.is_approved, a.is_active,
	       a.views, a.created_at, a.updated_at, a.deleted_at,
	       c.id, c.name, c.name_en, c.icon, c.color, c.description, c.display_order,
	       c.is_active, c.created_at, c.updated_at,
	       u.username
	FROM ads a
	JOIN categories c ON c.id = a.category_id
	JOIN users u ON u.id = a.user_id
`

func scanAdWithCategory(row pgx.Row) (*entity.AdWithCategory, error) {
	var ad entity.AdWithCategory
	err := row.Scan(
		&ad.ID,
		&ad.Title,
		&ad.Description,
		&ad.Price,
		&ad.Currency,
		&ad.CategoryID,
		&ad.UserID,
		&ad.Location,
		&ad.Phone,
		&ad.Email,
		&ad.Images,
		&ad.IsFeatured,
		&ad.IsApproved,
		&ad.IsActive,
		&ad.Views,
		&ad.CreatedAt,
		&ad.UpdatedAt,
		&ad.DeletedAt,
		&ad.Category.ID,
		&ad.Category.Name,
		&ad.Category.NameEn,
		&ad.Category.Icon,
		&ad.Category.Color,
		&ad.Category.Description,
		&ad.Category.DisplayOrder,
		&ad.Category.IsActive,
		&ad.Category.CreatedAt,
		&ad.Category.UpdatedAt,
		&ad.Username,
	)
	if err != nil {
		return nil, err
	}
	return &ad, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns user text into a literal substring ILIKE pattern.
func containsPattern(text string) string {
	return "%" + likeEscaper.Replace(text) + "%"
}

// publishedWhere builds the WHERE clause of the public listing. Placeholders start at $1.
func publishedWhere(filter entity.AdFilter) (string, []any) {
	var where strings.Builder
	where.WriteString(" WHERE a.deleted_at IS NULL AND a.is_approved = TRUE AND a.is_active = TRUE")

	args := []any{}
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.CategoryID != nil {
		where.WriteString(" AND a.category_id = " + next(*filter.CategoryID))
	}
	if filter.Location != nil && *filter.Location != "" {
		where.WriteString(" AND a.location ILIKE " + next(containsPattern(*filter.Location)) + ` ESCAPE '\'`)
	}
	if filter.MinPrice != nil {
		where.WriteString(" AND a.price >= " + next(*filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		where.WriteString(" AND a.price <= " + next(*filter.MaxPrice))
	}
	if filter.Search != nil && *filter.Search != "" {
		p := next(containsPattern(*filter.Search))
		where.WriteString(" AND (a.title ILIKE " + p + ` ESCAPE '\' OR a.description ILIKE ` + p + ` ESCAPE '\')`)
	}

	return where.String(), args
}

// moderationWhere maps an admin status tab to a WHERE clause.
func moderationWhere(status entity.AdModerationStatus) string {
	base := " WHERE a.deleted_at IS NULL"
	switch status {
	case entity.AdStatusPending:
		return base + " AND a.is_active = TRUE AND a.is_approved = FALSE"
	case entity.AdStatusApproved:
		return base + " AND a.is_active = TRUE AND a.is_approved = TRUE"
	case entity.AdStatusFeatured:
		return base + " AND a.is_active = TRUE AND a.is_approved = TRUE AND a.is_featured = TRUE"
	case entity.AdStatusRejected:
		return base + " AND a.is_active = FALSE"
	default:
		return base + " AND a.is_active = TRUE"
	}
}

func (r *adRepository) list(ctx context.Context, query string, args ...any) ([]*entity.AdWithCategory, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query ads", zap.Error(err))
		return nil, fmt.Errorf("query ads: %w", err)
	}
	defer rows.Close()

	ads := []*entity.AdWithCategory{}
	for rows.Next() {
		ad, err := scanAdWithCategory(rows)
		if err != nil {
			r.log.Error("Failed to scan ad row", zap.Error(err))
			return nil, fmt.Errorf("scan ad row: %w", err)
		}
		ads = append(ads, ad)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ad rows: %w", err)
	}

	return ads, nil
}

func (r *adRepository) Create(ctx context.Context, ad *entity.Ad) error {
	query := `
		INSERT INTO ads (id, title, description, price, currency, category_id, user_id, location,
		                 phone, email, images, is_featured, is_approved, is_active, views,
		                 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := r.db.Exec(ctx, query,
		ad.ID,
		ad.Title,
		ad.Description,
		ad.Price,
		ad.Currency,
		ad.CategoryID,
		ad.UserID,
		ad.Location,
		ad.Phone,
		ad.Email,
		ad.Images,
		ad.IsFeatured,
		ad.IsApproved,
		ad.IsActive,
		ad.Views,
		ad.CreatedAt,
		ad.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create ad",
			zap.Error(err),
			zap.String("title", ad.Title),
			zap.String("user_id", ad.UserID.String()),
		)
		return fmt.Errorf("create ad %s: %w", ad.Title, err)
	}

	return nil
}

func (r *adRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AdWithCategory, error) {
	query := adSelect + ` WHERE a.id = $1 AND a.deleted_at IS NULL`

	ad, err := scanAdWithCategory(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ad by ID",
			zap.Error(err),
			zap.String("ad_id", id.String()),
		)
		return nil, fmt.Errorf("find ad %s: %w", id, err)
	}

	return ad, nil
}

func (r *adRepository) FindPublished(ctx context.Context, filter entity.AdFilter, limit, offset int) ([]*entity.AdWithCategory, error) {
	where, args := publishedWhere(filter)
	query := adSelect + where + fmt.Sprintf(" ORDER BY a.created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	return r.list(ctx, query, args...)
}

func (r *adRepository) CountPublished(ctx context.Context, filter entity.AdFilter) (int64, error) {
	where, args := publishedWhere(filter)
	query := `SELECT COUNT(*) FROM ads a` + where

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count ads", zap.Error(err))
		return 0, fmt.Errorf("count ads: %w", err)
	}

	return total, nil
}

func (r *adRepository) FindFeatured(ctx context.Context, limit int) ([]*entity.AdWithCategory, error) {
	query := adSelect + moderationWhere(entity.AdStatusFeatured) + ` ORDER BY a.created_at DESC LIMIT $1`
	return r.list(ctx, query, limit)
}

func (r *adRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.AdWithCategory, error) {
	query := adSelect + ` WHERE a.user_id = $1 AND a.deleted_at IS NULL ORDER BY a.created_at DESC`
	return r.list(ctx, query, userID)
}

func (r *adRepository) FindForModeration(ctx context.Context, status entity.AdModerationStatus, limit, offset int) ([]*entity.AdWithCategory, error) {
	query := adSelect + moderationWhere(status) + ` ORDER BY a.created_at DESC LIMIT $1 OFFSET $2`
	return r.list(ctx, query, limit, offset)
}

func (r *adRepository) CountByStatus(ctx context.Context, status entity.AdModerationStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM ads a` + moderationWhere(status)

	var total int64
	if err := r.db.QueryRow(ctx, query).Scan(&total); err != nil {
		r.log.Error("Failed to count ads by status",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return 0, fmt.Errorf("count %s ads: %w", status, err)
	}

	return total, nil
}

func (r *adRepository) Update(ctx context.Context, ad *entity.Ad) error {
	query := `
		UPDATE ads
		SET title = $2, description = $3, price = $4, currency = $5, location = $6,
		    phone = $7, email = $8, images = $9, is_approved = $10, updated_at = $11
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		ad.ID,
		ad.Title,
		ad.Description,
		ad.Price,
		ad.Currency,
		ad.Location,
		ad.Phone,
		ad.Email,
		ad.Images,
		ad.IsApproved,
		ad.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update ad",
			zap.Error(err),
			zap.String("ad_id", ad.ID.String()),
		)
		return fmt.Errorf("update ad %s: %w", ad.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("ad %s: %w", ad.ID, ErrNoRows)
	}

	return nil
}

// IncrementViews bumps the counter in a single statement and returns the new value.
func (r *adRepository) IncrementViews(ctx context.Context, id uuid.UUID) (int, error) {
	query := `
		UPDATE ads SET views = views + 1
		WHERE id = $1 AND deleted_at IS NULL AND is_approved = TRUE AND is_active = TRUE
		RETURNING views
	`

	var views int
	err := r.db.QueryRow(ctx, query, id).Scan(&views)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("ad %s: %w", id, ErrNoRows)
	}
	if err != nil {
		r.log.Error("Failed to increment ad views",
			zap.Error(err),
			zap.String("ad_id", id.String()),
		)
		return 0, fmt.Errorf("increment views %s: %w", id, err)
	}

	return views, nil
}

func (r *adRepository) setFlags(ctx context.Context, id uuid.UUID, set string) error {
	query := `UPDATE ads SET ` + set + `, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to update ad flags",
			zap.Error(err),
			zap.String("ad_id", id.String()),
			zap.String("set", set),
		)
		return fmt.Errorf("update ad %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("ad %s: %w", id, ErrNoRows)
	}

	return nil
}

func (r *adRepository) Approve(ctx context.Context, id uuid.UUID) error {
	return r.setFlags(ctx, id, "is_approved = TRUE, is_active = TRUE")
}

func (r *adRepository) Reject(ctx context.Context, id uuid.UUID) error {
	return r.setFlags(ctx, id, "is_active = FALSE")
}

func (r *adRepository) ToggleFeatured(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE ads SET is_featured = NOT is_featured, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING is_featured
	`

	var featured bool
	err := r.db.QueryRow(ctx, query, id).Scan(&featured)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("ad %s: %w", id, ErrNoRows)
	}
	if err != nil {
		return false, fmt.Errorf("toggle featured %s: %w", id, err)
	}

	return featured, nil
}

func (r *adRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE ads SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete ad",
			zap.Error(err),
			zap.String("ad_id", id.String()),
		)
		return fmt.Errorf("delete ad %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("ad %s: %w", id, ErrNoRows)
	}

	r.log.Info("Ad deleted", zap.String("ad_id", id.String()))
	return nil
}
