package entity

import "github.com/google/uuid"

const DefaultCurrency = "ريال"

type Ad struct {
	Base
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Price       *int64    `db:"price"`
	Currency    string    `db:"currency"`
	CategoryID  uuid.UUID `db:"category_id"`
	UserID      uuid.UUID `db:"user_id"`
	Location    string    `db:"location"`
	Phone       string    `db:"phone"`
	Email       *string   `db:"email"`
	Images      []string  `db:"images"`
	IsFeatured  bool      `db:"is_featured"`
	IsApproved  bool      `db:"is_approved"`
	IsActive    bool      `db:"is_active"`
	Views       int       `db:"views"`
}

// AdWithCategory is an ad joined with its category and the poster's username.
type AdWithCategory struct {
	Ad
	Category Category
	Username string
}

// AdModerationStatus selects ads in the admin listing.
type AdModerationStatus string

const (
	AdStatusAll      AdModerationStatus = "all"
	AdStatusPending  AdModerationStatus = "pending"
	AdStatusApproved AdModerationStatus = "approved"
	AdStatusFeatured AdModerationStatus = "featured"
	AdStatusRejected AdModerationStatus = "rejected"
)

// AdFilter is the public search over approved, active ads.
type AdFilter struct {
	CategoryID *uuid.UUID
	Location   *string
	MinPrice   *int64
	MaxPrice   *int64
	Search     *string
}

type AdStats struct {
	TotalAds         int64
	PendingAds       int64
	ApprovedAds      int64
	FeaturedAds      int64
	TotalUsers       int64
	VipStores        int64
	PendingVipOrders int64
}
