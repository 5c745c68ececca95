package response

import (
	"time"

	"github.com/Mohammed-hani69/adsvairl/internal/data/entity"
)

type AdResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Price       *int64            `json:"price"`
	Currency    string            `json:"currency"`
	CategoryID  string            `json:"category_id"`
	UserID      string            `json:"user_id"`
	Username    string            `json:"username,omitempty"`
	Location    string            `json:"location"`
	Phone       string            `json:"phone"`
	Email       *string           `json:"email,omitempty"`
	Images      []string          `json:"images"`
	IsFeatured  bool              `json:"is_featured"`
	IsApproved  bool              `json:"is_approved"`
	IsActive    bool              `json:"is_active"`
	Views       int               `json:"views"`
	Category    *CategoryResponse `json:"category,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type AdStatsResponse struct {
	TotalAds         int64 `json:"total_ads"`
	PendingAds       int64 `json:"pending_ads"`
	ApprovedAds      int64 `json:"approved_ads"`
	FeaturedAds      int64 `json:"featured_ads"`
	TotalUsers       int64 `json:"total_users"`
	VipStores        int64 `json:"vip_stores"`
	PendingVipOrders int64 `json:"pending_vip_orders"`
}

type FeatureToggleResponse struct {
	ID         string `json:"id"`
	IsFeatured bool   `json:"is_featured"`
}

func AdToResponse(ad *entity.Ad) AdResponse {
	images := ad.Images
	if images == nil {
		images = []string{}
	}

	return AdResponse{
		ID:          ad.ID.String(),
		Title:       ad.Title,
		Description: ad.Description,
		Price:       ad.Price,
		Currency:    ad.Currency,
		CategoryID:  ad.CategoryID.String(),
		UserID:      ad.UserID.String(),
		Location:    ad.Location,
		Phone:       ad.Phone,
		Email:       ad.Email,
		Images:      images,
		IsFeatured:  ad.IsFeatured,
		IsApproved:  ad.IsApproved,
		IsActive:    ad.IsActive,
		Views:       ad.Views,
		CreatedAt:   ad.CreatedAt,
		UpdatedAt:   ad.UpdatedAt,
	}
}

func AdWithCategoryToResponse(ad *entity.AdWithCategory) AdResponse {
	resp := AdToResponse(&ad.Ad)
	category := CategoryToResponse(&ad.Category)
	resp.Category = &category
	resp.Username = ad.Username
	return resp
}

func AdsToResponse(ads []*entity.AdWithCategory) []AdResponse {
	out := make([]AdResponse, 0, len(ads))
	for _, ad := range ads {
		out = append(out, AdWithCategoryToResponse(ad))
	}
	return out
}

func AdStatsToResponse(stats *entity.AdStats) AdStatsResponse {
	return AdStatsResponse{
		TotalAds:         stats.TotalAds,
		PendingAds:       stats.PendingAds,
		ApprovedAds:      stats.ApprovedAds,
		FeaturedAds:      stats.FeaturedAds,
		TotalUsers:       stats.TotalUsers,
		VipStores:        stats.VipStores,
		PendingVipOrders: stats.PendingVipOrders,
	}
}
