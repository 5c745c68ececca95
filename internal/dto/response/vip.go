package response

import (
	"time"

	"github.com/Mohammed-hani69/adsvairl/internal/data/entity"
)

type VipStoreResponse struct {
	ID         string           `json:"id"`
	UserID     string           `json:"user_id"`
	OwnerName  string           `json:"owner_name,omitempty"`
	StoreName  string           `json:"store_name"`
	BrandName  string           `json:"brand_name"`
	Specialty  string           `json:"specialty"`
	Logo       *string          `json:"logo"`
	Banner     *string          `json:"banner"`
	Address    string           `json:"address"`
	Phone      string           `json:"phone"`
	IsActive   bool             `json:"is_active"`
	IsApproved bool             `json:"is_approved"`
	Country    *CountryResponse `json:"country,omitempty"`
	State      *StateResponse   `json:"state,omitempty"`
	City       *CityResponse    `json:"city,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
}

type VipOrderResponse struct {
	ID                 string     `json:"id"`
	OrderNumber        string     `json:"order_number"`
	UserID             string     `json:"user_id"`
	StoreID            string     `json:"store_id"`
	CountryID          string     `json:"country_id"`
	Amount             float64    `json:"amount"`
	Currency           string     `json:"currency"`
	PaymentMethod      string     `json:"payment_method"`
	TransferProofImage *string    `json:"transfer_proof_image"`
	StripePaymentID    *string    `json:"stripe_payment_id,omitempty"`
	Status             string     `json:"status"`
	AdminNotes         *string    `json:"admin_notes,omitempty"`
	ProcessedAt        *time.Time `json:"processed_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

type StoreProductResponse struct {
	ID          string    `json:"id"`
	StoreID     string    `json:"store_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Price       int64     `json:"price"`
	Currency    string    `json:"currency"`
	Images      []string  `json:"images"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func VipStoreToResponse(store *entity.VipStoreWithLocation) VipStoreResponse {
	country := CountryToResponse(&store.Country)
	state := StateToResponse(&store.State)
	city := CityToResponse(&store.City)

	return VipStoreResponse{
		ID:         store.ID.String(),
		UserID:     store.UserID.String(),
		OwnerName:  store.OwnerName,
		StoreName:  store.StoreName,
		BrandName:  store.BrandName,
		Specialty:  store.Specialty,
		Logo:       store.Logo,
		Banner:     store.Banner,
		Address:    store.Address,
		Phone:      store.Phone,
		IsActive:   store.IsActive,
		IsApproved: store.IsApproved,
		Country:    &country,
		State:      &state,
		City:       &city,
		CreatedAt:  store.CreatedAt,
	}
}

func VipStoresToResponse(stores []*entity.VipStoreWithLocation) []VipStoreResponse {
	out := make([]VipStoreResponse, 0, len(stores))
	for _, store := range stores {
		out = append(out, VipStoreToResponse(store))
	}
	return out
}

func VipOrderToResponse(order *entity.VipOrder) VipOrderResponse {
	return VipOrderResponse{
		ID:                 order.ID.String(),
		OrderNumber:        order.OrderNumber,
		UserID:             order.UserID.String(),
		StoreID:            order.StoreID.String(),
		CountryID:          order.CountryID.String(),
		Amount:             order.Amount,
		Currency:           order.Currency,
		PaymentMethod:      string(order.PaymentMethod),
		TransferProofImage: order.TransferProofImage,
		StripePaymentID:    order.StripePaymentID,
		Status:             string(order.Status),
		AdminNotes:         order.AdminNotes,
		ProcessedAt:        order.ProcessedAt,
		CreatedAt:          order.CreatedAt,
	}
}

func VipOrdersToResponse(orders []*entity.VipOrder) []VipOrderResponse {
	out := make([]VipOrderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, VipOrderToResponse(order))
	}
	return out
}

func StoreProductToResponse(product *entity.StoreProduct) StoreProductResponse {
	images := product.Images
	if images == nil {
		images = []string{}
	}

	return StoreProductResponse{
		ID:          product.ID.String(),
		StoreID:     product.StoreID.String(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Currency:    product.Currency,
		Images:      images,
		IsActive:    product.IsActive,
		CreatedAt:   product.CreatedAt,
	}
}
