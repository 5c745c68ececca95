package request

// CreateVipStoreRequest is read from a multipart form. Logo and Banner hold stored URLs.
type CreateVipStoreRequest struct {
	StoreName string  `form:"store_name" validate:"omitempty,max=150"`
	BrandName string  `form:"brand_name" validate:"required,max=150"`
	Specialty string  `form:"specialty" validate:"required,max=150"`
	Address   string  `form:"address" validate:"required"`
	Phone     string  `form:"phone" validate:"required,max=20"`
	CountryID string  `form:"country_id" validate:"required,uuid"`
	StateID   string  `form:"state_id" validate:"required,uuid"`
	CityID    string  `form:"city_id" validate:"required,uuid"`
	Logo      *string `form:"-"`
	Banner    *string `form:"-"`
}

type UpdateVipStoreRequest struct {
	StoreName *string `json:"store_name,omitempty" validate:"omitempty,min=1,max=150"`
	BrandName *string `json:"brand_name,omitempty" validate:"omitempty,min=1,max=150"`
	Specialty *string `json:"specialty,omitempty" validate:"omitempty,min=1,max=150"`
	Address   *string `json:"address,omitempty" validate:"omitempty,min=1"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,min=1,max=20"`
}

type CreateVipOrderRequest struct {
	StoreID         string  `form:"store_id" validate:"required,uuid"`
	PaymentMethod   string  `form:"payment_method" validate:"required,oneof=bank_transfer stripe"`
	StripePaymentID *string `form:"stripe_payment_id" validate:"omitempty,max=255"`
	TransferProof   *string `form:"-"`
}

type UpdateVipOrderStatusRequest struct {
	Status     string  `json:"status" validate:"required,oneof=approved rejected"`
	AdminNotes *string `json:"admin_notes,omitempty" validate:"omitempty,max=1000"`
}

type CreateStoreProductRequest struct {
	Name        string   `form:"name" validate:"required,max=200"`
	Description *string  `form:"description"`
	Price       int64    `form:"price" validate:"gte=0"`
	Currency    string   `form:"currency" validate:"omitempty,max=30"`
	Images      []string `form:"-"`
}

type UpdateStoreProductRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	Price       *int64  `json:"price,omitempty" validate:"omitempty,gte=0"`
	Currency    *string `json:"currency,omitempty" validate:"omitempty,min=1,max=30"`
	IsActive    *bool   `json:"is_active,omitempty"`
}
