package request

// ListAdsRequest carries the raw query string of the public listing.
type ListAdsRequest struct {
	CategoryID string
	Location   string
	MinPrice   string
	MaxPrice   string
	Search     string
	PaginatedRequest
}

// CreateAdRequest is read from a multipart form. Images holds the stored URLs.
type CreateAdRequest struct {
	Title       string   `form:"title" validate:"required,max=200"`
	Description string   `form:"description" validate:"required"`
	Price       *int64   `form:"price" validate:"omitempty,gte=0"`
	Currency    string   `form:"currency" validate:"omitempty,max=30"`
	CategoryID  string   `form:"categoryId" validate:"required,uuid"`
	Location    string   `form:"location" validate:"required,max=200"`
	Phone       string   `form:"phone" validate:"required,max=20"`
	Email       *string  `form:"email" validate:"omitempty,email,max=120"`
	Images      []string `form:"-"`
}

type UpdateAdRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,min=1"`
	Price       *int64  `json:"price,omitempty" validate:"omitempty,gte=0"`
	Currency    *string `json:"currency,omitempty" validate:"omitempty,max=30"`
	Location    *string `json:"location,omitempty" validate:"omitempty,min=1,max=200"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,min=1,max=20"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email,max=120"`
}

type ModerationListRequest struct {
	Status string `json:"status" validate:"omitempty,oneof=all pending approved featured rejected"`
	PaginatedRequest
}
