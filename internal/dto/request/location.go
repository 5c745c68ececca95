package request

type CreateCountryRequest struct {
	Name                  string   `json:"name" validate:"required,max=100"`
	NameEn                string   `json:"name_en" validate:"required,max=100"`
	Code                  string   `json:"code" validate:"required,len=2,alpha"`
	Currency              string   `json:"currency" validate:"required,max=50"`
	VipPrice              float64  `json:"vip_price" validate:"gte=0"`
	PaymentMethods        []string `json:"payment_methods" validate:"required,min=1,dive,oneof=bank_transfer stripe"`
	RequiresTransferProof bool     `json:"requires_transfer_proof"`
	IsActive              *bool    `json:"is_active,omitempty"`
}

// UpdateCountryRequest leaves nil fields unchanged.
type UpdateCountryRequest struct {
	Currency              *string  `json:"currency,omitempty" validate:"omitempty,min=1,max=50"`
	VipPrice              *float64 `json:"vip_price,omitempty" validate:"omitempty,gte=0"`
	PaymentMethods        []string `json:"payment_methods,omitempty" validate:"omitempty,min=1,dive,oneof=bank_transfer stripe"`
	RequiresTransferProof *bool    `json:"requires_transfer_proof,omitempty"`
	IsActive              *bool    `json:"is_active,omitempty"`
}

type CreateStateRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	NameEn    string `json:"name_en" validate:"required,max=100"`
	CountryID string `json:"country_id" validate:"required,uuid"`
}

type CreateCityRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	NameEn  string `json:"name_en" validate:"required,max=100"`
	StateID string `json:"state_id" validate:"required,uuid"`
}
