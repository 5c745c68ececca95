package response

import "github.com/Mohammed-hani69/adsvairl/internal/data/entity"

type CountryResponse struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	NameEn                string   `json:"name_en"`
	Code                  string   `json:"code"`
	Currency              string   `json:"currency"`
	VipPrice              float64  `json:"vip_price"`
	PaymentMethods        []string `json:"payment_methods"`
	RequiresTransferProof bool     `json:"requires_transfer_proof"`
	IsActive              bool     `json:"is_active"`
}

type StateResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	NameEn    string `json:"name_en"`
	CountryID string `json:"country_id"`
}

type CityResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	NameEn  string `json:"name_en"`
	StateID string `json:"state_id"`
}

func CountryToResponse(country *entity.Country) CountryResponse {
	methods := country.PaymentMethods
	if methods == nil {
		methods = []string{}
	}

	return CountryResponse{
		ID:                    country.ID.String(),
		Name:                  country.Name,
		NameEn:                country.NameEn,
		Code:                  country.Code,
		Currency:              country.Currency,
		VipPrice:              country.VipPrice,
		PaymentMethods:        methods,
		RequiresTransferProof: country.RequiresTransferProof,
		IsActive:              country.IsActive,
	}
}

func StateToResponse(state *entity.State) StateResponse {
	return StateResponse{
		ID:        state.ID.String(),
		Name:      state.Name,
		NameEn:    state.NameEn,
		CountryID: state.CountryID.String(),
	}
}

func CityToResponse(city *entity.City) CityResponse {
	return CityResponse{
		ID:      city.ID.String(),
		Name:    city.Name,
		NameEn:  city.NameEn,
		StateID: city.StateID.String(),
	}
}
