package entity

import "github.com/google/uuid"

type PaymentMethod string

const (
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentStripe       PaymentMethod = "stripe"
)

func (p PaymentMethod) Valid() bool {
	return p == PaymentBankTransfer || p == PaymentStripe
}

type Country struct {
	BaseNoDelete
	Name                  string   `db:"name"`
	NameEn                string   `db:"name_en"`
	Code                  string   `db:"code"`
	Currency              string   `db:"currency"`
	VipPrice              float64  `db:"vip_price"`
	PaymentMethods        []string `db:"payment_methods"`
	RequiresTransferProof bool     `db:"requires_transfer_proof"`
	IsActive              bool     `db:"is_active"`
}

// AcceptsPayment reports whether method is enabled for the country.
func (c *Country) AcceptsPayment(method PaymentMethod) bool {
	for _, m := range c.PaymentMethods {
		if PaymentMethod(m) == method {
			return true
		}
	}
	return false
}

type State struct {
	BaseSimple
	Name      string    `db:"name"`
	NameEn    string    `db:"name_en"`
	CountryID uuid.UUID `db:"country_id"`
}

type City struct {
	BaseSimple
	Name    string    `db:"name"`
	NameEn  string    `db:"name_en"`
	StateID uuid.UUID `db:"state_id"`
}
