package entity

import (
	"time"

	"github.com/google/uuid"
)

type VipOrderStatus string

const (
	VipOrderPending  VipOrderStatus = "pending"
	VipOrderApproved VipOrderStatus = "approved"
	VipOrderRejected VipOrderStatus = "rejected"
)

// CanTransitionTo only allows an admin decision on a pending order.
func (s VipOrderStatus) CanTransitionTo(next VipOrderStatus) bool {
	return s == VipOrderPending && (next == VipOrderApproved || next == VipOrderRejected)
}

type VipOrder struct {
	BaseNoDelete
	OrderNumber        string         `db:"order_number"`
	UserID             uuid.UUID      `db:"user_id"`
	StoreID            uuid.UUID      `db:"store_id"`
	CountryID          uuid.UUID      `db:"country_id"`
	Amount             float64        `db:"amount"`
	Currency           string         `db:"currency"`
	PaymentMethod      PaymentMethod  `db:"payment_method"`
	TransferProofImage *string        `db:"transfer_proof_image"`
	StripePaymentID    *string        `db:"stripe_payment_id"`
	Status             VipOrderStatus `db:"status"`
	AdminNotes         *string        `db:"admin_notes"`
	ProcessedAt        *time.Time     `db:"processed_at"`
	ProcessedBy        *uuid.UUID     `db:"processed_by"`
}
