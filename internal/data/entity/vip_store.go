package entity

import "github.com/google/uuid"

type VipStore struct {
	BaseNoDelete
	UserID     uuid.UUID `db:"user_id"`
	StoreName  string    `db:"store_name"`
	BrandName  string    `db:"brand_name"`
	Specialty  string    `db:"specialty"`
	Logo       *string   `db:"logo"`
	Banner     *string   `db:"banner"`
	Address    string    `db:"address"`
	CountryID  uuid.UUID `db:"country_id"`
	StateID    uuid.UUID `db:"state_id"`
	CityID     uuid.UUID `db:"city_id"`
	Phone      string    `db:"phone"`
	IsActive   bool      `db:"is_active"`
	IsApproved bool      `db:"is_approved"`
}

// VipStoreWithLocation is a store joined with its location rows and owner.
type VipStoreWithLocation struct {
	VipStore
	Country    Country
	State      State
	City       City
	OwnerName  string
	OwnerIsVip bool
}
