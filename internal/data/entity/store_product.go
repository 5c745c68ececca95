package entity

import "github.com/google/uuid"

type StoreProduct struct {
	BaseNoDelete
	StoreID     uuid.UUID `db:"store_id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	Price       int64     `db:"price"`
	Currency    string    `db:"currency"`
	Images      []string  `db:"images"`
	IsActive    bool      `db:"is_active"`
}
