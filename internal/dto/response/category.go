package response

import (
	"time"

	"github.com/Mohammed-hani69/adsvairl/internal/data/entity"
)

type CategoryResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	NameEn       string    `json:"name_en"`
	Icon         string    `json:"icon"`
	Color        string    `json:"color"`
	Description  *string   `json:"description,omitempty"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

func CategoryToResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:           category.ID.String(),
		Name:         category.Name,
		NameEn:       category.NameEn,
		Icon:         category.Icon,
		Color:        category.Color,
		Description:  category.Description,
		DisplayOrder: category.DisplayOrder,
		IsActive:     category.IsActive,
		CreatedAt:    category.CreatedAt,
	}
}
