package request

type CreateCategoryRequest struct {
	Name         string  `json:"name" validate:"required,max=100"`
	NameEn       string  `json:"name_en" validate:"required,max=100"`
	Icon         string  `json:"icon" validate:"required,max=50"`
	Color        string  `json:"color" validate:"required,hexcolor"`
	Description  *string `json:"description,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty" validate:"omitempty,gte=0"`
}
