package entity

type Category struct {
	BaseNoDelete
	Name         string  `db:"name"`
	NameEn       string  `db:"name_en"`
	Icon         string  `db:"icon"`
	Color        string  `db:"color"`
	Description  *string `db:"description"`
	DisplayOrder int     `db:"display_order"`
	IsActive     bool    `db:"is_active"`
}
