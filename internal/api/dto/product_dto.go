package dto

type CreateProductRequest struct {
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	Description string   `json:"desc"`
	Image       string   `json:"img"`
	Stock       *int     `json:"stock"`
	Available   *bool    `json:"available"`
}

// UpdateProductRequest is a partial update; absent fields stay untouched.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"desc"`
	Image       *string  `json:"img"`
	Stock       *int     `json:"stock"`
	Available   *bool    `json:"available"`
}
