package dto

type CreateSlideRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Link        string `json:"link"`
	Order       *int   `json:"order"`
	Active      *bool  `json:"active"`
}

type UpdateSlideRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Link        *string `json:"link"`
	Order       *int    `json:"order"`
	Active      *bool   `json:"active"`
}

type CreateMarqueeRequest struct {
	Text   string `json:"text"`
	Order  *int   `json:"order"`
	Active *bool  `json:"active"`
}

type UpdateMarqueeRequest struct {
	Text   *string `json:"text"`
	Order  *int    `json:"order"`
	Active *bool   `json:"active"`
}
