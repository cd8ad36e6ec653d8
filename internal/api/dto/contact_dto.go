package dto

type SubmitInquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// UpdateInquiryRequest mutates status and adminNotes independently; an
// explicit empty adminNotes clears the field.
type UpdateInquiryRequest struct {
	Status     *string `json:"status"`
	AdminNotes *string `json:"adminNotes"`
}
