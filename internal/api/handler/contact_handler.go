package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/northwestmeats/storefront/internal/api/dto"
	"github.com/northwestmeats/storefront/internal/api/respond"
	"github.com/northwestmeats/storefront/internal/apperr"
	"github.com/northwestmeats/storefront/internal/service"
)

type ContactHandler struct {
	contactService service.IContactService
}

func NewContactHandler(contactService service.IContactService) *ContactHandler {
	if contactService == nil {
		panic("contactService cannot be nil")
	}
	return &ContactHandler{contactService: contactService}
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitInquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.ErrorJSON(w, apperr.New(apperr.BadRequestCode, "invalid request body"))
		return
	}

	inquiry, err := h.contactService.Submit(r.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		respond.ErrorJSON(w, err)
		return
	}
	respond.SuccessJSON(w, http.StatusCreated, inquiry,
		"Your inquiry has been submitted successfully. We will get back to you soon!")
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	inquiries, err := h.contactService.List(r.Context())
	if err != nil {
		respond.ErrorJSON(w, err)
		return
	}
	respond.SuccessJSON(w, http.StatusOK, inquiries, "")
}

func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateInquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.ErrorJSON(w, apperr.New(apperr.BadRequestCode, "invalid request body"))
		return
	}

	inquiry, err := h.contactService.Update(r.Context(), chi.URLParam(r, "id"), service.ContactUpdateParams{
		Status:     req.Status,
		AdminNotes: req.AdminNotes,
	})
	if err != nil {
		respond.ErrorJSON(w, err)
		return
	}
	respond.SuccessJSON(w, http.StatusOK, inquiry, "Inquiry updated successfully")
}

func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.contactService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond.ErrorJSON(w, err)
		return
	}
	respond.SuccessJSON(w, http.StatusOK, nil, "Inquiry deleted successfully")
}
