package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/northwestmeats/storefront/internal/api/dto"
	"github.com/northwestmeats/storefront/internal/api/respond"
	"github.com/northwestmeats/storefront/internal/apperr"
	"github.com/northwestmeats/storefront/internal/infra/repository"
	"github.com/northwestmeats/storefront/internal/service"
)

type CarouselHandler struct {
	carouselService service.ICarouselService
}

func NewCarouselHandler(carouselService service.ICarouselService) *CarouselHandler {
	if carouselService == nil {
		panic("carouselService cannot be nil")
	}
	return &CarouselHandler{carouselService: carouselService}
}

func (h *CarouselHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	slides, err := h.carouselService.ListActive(r.Context())
	if err != nil {
		respond.ErrorJSON(w, err)
		return
	}
	respond.SuccessJSON(w, http.StatusOK, slides, "")
}

func (h *CarouselHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	slides, err := h.carouselService.ListAll(r.Context())
	if err != nil {
		respond.ErrorJSON(w, err)
		return
	}
	respond.SuccessJSON(w, http.StatusOK, slides, "")
}

func (h *CarouselHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSlideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.ErrorJSON(w, apperr.New(apperr.BadRequestCode, "invalid request body"))
		return
	}

	slide, err := h.carouselService.Create(r.Context(), service.CreateSlideParams{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Link:        req.Link,
		Order:       req.Order,
		Active:      req.Active,
	})
	if err != nil {
		respond.ErrorJSON(w, err)
		return
	}
	respond.SuccessJSON(w, http.StatusCreated, slide, "")
}

func (h *CarouselHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateSlideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.ErrorJSON(w, apperr.New(apperr.BadRequestCode, "invalid request body"))
		return
	}

	slide, err := h.carouselService.Update(r.Context(), chi.URLParam(r, "id"), repository.CarouselUpdate{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Link:        req.Link,
		Order:       req.Order,
		Active:      req.Active,
	})
	if err != nil {
		respond.ErrorJSON(w, err)
		return
	}
	respond.SuccessJSON(w, http.StatusOK, slide, "")
}

func (h *CarouselHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.carouselService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond.ErrorJSON(w, err)
		return
	}
	respond.SuccessJSON(w, http.StatusOK, nil, "Carousel slide deleted successfully")
}

type MarqueeHandler struct {
	marqueeService service.IMarqueeService
}

func NewMarqueeHandler(marqueeService service.IMarqueeService) *MarqueeHandler {
	if marqueeService == nil {
		panic("marqueeService cannot be nil")
	}
	return &MarqueeHandler{marqueeService: marqueeService}
}

func (h *MarqueeHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	items, err := h.marqueeService.ListActive(r.Context())
	if err != nil {
		respond.ErrorJSON(w, err)
		return
	}
	respond.SuccessJSON(w, http.StatusOK, items, "")
}

func (h *MarqueeHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.marqueeService.ListAll(r.Context())
	if err != nil {
		respond.ErrorJSON(w, err)
		return
	}
	respond.SuccessJSON(w, http.StatusOK, items, "")
}

func (h *MarqueeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMarqueeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.ErrorJSON(w, apperr.New(apperr.BadRequestCode, "invalid request body"))
		return
	}

	item, err := h.marqueeService.Create(r.Context(), service.CreateMarqueeParams{
		Text:   req.Text,
		Order:  req.Order,
		Active: req.Active,
	})
	if err != nil {
		respond.ErrorJSON(w, err)
		return
	}
	respond.SuccessJSON(w, http.StatusCreated, item, "")
}

func (h *MarqueeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateMarqueeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.ErrorJSON(w, apperr.New(apperr.BadRequestCode, "invalid request body"))
		return
	}

	item, err := h.marqueeService.Update(r.Context(), chi.URLParam(r, "id"), repository.MarqueeUpdate{
		Text:   req.Text,
		Order:  req.Order,
		Active: req.Active,
	})
	if err != nil {
		respond.ErrorJSON(w, err)
		return
	}
	respond.SuccessJSON(w, http.StatusOK, item, "")
}

func (h *MarqueeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.marqueeService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond.ErrorJSON(w, err)
		return
	}
	respond.SuccessJSON(w, http.StatusOK, nil, "Marquee item deleted successfully")
}
