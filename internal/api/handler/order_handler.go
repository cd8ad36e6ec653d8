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

type OrderHandler struct {
	orderService service.IOrderService
}

func NewOrderHandler(orderService service.IOrderService) *OrderHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.ErrorJSON(w, apperr.New(apperr.BadRequestCode, "invalid request body"))
		return
	}

	items := make([]service.OrderItemParams, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.OrderItemParams{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.orderService.Create(r.Context(), service.CreateOrderParams{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Items:         items,
	})
	if err != nil {
		respond.ErrorJSON(w, err)
		return
	}
	respond.SuccessJSON(w, http.StatusCreated, order, "Order created successfully!")
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.List(r.Context())
	if err != nil {
		respond.ErrorJSON(w, err)
		return
	}
	respond.SuccessJSON(w, http.StatusOK, orders, "")
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.ErrorJSON(w, err)
		return
	}
	respond.SuccessJSON(w, http.StatusOK, order, "")
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.ErrorJSON(w, apperr.New(apperr.BadRequestCode, "invalid request body"))
		return
	}

	order, err := h.orderService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		respond.ErrorJSON(w, err)
		return
	}
	respond.SuccessJSON(w, http.StatusOK, order, "Order status updated successfully!")
}

func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.orderService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond.ErrorJSON(w, err)
		return
	}
	respond.SuccessJSON(w, http.StatusOK, nil, "Order deleted!")
}
