package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/rs/zerolog"

	"github.com/northwestmeats/storefront/internal/apperr"
	"github.com/northwestmeats/storefront/internal/infra/repository"
	"github.com/northwestmeats/storefront/internal/model"
)

type OrderItemParams struct {
	ProductID string
	Quantity  int
}

type CreateOrderParams struct {
	CustomerName  string
	CustomerEmail string
	Items         []OrderItemParams
}

// IOrderService handles checkout and fulfillment. Order status moves one way,
// processing -> ready.
//
// Errors:
//   - apperr.BadRequestCode 400: missing customer fields, empty items, bad quantity or status
//   - apperr.NotFoundCode 404: unknown product or order id
//   - apperr.UnavailableCode 400: ordered product has available=false
//   - apperr.InsufficientStockCode 400: ordered quantity exceeds stock
type IOrderService interface {
	Create(ctx context.Context, params CreateOrderParams) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	Get(ctx context.Context, id string) (*model.Order, error)
	UpdateStatus(ctx context.Context, id string, status string) (*model.Order, error)
	Delete(ctx context.Context, id string) error
}

type OrderService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	notifier INotificationService
	logger   zerolog.Logger
}

func NewOrderService(orders repository.OrderRepository, products repository.ProductRepository, notifier INotificationService, logger zerolog.Logger) IOrderService {
	if reflect.ValueOf(orders).IsNil() {
		panic("order service initialization failed: orders cannot be nil")
	}
	if reflect.ValueOf(products).IsNil() {
		panic("order service initialization failed: products cannot be nil")
	}
	if reflect.ValueOf(notifier).IsNil() {
		panic("order service initialization failed: notifier cannot be nil")
	}
	return &OrderService{
		orders:   orders,
		products: products,
		notifier: notifier,
		logger:   logger,
	}
}

// Create validates every line item in request order, reserving stock through
// the repository's atomic decrement as it goes. When a later item fails, stock
// already taken for earlier items is released again before returning; the
// release is best-effort and logged, never surfaced, since the rejection is
// already decided.
func (s *OrderService) Create(ctx context.Context, params CreateOrderParams) (*model.Order, error) {
	if params.CustomerName == "" || params.CustomerEmail == "" || len(params.Items) == 0 {
		return nil, apperr.New(apperr.BadRequestCode, "please provide customer name, email, and items")
	}
	for _, item := range params.Items {
		if item.Quantity < 1 {
			return nil, apperr.New(apperr.BadRequestCode, "item quantity must be at least 1")
		}
	}

	var totalAmount float64
	orderItems := make([]model.OrderItem, 0, len(params.Items))

	fail := func(err error) (*model.Order, error) {
		s.releaseStock(ctx, orderItems)
		return nil, err
	}

	for _, item := range params.Items {
		product, err := s.products.Get(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fail(apperr.New(apperr.NotFoundCode,
					fmt.Sprintf("product with ID %s not found", item.ProductID)))
			}
			return fail(apperr.New(apperr.InternalErrorCode, err.Error()))
		}

		if !product.Available {
			return fail(apperr.New(apperr.UnavailableCode,
				fmt.Sprintf("product %s is currently unavailable", product.Name)))
		}

		if _, err := s.products.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			if errors.Is(err, repository.ErrStockConflict) {
				return fail(apperr.New(apperr.InsufficientStockCode,
					fmt.Sprintf("insufficient stock for %s. Available: %d", product.Name, product.Stock)))
			}
			return fail(apperr.New(apperr.InternalErrorCode, err.Error()))
		}

		orderItems = append(orderItems, model.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
		})
		totalAmount += product.Price * float64(item.Quantity)
	}

	order := &model.Order{
		CustomerName:  params.CustomerName,
		CustomerEmail: params.CustomerEmail,
		Items:         orderItems,
		TotalAmount:   totalAmount,
		Status:        model.OrderStatusProcessing,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return fail(apperr.New(apperr.InternalErrorCode, err.Error()))
	}

	s.notifier.NotifyOrderConfirmation(order)
	return order, nil
}

func (s *OrderService) releaseStock(ctx context.Context, items []model.OrderItem) {
	for _, item := range items {
		if err := s.products.IncrementStock(ctx, item.ProductID.Hex(), item.Quantity); err != nil {
			s.logger.Error().Err(err).
				Str("product_id", item.ProductID.Hex()).
				Int("quantity", item.Quantity).
				Msg("failed to release stock for aborted order")
		}
	}
}

func (s *OrderService) List(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return orders, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*model.Order, error) {
	order, err := s.orders.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.NotFoundCode, "order not found")
		}
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return order, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, id string, status string) (*model.Order, error) {
	if !model.IsValidOrderStatus(status) {
		return nil, apperr.New(apperr.BadRequestCode, "invalid status. Must be 'processing' or 'ready'")
	}

	order, err := s.orders.UpdateStatus(ctx, id, model.OrderStatus(status))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.NotFoundCode, "order not found")
		}
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}

	s.notifier.NotifyOrderStatusUpdate(order)
	return order, nil
}

// Delete removes an order without restocking its line items.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.New(apperr.NotFoundCode, "order not found")
		}
		return apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return nil
}
