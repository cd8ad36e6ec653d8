package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/northwestmeats/storefront/internal/apperr"
	"github.com/northwestmeats/storefront/internal/infra/repository"
	"github.com/northwestmeats/storefront/internal/model"
)

func newOrderFixture(t *testing.T, products ...*model.Product) (IOrderService, *fakeOrderRepo, *fakeProductRepo, *fakeNotifier) {
	t.Helper()
	orders := newFakeOrderRepo()
	repo := newFakeProductRepo(products...)
	notifier := newFakeNotifier()
	svc := NewOrderService(orders, repo, notifier, zerolog.Nop())
	return svc, orders, repo, notifier
}

func ribeye() *model.Product {
	return &model.Product{Name: "Ribeye Steak", Price: 32.5, Image: "ribeye.jpg", Stock: 25, Available: true}
}

func sausages() *model.Product {
	return &model.Product{Name: "Pork Sausages", Price: 9.0, Image: "sausages.jpg", Stock: 10, Available: true}
}

func TestCreateOrderDecrementsStock(t *testing.T) {
	product := ribeye()
	svc, _, repo, notifier := newOrderFixture(t, product)

	order, err := svc.Create(context.Background(), CreateOrderParams{
		CustomerName:  "Jamie",
		CustomerEmail: "jamie@example.com",
		Items:         []OrderItemParams{{ProductID: product.ID.Hex(), Quantity: 3}},
	})
	require.NoError(t, err)
	require.Equal(t, model.OrderStatusProcessing, order.Status)
	require.InDelta(t, 97.5, order.TotalAmount, 0.001)
	require.Equal(t, 22, repo.stock(product.ID.Hex()))
	require.Len(t, notifier.confirmations, 1)
}

func TestCreateOrderInsufficientStock(t *testing.T) {
	product := ribeye()
	product.Stock = 2
	svc, orders, repo, notifier := newOrderFixture(t, product)

	_, err := svc.Create(context.Background(), CreateOrderParams{
		CustomerName:  "Jamie",
		CustomerEmail: "jamie@example.com",
		Items:         []OrderItemParams{{ProductID: product.ID.Hex(), Quantity: 3}},
	})
	require.Error(t, err)
	require.Equal(t, apperr.InsufficientStockCode, apperr.CodeOf(err))
	require.EqualError(t, err, "insufficient stock for Ribeye Steak. Available: 2")

	// nothing persisted, nothing decremented, nothing sent
	stored, listErr := orders.List(context.Background())
	require.NoError(t, listErr)
	require.Empty(t, stored)
	require.Equal(t, 2, repo.stock(product.ID.Hex()))
	require.Empty(t, notifier.confirmations)
}

func TestCreateOrderUnavailableProduct(t *testing.T) {
	product := ribeye()
	product.Available = false
	svc, _, repo, _ := newOrderFixture(t, product)

	_, err := svc.Create(context.Background(), CreateOrderParams{
		CustomerName:  "Jamie",
		CustomerEmail: "jamie@example.com",
		Items:         []OrderItemParams{{ProductID: product.ID.Hex(), Quantity: 1}},
	})
	require.Error(t, err)
	require.Equal(t, apperr.UnavailableCode, apperr.CodeOf(err))
	require.Equal(t, 25, repo.stock(product.ID.Hex()))
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	svc, _, _, _ := newOrderFixture(t, ribeye())

	_, err := svc.Create(context.Background(), CreateOrderParams{
		CustomerName:  "Jamie",
		CustomerEmail: "jamie@example.com",
		Items:         []OrderItemParams{{ProductID: "ffffffffffffffffffffffff", Quantity: 1}},
	})
	require.Error(t, err)
	require.Equal(t, apperr.NotFoundCode, apperr.CodeOf(err))
	require.EqualError(t, err, "product with ID ffffffffffffffffffffffff not found")
}

func TestCreateOrderRollsBackEarlierItems(t *testing.T) {
	first := ribeye()
	second := sausages()
	second.Stock = 1
	svc, orders, repo, _ := newOrderFixture(t, first, second)

	_, err := svc.Create(context.Background(), CreateOrderParams{
		CustomerName:  "Jamie",
		CustomerEmail: "jamie@example.com",
		Items: []OrderItemParams{
			{ProductID: first.ID.Hex(), Quantity: 5},
			{ProductID: second.ID.Hex(), Quantity: 2},
		},
	})
	require.Error(t, err)
	require.Equal(t, apperr.InsufficientStockCode, apperr.CodeOf(err))

	// the first item's decrement is released again
	require.Equal(t, 25, repo.stock(first.ID.Hex()))
	require.Equal(t, 1, repo.stock(second.ID.Hex()))

	stored, listErr := orders.List(context.Background())
	require.NoError(t, listErr)
	require.Empty(t, stored)
}

func TestCreateOrderValidation(t *testing.T) {
	product := ribeye()
	svc, _, _, _ := newOrderFixture(t, product)
	ctx := context.Background()

	cases := []struct {
		name   string
		params CreateOrderParams
	}{
		{"missing name", CreateOrderParams{CustomerEmail: "j@example.com", Items: []OrderItemParams{{ProductID: product.ID.Hex(), Quantity: 1}}}},
		{"missing email", CreateOrderParams{CustomerName: "Jamie", Items: []OrderItemParams{{ProductID: product.ID.Hex(), Quantity: 1}}}},
		{"empty items", CreateOrderParams{CustomerName: "Jamie", CustomerEmail: "j@example.com"}},
		{"zero quantity", CreateOrderParams{CustomerName: "Jamie", CustomerEmail: "j@example.com", Items: []OrderItemParams{{ProductID: product.ID.Hex(), Quantity: 0}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.params)
			require.Error(t, err)
			require.Equal(t, apperr.BadRequestCode, apperr.CodeOf(err))
		})
	}
}

func TestOrderTotalSnapshotsPrice(t *testing.T) {
	product := ribeye()
	svc, orders, repo, _ := newOrderFixture(t, product)
	ctx := context.Background()

	order, err := svc.Create(ctx, CreateOrderParams{
		CustomerName:  "Jamie",
		CustomerEmail: "jamie@example.com",
		Items:         []OrderItemParams{{ProductID: product.ID.Hex(), Quantity: 2}},
	})
	require.NoError(t, err)

	// a later price change must not touch the stored order
	newPrice := 99.0
	_, err = repo.Update(ctx, product.ID.Hex(), repository.ProductUpdate{Price: &newPrice})
	require.NoError(t, err)

	stored, err := orders.Get(ctx, order.ID.Hex())
	require.NoError(t, err)
	require.InDelta(t, 65.0, stored.TotalAmount, 0.001)
	require.InDelta(t, 32.5, stored.Items[0].Price, 0.001)
}

func TestUpdateOrderStatus(t *testing.T) {
	product := ribeye()
	svc, _, _, notifier := newOrderFixture(t, product)
	ctx := context.Background()

	order, err := svc.Create(ctx, CreateOrderParams{
		CustomerName:  "Jamie",
		CustomerEmail: "jamie@example.com",
		Items:         []OrderItemParams{{ProductID: product.ID.Hex(), Quantity: 1}},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, order.ID.Hex(), "ready")
	require.NoError(t, err)
	require.Equal(t, model.OrderStatusReady, updated.Status)
	require.Len(t, notifier.statusUpdates, 1)
}

func TestUpdateOrderStatusRejectsUnknownValue(t *testing.T) {
	product := ribeye()
	svc, _, _, notifier := newOrderFixture(t, product)
	ctx := context.Background()

	order, err := svc.Create(ctx, CreateOrderParams{
		CustomerName:  "Jamie",
		CustomerEmail: "jamie@example.com",
		Items:         []OrderItemParams{{ProductID: product.ID.Hex(), Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, order.ID.Hex(), "shipped")
	require.Error(t, err)
	require.Equal(t, apperr.BadRequestCode, apperr.CodeOf(err))

	// stored status untouched
	stored, err := svc.Get(ctx, order.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, model.OrderStatusProcessing, stored.Status)
	require.Empty(t, notifier.statusUpdates)
}

func TestDeleteOrderDoesNotRestock(t *testing.T) {
	product := ribeye()
	svc, _, repo, _ := newOrderFixture(t, product)
	ctx := context.Background()

	order, err := svc.Create(ctx, CreateOrderParams{
		CustomerName:  "Jamie",
		CustomerEmail: "jamie@example.com",
		Items:         []OrderItemParams{{ProductID: product.ID.Hex(), Quantity: 4}},
	})
	require.NoError(t, err)
	require.Equal(t, 21, repo.stock(product.ID.Hex()))

	require.NoError(t, svc.Delete(ctx, order.ID.Hex()))
	require.Equal(t, 21, repo.stock(product.ID.Hex()))

	_, err = svc.Get(ctx, order.ID.Hex())
	require.Equal(t, apperr.NotFoundCode, apperr.CodeOf(err))
}
