package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/northwestmeats/storefront/internal/apperr"
	"github.com/northwestmeats/storefront/internal/infra/repository"
)

func float64Ptr(v float64) *float64 { return &v }
func intPtr(v int) *int             { return &v }
func boolPtr(v bool) *bool          { return &v }
func strPtr(v string) *string       { return &v }

func TestCreateProductDefaults(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())

	product, err := svc.Create(context.Background(), CreateProductParams{
		Name:  "Lamb Chops",
		Price: float64Ptr(18.0),
		Image: "lamb.jpg",
	})
	require.NoError(t, err)
	require.True(t, product.Available)
	require.Zero(t, product.Stock)
	require.False(t, product.ID.IsZero())
}

func TestCreateProductValidation(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())
	ctx := context.Background()

	cases := []struct {
		name   string
		params CreateProductParams
	}{
		{"missing name", CreateProductParams{Price: float64Ptr(10), Image: "x.jpg"}},
		{"missing price", CreateProductParams{Name: "Lamb", Image: "x.jpg"}},
		{"missing image", CreateProductParams{Name: "Lamb", Price: float64Ptr(10)}},
		{"negative price", CreateProductParams{Name: "Lamb", Price: float64Ptr(-1), Image: "x.jpg"}},
		{"negative stock", CreateProductParams{Name: "Lamb", Price: float64Ptr(10), Image: "x.jpg", Stock: intPtr(-5)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.params)
			require.Error(t, err)
			require.Equal(t, apperr.BadRequestCode, apperr.CodeOf(err))
		})
	}
}

func TestUpdateProductPartial(t *testing.T) {
	product := ribeye()
	svc := NewProductService(newFakeProductRepo(product))
	ctx := context.Background()

	updated, err := svc.Update(ctx, product.ID.Hex(), repository.ProductUpdate{
		Price:     float64Ptr(35.0),
		Available: boolPtr(false),
	})
	require.NoError(t, err)
	require.InDelta(t, 35.0, updated.Price, 0.001)
	require.False(t, updated.Available)
	// untouched fields survive
	require.Equal(t, "Ribeye Steak", updated.Name)
	require.Equal(t, 25, updated.Stock)
}

func TestUpdateProductRejectsNegativeValues(t *testing.T) {
	product := ribeye()
	svc := NewProductService(newFakeProductRepo(product))
	ctx := context.Background()

	_, err := svc.Update(ctx, product.ID.Hex(), repository.ProductUpdate{Price: float64Ptr(-1)})
	require.Equal(t, apperr.BadRequestCode, apperr.CodeOf(err))

	_, err = svc.Update(ctx, product.ID.Hex(), repository.ProductUpdate{Stock: intPtr(-1)})
	require.Equal(t, apperr.BadRequestCode, apperr.CodeOf(err))
}

func TestProductNotFound(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())
	ctx := context.Background()

	_, err := svc.Get(ctx, "ffffffffffffffffffffffff")
	require.Equal(t, apperr.NotFoundCode, apperr.CodeOf(err))

	_, err = svc.Update(ctx, "ffffffffffffffffffffffff", repository.ProductUpdate{Name: strPtr("x")})
	require.Equal(t, apperr.NotFoundCode, apperr.CodeOf(err))

	err = svc.Delete(ctx, "ffffffffffffffffffffffff")
	require.Equal(t, apperr.NotFoundCode, apperr.CodeOf(err))
}

func TestDeleteProduct(t *testing.T) {
	product := ribeye()
	svc := NewProductService(newFakeProductRepo(product))
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, product.ID.Hex()))

	products, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, products)
}
