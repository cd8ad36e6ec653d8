package service

import (
	"context"
	"errors"
	"reflect"

	"github.com/northwestmeats/storefront/internal/apperr"
	"github.com/northwestmeats/storefront/internal/infra/repository"
	"github.com/northwestmeats/storefront/internal/model"
)

type CreateProductParams struct {
	Name        string
	Price       *float64
	Description string
	Image       string
	Stock       *int
	Available   *bool
}

// IProductService wraps the product catalog CRUD.
//
// Errors:
//   - apperr.BadRequestCode 400: missing or malformed fields on create/update
//   - apperr.NotFoundCode 404: unknown or malformed product id
type IProductService interface {
	List(ctx context.Context) ([]model.Product, error)
	Get(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, params CreateProductParams) (*model.Product, error)
	Update(ctx context.Context, id string, update repository.ProductUpdate) (*model.Product, error)
	Delete(ctx context.Context, id string) error
}

type ProductService struct {
	products repository.ProductRepository
}

func NewProductService(products repository.ProductRepository) IProductService {
	if reflect.ValueOf(products).IsNil() {
		panic("product service initialization failed: products cannot be nil")
	}
	return &ProductService{products: products}
}

func (s *ProductService) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*model.Product, error) {
	product, err := s.products.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.NotFoundCode, "product not found")
		}
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return product, nil
}

func (s *ProductService) Create(ctx context.Context, params CreateProductParams) (*model.Product, error) {
	if params.Name == "" || params.Image == "" || params.Price == nil {
		return nil, apperr.New(apperr.BadRequestCode, "please provide name, price and image")
	}
	if *params.Price < 0 {
		return nil, apperr.New(apperr.BadRequestCode, "price cannot be negative")
	}

	product := &model.Product{
		Name:        params.Name,
		Price:       *params.Price,
		Description: params.Description,
		Image:       params.Image,
		Available:   true,
	}
	if params.Stock != nil {
		if *params.Stock < 0 {
			return nil, apperr.New(apperr.BadRequestCode, "stock cannot be negative")
		}
		product.Stock = *params.Stock
	}
	if params.Available != nil {
		product.Available = *params.Available
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id string, update repository.ProductUpdate) (*model.Product, error) {
	if update.Price != nil && *update.Price < 0 {
		return nil, apperr.New(apperr.BadRequestCode, "price cannot be negative")
	}
	if update.Stock != nil && *update.Stock < 0 {
		return nil, apperr.New(apperr.BadRequestCode, "stock cannot be negative")
	}

	product, err := s.products.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.NotFoundCode, "product not found")
		}
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.New(apperr.NotFoundCode, "product not found")
		}
		return apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return nil
}
