package service

import (
	"context"
	"errors"
	"reflect"

	"github.com/northwestmeats/storefront/internal/apperr"
	"github.com/northwestmeats/storefront/internal/constants"
	"github.com/northwestmeats/storefront/internal/infra/repository"
	"github.com/northwestmeats/storefront/internal/model"
)

// IAnalyticsService is read-only aggregation over orders. Every call
// recomputes from scratch; there is no cache to invalidate.
type IAnalyticsService interface {
	Overview(ctx context.Context) (*model.AnalyticsOverview, error)
	ProductAnalytics(ctx context.Context) ([]model.ProductSales, error)
	ProductAnalyticsByID(ctx context.Context, productID string) (*model.ProductSales, error)
}

type AnalyticsService struct {
	orders repository.OrderRepository
}

func NewAnalyticsService(orders repository.OrderRepository) IAnalyticsService {
	if reflect.ValueOf(orders).IsNil() {
		panic("analytics service initialization failed: orders cannot be nil")
	}
	return &AnalyticsService{orders: orders}
}

func (s *AnalyticsService) Overview(ctx context.Context) (*model.AnalyticsOverview, error) {
	totalOrders, err := s.orders.Count(ctx)
	if err != nil {
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}

	totalRevenue, err := s.orders.TotalRevenue(ctx)
	if err != nil {
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}

	totalUnits, err := s.orders.TotalUnitsSold(ctx)
	if err != nil {
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}

	productSales, err := s.orders.ProductSales(ctx)
	if err != nil {
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}

	recent, err := s.orders.Recent(ctx, constants.RecentOrdersLimit)
	if err != nil {
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}

	var averageOrderValue float64
	if totalOrders > 0 {
		averageOrderValue = totalRevenue / float64(totalOrders)
	}

	return &model.AnalyticsOverview{
		TotalOrders:       totalOrders,
		TotalRevenue:      totalRevenue,
		AverageOrderValue: averageOrderValue,
		TotalUnitsSold:    totalUnits,
		ProductAnalytics:  productSales,
		RecentOrders:      recent,
	}, nil
}

func (s *AnalyticsService) ProductAnalytics(ctx context.Context) ([]model.ProductSales, error) {
	sales, err := s.orders.ProductSales(ctx)
	if err != nil {
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return sales, nil
}

func (s *AnalyticsService) ProductAnalyticsByID(ctx context.Context, productID string) (*model.ProductSales, error) {
	sales, err := s.orders.ProductSalesByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.NotFoundCode, "no sales data found for this product")
		}
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return sales, nil
}
