// Package repository defines the persistence contracts the domain services
// depend on. The mongodb subpackage provides the production implementation;
// tests substitute in-memory fakes.
package repository

import (
	"context"
	"errors"

	"github.com/northwestmeats/storefront/internal/model"
)

var (
	// ErrNotFound covers both a malformed document id and a missing document.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicateKey signals a unique-index violation.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrStockConflict signals that an atomic stock decrement found fewer
	// units than requested.
	ErrStockConflict = errors.New("stock below requested quantity")
)

// ProductUpdate carries a partial update; nil fields are left untouched.
type ProductUpdate struct {
	Name        *string
	Price       *float64
	Description *string
	Image       *string
	Stock       *int
	Available   *bool
}

type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	Get(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, id string, update ProductUpdate) (*model.Product, error)
	Delete(ctx context.Context, id string) error
	// DecrementStock atomically subtracts quantity from the product's stock,
	// failing with ErrStockConflict when stock < quantity. No two concurrent
	// order creations may drive a product's stock below zero.
	DecrementStock(ctx context.Context, id string, quantity int) (*model.Product, error)
	// IncrementStock restores stock released by a failed multi-item order.
	IncrementStock(ctx context.Context, id string, quantity int) error
}

type OrderRepository interface {
	List(ctx context.Context) ([]model.Order, error)
	Get(ctx context.Context, id string) (*model.Order, error)
	Create(ctx context.Context, order *model.Order) error
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)
	Delete(ctx context.Context, id string) error

	Count(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (float64, error)
	TotalUnitsSold(ctx context.Context) (int, error)
	ProductSales(ctx context.Context) ([]model.ProductSales, error)
	ProductSalesByID(ctx context.Context, productID string) (*model.ProductSales, error)
	Recent(ctx context.Context, limit int) ([]model.RecentOrder, error)
}

type AdminRepository interface {
	Create(ctx context.Context, admin *model.Admin) error
	GetByUsername(ctx context.Context, username string) (*model.Admin, error)
	GetByID(ctx context.Context, id string) (*model.Admin, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

type ContactUpdate struct {
	Status     *model.InquiryStatus
	AdminNotes *string
}

type ContactRepository interface {
	List(ctx context.Context) ([]model.ContactInquiry, error)
	Get(ctx context.Context, id string) (*model.ContactInquiry, error)
	Create(ctx context.Context, inquiry *model.ContactInquiry) error
	Update(ctx context.Context, id string, update ContactUpdate) (*model.ContactInquiry, error)
	Delete(ctx context.Context, id string) error
}

type CarouselUpdate struct {
	Title       *string
	Description *string
	Image       *string
	Link        *string
	Order       *int
	Active      *bool
}

type CarouselRepository interface {
	ListActive(ctx context.Context) ([]model.CarouselSlide, error)
	ListAll(ctx context.Context) ([]model.CarouselSlide, error)
	Create(ctx context.Context, slide *model.CarouselSlide) error
	Update(ctx context.Context, id string, update CarouselUpdate) (*model.CarouselSlide, error)
	Delete(ctx context.Context, id string) error
}

type MarqueeUpdate struct {
	Text   *string
	Order  *int
	Active *bool
}

type MarqueeRepository interface {
	ListActive(ctx context.Context) ([]model.MarqueeItem, error)
	ListAll(ctx context.Context) ([]model.MarqueeItem, error)
	Create(ctx context.Context, item *model.MarqueeItem) error
	Update(ctx context.Context, id string, update MarqueeUpdate) (*model.MarqueeItem, error)
	Delete(ctx context.Context, id string) error
}
