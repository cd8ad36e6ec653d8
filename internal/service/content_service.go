package service

import (
	"context"
	"errors"
	"reflect"

	"github.com/northwestmeats/storefront/internal/apperr"
	"github.com/northwestmeats/storefront/internal/infra/repository"
	"github.com/northwestmeats/storefront/internal/model"
)

type CreateSlideParams struct {
	Title       string
	Description string
	Image       string
	Link        string
	Order       *int
	Active      *bool
}

// ICarouselService manages homepage hero slides. ListActive is the public
// read path; everything else is admin-only.
type ICarouselService interface {
	ListActive(ctx context.Context) ([]model.CarouselSlide, error)
	ListAll(ctx context.Context) ([]model.CarouselSlide, error)
	Create(ctx context.Context, params CreateSlideParams) (*model.CarouselSlide, error)
	Update(ctx context.Context, id string, update repository.CarouselUpdate) (*model.CarouselSlide, error)
	Delete(ctx context.Context, id string) error
}

type CarouselService struct {
	slides repository.CarouselRepository
}

func NewCarouselService(slides repository.CarouselRepository) ICarouselService {
	if reflect.ValueOf(slides).IsNil() {
		panic("carousel service initialization failed: slides cannot be nil")
	}
	return &CarouselService{slides: slides}
}

func (s *CarouselService) ListActive(ctx context.Context) ([]model.CarouselSlide, error) {
	slides, err := s.slides.ListActive(ctx)
	if err != nil {
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return slides, nil
}

func (s *CarouselService) ListAll(ctx context.Context) ([]model.CarouselSlide, error) {
	slides, err := s.slides.ListAll(ctx)
	if err != nil {
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return slides, nil
}

func (s *CarouselService) Create(ctx context.Context, params CreateSlideParams) (*model.CarouselSlide, error) {
	if params.Title == "" || params.Image == "" {
		return nil, apperr.New(apperr.BadRequestCode, "title and image are required")
	}

	slide := &model.CarouselSlide{
		Title:       params.Title,
		Description: params.Description,
		Image:       params.Image,
		Link:        params.Link,
		Active:      true,
	}
	if params.Order != nil {
		slide.Order = *params.Order
	}
	if params.Active != nil {
		slide.Active = *params.Active
	}

	if err := s.slides.Create(ctx, slide); err != nil {
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return slide, nil
}

func (s *CarouselService) Update(ctx context.Context, id string, update repository.CarouselUpdate) (*model.CarouselSlide, error) {
	slide, err := s.slides.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.NotFoundCode, "carousel slide not found")
		}
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return slide, nil
}

func (s *CarouselService) Delete(ctx context.Context, id string) error {
	if err := s.slides.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.New(apperr.NotFoundCode, "carousel slide not found")
		}
		return apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return nil
}

type CreateMarqueeParams struct {
	Text   string
	Order  *int
	Active *bool
}

type IMarqueeService interface {
	ListActive(ctx context.Context) ([]model.MarqueeItem, error)
	ListAll(ctx context.Context) ([]model.MarqueeItem, error)
	Create(ctx context.Context, params CreateMarqueeParams) (*model.MarqueeItem, error)
	Update(ctx context.Context, id string, update repository.MarqueeUpdate) (*model.MarqueeItem, error)
	Delete(ctx context.Context, id string) error
}

type MarqueeService struct {
	items repository.MarqueeRepository
}

func NewMarqueeService(items repository.MarqueeRepository) IMarqueeService {
	if reflect.ValueOf(items).IsNil() {
		panic("marquee service initialization failed: items cannot be nil")
	}
	return &MarqueeService{items: items}
}

func (s *MarqueeService) ListActive(ctx context.Context) ([]model.MarqueeItem, error) {
	items, err := s.items.ListActive(ctx)
	if err != nil {
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return items, nil
}

func (s *MarqueeService) ListAll(ctx context.Context) ([]model.MarqueeItem, error) {
	items, err := s.items.ListAll(ctx)
	if err != nil {
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return items, nil
}

func (s *MarqueeService) Create(ctx context.Context, params CreateMarqueeParams) (*model.MarqueeItem, error) {
	if params.Text == "" {
		return nil, apperr.New(apperr.BadRequestCode, "text is required")
	}

	item := &model.MarqueeItem{
		Text:   params.Text,
		Active: true,
	}
	if params.Order != nil {
		item.Order = *params.Order
	}
	if params.Active != nil {
		item.Active = *params.Active
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return item, nil
}

func (s *MarqueeService) Update(ctx context.Context, id string, update repository.MarqueeUpdate) (*model.MarqueeItem, error) {
	item, err := s.items.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.NotFoundCode, "marquee item not found")
		}
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return item, nil
}

func (s *MarqueeService) Delete(ctx context.Context, id string) error {
	if err := s.items.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.New(apperr.NotFoundCode, "marquee item not found")
		}
		return apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return nil
}
