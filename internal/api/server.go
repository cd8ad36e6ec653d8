package api

import "github.com/northwestmeats/storefront/internal/api/handler"

type Server struct {
	ProductHandler   *handler.ProductHandler
	OrderHandler     *handler.OrderHandler
	AdminHandler     *handler.AdminHandler
	AnalyticsHandler *handler.AnalyticsHandler
	ContactHandler   *handler.ContactHandler
	CarouselHandler  *handler.CarouselHandler
	MarqueeHandler   *handler.MarqueeHandler
}

func NewServer(
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	adminHandler *handler.AdminHandler,
	analyticsHandler *handler.AnalyticsHandler,
	contactHandler *handler.ContactHandler,
	carouselHandler *handler.CarouselHandler,
	marqueeHandler *handler.MarqueeHandler,
) *Server {
	return &Server{
		ProductHandler:   productHandler,
		OrderHandler:     orderHandler,
		AdminHandler:     adminHandler,
		AnalyticsHandler: analyticsHandler,
		ContactHandler:   contactHandler,
		CarouselHandler:  carouselHandler,
		MarqueeHandler:   marqueeHandler,
	}
}
