package router

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/northwestmeats/storefront/internal/api"
	m "github.com/northwestmeats/storefront/internal/api/middleware"
	"github.com/northwestmeats/storefront/internal/config"
	"github.com/northwestmeats/storefront/internal/infra/token"
)

func SetupRouter(server *api.Server, tokenMaker token.Maker, cf *config.Config, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(m.RequestIDMiddleware)
	r.Use(chimiddleware.RealIP)
	r.Use(m.AuthPayloadMiddleware(tokenMaker))
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins(cf.CORSAllowedOrigins),
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Requested-With"},
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("North West Meats API - Server is ready!"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", server.ProductHandler.List)
			r.Get("/{id}", server.ProductHandler.Get)
			r.With(m.AuthMiddleware).Post("/", server.ProductHandler.Create)
			r.With(m.AuthMiddleware).Put("/{id}", server.ProductHandler.Update)
			r.With(m.AuthMiddleware).Delete("/{id}", server.ProductHandler.Delete)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", server.OrderHandler.Create)
			r.With(m.AuthMiddleware).Get("/", server.OrderHandler.List)
			r.With(m.AuthMiddleware).Get("/{id}", server.OrderHandler.Get)
			r.With(m.AuthMiddleware).Put("/{id}", server.OrderHandler.UpdateStatus)
			r.With(m.AuthMiddleware).Delete("/{id}", server.OrderHandler.Delete)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/register", server.AdminHandler.Register)
			r.Post("/login", server.AdminHandler.Login)
			r.With(m.AuthMiddleware).Get("/profile", server.AdminHandler.Profile)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Use(m.AuthMiddleware)
			r.Get("/", server.AnalyticsHandler.Overview)
			r.Get("/product/{id}", server.AnalyticsHandler.ProductAnalytics)
		})

		r.Route("/contact", func(r chi.Router) {
			r.Post("/", server.ContactHandler.Submit)
			r.With(m.AuthMiddleware).Get("/", server.ContactHandler.List)
			r.With(m.AuthMiddleware).Put("/{id}", server.ContactHandler.Update)
			r.With(m.AuthMiddleware).Delete("/{id}", server.ContactHandler.Delete)
		})

		r.Route("/carousel", func(r chi.Router) {
			r.Get("/active", server.CarouselHandler.ListActive)
			r.With(m.AuthMiddleware).Get("/", server.CarouselHandler.ListAll)
			r.With(m.AuthMiddleware).Post("/", server.CarouselHandler.Create)
			r.With(m.AuthMiddleware).Put("/{id}", server.CarouselHandler.Update)
			r.With(m.AuthMiddleware).Delete("/{id}", server.CarouselHandler.Delete)
		})

		r.Route("/marquee", func(r chi.Router) {
			r.Get("/active", server.MarqueeHandler.ListActive)
			r.With(m.AuthMiddleware).Get("/", server.MarqueeHandler.ListAll)
			r.With(m.AuthMiddleware).Post("/", server.MarqueeHandler.Create)
			r.With(m.AuthMiddleware).Put("/{id}", server.MarqueeHandler.Update)
			r.With(m.AuthMiddleware).Delete("/{id}", server.MarqueeHandler.Delete)
		})
	})

	return r
}

func allowedOrigins(raw string) []string {
	if raw == "" {
		return []string{"*"}
	}
	origins := strings.Split(raw, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return origins
}
