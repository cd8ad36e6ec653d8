package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/northwestmeats/storefront/internal/api"
	"github.com/northwestmeats/storefront/internal/api/handler"
	"github.com/northwestmeats/storefront/internal/api/router"
	"github.com/northwestmeats/storefront/internal/appcontext"
	"github.com/northwestmeats/storefront/internal/config"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "storefront").Logger()

	app, err := appcontext.NewApplicationContext(config.GetConfig(), logger)
	if err != nil {
		log.Fatal(err)
		return
	}

	server := api.NewServer(
		handler.NewProductHandler(app.ProductService),
		handler.NewOrderHandler(app.OrderService),
		handler.NewAdminHandler(app.AdminService),
		handler.NewAnalyticsHandler(app.AnalyticsService),
		handler.NewContactHandler(app.ContactService),
		handler.NewCarouselHandler(app.CarouselService),
		handler.NewMarqueeHandler(app.MarqueeService),
	)

	r := router.SetupRouter(server, app.TokenMaker, app.Cf, &logger)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", app.Cf.ServerPort),
		Handler: r,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	shutdownCompleted := make(chan struct{}, 1)
	go func() {
		<-sigChan
		log.Println("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}

		if err := app.Shutdown(shutdownCtx); err != nil {
			log.Printf("Application shutdown error: %v", err)
		}

		shutdownCompleted <- struct{}{}
	}()

	log.Printf("Server starting on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal(err)
	}
	<-shutdownCompleted
	log.Printf("closed completed")
}
