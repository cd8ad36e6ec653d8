package appcontext

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/rs/zerolog"

	"github.com/northwestmeats/storefront/internal/config"
	"github.com/northwestmeats/storefront/internal/infra/mail"
	"github.com/northwestmeats/storefront/internal/infra/repository/mongodb"
	"github.com/northwestmeats/storefront/internal/infra/token"
	"github.com/northwestmeats/storefront/internal/service"
)

type ApplicationContext struct {
	Cf         *config.Config
	Logger     zerolog.Logger
	Store      *mongodb.Store
	TokenMaker token.Maker
	MailSender mail.EmailSender

	NotificationService service.INotificationService
	ProductService      service.IProductService
	OrderService        service.IOrderService
	AdminService        service.IAdminService
	AnalyticsService    service.IAnalyticsService
	ContactService      service.IContactService
	CarouselService     service.ICarouselService
	MarqueeService      service.IMarqueeService
}

func NewApplicationContext(cf *config.Config, logger zerolog.Logger) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf:     cf,
		Logger: logger,
	}

	err := app.Init()
	if err != nil {
		return nil, err
	}

	return &app, nil
}

func (app *ApplicationContext) Init() error {
	err := app.setUpStore()
	if err != nil {
		return err
	}

	err = app.setUpTokenMaker()
	if err != nil {
		return err
	}

	app.setUpMailSender()
	app.setUpServices()

	return nil
}

func (app *ApplicationContext) setUpStore() error {
	log.Printf("Start setup mongodb store")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := mongodb.Connect(ctx, app.Cf.MongoURI, app.Cf.MongoDatabase)
	if err != nil {
		return fmt.Errorf("connect mongodb: %w", err)
	}

	if err := store.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	app.Store = store
	log.Printf("Finish setup mongodb store")
	return nil
}

func (app *ApplicationContext) setUpTokenMaker() error {
	log.Printf("Start setup token maker")
	tokenMaker, err := token.NewJWTMaker(app.Cf.TokenSecretKey)
	if err != nil {
		return fmt.Errorf("create token maker: %w", err)
	}

	app.TokenMaker = tokenMaker
	log.Printf("Finish setup token maker")
	return nil
}

func (app *ApplicationContext) setUpMailSender() {
	log.Printf("Start setup mail sender")
	app.MailSender = mail.NewGmailSender(app.Cf.EmailSenderName, app.Cf.EmailSenderAddress, app.Cf.EmailSenderPassword)
	log.Printf("Finish setup mail sender")
}

func (app *ApplicationContext) setUpServices() {
	log.Printf("Start setup services")

	app.NotificationService = service.NewNotificationService(app.MailSender, app.Cf.AdminNotifyEmail, app.Logger)
	app.ProductService = service.NewProductService(app.Store.Products())
	app.OrderService = service.NewOrderService(app.Store.Orders(), app.Store.Products(), app.NotificationService, app.Logger)
	app.AdminService = service.NewAdminService(app.Store.Admins(), app.TokenMaker)
	app.AnalyticsService = service.NewAnalyticsService(app.Store.Orders())
	app.ContactService = service.NewContactService(app.Store.Contacts(), app.NotificationService)
	app.CarouselService = service.NewCarouselService(app.Store.Carousels())
	app.MarqueeService = service.NewMarqueeService(app.Store.Marquees())

	log.Printf("Finish setup services")
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	log.Printf("Start application shutdown")

	done := make(chan error)
	go func() {
		defer close(done)

		if app.Store != nil {
			log.Printf("Closing mongodb connection...")
			if err := app.Store.Close(ctx); err != nil {
				log.Printf("mongodb close error: %v", err)
			}
		}

		log.Printf("Application shutdown complete")
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %v", ctx.Err())
	}
}
