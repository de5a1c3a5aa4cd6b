package store

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go-store/internal/store/handlers"
	"go-store/internal/store/middleware"
	"go-store/pkg/logging"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration
}

type Server struct {
	logger     *logging.ZapLogger
	httpServer *http.Server
	cfg        Config
}

func NewServer(
	cfg Config,
	catalogService CatalogService,
	eligibilityService handlers.PurchaseEligibilityService,
	paymentService handlers.OrderPaymentService,
	randomNumberService handlers.RandomNumberService,
	logger *logging.ZapLogger,
) *Server {
	srv := &http.Server{
		Addr: cfg.ServerAddress,
		Handler: createMux(
			catalogService,
			eligibilityService,
			paymentService,
			randomNumberService,
			logger,
		),
	}

	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: srv,
	}
}

type CatalogService interface {
	handlers.ProductsGettingService
	handlers.CustomersGettingService
	handlers.OrdersGettingService
}

func (s *Server) Run() error {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server ListenAndServe failed: %w", err)
	}
	return nil
}

func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

func createMux(
	catalogService CatalogService,
	eligibilityService handlers.PurchaseEligibilityService,
	paymentService handlers.OrderPaymentService,
	randomNumberService handlers.RandomNumberService,
	logger *logging.ZapLogger,
) *chi.Mux {
	productsHandler := handlers.NewProductsGettingHandler(catalogService, logger)
	customersHandler := handlers.NewCustomersGettingHandler(catalogService, logger)
	ordersHandler := handlers.NewOrdersGettingHandler(catalogService, logger)
	eligibilityHandler := handlers.NewPurchaseEligibilityHandler(eligibilityService, logger)
	paymentHandler := handlers.NewOrderPaymentHandler(paymentService, logger)
	randomHandler := handlers.NewRandomNumberHandler(randomNumberService, logger)

	router := chi.NewRouter()

	router.Use(middleware.NewLoggerContext().CreateHandler)
	router.Use(middleware.NewPanicRecover(logger).CreateHandler)

	router.Route("/api", func(router chi.Router) {
		router.Get("/products", productsHandler.ServeHTTP)
		router.Get("/customers", customersHandler.ServeHTTP)
		router.Get("/customers/{customerID}/orders", ordersHandler.ServeHTTP)
		router.Get("/customers/{customerID}/can-purchase", eligibilityHandler.ServeHTTP)
		router.Post("/orders", paymentHandler.ServeHTTP)
		router.Get("/random", randomHandler.ServeHTTP)
	})

	return router
}
