package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vamm99/moterplace/internal/actions"
	"github.com/vamm99/moterplace/internal/api/handlers"
	"github.com/vamm99/moterplace/internal/api/middleware"
	"github.com/vamm99/moterplace/internal/backend"
	"github.com/vamm99/moterplace/internal/config"
	"github.com/vamm99/moterplace/internal/health"
	"github.com/vamm99/moterplace/internal/metrics"
	"github.com/vamm99/moterplace/internal/session"
	"github.com/vamm99/moterplace/internal/store"
	"github.com/vamm99/moterplace/internal/telemetry"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing (no-op unless enabled)
	shutdownTelemetry, err := telemetry.Setup(context.Background(), cfg)
	if err != nil {
		slog.Error("Error initializing telemetry", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Redis setup: durable store for carts and wishlists
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisConnect.Addr,
		Username: cfg.RedisConnect.Username,
		Password: cfg.RedisConnect.Password,
		DB:       cfg.RedisConnect.DB,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		slog.Error("Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	stateStore := store.NewRedisStore(redisClient)

	// Backend API client and session bridge
	apiClient := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	sessions := session.NewManager(cfg.Cookies.MaxAge, cfg.Cookies.Secure || cfg.IsProduction())

	// Actions
	authActions := actions.NewAuthActions(apiClient, sessions)
	productActions := actions.NewProductActions(apiClient, cfg.SortLocale)
	reviewActions := actions.NewReviewActions(apiClient)
	checkoutActions := actions.NewCheckoutActions(apiClient)
	orderActions := actions.NewOrderActions(apiClient)

	// Handlers
	authHandler := handlers.NewAuthHandler(authActions, sessions)
	productHandler := handlers.NewProductHandler(productActions)
	reviewHandler := handlers.NewReviewHandler(reviewActions, sessions)
	cartHandler := handlers.NewCartHandler(stateStore, productActions)
	wishlistHandler := handlers.NewWishlistHandler(stateStore, productActions)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutActions, sessions)
	orderHandler := handlers.NewOrderHandler(orderActions, sessions)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("Error initializing health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storefront initialized",
		slog.String("env", cfg.Env),
		slog.String("backend", cfg.Backend.BaseURL))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /api/v1/auth/login", authHandler.Login())
	routerMux.HandleFunc("POST /api/v1/auth/register", authHandler.Register())
	routerMux.HandleFunc("POST /api/v1/auth/register-seller", authHandler.RegisterSeller())
	routerMux.HandleFunc("POST /api/v1/auth/logout", authHandler.Logout())
	routerMux.HandleFunc("GET /api/v1/auth/me", authHandler.Me())
	routerMux.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/categories", productHandler.ListCategories())
	routerMux.HandleFunc("GET /api/v1/products/{id}/reviews", reviewHandler.ListReviews())
	routerMux.HandleFunc("POST /api/v1/products/{id}/reviews", reviewHandler.CreateReview())
	routerMux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	routerMux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem())
	routerMux.HandleFunc("PUT /api/v1/cart/items/{id}", cartHandler.UpdateQuantity())
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{id}", cartHandler.RemoveItem())
	routerMux.HandleFunc("DELETE /api/v1/cart", cartHandler.ClearCart())
	routerMux.HandleFunc("GET /api/v1/wishlist", wishlistHandler.GetWishlist())
	routerMux.HandleFunc("POST /api/v1/wishlist/items", wishlistHandler.AddItem())
	routerMux.HandleFunc("DELETE /api/v1/wishlist/items/{id}", wishlistHandler.RemoveItem())
	routerMux.HandleFunc("DELETE /api/v1/wishlist", wishlistHandler.ClearWishlist())
	routerMux.HandleFunc("POST /api/v1/checkout", checkoutHandler.ProcessCheckout())
	routerMux.HandleFunc("GET /api/v1/orders", orderHandler.ListOrders())
	routerMux.HandleFunc("GET /api/v1/payments", orderHandler.ListPayments())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Visitor(cfg.Cookies.Secure || cfg.IsProduction())(handler)
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTelemetry(shutdownCtx); err != nil {
		slog.Error("Telemetry shutdown encountered an issue", slog.String("error", err.Error()))
	}
}
