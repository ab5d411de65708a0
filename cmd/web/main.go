package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"shop-api/api/handlers"
	"shop-api/internal/config"
	"shop-api/internal/store"
)

var log *logrus.Logger

func init() {
	log = logrus.New()
	log.Formatter = &logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "severity",
			logrus.FieldKeyMsg:   "message",
		},
		TimestampFormat: time.RFC3339Nano,
	}
	log.Out = os.Stdout
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.SetLevel(cfg.LogLevel)

	// Stores share one lock so item deletion and its propagation into
	// cart lines stay atomic.
	catalog := store.NewCatalog()
	carts := store.NewCarts(catalog)

	itemHandler := handlers.NewItemHandler(catalog, log)
	cartHandler := handlers.NewCartHandler(carts, log)

	router := setupRouter(cfg, itemHandler, cartHandler)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infof("Shop API listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server shutdown complete")
}

func setupRouter(cfg config.Config, itemHandler *handlers.ItemHandler, cartHandler *handlers.CartHandler) *gin.Engine {
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(handlers.RequestLogger(log))

	item := router.Group("/item")
	{
		item.POST("", itemHandler.CreateItem)
		item.GET("", itemHandler.ListItems)
		item.GET("/:id", itemHandler.GetItem)
		item.PUT("/:id", itemHandler.ReplaceItem)
		item.PATCH("/:id", itemHandler.PatchItem)
		item.DELETE("/:id", itemHandler.DeleteItem)
	}

	cart := router.Group("/cart")
	{
		cart.POST("", cartHandler.CreateCart)
		cart.GET("", cartHandler.ListCarts)
		cart.GET("/:id", cartHandler.GetCart)
		cart.POST("/:cart_id/add/:item_id", cartHandler.AddItem)
	}

	router.GET("/health", handlers.HealthCheck)

	return router
}
