package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Amritpal5039/Tazzabazzar-adminpanel/internal/analytics"
	"github.com/Amritpal5039/Tazzabazzar-adminpanel/internal/catalog"
	"github.com/Amritpal5039/Tazzabazzar-adminpanel/internal/config"
	"github.com/Amritpal5039/Tazzabazzar-adminpanel/internal/order"
	"github.com/Amritpal5039/Tazzabazzar-adminpanel/internal/session"

	_ "github.com/Amritpal5039/Tazzabazzar-adminpanel/docs"
)

// @title        Tazzabazzar Admin API
// @version      1.0
// @description  Admin panel backend for the Tazzabazzar grocery delivery service.
// @BasePath     /
func main() {
	log := newLogger()
	defer func() { _ = log.Sync() }()

	cfg := config.Load(log)

	now := time.Now()
	products, categories := catalog.Fixtures(now)
	catalogStore := catalog.NewStore(products, categories)
	orderStore := order.NewStore(order.Fixtures(now))
	reports := analytics.NewService(orderStore, catalogStore)

	sessions, err := session.NewManager(
		session.NewFileStore(cfg.SessionFile),
		session.Credentials{Phone: cfg.AdminPhone, Password: cfg.AdminPassword},
		session.User{UID: "demo-admin-123", PhoneNumber: cfg.AdminPhone, DisplayName: "Admin User", Role: "admin"},
		log,
	)
	if err != nil {
		log.Fatal("session manager init", zap.Error(err))
	}
	sessions.Load(context.Background())

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: newRouter(catalogStore, orderStore, reports, sessions, log),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("admin-service listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}

func newLogger() *zap.Logger {
	if os.Getenv("ENV") == "development" {
		log, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		return log
	}
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return log
}
