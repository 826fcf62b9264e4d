package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GregMSThompson/userdata-api/internal/bootstrap"
	"github.com/GregMSThompson/userdata-api/internal/config"
	"github.com/GregMSThompson/userdata-api/internal/graph"
	"github.com/GregMSThompson/userdata-api/internal/handlers"
	"github.com/GregMSThompson/userdata-api/internal/response"
	"github.com/GregMSThompson/userdata-api/internal/router"
	"github.com/GregMSThompson/userdata-api/internal/services"
	"github.com/GregMSThompson/userdata-api/internal/store"
)

const shutdownTimeout = 10 * time.Second

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func newUserStore(cfg *config.Config, bs *bootstrap.Bootstrap) store.UserStore {
	switch cfg.StoreDriver {
	case config.DriverFirestore:
		return store.NewFirestoreUserStore(bs.Firestore)
	case config.DriverMemory:
		bs.Log.Warn("using in-memory user store; data is lost on restart")
		return store.NewMemoryUserStore()
	default:
		return store.NewMongoUserStore(bs.Mongo)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	ustore := newUserStore(cfg, bs)

	// services
	userv := services.NewUserService(ustore, cfg.ReadFailurePolicy)

	// response handler
	rh := response.New(bs.Log)

	// dependencies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.Resolver = graph.NewResolver(userv)

	// router
	r := router.NewRouter(deps, cfg.GraphQLPath)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		bs.Log.Info("server listening", "addr", srv.Addr, "graphql_path", cfg.GraphQLPath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			bs.Log.Error("server start failed", "error", err)
			return
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		bs.Log.Error("graceful shutdown failed", "error", err)
	}
	bs.Log.Info("server stopped")
}
