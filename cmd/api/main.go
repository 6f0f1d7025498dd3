package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	_ "usersapi/docs"
	"usersapi/internal/config"
	"usersapi/internal/db"
	httpapi "usersapi/internal/http"
	"usersapi/internal/http/handlers"
	"usersapi/internal/ws"
)

// @title       Users API
// @version     1.0
// @description CRUD over a PostgreSQL users table, with change events over WebSocket.
// @BasePath    /
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	cfg := config.Load()

	gdb, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalw("database", "err", err)
	}

	hub := ws.NewHub()
	users := handlers.NewUsersHandler(gdb, hub, log)
	health := handlers.NewHealthHandler(gdb)
	router := httpapi.NewRouter(users, health, hub, cfg.CORSOrigins, log)

	srv := &http.Server{Addr: cfg.BindAddr, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infow("listening", "addr", cfg.BindAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	})
	if err := g.Wait(); err != nil {
		log.Fatalw("server", "err", err)
	}
}
