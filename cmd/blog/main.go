package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taha-arar/blog/internal/auth"
	"github.com/taha-arar/blog/internal/config"
	"github.com/taha-arar/blog/internal/repository"
	"github.com/taha-arar/blog/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := auth.DefaultLogger()

	if err := run(logger); err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(logger auth.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := repository.Connect(cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	if err := repository.InitSchema(ctx, db); err != nil {
		return err
	}

	users := repository.NewUsers(db)
	authors := repository.NewAuthors(db)
	articles := repository.NewArticles(db)

	if err := server.SeedSuperadmin(ctx, users, cfg.SuperadminEmail, cfg.SuperadminPassword, logger); err != nil {
		return err
	}

	app := server.New(server.Dependencies{
		Config:   cfg,
		Users:    users,
		Authors:  authors,
		Articles: articles,
		Logger:   logger,
	})

	errc := make(chan error, 1)
	go func() {
		errc <- app.Listen(cfg.HTTPAddr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errc:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
		return app.ShutdownWithTimeout(shutdownTimeout)
	}
}
