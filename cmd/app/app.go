package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"matchday/internal/api"
	"matchday/internal/catalog"
	"matchday/internal/config"
	"matchday/internal/logger"
	"matchday/internal/repository"
	"matchday/internal/repository/dao"
	"matchday/internal/service"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cat := catalog.NewLoader(conf.Catalog).Load(ctx)

	snapshotDAO := dao.NewSnapshotDAO(conf.Storage.Path)
	repo := repository.NewSessionRepository(snapshotDAO)
	session := service.NewSession(cat, repo)
	if err = session.Restore(ctx); err != nil {
		return fmt.Errorf("failed to restore the session -> %w", err)
	}

	s := api.NewServer(conf, session)

	addr := ":" + s.Config.API.Port
	srv := &http.Server{
		Addr:    addr,
		Handler: s.Router,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info(fmt.Sprintf("starting server at %v", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err = <-errCh:
		return fmt.Errorf("failed to start the server -> %w", err)
	case <-ctx.Done():
	}

	// Graceful shutdown: stop accepting requests, then persist the
	// session so nothing sold this run is lost.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("server shutdown failed", zap.Error(err))
	}

	if err = session.Save(shutdownCtx); err != nil {
		return fmt.Errorf("failed to save the session -> %w", err)
	}

	zap.L().Info("session saved, goodbye")
	return nil
}
