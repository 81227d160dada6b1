package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lguibr/duelpong/bollywood"
	"github.com/lguibr/duelpong/game"
	"github.com/lguibr/duelpong/server"
	"github.com/lguibr/duelpong/utils"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := utils.LoadEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := utils.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	engine := bollywood.NewEngine(logger)

	broadcasterPID, err := engine.Spawn(bollywood.NewProps(game.NewBroadcasterProducer(logger)))
	if err != nil {
		return fmt.Errorf("spawn broadcaster: %w", err)
	}
	matchPID, err := engine.Spawn(bollywood.NewProps(game.NewMatchActorProducer(game.MatchActorArgs{
		Config:      cfg,
		Rand:        game.NewRand(time.Now().UnixNano()),
		Broadcaster: broadcasterPID,
		Logger:      logger,
	})))
	if err != nil {
		return fmt.Errorf("spawn match: %w", err)
	}

	srv := server.New(engine, matchPID, broadcasterPID, logger)
	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.ListenAddr), zap.Int("fps", cfg.FrameRate))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-errCh:
		if err != nil {
			engine.Shutdown(2 * time.Second)
			return fmt.Errorf("http server: %w", err)
		}
	}

	// Stopping the broadcaster closes the websockets so hijacked handlers return.
	engine.Shutdown(2 * time.Second)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown", zap.Error(err))
	}
	return nil
}
