package cmd

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"overstay/internal/components"
	"overstay/internal/config"
)

func Run() error {
	cfg, err := config.Load()
	if err != nil {
		components.SetupLogger("local").Error("load config failed", "err", err)
		return err
	}
	logger := components.SetupLogger(cfg.Env)

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	comps, err := components.InitComponents(appCtx, cfg, logger)
	if err != nil {
		logger.Error("could not init components", "err", err)
		return err
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	serverErr := make(chan error, 1)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := comps.HttpServer.Run(ctx); err != nil {
			logger.Error("http server failed", "err", err)
			serverErr <- err
		}
		logger.Info("http server stopped")
	}()

	quitChan := make(chan os.Signal, 1)
	signal.Notify(quitChan, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-quitChan:
		logger.Info("captured signal, initiating shutdown", "signal", sig.String())
	case runErr = <-serverErr:
	}

	stop()

	wg.Wait()

	logger.Info("shutting down the services...")
	comps.ShutdownAll()
	cancel()
	logger.Info("gracefully shutting down the servers")

	return runErr
}
