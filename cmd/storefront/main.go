package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/api/handler"
	"github.com/RoyceAzure/lab/storefront/internal/api/router"
	"github.com/RoyceAzure/lab/storefront/internal/catalog"
	"github.com/RoyceAzure/lab/storefront/internal/config"
	"github.com/RoyceAzure/lab/storefront/internal/store"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

func main() {
	cf, err := config.Load()
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("failed to load config")
	}

	level, err := zerolog.ParseLevel(cf.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	// stores 在程式啟動時建立一次，之後只以指標傳遞
	cat := catalog.Default()
	cartStore := store.NewCartStore(logger)
	favoritesStore := store.NewFavoritesStore(logger)
	orderStore := store.NewOrderStore(cf.ProcessingDuration(), cf.ShippedDuration(), logger)
	defer orderStore.Close()

	server := api.NewServer(
		handler.NewCatalogHandler(cat, favoritesStore),
		handler.NewCartHandler(cat, cartStore, favoritesStore),
		handler.NewFavoritesHandler(cat, favoritesStore),
		handler.NewOrderHandler(cartStore, orderStore, logger),
	)

	httpServer := &http.Server{
		Addr:    ":" + cf.ServerPort,
		Handler: router.SetupRouter(server, &logger),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("port", cf.ServerPort).Msg("storefront listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("server stopped with error")
	}
	logger.Info().Msg("storefront stopped")
}
