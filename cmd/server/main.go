// HTTP service: storefront catalog, order status and the chat assistant.
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

	"go.uber.org/zap"

	"github.com/wassup1201/Simple-Agent/internal/adapters/openai"
	"github.com/wassup1201/Simple-Agent/internal/adapters/shopify"
	"github.com/wassup1201/Simple-Agent/internal/app/usecases"
	"github.com/wassup1201/Simple-Agent/internal/config"
	infrahttp "github.com/wassup1201/Simple-Agent/internal/infra/http"
	"github.com/wassup1201/Simple-Agent/internal/infra/mysql"
	"github.com/wassup1201/Simple-Agent/internal/logging"
	"github.com/wassup1201/Simple-Agent/internal/transport/rest"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("error %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.NewLogger(cfg.Log, cfg.TelegramBot)
	if err != nil {
		fmt.Printf("logger error %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Log("[env] OPENAI_API_KEY: " + config.MaskSecret(cfg.OpenAI.APIKey))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shopifyHTTP := infrahttp.NewClient(cfg.Shopify.Timeout)
	openaiHTTP := infrahttp.NewClient(cfg.OpenAI.Timeout)

	storefront := shopify.NewStorefrontClient(cfg.Shopify, shopifyHTTP, logger)
	admin := shopify.NewAdminClient(cfg.Shopify, shopifyHTTP, logger)
	orders := shopify.NewOrders(admin)
	completer := openai.NewClient(cfg.OpenAI, openaiHTTP, logger)

	var recorder usecases.TranscriptRecorder = usecases.NopRecorder{}
	if cfg.Mysql.Enabled() {
		db, err := mysql.New(ctx, cfg.Mysql)
		if err != nil {
			logger.LogError("transcript store disabled", err)
		} else {
			defer db.Close()
			store := mysql.NewTranscriptStore(db)
			if err := store.EnsureSchema(ctx); err != nil {
				logger.LogError("transcript schema", err)
			} else {
				recorder = store
				logger.LogSuccess("transcript store ready", zap.String("database", cfg.Mysql.Database))
			}
		}
	}

	handler := rest.NewHandler(
		cfg.Shopify,
		shopify.NewCatalog(storefront),
		usecases.NewOrderStatus(orders),
		usecases.NewChat(orders, cfg.Shopify.AdminReady(), completer, recorder, logger),
		logger,
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           rest.NewRouter(ctx, handler, cfg.Server, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.LogError("shutdown", err)
		}
	}()

	logger.Log(fmt.Sprintf("Simple agent listening on :%d", cfg.Server.Port))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.LogError("server stopped", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	logger.Log("server stopped")
}
