package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/claimmate/claimmate/internal/channel"
	"github.com/claimmate/claimmate/internal/channel/adapters/line"
	"github.com/claimmate/claimmate/internal/channel/adapters/telegram"
	"github.com/claimmate/claimmate/internal/claims"
	"github.com/claimmate/claimmate/internal/config"
	"github.com/claimmate/claimmate/internal/dialog"
	"github.com/claimmate/claimmate/internal/handlers"
	"github.com/claimmate/claimmate/internal/logger"
	"github.com/claimmate/claimmate/internal/server"
	"github.com/claimmate/claimmate/internal/storage/localfs"
	"github.com/claimmate/claimmate/internal/version"
)

func runServe() {
	fx.New(
		fx.Provide(
			provideConfig,
			provideLogger,
			claims.NewStore,
			provideFileStore,
			provideClaimsService,
			dialog.NewService,
			provideLineAdapter,
			provideTelegramAdapter,
			provideChannelRegistry,
			provideServerHandler(handlers.NewPingHandler),
			provideServerHandler(provideAuthHandler),
			provideServerHandler(handlers.NewUploadHandler),
			provideServerHandler(handlers.NewClaimsHandler),
			provideServerHandler(handlers.NewProgressHandler),
			provideServerHandler(provideSupportHandler),
			provideServerHandler(provideLineWebhookHandler),
			provideServerHandler(provideTelegramWebhookHandler),
			provideServer,
		),
		fx.Invoke(
			startServer,
		),
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log.With(slog.String("component", "fx"))}
		}),
	).Run()
}

func provideServerHandler(fn any) any {
	return fx.Annotate(
		fn,
		fx.As(new(server.Handler)),
		fx.ResultTags(`group:"server_handlers"`),
	)
}

func provideConfig() (config.Config, error) {
	cfgPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func provideLogger(cfg config.Config) *slog.Logger {
	return logger.New(cfg.Log.Level, cfg.Log.Format)
}

func provideFileStore(cfg config.Config) (*localfs.Storage, error) {
	return localfs.New(cfg.Storage.UploadDir)
}

func provideClaimsService(log *slog.Logger, store *claims.Store, files *localfs.Storage) *claims.Service {
	return claims.NewService(log, store, files)
}

func provideLineAdapter(log *slog.Logger, cfg config.Config) (*line.Adapter, error) {
	return line.NewAdapter(log, cfg.Line)
}

func provideTelegramAdapter(log *slog.Logger, cfg config.Config) *telegram.Adapter {
	return telegram.NewAdapter(log, cfg.Telegram)
}

func provideChannelRegistry(lineAdapter *line.Adapter, telegramAdapter *telegram.Adapter) (*channel.Registry, error) {
	registry := channel.NewRegistry()
	if err := registry.Register(lineAdapter); err != nil {
		return nil, err
	}
	if err := registry.Register(telegramAdapter); err != nil {
		return nil, err
	}
	return registry, nil
}

func provideAuthHandler(log *slog.Logger, cfg config.Config) *handlers.AuthHandler {
	return handlers.NewAuthHandler(log, cfg.Admin, cfg.Auth)
}

func provideSupportHandler(cfg config.Config) *handlers.SupportHandler {
	return handlers.NewSupportHandler(cfg.Support)
}

func provideLineWebhookHandler(log *slog.Logger, adapter *line.Adapter, dialogService *dialog.Service) *line.WebhookHandler {
	return line.NewWebhookHandler(log, adapter, dialogService)
}

func provideTelegramWebhookHandler(log *slog.Logger, adapter *telegram.Adapter, dialogService *dialog.Service) *telegram.WebhookHandler {
	return telegram.NewWebhookHandler(log, adapter, dialogService)
}

type serverParams struct {
	fx.In
	Logger         *slog.Logger
	Config         config.Config
	ServerHandlers []server.Handler `group:"server_handlers"`
}

func provideServer(params serverParams) *server.Server {
	return server.NewServer(params.Logger, params.Config.Server.Addr, params.Config.Auth.JWTSecret, params.ServerHandlers)
}

func startServer(lc fx.Lifecycle, log *slog.Logger, srv *server.Server, shutdowner fx.Shutdowner, registry *channel.Registry) {
	fmt.Printf("Starting ClaimMate %s\n", version.Version)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("channels registered", slog.Any("types", registry.Types()))
			go func() {
				if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server failed", slog.Any("error", err))
					_ = shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := srv.Stop(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server stop: %w", err)
			}
			return nil
		},
	})
}
