package main

import (
	"context"
	"log/slog"
	"os"

	"tiffin/config"
	"tiffin/internal/delivery"
	"tiffin/internal/delivery/http"
	"tiffin/internal/delivery/http/router/handler"
	"tiffin/internal/domain/service"
	logs "tiffin/internal/infra/log"
	"tiffin/internal/infra/remote"
	"tiffin/internal/infra/store"
	"tiffin/internal/infra/token"
	"tiffin/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectGateway(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		token.NewJWTCodec,
		newTokenStore,
		remote.NewClient,
	)
}

// newTokenStore places the durable token under the configured state
// directory.
func newTokenStore(cfg *config.Config) service.TokenStore {
	return store.NewFileStore(cfg.Session.StorePath)
}

func injectGateway() fx.Option {
	return fx.Options(
		fx.Provide(
			remote.NewAuthGateway,
			remote.NewCatalogGateway,
			remote.NewOrderGateway,
			remote.NewContactGateway,
			remote.NewFeedbackGateway,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewCatalogService,
			impl.NewCheckoutService,
			impl.NewBoardService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewListingHandler,
			handler.NewCheckoutHandler,
			handler.NewBoardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
