package main

import (
	"context"
	"log/slog"
	"os"

	"feira/config"
	"feira/internal/delivery"
	"feira/internal/delivery/api"
	"feira/internal/delivery/api/middleware"
	"feira/internal/delivery/api/router/handler"
	"feira/internal/infra/auth"
	logs "feira/internal/infra/log"
	"feira/internal/infra/persistence/postgres"
	"feira/internal/infra/pubsub"
	"feira/internal/infra/qrcode"
	"feira/internal/infra/storage"
	"feira/internal/usecase/impl"

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
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewSupplierRepository,
			postgres.NewAddressRepository,
			postgres.NewStallRepository,
			postgres.NewProductRepository,
			postgres.NewSearchLogRepository,
			postgres.NewChatRepository,
			postgres.NewMessageRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			pubsub.NewEventPublisher,
			storage.NewImageStorage,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewAuthService,
			impl.NewSupplierService,
			impl.NewAddressService,
			impl.NewStallService,
			impl.NewProductService,
			impl.NewSearchService,
			impl.NewReportService,
			impl.NewMessageService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewSupplierHandler,
			handler.NewStallHandler,
			handler.NewAddressHandler,
			handler.NewProductHandler,
			handler.NewSearchHandler,
			handler.NewChatHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
