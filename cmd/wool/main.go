package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"github.com/EhsanulSakib/wool-e-commerce-backend/config"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/delivery"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/delivery/http"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/delivery/http/middleware"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/delivery/http/router/handler"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/infra/auth"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/infra/cache"
	logs "github.com/EhsanulSakib/wool-e-commerce-backend/internal/infra/log"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/infra/mail"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/infra/persistence/mongo"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/usecase/impl"
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
		mongo.New,
		cache.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongo.NewUserRepository,
			mongo.NewOrderRepository,
			mongo.NewDeliveryRepository,
			mongo.NewProductRepository,
			mongo.NewAttributeRepository,
			mongo.NewVariantRepository,
			mongo.NewReviewRepository,
			mongo.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			cache.NewTokenCache,
			mail.NewMailer,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewOrderService,
			impl.NewDeliveryService,
			impl.NewProductService,
			impl.NewAttributeService,
			impl.NewVariantService,
			impl.NewReviewService,
			impl.NewUserService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewOrderHandler,
			handler.NewDeliveryHandler,
			handler.NewProductHandler,
			handler.NewAttributeHandler,
			handler.NewVariantHandler,
			handler.NewReviewHandler,
			handler.NewUserHandler,
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
