// Command clinic runs the clinical records HTTP service.
package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"clinic/config"
	"clinic/internal/delivery"
	deliveryhttp "clinic/internal/delivery/http"
	"clinic/internal/delivery/http/middleware"
	"clinic/internal/delivery/http/router"
	"clinic/internal/delivery/http/router/handler"
	"clinic/internal/domain/lifecycle"
	"clinic/internal/infra/auth"
	"clinic/internal/infra/log"
	"clinic/internal/infra/persistence/postgres"
	"clinic/internal/usecase/impl"
)

const defaultConfigPath = "config/config.yaml"

func main() {
	app := fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(startServer),
	)
	app.Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(func() (*config.Config, error) {
			configPath := os.Getenv("CONFIG_PATH")
			if configPath == "" {
				configPath = defaultConfigPath
			}
			return config.LoadWithEnv[config.Config](configPath)
		}),
		fx.Provide(log.NewLogger),
		fx.Provide(func(cfg *config.Config, logger *slog.Logger, lc fx.Lifecycle) (*gorm.DB, error) {
			db, cancel, err := postgres.NewDB(cfg, logger)
			if err != nil {
				return nil, err
			}
			lc.Append(fx.Hook{
				OnStart: func(context.Context) error {
					return postgres.Migrate(db)
				},
				OnStop: func(context.Context) error {
					cancel()
					sqlDB, err := db.DB()
					if err != nil {
						return err
					}
					return sqlDB.Close()
				},
			})
			return db, nil
		}),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(postgres.NewUserRepository),
		fx.Provide(postgres.NewCredentialRepository),
		fx.Provide(postgres.NewRefreshTokenRepository),
		fx.Provide(postgres.NewLocationRepository),
		fx.Provide(postgres.NewPatientRepository),
		fx.Provide(postgres.NewHeartRateRepository),
		fx.Provide(postgres.NewTransactionManager),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(auth.NewBcryptHasher),
		fx.Provide(auth.NewJWTService),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(impl.NewUserService),
		fx.Provide(impl.NewLocationService),
		fx.Provide(impl.NewPatientService),
		fx.Provide(impl.NewHeartRateService),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(handler.NewUserHandler),
		fx.Provide(handler.NewLocationHandler),
		fx.Provide(handler.NewPatientHandler),
		fx.Provide(handler.NewHeartRateHandler),
		fx.Provide(handler.NewHealthHandler),
		fx.Provide(middleware.NewAuthMiddleware),
		fx.Provide(func(
			user *handler.UserHandler,
			location *handler.LocationHandler,
			patient *handler.PatientHandler,
			heartRate *handler.HeartRateHandler,
			health *handler.HealthHandler,
		) router.Handlers {
			return router.Handlers{
				User:      user,
				Location:  location,
				Patient:   patient,
				HeartRate: heartRate,
				Health:    health,
			}
		}),
	)
}

func injectDelivery() fx.Option {
	return fx.Provide(deliveryhttp.NewServer)
}

func startServer(lc fx.Lifecycle, server delivery.Delivery, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := server.Serve(context.Background()); err != nil {
					logger.Error("server stopped", slog.Any("error", err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}
