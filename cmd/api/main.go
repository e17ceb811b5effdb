package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/sm-customers/internal/application/credentials"
	"github.com/jhoicas/sm-customers/internal/application/dto"
	"github.com/jhoicas/sm-customers/internal/application/usecase"
	"github.com/jhoicas/sm-customers/internal/domain/repository"
	"github.com/jhoicas/sm-customers/internal/infrastructure/jobs"
	"github.com/jhoicas/sm-customers/internal/infrastructure/memory"
	"github.com/jhoicas/sm-customers/internal/infrastructure/mongodb"
	"github.com/jhoicas/sm-customers/internal/infrastructure/notification"
	"github.com/jhoicas/sm-customers/internal/infrastructure/postgres"
	"github.com/jhoicas/sm-customers/internal/infrastructure/security"
	httpRouter "github.com/jhoicas/sm-customers/internal/interfaces/http"
	"github.com/jhoicas/sm-customers/pkg/config"
	"github.com/jhoicas/sm-customers/pkg/logger"
)

// stores repositorios del driver elegido y la función que libera sus conexiones.
type stores struct {
	companies repository.CompanyRepository
	users     repository.UserRepository
	close     func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Str("notifier", cfg.Notifier.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("store", cfg.Store.Driver).Msg("conexión al almacén")
	}
	defer st.close()

	hasher, err := security.NewBcryptHasher(cfg.Security.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración de bcrypt")
	}
	creds := credentials.NewProvisioner(hasher, security.RandomTokenGenerator{}, credentials.Config{
		ActivationKeyLength: cfg.Security.ActivationKeyLength,
		PasswordExpiry:      cfg.Security.PasswordExpiry(),
	}, nil)

	notifier, err := notification.New(cfg.Notifier, log)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración de notificaciones")
	}
	var dispatcher *usecase.Dispatcher
	if notifier != nil {
		dispatcher = usecase.NewDispatcher(notifier, cfg.Notifier.Timeout, log.Component("dispatcher"))
	}

	companyUC := usecase.NewCompanyUseCase(st.companies, st.users, creds, dispatcher, log)
	userUC := usecase.NewUserUseCase(st.users, creds, dispatcher, log)
	reconciliationUC := usecase.NewReconciliationUseCase(st.companies, st.users, log)

	if cfg.Superuser.Enabled {
		bootstrapUC := usecase.NewBootstrapUseCase(st.users, creds, log)
		if _, err := bootstrapUC.EnsureSuperuser(ctx, usecase.SuperuserConfig{
			Username:  cfg.Superuser.Username,
			Password:  cfg.Superuser.Password,
			FirstName: cfg.Superuser.FirstName,
			LastName:  cfg.Superuser.LastName,
			Email:     cfg.Superuser.Email,
		}); err != nil {
			log.Fatal().Err(err).Msg("creación del superusuario")
		}
	}

	scheduler, err := jobs.NewScheduler(time.Minute, log)
	if err != nil {
		log.Fatal().Err(err).Msg("scheduler")
	}
	if err := scheduler.ScheduleReconciliation(cfg.ReconcileInterval, reconciliationUC); err != nil {
		log.Fatal().Err(err).Msg("programar reconciliación")
	}
	scheduler.Start()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.SwaggerFile,
			Path:     "docs",
			Title:    "sm-customers API",
		}))
	} else {
		log.Warn().Str("file", cfg.SwaggerFile).Msg("swagger.json no encontrado, /docs desactivado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC: companyUC,
		UserUC:    userUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if err := scheduler.Stop(); err != nil {
		log.Error().Err(err).Msg("apagado del scheduler")
	}
	dispatcher.Wait()
	if notifier != nil {
		if err := notifier.Close(); err != nil {
			log.Error().Err(err).Msg("cierre del notificador")
		}
	}

	log.Info().Msg("aplicación detenida")
}

// openStores conecta el almacén configurado en STORE_DRIVER.
func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (*stores, error) {
	switch cfg.Store.Driver {
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		return &stores{
			companies: postgres.NewCompanyRepository(pool),
			users:     postgres.NewUserRepository(pool),
			close:     pool.Close,
		}, nil

	case config.StoreMemory:
		log.Warn().Msg("almacén en memoria: los datos se pierden al reiniciar")
		return &stores{
			companies: memory.NewCompanyRepo(),
			users:     memory.NewUserRepo(),
			close:     func() {},
		}, nil

	default:
		client, db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			return nil, err
		}
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		return &stores{
			companies: mongodb.NewCompanyRepo(db),
			users:     mongodb.NewUserRepo(db),
			close: func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := client.Disconnect(ctx); err != nil {
					log.Error().Err(err).Msg("desconexión de MongoDB")
				}
			},
		}, nil
	}
}
