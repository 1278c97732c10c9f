package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/mini-erp/internal/application/auth"
	"github.com/tu-usuario/mini-erp/internal/application/usecase"
	"github.com/tu-usuario/mini-erp/internal/infrastructure/mongodb"
	httpRouter "github.com/tu-usuario/mini-erp/internal/interfaces/http"
	"github.com/tu-usuario/mini-erp/pkg/config"
	"github.com/tu-usuario/mini-erp/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	client, err := mongodb.NewClient(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("cliente MongoDB")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Error().Err(err).Msg("desconectar MongoDB")
		}
	}()

	// Ping de arranque: si el store está caído el proceso arranca igual.
	// Los endpoints de negocio responderán 503 y /test reporta el estado degradado.
	pingCtx, cancelPing := context.WithTimeout(ctx, cfg.Mongo.Timeout())
	if err := mongodb.Ping(pingCtx, client); err != nil {
		log.Warn().Err(err).Msg("MongoDB no responde; el servidor arranca en modo degradado")
	} else {
		log.Info().Str("database", cfg.Mongo.Database).Msg("conexión a MongoDB verificada")
	}
	cancelPing()

	db := client.Database(cfg.Mongo.Database)
	store := mongodb.NewStore(db)
	accountRepo := mongodb.NewAccountRepository(db)

	companyUC := usecase.NewCompanyUseCase(store)
	moduleUC := usecase.NewModuleUseCase(store)
	accountUC := usecase.NewAccountUseCase(accountRepo)
	diagUC := usecase.NewDiagnosticsUseCase(store, usecase.EnvInfo{
		DatabaseURLSet:  os.Getenv("DATABASE_URL") != "",
		DatabaseNameSet: os.Getenv("DATABASE_NAME") != "",
	})
	authUC := auth.NewAuthUseCase(accountRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// CORS permisivo: cualquier origen y header; los métodos quedan en el
	// default de Fiber, que ya incluye el set completo.
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "*",
	}))

	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Mini-ERP API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC: companyUC,
		ModuleUC:  moduleUC,
		AccountUC: accountUC,
		DiagUC:    diagUC,
		AuthUC:    authUC,
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

	log.Info().Msg("aplicación detenida")
}
