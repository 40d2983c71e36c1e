package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/destinity-erp/internal/application/auth"
	"github.com/jhoicas/destinity-erp/internal/application/usecase"
	"github.com/jhoicas/destinity-erp/internal/infrastructure/mongodb"
	infrapdf "github.com/jhoicas/destinity-erp/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/destinity-erp/internal/interfaces/http"
	"github.com/jhoicas/destinity-erp/pkg/config"
	"github.com/jhoicas/destinity-erp/pkg/logger"
	"github.com/jhoicas/destinity-erp/pkg/password"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	client, db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("cierre de MongoDB")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Warn().Err(err).Msg("no se pudieron crear los índices")
	}

	repoLog := log.Named("mongodb")
	userRepo := mongodb.NewUserRepository(db, repoLog)
	productRepo := mongodb.NewProductRepository(db, repoLog)
	saleRepo := mongodb.NewSaleRepository(db, repoLog)

	hasher := password.NewHasher(cfg.Bcrypt.Cost)
	receipts := infrapdf.NewReceiptGenerator(cfg.App.Name)

	userUC := usecase.NewUserUseCase(userRepo, hasher, usecase.WithLogger(log))
	productUC := usecase.NewProductUseCase(productRepo, usecase.WithLogger(log))
	saleUC := usecase.NewSaleUseCase(saleRepo, receipts, usecase.WithLogger(log))
	authUC := auth.NewAuthUseCase(userRepo, hasher, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)

	metrics := httpRouter.NewMetrics("destinity_erp")

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders: strings.Join([]string{
			httpRouter.HeaderTotalCount, httpRouter.HeaderPage, httpRouter.HeaderPageSize,
		}, ", "),
	}))
	app.Use(metrics.Middleware())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs (solo si se generó docs/swagger.json)
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    cfg.App.Name + " API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger deshabilitado: no existe el archivo")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		UserUC:       userUC,
		ProductUC:    productUC,
		SaleUC:       saleUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
		AuthRequired: cfg.HTTP.AuthRequired,
		DB:           mongodb.NewPinger(client),
		Metrics:      metrics,
		Logger:       log,
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
