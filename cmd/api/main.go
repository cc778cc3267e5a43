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

	"github.com/jhoicas/Banca-api/internal/application/auth"
	"github.com/jhoicas/Banca-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Banca-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Banca-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Banca-api/internal/interfaces/http"
	"github.com/jhoicas/Banca-api/pkg/config"
	"github.com/jhoicas/Banca-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	if cfg.DB.AutoMigrate {
		if err := postgres.RunMigrations(ctx, cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones de esquema")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	gateway := postgres.NewSPGateway(pool)

	authUC := auth.NewAuthUseCase(usuarioRepo, gateway,
		auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
		auth.BloqueoConfig{
			MaxIntentos: cfg.Auth.MaxIntentos,
			Ventana:     cfg.Auth.Ventana(),
		},
	)
	registroUC := usecase.NewRegistroUseCase(gateway)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo, gateway)
	cuentaUC := usecase.NewCuentaUseCase(gateway)

	constanciaPDF := infrapdf.NewMarotoConstanciaGenerator(cfg.App.Name)
	embargoUC := usecase.NewEmbargoUseCase(gateway, constanciaPDF)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Banca API",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Bienvenido a la API del sistema bancario"})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		RegistroUC: registroUC,
		UsuarioUC:  usuarioUC,
		CuentaUC:   cuentaUC,
		EmbargoUC:  embargoUC,
		JWTSecret:  cfg.JWT.Secret,
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
