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

	"github.com/jhoicas/chatbot-admin-api/internal/application/auth"
	"github.com/jhoicas/chatbot-admin-api/internal/application/usecase"
	"github.com/jhoicas/chatbot-admin-api/internal/infrastructure/postgres"
	httpiface "github.com/jhoicas/chatbot-admin-api/internal/interfaces/http"
	"github.com/jhoicas/chatbot-admin-api/pkg/config"
	"github.com/jhoicas/chatbot-admin-api/pkg/logger"
)

// @title           Chatbot Admin API
// @version         1.0
// @description     Back-office administrativo del chatbot de soporte.
// @BasePath        /api
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	log.Info().Str("app", cfg.App.Name).Str("env", cfg.App.Env).Msg("iniciando servicio")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo conectar a la base de datos")
	}
	defer pool.Close()

	// Repositorios contra el pool (lecturas fuera de transacción)
	roleRepo := postgres.NewRoleRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	faqRepo := postgres.NewFAQRepository(pool)
	unansweredRepo := postgres.NewUnansweredQuestionRepository(pool)

	txRunner := postgres.NewTxRunner(pool)

	sessions := auth.NewMemorySessionStore()
	verifier := auth.NewCredentialVerifier(userRepo)
	authUC := auth.NewAuthUseCase(verifier, sessions, log)

	deps := httpiface.RouterDeps{
		Sessions:     sessions,
		AuthUC:       authUC,
		RoleUC:       usecase.NewRoleUseCase(roleRepo, txRunner, log),
		UserUC:       usecase.NewUserUseCase(userRepo, txRunner, log),
		ProductUC:    usecase.NewProductUseCase(productRepo, txRunner, log),
		OrderUC:      usecase.NewOrderUseCase(orderRepo, txRunner, log),
		FAQUC:        usecase.NewFAQUseCase(faqRepo, txRunner, log),
		UnansweredUC: usecase.NewUnansweredUseCase(unansweredRepo, txRunner, log),
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})

	app.Use(recover.New())
	app.Use(httpiface.RequestLogger(log))
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	httpiface.Router(app, deps)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("servidor detenido")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servicio")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error durante el apagado")
	}
}
