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

	"github.com/jalveda/ops-api/internal/application/auth"
	"github.com/jalveda/ops-api/internal/application/catalog"
	"github.com/jalveda/ops-api/internal/application/letters"
	"github.com/jalveda/ops-api/internal/application/logistics"
	"github.com/jalveda/ops-api/internal/application/payroll"
	apppricing "github.com/jalveda/ops-api/internal/application/pricing"
	"github.com/jalveda/ops-api/internal/application/rules"
	"github.com/jalveda/ops-api/internal/application/scan"
	infrapdf "github.com/jalveda/ops-api/internal/infrastructure/pdf"
	"github.com/jalveda/ops-api/internal/infrastructure/postgres"
	infraredis "github.com/jalveda/ops-api/internal/infrastructure/redis"
	httpRouter "github.com/jalveda/ops-api/internal/interfaces/http"
	"github.com/jalveda/ops-api/pkg/config"
	"github.com/jalveda/ops-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	redisClient, err := infraredis.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("Redis connection")
	}
	defer redisClient.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	componentRepo := postgres.NewCostComponentRepository(pool)
	priceRepo := postgres.NewPriceConfigRepository(pool)
	ruleRepo := postgres.NewBusinessRuleRepository(pool)
	slabRepo := postgres.NewDeliveryFeeSlabRepository(pool)
	distributorRepo := postgres.NewDistributorRepository(pool)
	mappingRepo := postgres.NewPincodeMappingRepository(pool)
	geoRepo := postgres.NewPincodeGeoRepository(pool)
	scanRepo := postgres.NewScanRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	catalogUC := catalog.NewCatalogUseCase(productRepo, componentRepo, priceRepo)
	rulesUC := rules.NewRulesUseCase(ruleRepo, slabRepo)
	logisticsUC := logistics.NewLogisticsUseCase(distributorRepo, mappingRepo, geoRepo)
	quoteEngine := apppricing.NewCalculateOrderPAndLUseCase(
		productRepo, componentRepo, ruleRepo, mappingRepo, geoRepo, priceRepo, slabRepo,
	)
	claimStore := infraredis.NewClaimStore(redisClient)
	scanUC := scan.NewScanUseCase(scanRepo, claimStore)
	payrollUC := payroll.NewPayrollUseCase(employeeRepo, postgres.NewPayrollRepository(pool), txRunner)

	letterGenerator := infrapdf.NewMarotoLetterGenerator()
	lettersUC := letters.NewLettersUseCase(quoteEngine, letterGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Jalveda Ops API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CatalogUC:   catalogUC,
		RulesUC:     rulesUC,
		LogisticsUC: logisticsUC,
		QuoteEngine: quoteEngine,
		ScanUC:      scanUC,
		PayrollUC:   payrollUC,
		LettersUC:   lettersUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
