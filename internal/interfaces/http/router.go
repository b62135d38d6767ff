package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jalveda/ops-api/internal/application/auth"
	"github.com/jalveda/ops-api/internal/application/catalog"
	"github.com/jalveda/ops-api/internal/application/letters"
	"github.com/jalveda/ops-api/internal/application/logistics"
	"github.com/jalveda/ops-api/internal/application/payroll"
	apppricing "github.com/jalveda/ops-api/internal/application/pricing"
	"github.com/jalveda/ops-api/internal/application/rules"
	"github.com/jalveda/ops-api/internal/application/scan"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CatalogUC   *catalog.CatalogUseCase
	RulesUC     *rules.RulesUseCase
	LogisticsUC *logistics.LogisticsUseCase
	QuoteEngine *apppricing.CalculateOrderPAndLUseCase
	ScanUC      *scan.ScanUseCase
	PayrollUC   *payroll.PayrollUseCase
	LettersUC   *letters.LettersUseCase
	JWTSecret   string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Consumer scan verdict (public, posted by the QR landing page)
	scanHandler := NewScanHandler(deps.ScanUC)
	api.Post("/scan", scanHandler.RecordScan)

	// Protected routes (require Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catalog: products, cost components, prices (admin or sales)
	products := protected.Group("/products", RequireRole("admin", "sales"))
	productHandler := NewProductHandler(deps.CatalogUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/components", productHandler.AddComponent)
	products.Get("/:id/components", productHandler.ListComponents)
	products.Post("/:id/prices", productHandler.SetPrice)
	products.Get("/:id/prices", productHandler.ListPrices)

	components := protected.Group("/components", RequireRole("admin", "sales"))
	components.Put("/:componentId", productHandler.UpdateComponent)
	components.Delete("/:componentId", productHandler.DeleteComponent)

	// Business rules and delivery slabs (admin)
	rulesHandler := NewRulesHandler(deps.RulesUC)
	rulesGroup := protected.Group("/rules", RequireRole("admin"))
	rulesGroup.Put("/", rulesHandler.UpsertRule)
	rulesGroup.Get("/", rulesHandler.ListRules)
	rulesGroup.Delete("/:id", rulesHandler.DeleteRule)

	slabs := protected.Group("/delivery-slabs", RequireRole("admin"))
	slabs.Post("/", rulesHandler.CreateSlab)
	slabs.Get("/", rulesHandler.ListSlabs)
	slabs.Delete("/:id", rulesHandler.DeleteSlab)

	// Logistics: distributors and pincodes (admin or ops)
	logisticsHandler := NewLogisticsHandler(deps.LogisticsUC)
	distributors := protected.Group("/distributors", RequireRole("admin", "ops"))
	distributors.Post("/", logisticsHandler.CreateDistributor)
	distributors.Get("/", logisticsHandler.ListDistributors)
	distributors.Put("/:id", logisticsHandler.UpdateDistributor)
	distributors.Delete("/:id", logisticsHandler.DeleteDistributor)

	pincodes := protected.Group("/pincodes", RequireRole("admin", "ops", "sales"))
	pincodes.Post("/mappings", logisticsHandler.MapPincode)
	pincodes.Delete("/mappings/:id", logisticsHandler.UnmapPincode)
	pincodes.Put("/geo", logisticsHandler.SetPincodeGeo)
	pincodes.Get("/:pincode/serviceability", logisticsHandler.Serviceability)

	// Order profitability quote (any authenticated role)
	quoteHandler := NewQuoteHandler(deps.QuoteEngine)
	protected.Post("/orders/quote", quoteHandler.Quote)

	// QR batches and scan stats (admin or ops)
	scanAdmin := protected.Group("/scan", RequireRole("admin", "ops"))
	scanAdmin.Post("/codes", scanHandler.GenerateCodes)
	scanAdmin.Get("/stats", scanHandler.Stats)

	// Payroll (admin or hr)
	payrollHandler := NewPayrollHandler(deps.PayrollUC)
	employees := protected.Group("/employees", RequireRole("admin", "hr"))
	employees.Post("/", payrollHandler.CreateEmployee)
	employees.Get("/", payrollHandler.ListEmployees)
	employees.Put("/:id", payrollHandler.UpdateEmployee)

	payrollGroup := protected.Group("/payroll", RequireRole("admin", "hr"))
	payrollGroup.Post("/runs", payrollHandler.RunMonth)
	payrollGroup.Get("/runs", payrollHandler.ListMonth)

	// PDF letters: offer letters for HR, quote letters for sales
	lettersHandler := NewLettersHandler(deps.LettersUC)
	lettersGroup := protected.Group("/letters")
	lettersGroup.Post("/offer", RequireRole("admin", "hr"), lettersHandler.OfferLetter)
	lettersGroup.Post("/quote", RequireRole("admin", "sales"), lettersHandler.QuoteLetter)
}
