package main

import (
	"log"
	"strings"

	"fuelstation-backend/internal/admin"
	"fuelstation-backend/internal/audit"
	"fuelstation-backend/internal/auth"
	"fuelstation-backend/internal/cashanalysis"
	"fuelstation-backend/internal/config"
	"fuelstation-backend/internal/dashboard"
	"fuelstation-backend/internal/database"
	"fuelstation-backend/internal/expense"
	"fuelstation-backend/internal/httpx"
	"fuelstation-backend/internal/importer"
	"fuelstation-backend/internal/jobs"
	"fuelstation-backend/internal/models"
	"fuelstation-backend/internal/reconcile"
	"fuelstation-backend/internal/shift"
	"fuelstation-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[WARN] no .env file loaded:", err)
	}

	cfg := config.Load()
	config.SetLogLevel(cfg.LogLevel)
	logger := config.GetLogger()

	database.Init(cfg)
	st := store.New(database.DB)

	prices, err := config.LoadPriceTable(cfg.PriceTablePath)
	if err != nil {
		logger.WithError(err).Fatal("price table could not be loaded")
	}
	policy, err := reconcile.ParseExpensePolicy(cfg.ExpensePolicy)
	if err != nil {
		logger.WithError(err).Fatal("invalid EXPENSE_POLICY")
	}

	adminSvc := admin.NewService(st)
	shiftSvc := shift.NewService(shift.NewRepository(st), prices)
	expenseSvc := expense.NewService(expense.NewRepository(st))
	cashSvc := cashanalysis.NewService(st)
	dashSvc := dashboard.NewService(st, policy, cfg.Location)
	importSvc := importer.NewService(importer.NewRepository(st), prices)

	digest := jobs.NewDigest(dashSvc, logger)
	scheduler, err := jobs.StartDigest(cfg, digest)
	if err != nil {
		logger.WithError(err).Fatal("daily digest could not be scheduled")
	}
	if scheduler != nil {
		defer scheduler.Stop()
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: httpx.ErrorHandler,
		BodyLimit:    10 * 1024 * 1024,
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-manager", auth.RegisterManagerHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))
	manager := auth.RequireRole(models.RoleManager)

	protected.Get("/auth/me", auth.MeHandler())

	// Branches and attendants
	protected.Get("/branches", admin.ListBranchesHandler(adminSvc))
	protected.Post("/branches", manager, admin.CreateBranchHandler(adminSvc))
	protected.Get("/branches/:id", admin.GetBranchHandler(adminSvc))
	protected.Put("/branches/:id", manager, admin.UpdateBranchHandler(adminSvc))
	protected.Get("/branches/:id/attendants", admin.ListAttendantsHandler(adminSvc))
	protected.Post("/branches/:id/attendants", admin.CreateAttendantHandler(adminSvc))

	// Shifts and meter entries
	protected.Post("/shifts/open", shift.OpenShiftHandler(shiftSvc))
	protected.Get("/shifts/active", shift.ActiveShiftHandler(shiftSvc))
	protected.Post("/shifts/:id/close", shift.CloseShiftHandler(shiftSvc))
	protected.Post("/shifts/:id/sign-off", manager, shift.SignOffShiftHandler(shiftSvc))
	protected.Get("/shifts/:id/data", shift.ListShiftDataHandler(shiftSvc))
	protected.Post("/shift-data", shift.CreateShiftDataHandler(shiftSvc))

	// Expenses
	protected.Post("/expenses", expense.CreateExpenseHandler(expenseSvc))
	protected.Get("/expenses/pending", expense.ListPendingExpensesHandler(expenseSvc))
	protected.Post("/expenses/:id/approve", manager, expense.ApproveExpenseHandler(expenseSvc))
	protected.Post("/expenses/:id/reject", manager, expense.RejectExpenseHandler(expenseSvc))

	// Cash analysis
	protected.Post("/cash-analysis", cashanalysis.CreateCashAnalysisHandler(cashSvc))
	protected.Get("/cash-analysis/reconcile", cashanalysis.ReconcileHandler(cashSvc))

	// Dashboard
	protected.Get("/dashboard/overview", dashboard.OverviewHandler(dashSvc))
	protected.Get("/dashboard/trend", dashboard.TrendHandler(dashSvc, cfg.TrendDefaultDays))

	// Bulk import
	protected.Post("/imports/preview", importer.PreviewHandler(importSvc))
	protected.Post("/imports/apply", manager, importer.ApplyHandler(importSvc))

	// Audit trail
	protected.Get("/audit-logs", audit.ListAuditLogsHandler(st))

	logger.WithField("port", cfg.HTTPPort).Info("server starting")
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
