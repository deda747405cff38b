package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/s91capital/Investor-Backoffice-Backend/internal/api/handlers"
	custommiddleware "github.com/s91capital/Investor-Backoffice-Backend/internal/api/middleware"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/config"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/service"
)

// Services bundles the service dependencies the router wires into handlers.
type Services struct {
	System        *service.SystemService
	Sweep         *service.SweepService
	Investor      *service.InvestorService
	Investment    *service.InvestmentService
	WaitingPeriod *service.WaitingPeriodService
	Capital       *service.CapitalService
	Return        *service.ReturnService
	Dashboard     *service.DashboardService
	Trading       *service.TradingService
	Expense       *service.ExpenseService
	Agreement     *service.AgreementService
	Audit         *service.AuditService
}

// NewRouter creates and configures the HTTP router
func NewRouter(services Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(services.System, services.Sweep)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)

			// Sweep trigger for external schedulers; token-protected.
			r.Group(func(r chi.Router) {
				r.Use(custommiddleware.NewAPIKey(cfg.Sweep.Key))
				r.Post("/waiting-period-sweep", systemHandler.RunSweep)
			})
		})

		r.Route("/investor", func(r chi.Router) {
			investorHandler := handlers.NewInvestorHandler(services.Investor, services.Investment)
			waitingPeriodHandler := handlers.NewWaitingPeriodHandler(services.WaitingPeriod, services.Capital)
			returnHandler := handlers.NewReturnHandler(services.Return)
			agreementHandler := handlers.NewAgreementHandler(services.Agreement)

			r.Get("/", investorHandler.Investors)
			r.Post("/", investorHandler.CreateInvestor)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", investorHandler.GetInvestor)
				r.Put("/", investorHandler.UpdateInvestor)
				r.Delete("/", investorHandler.DeleteInvestor)
				r.Put("/status", investorHandler.UpdateInvestorStatus)
				r.Get("/investments", investorHandler.InvestorInvestments)
				r.Get("/waiting-period", waitingPeriodHandler.InvestorEntries)
				r.Get("/remaining-capital", waitingPeriodHandler.InvestorRemainingCapital)
				r.Get("/returns", returnHandler.InvestorReturns)
				r.Get("/agreements", agreementHandler.InvestorAgreements)
			})
		})

		r.Route("/investment", func(r chi.Router) {
			investorHandler := handlers.NewInvestorHandler(services.Investor, services.Investment)
			r.Post("/", investorHandler.CreateInvestment)
		})

		r.Route("/waiting-period", func(r chi.Router) {
			waitingPeriodHandler := handlers.NewWaitingPeriodHandler(services.WaitingPeriod, services.Capital)
			r.Post("/", waitingPeriodHandler.InitializeReturn)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Post("/deliver", waitingPeriodHandler.MarkDelivered)
			})
		})

		r.Route("/return", func(r chi.Router) {
			returnHandler := handlers.NewReturnHandler(services.Return)
			r.Get("/", returnHandler.AllReturns)
			r.Post("/", returnHandler.CreateReturn)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Put("/status", returnHandler.UpdateReturnStatus)
			})
		})

		r.Route("/dashboard", func(r chi.Router) {
			dashboardHandler := handlers.NewDashboardHandler(services.Dashboard)
			r.Get("/", dashboardHandler.Dashboard)
		})

		r.Route("/trading", func(r chi.Router) {
			tradingHandler := handlers.NewTradingHandler(services.Trading)

			r.Route("/account", func(r chi.Router) {
				r.Get("/", tradingHandler.Accounts)
				r.Post("/", tradingHandler.CreateAccount)

				r.Route("/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.Put("/", tradingHandler.UpdateAccount)
					r.Delete("/", tradingHandler.DeleteAccount)
					r.Get("/pnl", tradingHandler.AccountPnL)
				})
			})

			r.Route("/pnl", func(r chi.Router) {
				r.Get("/", tradingHandler.AllPnL)
				r.Post("/", tradingHandler.CreatePnL)

				r.Route("/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.Put("/", tradingHandler.UpdatePnL)
					r.Delete("/", tradingHandler.DeletePnL)
				})
			})
		})

		r.Route("/expense", func(r chi.Router) {
			expenseHandler := handlers.NewExpenseHandler(services.Expense)
			r.Get("/", expenseHandler.Expenses)
			r.Post("/", expenseHandler.CreateExpense)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Put("/", expenseHandler.UpdateExpense)
				r.Delete("/", expenseHandler.DeleteExpense)
			})
		})

		r.Route("/agreement", func(r chi.Router) {
			agreementHandler := handlers.NewAgreementHandler(services.Agreement)
			r.Get("/", agreementHandler.Agreements)
			r.Post("/", agreementHandler.CreateAgreement)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Delete("/", agreementHandler.DeleteAgreement)
			})
		})

		r.Route("/audit", func(r chi.Router) {
			auditHandler := handlers.NewAuditHandler(services.Audit)
			r.Get("/", auditHandler.Logs)
		})
	})

	return r
}
