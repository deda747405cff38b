package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/s91capital/Investor-Backoffice-Backend/internal/api"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/config"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/database"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/repository"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply schema migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Create repositories
	investorRepo := repository.NewInvestorRepository(db)
	investmentRepo := repository.NewInvestmentRepository(db)
	entryRepo := repository.NewWaitingPeriodRepository(db)
	returnRepo := repository.NewMonthlyReturnRepository(db)
	tradingRepo := repository.NewTradingRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	agreementRepo := repository.NewAgreementRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	auditService := service.NewAuditService(auditRepo)
	capitalService := service.NewCapitalService(investmentRepo, entryRepo)
	waitingPeriodService := service.NewWaitingPeriodService(
		entryRepo,
		investorRepo,
		capitalService,
		auditService,
	)
	investorService := service.NewInvestorService(investorRepo, auditService)
	investmentService := service.NewInvestmentService(investmentRepo, investorRepo, auditService)
	returnService := service.NewReturnService(returnRepo, investorRepo, capitalService, auditService)
	tradingService := service.NewTradingService(tradingRepo, auditService)
	expenseService := service.NewExpenseService(expenseRepo)
	agreementService := service.NewAgreementService(agreementRepo, investorRepo, auditService)
	dashboardService := service.NewDashboardService(
		investorRepo,
		investmentRepo,
		entryRepo,
		returnRepo,
		tradingRepo,
		expenseRepo,
	)
	sweepService := service.NewSweepService(investorRepo)

	// Create router
	router := api.NewRouter(api.Services{
		System:        systemService,
		Sweep:         sweepService,
		Investor:      investorService,
		Investment:    investmentService,
		WaitingPeriod: waitingPeriodService,
		Capital:       capitalService,
		Return:        returnService,
		Dashboard:     dashboardService,
		Trading:       tradingService,
		Expense:       expenseService,
		Agreement:     agreementService,
		Audit:         auditService,
	}, cfg)

	// Schedule the maturation sweep
	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.Sweep.Schedule, func() {
		result, err := sweepService.Run(time.Now())
		if err != nil {
			log.Printf("Maturation sweep failed: %v", err)
			return
		}
		log.Printf("Maturation sweep transitioned %d investor(s)", result.TransitionedCount)
	})
	if err != nil {
		log.Fatalf("Failed to schedule maturation sweep: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
