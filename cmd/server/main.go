package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"mindtriage/config"
	"mindtriage/internal/registry"
	"mindtriage/internal/service"
	"mindtriage/internal/transport/rest"
	"mindtriage/internal/transport/ws"
)

func main() {
	log.Println("started")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()

	// A misconfigured functional scale must never serve traffic
	if err := cfg.Bands.Validate(); err != nil {
		log.Fatal("Invalid functional bands: ", err)
	}

	// Build the rule registry once; any malformed rule refuses startup
	var reg *registry.Registry
	var err error
	if cfg.BankPath != "" {
		reg, err = registry.LoadBank(cfg.BankPath)
		log.Printf("Question bank: %s", cfg.BankPath)
	} else {
		reg, err = registry.DefaultBank()
		log.Println("Question bank: built-in defaults (BANK_PATH not set)")
	}
	if err != nil {
		log.Fatal("Failed to build rule registry: ", err)
	}
	log.Printf("Rule registry: %d questions, %d rules", len(reg.Questions()), len(reg.Rules()))

	if cfg.Referral.IsEnabled() {
		log.Printf("Referral collaborator: %s (timeout %dms)", cfg.Referral.BaseURL, cfg.Referral.TimeoutMS)
	} else {
		log.Println("Referral collaborator: NOT SET (referrals skipped)")
	}

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize services
	sessionSvc := service.NewSessionService(cfg.JWTSecret)
	triageSvc := service.NewTriageService(reg)
	conditionSvc := service.NewConditionService(reg)
	riskSvc := service.NewRiskService(cfg.Bands)
	referralClient := service.NewReferralClient(cfg.Referral)
	screeningSvc := service.NewScreeningService(triageSvc, conditionSvc, riskSvc, referralClient)

	// Inject notifier (wsHub implements service.EscalationNotifier)
	screeningSvc.SetNotifier(wsHub)

	// Create router with container
	container := &rest.Container{
		SessionService:   sessionSvc,
		ScreeningService: screeningSvc,
		WSHub:            wsHub,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/sessions")
		log.Println("  POST /v1/screenings/answers")
		log.Println("  POST /v1/screenings/evaluate")
		log.Println("  WS   /v1/ws/escalations")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
