package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/database"
	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/repository"
	"portfolio-backend/internal/router"
	"portfolio-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting Portfolio Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Connect MongoDB ────
	db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("✗ MongoDB connection failed: %v", err)
	}
	defer db.Close()
	log.Println("✓ MongoDB connected")

	// ──── Initialize Repositories ────
	projectRepo := repository.NewProjectRepo(db)
	courseworkRepo := repository.NewCourseworkRepo(db)
	contactRepo := repository.NewContactRepo(db)
	visitorRepo := repository.NewVisitorRepo(db)
	resumeRepo := repository.NewResumeRepo(db)

	// ──── Initialize Services ────
	adminPolicy := services.NewEmailAdminPolicy(cfg.AdminEmail)
	emailService := services.NewEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.AdminEmail)
	trackingService := services.NewTrackingService(visitorRepo)

	// ──── Initialize Handlers ────
	respond := handlers.NewResponder(cfg.Env)
	projectHandler := handlers.NewProjectHandler(projectRepo, respond)
	courseworkHandler := handlers.NewCourseworkHandler(courseworkRepo, adminPolicy, respond)
	contactHandler := handlers.NewContactHandler(contactRepo, emailService, adminPolicy, respond, cfg.ContactDelivery)
	resumeHandler := handlers.NewResumeHandler(resumeRepo, adminPolicy, respond)
	visitorHandler := handlers.NewVisitorHandler(trackingService, adminPolicy, respond)

	// ──── Start HTTP Server ────
	r := router.New(
		projectHandler,
		courseworkHandler,
		contactHandler,
		resumeHandler,
		visitorHandler,
		trackingService,
		respond,
		cfg.FrontendURL,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Portfolio Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
