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

	"budget-backend/internal/auth"
	"budget-backend/internal/cache"
	"budget-backend/internal/config"
	"budget-backend/internal/database"
	"budget-backend/internal/db"
	"budget-backend/internal/handlers"
	internalhttp "budget-backend/internal/http"
	"budget-backend/internal/middleware"
	"budget-backend/internal/repositories"
	"budget-backend/internal/services"
)

func main() {
	cfg := config.Load()

	pool := db.Connect(cfg)
	defer pool.Close()

	migrator := database.NewMigrator(pool)
	if err := migrator.RunMigrations(context.Background()); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	redisCache := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer redisCache.Close()

	jwtManager := auth.NewJWTManager(cfg)

	userRepo := repositories.NewUserRepository(pool)
	projectRepo := repositories.NewProjectRepository(pool)
	jobRepo := repositories.NewJobRepository(pool)
	itemRepo := repositories.NewItemRepository(pool)
	plEntryRepo := repositories.NewPlEntryRepository(pool)
	accountRepo := repositories.NewAccountRepository(pool)

	userService := services.NewUserService(userRepo, jwtManager)
	projectService := services.NewProjectService(projectRepo)
	jobService := services.NewJobService(jobRepo, projectRepo)
	itemService := services.NewItemService(itemRepo, jobRepo, redisCache)
	ledgerService := services.NewLedgerService(plEntryRepo, projectRepo)
	reportService, err := services.NewReportService(itemRepo, jobRepo, cfg.Reporting.StartMonth)
	if err != nil {
		log.Fatalf("report service init failed: %v", err)
	}

	h := &internalhttp.Handlers{
		Auth:    handlers.NewAuthHandler(userService),
		Project: handlers.NewProjectHandler(projectService),
		Job:     handlers.NewJobHandler(jobService),
		Item:    handlers.NewItemHandler(itemService),
		PlEntry: handlers.NewPlEntryHandler(ledgerService),
		Account: handlers.NewAccountHandler(accountRepo),
		Report:  handlers.NewReportHandler(reportService),
		Health:  handlers.NewHealthHandler(pool),
	}

	router := internalhttp.NewRouter(h, middleware.NewAuthMiddleware(jwtManager))
	handler := middleware.PanicRecovery(middleware.CORS(cfg, router))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on :%d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
