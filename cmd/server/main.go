package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"realestate_crud/internal/api"
	"realestate_crud/internal/app/service"
	"realestate_crud/internal/common/security"
	"realestate_crud/internal/domain/repository"
	"realestate_crud/internal/platform/cache"
	"realestate_crud/internal/platform/config"
	"realestate_crud/internal/platform/database"
	"syscall"
	"time"
)

func main() {
	// 1. Load Configuration
	config.Load()
	fmt.Println("Configuration loaded.")

	// 2. Initialize JWT
	security.InitJWT()
	fmt.Println("JWT initialized.")

	// 3. Initialize Database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	defer db.Close()
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Could not run migrations: %v", err)
	}
	fmt.Println("Database connected.")

	// 4. Initialize Redis (login rate limiting)
	rdb, err := cache.ConnectRedis()
	if err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	defer rdb.Close()
	fmt.Println("Redis connected.")

	// 5. Initialize Repositories
	userRepo := repository.NewPgUserRepository(db)
	propertyRepo := repository.NewPgPropertyRepository(db)

	// 6. Initialize Services
	loginLimiter := cache.NewLoginLimiter(rdb, config.AppConfig.LoginMaxAttempts, config.AppConfig.LoginAttemptWindow)
	authService := service.NewAuthService(userRepo, loginLimiter)
	propertyService := service.NewPropertyService(propertyRepo)

	// 7. Initialize Router & HTTP Server
	router := api.NewRouter(authService, propertyService, config.AppConfig.StaticDir)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 8. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.APIPort, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}
