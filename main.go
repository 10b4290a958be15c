package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/yeremiapane/review-app/config"
	"github.com/yeremiapane/review-app/database"
	"github.com/yeremiapane/review-app/router"
	"github.com/yeremiapane/review-app/utils"
	"gorm.io/gorm"
)

func init() {
	// Load .env sebelum konfigurasi dibaca
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	cfg := config.Load()
	utils.SetLogLevel(cfg.LogLevel)

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	// Simpan koneksi database ke utils untuk dipakai bersama
	utils.InitDB(db)
	defer func() {
		if err := utils.CloseDB(); err != nil {
			utils.ErrorLogger.Printf("Error closing database: %v", err)
		}
	}()

	prepareDatabase(db, cfg)

	r := router.SetupRouter(db, cfg)
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.ErrorLogger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.InfoLogger.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.ErrorLogger.Printf("Server forced to shutdown: %v", err)
	}
}

func prepareDatabase(db *gorm.DB, cfg config.Config) {
	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}

	if cfg.SeedData {
		if _, err := database.Seed(db); err != nil {
			utils.ErrorLogger.Printf("Error seeding data: %v", err)
		}
	}

	if cfg.SeedFile != "" {
		if _, err := database.ExecuteScript(db, cfg.SeedFile); err != nil {
			utils.ErrorLogger.Printf("Error executing %s: %v", cfg.SeedFile, err)
		}
	}
}
