package main

import (
	"coinwidget/cli"
	"coinwidget/config"
	"coinwidget/core"
	"coinwidget/handlers"
	"coinwidget/prefs"
	"coinwidget/service"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.ParseFlags()

	logFile, err := setupLogging(config.Settings.LogFilePath)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if config.Settings.CLIMode {
		mainCLI()
		return
	}

	log.Println("System starting up...")

	opened, err := openBackend(config.Settings)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", config.Settings.StoreBackend, err)
	}

	errorLogger := core.NewErrorLogger(config.Settings.ErrorLogCapacity)
	store := prefs.NewStore(opened.backend, prefs.WithErrorHandler(errorLogger.RecordStoreError))
	service.InitServices(store, errorLogger)
	handlers.SetStoreProbe(opened.probe)

	if config.Settings.LogLevel != "DEBUG" {
		gin.SetMode(gin.ReleaseMode)
	}
	gin.DefaultWriter = log.Writer()
	gin.DefaultErrorWriter = log.Writer()
	gin.DisableConsoleColor()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"*"},
		ExposeHeaders:   []string{"Content-Length"},
	}))
	handlers.RegisterRoutes(r.Group("/api"))

	srv := &http.Server{
		Addr:    fmt.Sprintf("0.0.0.0:%d", config.Settings.Port),
		Handler: r,
	}

	go func() {
		log.Printf("Server starting on http://127.0.0.1:%d (store: %s)", config.Settings.Port, config.Settings.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("System shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if err := opened.close(); err != nil {
		log.Printf("Error closing store: %v", err)
	}

	log.Println("Server exited")
}

// mainCLI runs the interactive client against a running server
func mainCLI() {
	log.SetFlags(log.Ldate | log.Ltime)

	var cfg *cli.Config
	if path, err := cli.DefaultConfigPath(); err != nil {
		log.Printf("CLI config unavailable: %v", err)
	} else if cfg, err = cli.LoadConfig(path); err != nil {
		log.Printf("Failed to load CLI config: %v", err)
		cfg = nil
	}

	serverURL := config.Settings.CLIServer
	if serverURL == "" {
		if cfg != nil {
			serverURL = cfg.DefaultURL()
		} else {
			serverURL = fmt.Sprintf("http://localhost:%d", config.Settings.Port)
		}
	}

	fmt.Printf("Coin Widget CLI - Connecting to %s\n", serverURL)

	shell, err := cli.NewShell(serverURL, cfg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		fmt.Println("\nTips:")
		fmt.Println("  1. Make sure the coinwidget server is running:")
		fmt.Println("     ./coinwidget")
		fmt.Println("  2. Or specify a different server:")
		fmt.Println("     ./coinwidget --cli --server http://your-server:7790")
		os.Exit(1)
	}

	shell.Start()
}
