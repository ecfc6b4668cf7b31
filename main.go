// File: autointake/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"autointake/config"
	"autointake/handlers"
	"autointake/middleware"
	"autointake/routes"
	"autointake/services/agent"
	"autointake/services/browser"
	"autointake/services/generator"
	"autointake/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	gemini, err := generator.NewGeminiClient(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize generation backend: %v", err)
	}

	browserCfg := browser.DefaultConfig()
	browserCfg.Headless = config.AppConfig.Headless
	browserCfg.NavigationTimeoutMs = config.AppConfig.NavigationTimeoutMs
	browserCfg.ElementTimeoutMs = config.AppConfig.ElementTimeoutMs
	opener := browser.NewOpener(browserCfg)

	agentService := agent.New(
		generator.NewService(gemini),
		func(ctx context.Context, url string) (agent.PageSession, error) {
			return opener.Open(ctx, url)
		},
		config.AppConfig.FormURL,
	)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger())

	routes.RegisterRoutes(router, handlers.NewIntakeHandler(agentService))

	// Start the HTTP server.
	srv := &http.Server{
		Addr:    "0.0.0.0:" + config.AppConfig.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Agent API listening on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
