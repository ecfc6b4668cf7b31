// Command testrun exercises the full intake pipeline once with no
// overrides and appends the submitted record to serviceRequest.log as one
// JSON line. Useful for scheduled smoke runs against a live deployment.
package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"autointake/config"
	"autointake/models"
	"autointake/services/agent"
	"autointake/services/browser"
	"autointake/services/generator"
	"autointake/utils"
)

const logFile = "serviceRequest.log"

type logEntry struct {
	Timestamp      string                 `json:"timestamp"`
	ServiceRequest *models.ServiceRequest `json:"serviceRequest"`
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger().Sugar()

	gemini, err := generator.NewGeminiClient(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if err != nil {
		logger.Fatalf("testrun: failed to initialize generation backend: %v", err)
	}

	browserCfg := browser.DefaultConfig()
	browserCfg.Headless = config.AppConfig.Headless
	opener := browser.NewOpener(browserCfg)

	agentService := agent.New(
		generator.NewService(gemini),
		func(ctx context.Context, url string) (agent.PageSession, error) {
			return opener.Open(ctx, url)
		},
		config.AppConfig.FormURL,
	)

	serviceRequest, err := agentService.Run(context.Background(), &models.ServiceRequestPatch{})
	if err != nil {
		logger.Fatalf("testrun: %v", err)
	}

	line, err := json.Marshal(logEntry{
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		ServiceRequest: serviceRequest,
	})
	if err != nil {
		logger.Fatalf("testrun: marshal log entry: %v", err)
	}

	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Fatalf("testrun: open %s: %v", logFile, err)
	}
	defer f.Close()
	if _, err := f.Write(append(line, '\n')); err != nil {
		logger.Fatalf("testrun: write %s: %v", logFile, err)
	}

	logger.Infof("Logged service request to %s", logFile)
}
