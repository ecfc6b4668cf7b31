package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Browser automation.
	Headless            bool   `mapstructure:"HEADLESS"`
	FormURL             string `mapstructure:"FORM_URL"`
	NavigationTimeoutMs int    `mapstructure:"NAVIGATION_TIMEOUT_MS"`
	ElementTimeoutMs    int    `mapstructure:"ELEMENT_TIMEOUT_MS"`

	// Generation backend.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "3000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("HEADLESS", true)
	viper.SetDefault("FORM_URL", "")
	viper.SetDefault("NAVIGATION_TIMEOUT_MS", 30000)
	viper.SetDefault("ELEMENT_TIMEOUT_MS", 10000)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "models/gemini-1.5-pro")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// The agent drives the form this process serves unless pointed elsewhere.
	if AppConfig.FormURL == "" {
		AppConfig.FormURL = fmt.Sprintf("http://localhost:%s", AppConfig.AppPort)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
