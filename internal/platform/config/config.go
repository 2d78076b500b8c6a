package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	JWTSecret string
	JWTIssuer string

	// External mapping provider
	GeomappingBaseURL string `mapstructure:"GEOMAPPING_BASE_URL"`
	GeomappingAPIKey  string `mapstructure:"GEOMAPPING_API_KEY"`
	GeomappingTimeout time.Duration

	// Xero accounting integration
	XeroBaseURL      string `mapstructure:"XERO_BASE_URL"`
	XeroTokenURL     string `mapstructure:"XERO_TOKEN_URL"`
	XeroClientID     string `mapstructure:"XERO_CLIENT_ID"`
	XeroClientSecret string `mapstructure:"XERO_CLIENT_SECRET"`
	XeroContactID    string `mapstructure:"XERO_CONTACT_ID"`
	XeroTimeout      time.Duration
	InvoiceDueIn     time.Duration

	// Notification webhook
	NotifyWebhookURL string `mapstructure:"NOTIFY_WEBHOOK_URL"`
	NotifyTimeout    time.Duration

	// Background reconciliation sweep
	ReconcileInterval time.Duration

	// Rate limiting, e.g. "100-M" for 100 requests per minute per IP
	RateLimit string `mapstructure:"RATE_LIMIT"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "healthcare-backend")
	viper.SetDefault("GEOMAPPING_BASE_URL", "")
	viper.SetDefault("GEOMAPPING_API_KEY", "")
	viper.SetDefault("GEOMAPPING_TIMEOUT", "5s")
	viper.SetDefault("XERO_BASE_URL", "https://api.xero.com")
	viper.SetDefault("XERO_TOKEN_URL", "https://identity.xero.com/connect/token")
	viper.SetDefault("XERO_CLIENT_ID", "")
	viper.SetDefault("XERO_CLIENT_SECRET", "")
	viper.SetDefault("XERO_CONTACT_ID", "")
	viper.SetDefault("XERO_TIMEOUT", "10s")
	viper.SetDefault("INVOICE_DUE_IN", "336h")
	viper.SetDefault("NOTIFY_WEBHOOK_URL", "")
	viper.SetDefault("NOTIFY_TIMEOUT", "5s")
	viper.SetDefault("RECONCILE_INTERVAL", "5m")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.GeomappingBaseURL = viper.GetString("GEOMAPPING_BASE_URL")
	cfg.GeomappingAPIKey = viper.GetString("GEOMAPPING_API_KEY")
	cfg.GeomappingTimeout = durationOrDefault("GEOMAPPING_TIMEOUT", 5*time.Second)
	if cfg.GeomappingBaseURL == "" {
		log.Println("Warning: GEOMAPPING_BASE_URL not set. Geocoding and road distances will be unavailable.")
	}

	cfg.XeroBaseURL = viper.GetString("XERO_BASE_URL")
	cfg.XeroTokenURL = viper.GetString("XERO_TOKEN_URL")
	cfg.XeroClientID = viper.GetString("XERO_CLIENT_ID")
	cfg.XeroClientSecret = viper.GetString("XERO_CLIENT_SECRET")
	cfg.XeroContactID = viper.GetString("XERO_CONTACT_ID")
	cfg.XeroTimeout = durationOrDefault("XERO_TIMEOUT", 10*time.Second)
	cfg.InvoiceDueIn = durationOrDefault("INVOICE_DUE_IN", 14*24*time.Hour)
	if cfg.XeroClientID == "" {
		log.Println("Warning: XERO_CLIENT_ID not set. Invoicing will be unavailable until configured.")
	}

	cfg.NotifyWebhookURL = viper.GetString("NOTIFY_WEBHOOK_URL")
	cfg.NotifyTimeout = durationOrDefault("NOTIFY_TIMEOUT", 5*time.Second)

	cfg.ReconcileInterval = durationOrDefault("RECONCILE_INTERVAL", 5*time.Minute)
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}
