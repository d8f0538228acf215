package initializers

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/eshopke/eshop-api/payments"
)

// Config carries everything the process reads from its environment. All
// secrets (database, JWT, Stripe) come from here rather than being baked in.
type Config struct {
	Port        string
	Env         string
	DatabaseDSN string
	JWTSecret   string
	UploadDir   string
	Checkout    payments.Config
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment.")
	}

	cfg := &Config{
		Port:        getEnv("PORT", "5000"),
		Env:         getEnv("APP_ENV", "development"),
		DatabaseDSN: os.Getenv("DB_DSN"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		Checkout: payments.Config{
			SecretKey:  os.Getenv("STRIPE_SECRET_KEY"),
			Currency:   getEnv("CHECKOUT_CURRENCY", "usd"),
			SuccessURL: getEnv("CHECKOUT_SUCCESS_URL", "http://localhost:4200/success"),
			CancelURL:  getEnv("CHECKOUT_CANCEL_URL", "http://localhost:4200/error"),
		},
	}

	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("DB_DSN is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
