package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver  string
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	// BaseURL is encoded into table QR codes.
	BaseURL string

	StripeAPIKey        string
	StripeWebhookSecret string

	SMTPAddr     string
	SMTPHost     string
	SMTPUsername string
	SMTPPassword string
	MailFrom     string

	AdminPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBDriver:            getEnv("DB_DRIVER", "sqlite"),
		DBSource:            getEnv("DB_SOURCE", "restaurantpro.db"),
		Port:                getEnv("PORT", "8000"),
		JWTSecret:           getEnv("JWT_SECRET", "changeme"),
		JWTTTL:              time.Duration(24) * time.Hour,
		BaseURL:             getEnv("BASE_URL", "http://localhost:8000"),
		StripeAPIKey:        os.Getenv("STRIPE_API_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		SMTPAddr:            os.Getenv("SMTP_ADDR"),
		SMTPHost:            os.Getenv("SMTP_HOST"),
		SMTPUsername:        os.Getenv("SMTP_USERNAME"),
		SMTPPassword:        os.Getenv("SMTP_PASSWORD"),
		MailFrom:            getEnv("MAIL_FROM", "noreply@restaurant.com"),
		AdminPassword:       getEnv("ADMIN_PASSWORD", "admin123"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
