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

	// public base URL embedded into table QR codes
	BaseURL   string
	UploadDir string

	AdminEmail    string
	AdminPassword string

	// Green API credentials for WhatsApp notifications; empty = dev mode
	GreenAPIID    string
	GreenAPIToken string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment variables")
	}

	return &Config{
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DBSource:      getEnv("DB_SOURCE", "qrmenu.db"),
		Port:          getEnv("PORT", "8000"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		JWTTTL:        time.Duration(24*7) * time.Hour,
		BaseURL:       getEnv("BASE_URL", "http://localhost:8000"),
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		GreenAPIID:    os.Getenv("GREEN_API_ID"),
		GreenAPIToken: os.Getenv("GREEN_API_TOKEN"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
