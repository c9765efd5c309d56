package configs

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver          string
	DBSource          string
	Port              string
	JWTSecret         string
	SessionTTL        time.Duration
	MidtransServerKey string
	MidtransBaseURL   string
	CORSOrigins       []string
	UploadDir         string
	AdminEmail        string
	AdminPassword     string
}

func LoadConfig() *Config {
	// .env is optional; deployments may inject env directly
	_ = godotenv.Load()

	ttlMinutes, err := strconv.Atoi(getEnv("SESSION_TTL_MINUTES", "60"))
	if err != nil || ttlMinutes <= 0 {
		ttlMinutes = 60
	}

	return &Config{
		DBDriver:          getEnv("DB_DRIVER", "sqlite"),
		DBSource:          getEnv("DB_SOURCE", "order-menu.db"),
		Port:              getEnv("PORT", "3000"),
		JWTSecret:         getEnv("JWT_SECRET", "changeme"),
		SessionTTL:        time.Duration(ttlMinutes) * time.Minute,
		MidtransServerKey: os.Getenv("MIDTRANS_SERVER_KEY"),
		MidtransBaseURL:   getEnv("MIDTRANS_BASE_URL", "https://app.sandbox.midtrans.com"),
		CORSOrigins:       splitOrigins(getEnv("CORS_ORIGINS", "*")),
		UploadDir:         getEnv("UPLOAD_DIR", "./uploads"),
		AdminEmail:        getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "admin123"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
