package config

import (
	"os"
	"strings"
)

// Config ortam yapılandırmalarını tutar
type Config struct {
	AppEnv         string
	Port           string
	BackendURL     string
	AllowedOrigins []string
}

// yardımcı fonksiyon: ortam değişkeni yoksa default değeri döner
func getEnv(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// LoadConfig tüm yapılandırmayı yükler
func LoadConfig() *Config {
	return &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		BackendURL:     getEnv("BACKEND_API_URL", "https://localhost:44387/api"),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}
