package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config contiene la configuración del servicio leída del entorno
type Config struct {
	ServerPort  string
	CORSOrigins string

	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string

	LogLevel       string
	LogDevelopment bool

	ChatRateLimit  int
	ChatRateWindow time.Duration

	FaqMatchThreshold  float64
	FaqAcceptThreshold float64

	SMTPHost        string
	SMTPPort        string
	SMTPUser        string
	SMTPPassword    string
	SMTPFromName    string
	SMTPFromEmail   string
	DigestRecipient string
}

// LoadConfig carga .env si existe y luego lee las variables de entorno
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}

	cfg := &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", ""),
		DBName:      getEnv("DB_NAME", "marea"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),

		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogDevelopment: getEnv("LOG_DEVELOPMENT", "") != "",

		SMTPHost:        getEnv("SMTP_HOST", ""),
		SMTPPort:        getEnv("SMTP_PORT", "587"),
		SMTPUser:        getEnv("SMTP_USER", ""),
		SMTPPassword:    getEnv("SMTP_PASSWORD", ""),
		SMTPFromName:    getEnv("SMTP_FROM_NAME", "Restaurante La Marea"),
		SMTPFromEmail:   getEnv("SMTP_FROM_EMAIL", ""),
		DigestRecipient: getEnv("DIGEST_RECIPIENT", ""),
	}

	var err error
	if cfg.ChatRateLimit, err = strconv.Atoi(getEnv("CHAT_RATE_LIMIT", "20")); err != nil {
		return nil, fmt.Errorf("invalid CHAT_RATE_LIMIT: %w", err)
	}
	if cfg.ChatRateWindow, err = time.ParseDuration(getEnv("CHAT_RATE_WINDOW", "1m")); err != nil {
		return nil, fmt.Errorf("invalid CHAT_RATE_WINDOW: %w", err)
	}
	if cfg.FaqMatchThreshold, err = strconv.ParseFloat(getEnv("FAQ_MATCH_THRESHOLD", "0.6"), 64); err != nil {
		return nil, fmt.Errorf("invalid FAQ_MATCH_THRESHOLD: %w", err)
	}
	if cfg.FaqAcceptThreshold, err = strconv.ParseFloat(getEnv("FAQ_ACCEPT_THRESHOLD", "0.35"), 64); err != nil {
		return nil, fmt.Errorf("invalid FAQ_ACCEPT_THRESHOLD: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate revisa los valores que no se pueden corregir en tiempo de ejecución
func (c *Config) Validate() error {
	if c.ServerPort == "" {
		return errors.New("SERVER_PORT is required")
	}
	if c.ChatRateLimit <= 0 {
		return fmt.Errorf("CHAT_RATE_LIMIT must be positive, got %d", c.ChatRateLimit)
	}
	if c.ChatRateWindow <= 0 {
		return fmt.Errorf("CHAT_RATE_WINDOW must be positive, got %s", c.ChatRateWindow)
	}
	if c.FaqAcceptThreshold > c.FaqMatchThreshold {
		return fmt.Errorf("FAQ_ACCEPT_THRESHOLD (%v) must not exceed FAQ_MATCH_THRESHOLD (%v)",
			c.FaqAcceptThreshold, c.FaqMatchThreshold)
	}
	return nil
}

// GetDBConnString arma la cadena de conexión para lib/pq
func (c *Config) GetDBConnString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// EmailEnabled indica si hay datos suficientes para enviar el resumen por correo
func (c *Config) EmailEnabled() bool {
	return c.SMTPHost != "" && c.SMTPFromEmail != "" && c.DigestRecipient != ""
}

// AllowedOrigins separa CORS_ORIGINS por comas
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
