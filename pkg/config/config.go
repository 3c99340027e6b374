package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Mail     MailConfig
	Storage  StorageConfig
}

type ServerConfig struct {
	Port    string
	BaseURL string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type JWTConfig struct {
	Secret string
}

type MailConfig struct {
	ResendAPIKey string
	From         string
	AdminEmail   string
}

type StorageConfig struct {
	Bucket string
	Region string
}

func Load() *Config {
	godotenv.Load() // .env dosyasını yükle

	return &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "3000"),
			BaseURL: getEnv("BASE_URL", "http://localhost:3000"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "storefront"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key"),
		},
		Mail: MailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			From:         getEnv("MAIL_FROM", "Storefront <noreply@storefront.local>"),
			AdminEmail:   getEnv("ADMIN_EMAIL", ""),
		},
		Storage: StorageConfig{
			Bucket: getEnv("AWS_BUCKET_NAME", "storefront-previews"),
			Region: getEnv("AWS_REGION", "eu-central-1"),
		},
	}
}

// DSN builds the postgres connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.DBName)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
