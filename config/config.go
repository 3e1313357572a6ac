package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func Init() {
	if err := godotenv.Load(); err != nil {
		logrus.Println("no .env file found, relying on environment")
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func ServerPort() string {
	return ":" + getEnv("SERVER_PORT", "8080")
}

func DBHost() string {
	return getEnv("DB_HOST", "localhost")
}

func DBPort() string {
	return getEnv("DB_PORT", "5432")
}

func DBUser() string {
	return getEnv("DB_USER", "postgres")
}

func DBPassword() string {
	return getEnv("DB_PASSWORD", "postgres")
}

func DBName() string {
	return getEnv("DB_NAME", "bento")
}

func DBSSLMode() string {
	return getEnv("DB_SSLMODE", "disable")
}

func MigrationPath() string {
	return getEnv("MIGRATION_PATH", "database/migrations")
}
