package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv подгружает переменные окружения из .env (если он есть)
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println(".env file not found")
	}
}

// GetEnv возвращает обязательную переменную окружения.
// Отсутствие значения - ошибка конфигурации, дальше работать нельзя.
func GetEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("environment variable %s is not set", key)
	}
	return value
}
