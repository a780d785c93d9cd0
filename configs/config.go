package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver    string
	DBSource    string
	Port        string
	AdminSecret string
	ImagesDir   string
	LogLevel    string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	return &Config{
		DBDriver:    getEnv("DB_DRIVER", "sqlite"),
		DBSource:    getEnv("DB_SOURCE", "cafe.db"),
		Port:        getEnv("PORT", "8000"),
		AdminSecret: os.Getenv("ADMIN_SECRET"),
		ImagesDir:   getEnv("IMAGES_DIR", "./images"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
