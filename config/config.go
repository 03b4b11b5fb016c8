package config

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

type Config struct {
	Addr         string
	DataDir      string
	RedisAddr    string
	BaseURL      string
	PaymentDelay time.Duration

	ChatbotAPIKey   string
	ChatbotModel    string
	ChatbotEndpoint string
}

// Load reads the environment, with a .env file as a convenience for local
// runs. RedisAddr empty means the file-backed store is used.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:            getenv("ADDR", ":8080"),
		DataDir:         getenv("DATA_DIR", "./data"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		BaseURL:         getenv("BASE_URL", "http://localhost:8080"),
		PaymentDelay:    time.Duration(getenvInt("PAYMENT_DELAY_MS", 1500)) * time.Millisecond,
		ChatbotAPIKey:   os.Getenv("CHATBOT_API_KEY"),
		ChatbotModel:    getenv("CHATBOT_MODEL", "gemini-pro"),
		ChatbotEndpoint: getenv("CHATBOT_ENDPOINT", "https://generativelanguage.googleapis.com"),
	}
}

func MustInitRedis(addr string) *redis.Client {
	client := redis.NewClient(&redis.Options{Addr: addr})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
