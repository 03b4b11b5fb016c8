package main

import (
	"log"
	"net/http"
	"time"

	"qualigo/config"
	httpapi "qualigo/internal/api/http"
	"qualigo/internal/events"
	"qualigo/internal/service"
	"qualigo/internal/storage"
)

func main() {
	cfg := config.Load()

	var kv storage.KV
	if cfg.RedisAddr != "" {
		kv = storage.NewRedisStore(config.MustInitRedis(cfg.RedisAddr))
		log.Printf("[qualigo] using redis store at %s", cfg.RedisAddr)
	} else {
		fileStore, err := storage.NewFileStore(cfg.DataDir)
		if err != nil {
			log.Fatal("Failed to open data directory:", err)
		}
		kv = fileStore
		log.Printf("[qualigo] using file store in %s", cfg.DataDir)
	}

	store := storage.NewStore(kv)
	bus := events.NewBus()

	catalog := service.NewCatalogService(store)
	cart := service.NewCartService(store, store, bus)
	orders := service.NewOrderService(store, store, bus,
		service.DefaultQRGenerator{BaseURL: cfg.BaseURL}, cfg.PaymentDelay)
	users := service.NewUserService(store)
	analytics := service.NewAnalyticsService(store)
	chatbot := service.NewChatbotService(service.ChatbotConfig{
		APIKey:   cfg.ChatbotAPIKey,
		Model:    cfg.ChatbotModel,
		Endpoint: cfg.ChatbotEndpoint,
		Prompt:   service.MenuPrompt,
	}, &http.Client{Timeout: 15 * time.Second})

	handler := httpapi.NewHandler(catalog, cart, orders, users, analytics, chatbot, bus)
	httpapi.StartServer(cfg.Addr, httpapi.NewRouter(handler))
}
