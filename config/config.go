package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port           string
	Timezone       string
	DBPath         string
	LLMEndpoint    string
	LLMAPIKey      string
	LLMModel       string
	EmbEndpoint    string
	EmbAPIKey      string
	EmbModel       string
	WeatherBaseURL string
	MandiBaseURL   string
	MandiAPIKey    string
	MandiResource  string
	OfflineTree    string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:           get("PORT", "8080"),
		Timezone:       get("TZ", "Asia/Kolkata"),
		DBPath:         get("DB_PATH", "krishisakhi.db"),
		LLMEndpoint:    get("LLM_ENDPOINT", ""),
		LLMAPIKey:      get("LLM_API_KEY", ""),
		LLMModel:       get("LLM_MODEL", "gemini-2.5-flash"),
		EmbEndpoint:    get("EMB_ENDPOINT", ""),
		EmbAPIKey:      get("EMB_API_KEY", ""),
		EmbModel:       get("EMB_MODEL", ""),
		WeatherBaseURL: get("WEATHER_BASE_URL", "https://api.open-meteo.com"),
		MandiBaseURL:   get("MANDI_BASE_URL", "https://api.data.gov.in"),
		MandiAPIKey:    get("MANDI_API_KEY", ""),
		MandiResource:  get("MANDI_RESOURCE_ID", "9ef84268-d588-465a-a308-a864a43d0070"),
		OfflineTree:    get("OFFLINE_TREE_PATH", "knowledge/offline_tree.yaml"),
	}
	log.Printf("[cfg] port=%s db=%s llm_model=%s", cfg.Port, cfg.DBPath, cfg.LLMModel)
	return cfg
}
