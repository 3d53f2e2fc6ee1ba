package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server Configuration
	ServerPort string

	// Database Configuration
	DatabasePath string
	DealDataPath string

	// Geospatial Configuration
	DefaultRadiusKm   float64
	DefaultLatitude   float64 // map viewport default (Bengaluru)
	DefaultLongitude  float64
	DefaultZoom       float64
	ClusterZoomCutoff float64
	MaxDealsReturn    int
	SpotlightLimit    int

	// Location Acquisition Configuration
	GeoTimeout   time.Duration
	GeoMaxAge    time.Duration
	IPGeoURL     string
	IPGeoTimeout time.Duration
	IPGeoRetries int

	// LLM Configuration (optional deal highlights)
	LLMEnabled     bool
	LLMProvider    string // "openai" or "groq"
	OpenAIKey      string
	GroqKey        string
	LLMBaseURL     string
	HighlightModel string
}

var AppConfig *Config

func LoadConfig() *Config {
	AppConfig = &Config{
		ServerPort:        getEnv("PORT", "8080"),
		DatabasePath:      getEnv("DB_PATH", "deals.db"),
		DealDataPath:      getEnv("DEAL_DATA_PATH", "deals_data.json"),
		DefaultRadiusKm:   getEnvFloat("DEFAULT_RADIUS", 5.0),
		DefaultLatitude:   getEnvFloat("DEFAULT_LAT", 12.9716),
		DefaultLongitude:  getEnvFloat("DEFAULT_LNG", 77.5946),
		DefaultZoom:       getEnvFloat("DEFAULT_ZOOM", 11),
		ClusterZoomCutoff: getEnvFloat("CLUSTER_ZOOM_CUTOFF", 12.5),
		MaxDealsReturn:    getEnvInt("MAX_DEALS", 50),
		SpotlightLimit:    getEnvInt("SPOTLIGHT_LIMIT", 6),
		GeoTimeout:        getEnvDuration("GEO_TIMEOUT", 10*time.Second),
		GeoMaxAge:         getEnvDuration("GEO_MAX_AGE", 30*time.Second),
		IPGeoURL:          getEnv("IP_GEO_URL", "https://ipapi.co/json/"),
		IPGeoTimeout:      getEnvDuration("IP_GEO_TIMEOUT", 5*time.Second),
		IPGeoRetries:      getEnvInt("IP_GEO_RETRIES", 2),
		LLMEnabled:        getEnvBool("LLM_ENABLED", false),
		LLMProvider:       getEnv("LLM_PROVIDER", "groq"),
		OpenAIKey:         os.Getenv("OPENAI_API_KEY"),
		GroqKey:           os.Getenv("GROQ_API_KEY"),
		LLMBaseURL:        getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		HighlightModel:    getEnv("HIGHLIGHT_MODEL", "llama-3.1-8b-instant"),
	}

	// Validate required configuration
	if AppConfig.LLMEnabled {
		if AppConfig.LLMProvider == "openai" && AppConfig.OpenAIKey == "" {
			log.Fatal("OPENAI_API_KEY is required when LLM_PROVIDER is 'openai'")
		}
		if AppConfig.LLMProvider == "groq" && AppConfig.GroqKey == "" {
			log.Fatal("GROQ_API_KEY is required when LLM_PROVIDER is 'groq'")
		}
	}

	return AppConfig
}

// RadiusOptions lists the selectable near-me radii in km. Hand-tuned
// values preserved from the map filter UI.
func (c *Config) RadiusOptions() []float64 {
	return []float64{1, 3, 5, 10}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
