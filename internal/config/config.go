package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port  string
	Env   string
	LLM   LLMConfig
	Cache CacheConfig
}

type LLMConfig struct {
	// Provider is one of gemini, groq, fake. The fake provider keeps the
	// service runnable offline; correction then falls back to heuristics.
	Provider    string
	Model       string
	APIKey      string
	Timeout     time.Duration
	MaxAttempts int
	RPS         float64
	Burst       int
}

type CacheConfig struct {
	Entries int
	TTL     time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8081", "server port")
	flag.Parse()

	if envPort := os.Getenv("PORT"); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			*port = envPort
		} else {
			*port = ":" + envPort
		}
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	return &Config{
		Port:  *port,
		Env:   env,
		LLM:   loadLLMConfig(),
		Cache: loadCacheConfig(),
	}, nil
}

func loadLLMConfig() LLMConfig {
	provider := strings.ToLower(firstNonEmpty(os.Getenv("LLM_PROVIDER"), "gemini"))
	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if provider == "groq" {
		apiKey = strings.TrimSpace(os.Getenv("GROQ_API_KEY"))
	}
	return LLMConfig{
		Provider:    provider,
		Model:       firstNonEmpty(strings.TrimSpace(os.Getenv("LLM_MODEL")), "gemini-2.0-flash"),
		APIKey:      apiKey,
		Timeout:     readDuration("LLM_TIMEOUT", 12*time.Second),
		MaxAttempts: readInt("LLM_MAX_ATTEMPTS", 2),
		RPS:         readFloat("LLM_RPS", 0),
		Burst:       readInt("LLM_BURST", 1),
	}
}

func loadCacheConfig() CacheConfig {
	return CacheConfig{
		Entries: readInt("CACHE_ENTRIES", 256),
		TTL:     readDuration("CACHE_TTL", 10*time.Minute),
	}
}

func readDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func readInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func readFloat(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
