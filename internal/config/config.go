package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	CatalogFile  string // path to an optional source catalog YAML (empty = built-in catalog)
	DefaultUser  int    // fixed user id every request is scoped to
	HistoryLimit int    // default page size for search-history reads

	AllowedOrigins []string // CORS origins allowed to call the API ("*" = any)

	// Rate limiting (per client IP)
	RateLimitBurst  int  // bucket capacity
	RateLimitPerMin int  // refill per minute
	TrustProxy      bool // true => resolve client IP from proxy headers

	// Redis (optional search-page cache; empty addr = disabled)
	RedisAddr           string
	RedisUser           string
	RedisPassword       string
	RedisDB             int
	RedisDT             time.Duration // dial timeout
	RedisRT             time.Duration // read timeout
	RedisWT             time.Duration // write timeout
	RedisConnectTimeout time.Duration // total time to retry connecting
	RedisRetryInterval  time.Duration // initial wait between retries, grows exponentially
	RedisMaxWait        time.Duration // max wait between retries
	RedisPingTimeout    time.Duration // timeout for each ping attempt
	RedisWarnThreshold  int           // warn after this many attempts
	SearchCacheTTL      time.Duration // TTL for cached search pages
}

func Load() *Config {
	return &Config{
		ListenPort:      getenv("EDUSEARCH_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("EDUSEARCH_SHUTDOWN_TIMEOUT", 5*time.Second),

		LogLevel:  getenv("EDUSEARCH_LOG_LEVEL", "info"),
		PrettyLog: mustBool("EDUSEARCH_PRETTY_LOG", true),

		CatalogFile:  getenv("EDUSEARCH_CATALOG_FILE", ""),
		DefaultUser:  getenvInt("EDUSEARCH_DEFAULT_USER_ID", 1),
		HistoryLimit: getenvInt("EDUSEARCH_HISTORY_LIMIT", 10),

		AllowedOrigins: splitAndTrim(getenv("EDUSEARCH_ALLOWED_ORIGINS", "*")),

		RateLimitBurst:  getenvInt("EDUSEARCH_RATE_LIMIT_BURST", 30),
		RateLimitPerMin: getenvInt("EDUSEARCH_RATE_LIMIT_PER_MIN", 60),
		TrustProxy:      mustBool("EDUSEARCH_TRUST_PROXY", false),

		RedisAddr:           getenv("EDUSEARCH_REDIS_ADDR", ""),
		RedisUser:           getenv("EDUSEARCH_REDIS_USERNAME", "default"),
		RedisPassword:       getenv("EDUSEARCH_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("EDUSEARCH_REDIS_DB", 0),
		RedisDT:             mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisWarnThreshold:  getenvInt("REDIS_WARN_THRESHOLD", 3),
		SearchCacheTTL:      mustDuration("EDUSEARCH_SEARCH_CACHE_TTL", 15*time.Minute),
	}
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
