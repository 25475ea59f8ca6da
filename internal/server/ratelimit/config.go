package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is the limit for one route. Path may contain "{name}" segments.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int           // requests per Window
	Window time.Duration
	Burst  int // defaults to Limit when 0
}

// LoadConfig reads the limiter settings from RATE_LIMIT_* environment variables.
func LoadConfig() *Config {
	env := envReader(os.Getenv)
	if !env.boolean("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    env.integer("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   env.duration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: env.duration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       clientSet(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       clientSet(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-route limits. Reads and unlisted
// routes fall back to the default limit.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Writes to the analysis history.
		{Path: "/analyses", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/analyses/{id}/skills/toggle", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},

		// Stateless scoring.
		{Path: "/ats", Method: "POST", Limit: 300, Window: time.Minute, Burst: 30},
		{Path: "/match", Method: "POST", Limit: 300, Window: time.Minute, Burst: 30},
		{Path: "/digest", Method: "POST", Limit: 120, Window: time.Minute, Burst: 10},
		{Path: "/assessments", Method: "POST", Limit: 120, Window: time.Minute, Burst: 10},
		{Path: "/assessments/grade", Method: "POST", Limit: 120, Window: time.Minute, Burst: 10},
	}
}

type envReader func(string) string

func (e envReader) integer(key string, def int) int {
	if n, err := strconv.Atoi(e(key)); err == nil {
		return n
	}
	return def
}

func (e envReader) boolean(key string, def bool) bool {
	if b, err := strconv.ParseBool(e(key)); err == nil {
		return b
	}
	return def
}

func (e envReader) duration(key string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(e(key)); err == nil {
		return d
	}
	return def
}

// clientSet turns "a, b,,c" into {a, b, c}.
func clientSet(list string) map[string]bool {
	set := make(map[string]bool)
	for _, id := range strings.Split(list, ",") {
		if id = strings.TrimSpace(id); id != "" {
			set[id] = true
		}
	}
	return set
}
