package config

import "time"

// RateLimitConfig controls the fixed-window limiter applied to the login
// route. When disabled, or when no Redis client is available, the limiter
// degrades to a pass-through.
type RateLimitConfig struct {
	Enabled  bool
	Capacity int           // attempts allowed per window
	Window   time.Duration // window length
	Prefix   string        // Redis key namespace
}

// LoadRateLimitConfig reads limiter settings from the environment, with
// defaults tuned for brute-force protection rather than traffic shaping.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled:  envBool("LOGIN_RATE_LIMIT_ENABLED", true),
		Capacity: envInt("LOGIN_RATE_LIMIT_CAPACITY", 10),
		Window:   envDur("LOGIN_RATE_LIMIT_WINDOW", time.Minute),
		Prefix:   getenv("LOGIN_RATE_LIMIT_PREFIX", "rl:login"),
	}
	if cfg.Capacity < 1 {
		cfg.Capacity = 1
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	return cfg
}
