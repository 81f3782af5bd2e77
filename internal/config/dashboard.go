package config

import "time"

// Dashboard configures the read-through cache in front of the dashboard
// aggregate queries.
type Dashboard struct {
	CacheTTL time.Duration `env:"DASHBOARD_CACHE_TTL" envDefault:"10m"`
}
