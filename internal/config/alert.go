package config

import "time"

// Alert configures the periodic low-stock scanner.
type Alert struct {
	Interval  time.Duration `env:"ALERT_INTERVAL" envDefault:"10m"`
	Threshold int           `env:"ALERT_THRESHOLD" envDefault:"50"`
}
