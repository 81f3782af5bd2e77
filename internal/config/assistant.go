package config

// Assistant configures the inventory query pipeline thresholds.
type Assistant struct {
	// LowStockThreshold is the quantity at or below which a product counts
	// as low stock in summaries and in the low-stock catalog query.
	LowStockThreshold int `env:"ASSISTANT_LOW_STOCK_THRESHOLD" envDefault:"50"`

	// CriticalStockThreshold marks products inside a low-stock result that
	// need urgent replenishment.
	CriticalStockThreshold int `env:"ASSISTANT_CRITICAL_STOCK_THRESHOLD" envDefault:"20"`
}
