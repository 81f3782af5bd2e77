package config

import "time"

// Gemini configures the generative AI client used for fallback answers,
// SQL generation and result interpretation.
type Gemini struct {
	APIKey  string        `env:"GEMINI_API_KEY,required"`
	Model   string        `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	BaseURL string        `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`
	Timeout time.Duration `env:"GEMINI_TIMEOUT" envDefault:"30s"`

	Temperature     float64 `env:"GEMINI_TEMPERATURE" envDefault:"1"`
	TopP            float64 `env:"GEMINI_TOP_P" envDefault:"0.95"`
	TopK            int     `env:"GEMINI_TOP_K" envDefault:"64"`
	MaxOutputTokens int     `env:"GEMINI_MAX_OUTPUT_TOKENS" envDefault:"8192"`

	// SafetyThreshold is applied to every harm category.
	SafetyThreshold string `env:"GEMINI_SAFETY_THRESHOLD" envDefault:"BLOCK_MEDIUM_AND_ABOVE"`
}
