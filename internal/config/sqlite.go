package config

// SQLite configures the local product store used by the simple chat pipeline.
type SQLite struct {
	Path string `env:"SQLITE_PATH" envDefault:"app.db"`
}
