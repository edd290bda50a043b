package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Addr         string `env:"ADDR"           envDefault:":8080"`
	DBPath       string `env:"DB_PATH"        envDefault:"db.sqlite"`
	LogLevel     string `env:"LOG_LEVEL"      envDefault:"info"`
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`

	BooksAPIURL            string  `env:"BOOKS_API_URL"             envDefault:"https://gutendex.com/books"`
	RemoteEnabled          bool    `env:"REMOTE_ENABLED"            envDefault:"true"`
	RefreshSpec            string  `env:"REFRESH_SPEC"              envDefault:"0 */6 * * *"`
	MaxPages               int     `env:"MAX_PAGES"                 envDefault:"3"`
	MaxBooks               int     `env:"MAX_BOOKS"                 envDefault:"12"`
	BooksRequestsPerSecond float64 `env:"BOOKS_REQUESTS_PER_SECOND" envDefault:"2"`

	FeedBatchSize         int    `env:"FEED_BATCH_SIZE"         envDefault:"24"`
	FeedPrefetchThreshold int    `env:"FEED_PREFETCH_THRESHOLD" envDefault:"8"`
	FeedSeed              uint64 `env:"FEED_SEED"`
}

func LoadConfig() Config {
	var cfg Config
	env.Must(cfg, env.Parse(&cfg))
	return cfg
}

// Parse reads the configuration from the given environment.
func Parse(environment map[string]string) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Environment: environment})
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// SlogLevel maps LOG_LEVEL to a slog level. Unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}

	return level
}
