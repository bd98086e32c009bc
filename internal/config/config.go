package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuracion del servicio.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	// Scraper de Reddit.
	RedditBaseURL   string        `env:"REDDIT_BASE_URL" envDefault:"https://www.reddit.com"`
	UserAgent       string        `env:"USER_AGENT" envDefault:"reddit-persona/1.0 (research tool)"`
	FetchLimit      int           `env:"FETCH_LIMIT" envDefault:"100"`
	RequestInterval time.Duration `env:"REQUEST_INTERVAL" envDefault:"2s"`

	// Umbrales del motor de analisis.
	MinMatches            int     `env:"MIN_MATCHES" envDefault:"2"`
	MinConfidence         float64 `env:"MIN_CONFIDENCE" envDefault:"0.05"`
	MaxCitations          int     `env:"MAX_CITATIONS" envDefault:"3"`
	RecencyBoostFactor    float64 `env:"RECENCY_BOOST_FACTOR" envDefault:"1.5"`
	RecencyWindowFraction float64 `env:"RECENCY_WINDOW_FRACTION" envDefault:"0.20"`

	// Autenticacion del API. APIKeyHash es un hash bcrypt de la api key;
	// con JWTSecret vacio las rutas quedan abiertas.
	JWTSecret    string        `env:"JWT_SECRET"`
	JWTAccessTTL time.Duration `env:"JWT_ACCESS_TTL" envDefault:"15m"`
	APIKeyHash   string        `env:"API_KEY_HASH"`

	// Cache opcional de items scrapeados.
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL      time.Duration `env:"CACHE_TTL" envDefault:"15m"`
}

// LoadConfig carga la configuracion desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
