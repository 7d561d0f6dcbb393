package util

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const envVariable = "MINTMATE_ENV"

type ProviderConfig struct {
	ApiKey  string        `yaml:"api_key"`
	BaseUrl string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type Config struct {
	Env  string `yaml:"-"`
	Port int    `yaml:"port"`

	Db struct {
		Url string `yaml:"url"`
	} `yaml:"db"`

	Cors struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`

	Cache struct {
		Ttl      time.Duration `yaml:"ttl"`
		Capacity int           `yaml:"capacity"`
	} `yaml:"cache"`

	Providers struct {
		Yahoo      ProviderConfig `yaml:"yahoo"`
		Finnhub    ProviderConfig `yaml:"finnhub"`
		TwelveData ProviderConfig `yaml:"twelve_data"`
		CoinGecko  ProviderConfig `yaml:"coingecko"`
		Binance    ProviderConfig `yaml:"binance"`
	} `yaml:"providers"`

	Llm struct {
		ApiKey     string        `yaml:"api_key"`
		BaseUrl    string        `yaml:"base_url"`
		Model      string        `yaml:"model"`
		Timeout    time.Duration `yaml:"timeout"`
		MaxRetries int           `yaml:"max_retries"`
		RetryDelay time.Duration `yaml:"retry_delay"`
	} `yaml:"llm"`

	Warmer struct {
		Schedule string   `yaml:"schedule"`
		Symbols  []string `yaml:"symbols"`
		Crypto   []string `yaml:"crypto"`
	} `yaml:"warmer"`
}

func defaultConfig() *Config {
	cfg := &Config{
		Port: 5000,
	}
	cfg.Cors.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	cfg.Cache.Ttl = 5 * time.Minute
	cfg.Cache.Capacity = 100
	cfg.Providers.Yahoo.Timeout = 3 * time.Second
	cfg.Providers.Finnhub.Timeout = 3 * time.Second
	cfg.Providers.TwelveData.Timeout = 3 * time.Second
	cfg.Providers.CoinGecko.Timeout = 3 * time.Second
	cfg.Providers.Binance.Timeout = 2 * time.Second
	cfg.Llm.Timeout = 30 * time.Second
	cfg.Llm.MaxRetries = 2
	cfg.Llm.RetryDelay = time.Second
	return cfg
}

// ConfigFile picks the yaml file for the current MINTMATE_ENV.
func ConfigFile() string {
	switch strings.ToLower(os.Getenv(envVariable)) {
	case "dev":
		return "config-dev.yaml"
	case "test":
		return "config-test.yaml"
	default:
		return "config.yaml"
	}
}

// LoadConfig reads .env into the process environment, then the yaml file at
// path (a missing file leaves the defaults), then applies env overrides.
// An empty path resolves through ConfigFile.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	if path == "" {
		path = ConfigFile()
	}

	cfg := defaultConfig()
	cfg.Env = strings.ToLower(os.Getenv(envVariable))

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	overrides := map[string]*string{
		"FINNHUB_API_KEY":     &c.Providers.Finnhub.ApiKey,
		"TWELVE_DATA_API_KEY": &c.Providers.TwelveData.ApiKey,
		"GROQ_API_KEY":        &c.Llm.ApiKey,
		"GROQ_MODEL":          &c.Llm.Model,
		"DATABASE_URL":        &c.Db.Url,
	}
	for key, target := range overrides {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*target = v
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Port = port
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid CACHE_TTL %q: %w", v, err)
		}
		c.Cache.Ttl = ttl
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.Cache.Ttl <= 0 {
		return fmt.Errorf("cache.ttl must be positive")
	}
	if c.Cache.Capacity <= 0 {
		return fmt.Errorf("cache.capacity must be positive")
	}
	if c.Llm.MaxRetries < 0 {
		return fmt.Errorf("llm.max_retries must not be negative")
	}
	return nil
}
