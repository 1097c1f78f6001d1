package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"stockdash/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	EnvVar     = "STOCKDASH_ENV"
	PathEnvVar = "STOCKDASH_CONFIG"
	envPrefix  = "STOCKDASH"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Data        DataConfig        `yaml:"data"`
	Dashboard   DashboardConfig   `yaml:"dashboard"`
	Correlation CorrelationConfig `yaml:"correlation"`
}

type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0,lt=65536"`
}

type DataConfig struct {
	// Dir is prepended to relative source paths
	Dir     string               `yaml:"dir"`
	Sources []domain.PriceSource `yaml:"sources" validate:"required,min=1,dive"`
}

type DashboardConfig struct {
	MovingAverageWindows []int  `yaml:"movingAverageWindows" validate:"required,min=1,dive,gt=0"`
	DefaultFrequency     string `yaml:"defaultFrequency"`
}

type CorrelationConfig struct {
	Alignment domain.CorrelationAlignment `yaml:"alignment" validate:"oneof=strict positional"`
}

// envOverrides only carries what is sensible to flip per deployment.
// unset variables leave the pointers nil
type envOverrides struct {
	Port             *int    `envconfig:"PORT"`
	DataDir          *string `envconfig:"DATA_DIR"`
	DefaultFrequency *string `envconfig:"DEFAULT_FREQUENCY"`
	Alignment        *string `envconfig:"CORRELATION_ALIGNMENT"`
}

func Default() Config {
	sources := []domain.PriceSource{}
	for _, symbol := range []string{"AAPL", "AMZN", "GOOG", "MSFT"} {
		sources = append(sources, domain.PriceSource{
			Symbol: symbol,
			Path:   fmt.Sprintf("individual_stock_5years/%s_data.csv", symbol),
		})
	}
	return Config{
		Server: ServerConfig{Port: 3009},
		Data: DataConfig{
			Sources: sources,
		},
		Dashboard: DashboardConfig{
			MovingAverageWindows: []int{10, 20, 50},
			DefaultFrequency:     string(domain.ResampleMonthly),
		},
		Correlation: CorrelationConfig{
			Alignment: domain.AlignStrict,
		},
	}
}

func configFile() string {
	if p := os.Getenv(PathEnvVar); p != "" {
		return p
	}
	switch strings.ToLower(os.Getenv(EnvVar)) {
	case "dev":
		return "config-dev.yaml"
	case "test":
		return "config-test.yaml"
	}
	return "config.yaml"
}

// Load reads the yaml file picked by the environment, applies env
// overrides and validates. A missing file means defaults
func Load() (*Config, error) {
	return LoadFile(configFile())
}

func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnv() error {
	overrides := envOverrides{}
	if err := envconfig.Process(envPrefix, &overrides); err != nil {
		return fmt.Errorf("failed to load config from env: %w", err)
	}
	if overrides.Port != nil {
		c.Server.Port = *overrides.Port
	}
	if overrides.DataDir != nil {
		c.Data.Dir = *overrides.DataDir
	}
	if overrides.DefaultFrequency != nil {
		c.Dashboard.DefaultFrequency = *overrides.DefaultFrequency
	}
	if overrides.Alignment != nil {
		c.Correlation.Alignment = domain.CorrelationAlignment(*overrides.Alignment)
	}
	return nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := domain.ParseResampleFrequency(c.Dashboard.DefaultFrequency); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	seen := map[string]bool{}
	for _, s := range c.Data.Sources {
		if seen[s.Symbol] {
			return fmt.Errorf("invalid config: symbol %s configured twice", s.Symbol)
		}
		seen[s.Symbol] = true
	}
	return nil
}

// ResolvedSources joins relative paths onto Data.Dir
func (c Config) ResolvedSources() []domain.PriceSource {
	out := make([]domain.PriceSource, len(c.Data.Sources))
	for i, s := range c.Data.Sources {
		if c.Data.Dir != "" && !filepath.IsAbs(s.Path) {
			s.Path = filepath.Join(c.Data.Dir, s.Path)
		}
		out[i] = s
	}
	return out
}

func (c Config) Frequency() domain.ResampleFrequency {
	f, err := domain.ParseResampleFrequency(c.Dashboard.DefaultFrequency)
	if err != nil {
		return domain.ResampleMonthly
	}
	return f
}
