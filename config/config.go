package config

import (
	"datefinder/clock"
	"datefinder/finder"
	"datefinder/oops"
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Env      Env    `yaml:"-"`
	Locale   string `yaml:"locale"`
	MinYear  int    `yaml:"min_year"`
	MaxYear  int    `yaml:"max_year"`
	Addr     string `yaml:"addr"`
	LogLevel string `yaml:"log_level"`
	Format   Format `yaml:"format"`
}

type Env int

const (
	EnvDevelopment Env = iota
	EnvTesting
	EnvProduction
)

func (e Env) IsDevOrTest() bool {
	return e == EnvDevelopment || e == EnvTesting
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

const DefaultMinYear = 1900
const DefaultMaxYear = 2050

var ErrInvalidConfig = errors.New("invalid config")

var Cfg Config

func init() {
	if isTesting {
		Cfg = testingConfig()
		return
	}

	cfg, err := Load(os.Getenv("DATEFINDER_CONFIG"))
	if err != nil {
		panic(err)
	}
	Cfg = cfg
}

func defaultConfig() Config {
	env := EnvDevelopment
	if _, ok := os.LookupEnv("DATEFINDER_ENV"); ok {
		env = EnvProduction
	}
	return Config{
		Env:      env,
		Locale:   "",
		MinYear:  DefaultMinYear,
		MaxYear:  DefaultMaxYear,
		Addr:     ":3000",
		LogLevel: "info",
		Format:   FormatText,
	}
}

// Load layers defaults, the optional YAML file at path, and DATEFINDER_* env overrides
func Load(path string) (Config, error) {
	cfg := defaultConfig()

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return Config{}, oops.Wrap(err) //nolint:exhaustruct
		}
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return Config{}, oops.Wrapf(err, "parsing %s", path) //nolint:exhaustruct
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err //nolint:exhaustruct
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err //nolint:exhaustruct
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if locale, ok := os.LookupEnv("DATEFINDER_LOCALE"); ok {
		cfg.Locale = locale
	}
	if addr, ok := os.LookupEnv("DATEFINDER_ADDR"); ok {
		cfg.Addr = addr
	}
	if level, ok := os.LookupEnv("DATEFINDER_LOG_LEVEL"); ok {
		cfg.LogLevel = level
	}
	for name, target := range map[string]*int{
		"DATEFINDER_MIN_YEAR": &cfg.MinYear,
		"DATEFINDER_MAX_YEAR": &cfg.MaxYear,
	} {
		value, ok := os.LookupEnv(name)
		if !ok {
			continue
		}
		year, err := strconv.Atoi(value)
		if err != nil {
			return oops.Wrapf(ErrInvalidConfig, "%s is not a year: %q", name, value)
		}
		*target = year
	}
	return nil
}

func (c Config) Validate() error {
	if c.MinYear > c.MaxYear {
		return oops.Wrapf(ErrInvalidConfig, "min year %d is after max year %d", c.MinYear, c.MaxYear)
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return oops.Wrapf(ErrInvalidConfig, "unknown format: %q", c.Format)
	}
	return nil
}

func (c Config) FinderOptions(clk clock.Clock, logger finder.Logger) finder.Options {
	return finder.Options{
		Locale:  c.Locale,
		MinYear: c.MinYear,
		MaxYear: c.MaxYear,
		Clock:   clk,
		Logger:  logger,
	}
}

func (c Config) String() string {
	return fmt.Sprintf("locale=%q years=[%d, %d] format=%s", c.Locale, c.MinYear, c.MaxYear, c.Format)
}
