package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/hupe1980/vecmath"
)

// Config holds the settings shared by all commands. Values come from flags,
// VECMATH_* environment variables and an optional config file, in that order
// of precedence.
type Config struct {
	Epsilon    float64   `mapstructure:"epsilon"`
	Convention string    `mapstructure:"convention"`
	Log        LogConfig `mapstructure:"log"`
}

// LogConfig selects the diagnostics logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("epsilon", vecmath.DefaultEpsilon)
	v.SetDefault("convention", vecmath.AntilinearFirst.String())
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
}

// loadConfig reads the config file (if any) and the environment into v.
func loadConfig(v *viper.Viper, cfgFile string) (Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("vecmath")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("VECMATH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// Options converts the config into per-call vecmath options.
func (c Config) Options() ([]vecmath.Option, error) {
	conv, err := parseConvention(c.Convention)
	if err != nil {
		return nil, err
	}
	if c.Epsilon < 0 {
		return nil, fmt.Errorf("epsilon must not be negative: %g", c.Epsilon)
	}
	return []vecmath.Option{vecmath.WithEpsilon(c.Epsilon), vecmath.WithConvention(conv)}, nil
}

// Logger builds the logger described by the config.
func (c LogConfig) Logger() (*vecmath.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", c.Level)
	}
	switch strings.ToLower(c.Format) {
	case "", "text":
		return vecmath.NewTextLogger(level), nil
	case "json":
		return vecmath.NewJSONLogger(level), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", c.Format)
	}
}

func parseConvention(s string) (vecmath.Convention, error) {
	for _, c := range []vecmath.Convention{vecmath.AntilinearFirst, vecmath.AntilinearSecond} {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown convention %q", s)
}
