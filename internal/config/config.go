package config

import (
	"fmt"
	"strings"

	"github.com/limaJavier/orblocks/pkg/instance"
	"github.com/limaJavier/orblocks/pkg/model"
	"github.com/limaJavier/orblocks/pkg/report"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "ORBLOCKS"

type Config struct {
	Capacity      int    `mapstructure:"capacity"`
	Cleanup       int    `mapstructure:"cleanup"`
	Workers       int    `mapstructure:"workers"`
	SurgeonLayout string `mapstructure:"surgeon-layout"`
	Format        string `mapstructure:"format"`
	LogLevel      string `mapstructure:"log-level"`
	JsonLogs      bool   `mapstructure:"json-logs"`
}

// Load resolves settings with the precedence flag > environment (ORBLOCKS_*) > config file > default.
// An empty file skips reading a config file
func Load(flags *pflag.FlagSet, file string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("capacity", model.DefaultCapacityMinutes)
	v.SetDefault("cleanup", model.DefaultCleanupMinutes)
	v.SetDefault("workers", 1)
	v.SetDefault("surgeon-layout", instance.DayMajor.String())
	v.SetDefault("format", string(report.CSV))
	v.SetDefault("log-level", "info")
	v.SetDefault("json-logs", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func (c *Config) Model() model.Config {
	return model.Config{
		CapacityMinutes: c.Capacity,
		CleanupMinutes:  c.Cleanup,
	}
}

func (c *Config) Layout() (instance.Layout, error) {
	return instance.ParseLayout(c.SurgeonLayout)
}

func (c *Config) OutputFormat() (report.Format, error) {
	return report.ParseFormat(c.Format)
}

// Validate checks every setting that can be checked before the instance is read
func (c *Config) Validate() error {
	if err := c.Model().Validate(); err != nil {
		return err
	}
	if _, err := c.Layout(); err != nil {
		return err
	}
	if _, err := c.OutputFormat(); err != nil {
		return err
	}
	return nil
}
