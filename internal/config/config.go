package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"pingparser/internal/format"
)

// EnvPrefix is prepended to every environment setting
const EnvPrefix = "PINGPARSER"

// Config holds all configuration for one invocation
type Config struct {
	Template    *string // nil when no +FORMAT argument was given
	HistoryPath string
	Retention   time.Duration // zero keeps recorded summaries forever
	ChartPath   string
	LogLevel    string
}

// Load reads the optional environment settings into a Config. The template
// is set separately from the positional arguments.
func Load(v *viper.Viper) Config {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("log_level", "warn")
	v.SetDefault("history", "")
	v.SetDefault("history_retention", 90*24*time.Hour)
	v.SetDefault("chart", "")

	return Config{
		HistoryPath: v.GetString("history"),
		Retention:   v.GetDuration("history_retention"),
		ChartPath:   v.GetString("chart"),
		LogLevel:    v.GetString("log_level"),
	}
}

// FormatString returns the template to render with
func (c *Config) FormatString() string {
	if c.Template == nil {
		return format.DefaultTemplate
	}
	return *c.Template
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	if c.Retention < 0 {
		return fmt.Errorf("history retention must not be negative")
	}
	if c.ChartPath != "" && c.HistoryPath == "" {
		return fmt.Errorf("%s_CHART requires %s_HISTORY to be set", EnvPrefix, EnvPrefix)
	}
	return nil
}
