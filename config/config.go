// Package config holds runtime configuration for the hand census tools,
// backed by viper so that every setting can come from a flag or an
// environment variable (HANDCENSUS_ prefix).
package config

import (
	"flag"
	"strings"

	"github.com/spf13/viper"
)

// Defaults for the analyzer. The tile distribution and hand size are fixed
// by the game and deliberately not configurable here.
const (
	DefaultReportEvery = 10000
)

// Config wraps a viper instance. The zero value is not usable; call
// DefaultConfig.
type Config struct {
	v *viper.Viper
}

// DefaultConfig returns a Config with defaults and environment binding in
// place.
func DefaultConfig() *Config {
	v := viper.New()
	v.SetDefault("wordfile", "")
	v.SetDefault("report-every", DefaultReportEvery)
	v.SetDefault("json", false)
	v.SetDefault("threads", 0)
	v.SetDefault("debug", false)
	v.SetEnvPrefix("handcensus")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &Config{v: v}
}

// Load parses command-line arguments into the config. Only flags that were
// actually set override environment values. The first positional argument,
// if any, is the word-list path.
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("handcensus", flag.ContinueOnError)
	fs.Int("report-every", DefaultReportEvery,
		"hands classified between progress updates; 1000 or less disables updates")
	fs.Bool("json", false, "render the report as JSON")
	fs.Int("threads", 0, "worker goroutines; 0 means the CPU count")
	fs.Bool("debug", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		c.v.Set(f.Name, f.Value.String())
	})
	if fs.NArg() > 0 {
		c.v.Set("wordfile", fs.Arg(0))
	}
	return nil
}

// GetString returns a string setting.
func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

// GetInt returns an integer setting.
func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

// GetBool returns a boolean setting.
func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}
