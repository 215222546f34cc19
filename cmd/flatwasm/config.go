package main

import (
	"fmt"

	"github.com/mstoykov/envconfig"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// config is consolidated from the defaults, then the environment, then the command line flags.
type config struct {
	LogLevel    string `envconfig:"FLATWASM_LOG_LEVEL"`
	LogFormat   string `envconfig:"FLATWASM_LOG_FORMAT"`
	NoColor     bool   `envconfig:"FLATWASM_NO_COLOR"`
	Parallelism int    `envconfig:"FLATWASM_PARALLELISM"`
}

func defaultConfig() config {
	return config{LogLevel: "info", LogFormat: "text"}
}

func rootFlagSet(c *config) *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: trace, debug, info, warn or error")
	flags.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log output format: text or json")
	flags.BoolVar(&c.NoColor, "no-color", c.NoColor, "disable colored output")
	flags.IntVarP(&c.Parallelism, "parallel", "p", c.Parallelism,
		"maximum number of functions lowered concurrently, defaults to GOMAXPROCS")
	return flags
}

// consolidate returns the environment configuration overridden by the flags that were set.
func consolidate(flags *pflag.FlagSet, fromFlags config, lookupEnv func(string) (string, bool)) (config, error) {
	c := defaultConfig()
	if err := envconfig.Process("", &c, lookupEnv); err != nil {
		return c, err
	}
	if flags.Changed("log-level") {
		c.LogLevel = fromFlags.LogLevel
	}
	if flags.Changed("log-format") {
		c.LogFormat = fromFlags.LogFormat
	}
	if flags.Changed("no-color") {
		c.NoColor = fromFlags.NoColor
	}
	if flags.Changed("parallel") {
		c.Parallelism = fromFlags.Parallelism
	}
	return c, c.validate()
}

func (c config) validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported log format %q", c.LogFormat)
	}
	if c.Parallelism < 0 {
		return fmt.Errorf("parallel must not be negative: %d", c.Parallelism)
	}
	return nil
}
