package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName      = "abloomctl"
	configType      = "yaml"
	envPrefix       = "ABLOOMCTL"
	envKeySeparator = "_"

	defaultCapacity = uint64(100000)
	defaultFPRate   = 0.01
	defaultMode     = "deterministic"
)

// cliConfig holds the defaults of the build subcommand, so a flag the
// caller omits falls back to config or environment instead of a value
// hardcoded per-command.
type cliConfig struct {
	Capacity uint64  `mapstructure:"capacity"`
	FPRate   float64 `mapstructure:"fp_rate"`
	Mode     string  `mapstructure:"mode"`
}

// loadConfig reads defaults from cfgFile (if set) or an abloomctl.yaml in
// the working directory, overlaid by ABLOOMCTL_* environment variables. A
// missing abloomctl.yaml is not an error; a cfgFile that cannot be read is.
func loadConfig(cfgFile string) (*cliConfig, error) {
	v := viper.New()

	v.SetDefault("capacity", defaultCapacity)
	v.SetDefault("fp_rate", defaultFPRate)
	v.SetDefault("mode", defaultMode)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg cliConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
