// Package config loads the runtime configuration of the decint command.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Prefix is the prefix of environment variables that override configuration
// values, for example DECINT_LOGGING_SPEC for logging.spec.
const Prefix = "DECINT"

// Config is the top level configuration.
type Config struct {
	Logging Logging
}

// Logging configures the flogging backend.
type Logging struct {
	// Spec is a flogging level specification such as "info" or
	// "rsa=debug:warn".
	Spec string
	// Format is a flogging format string, or "json" or "logfmt".
	// An empty format selects the default console format.
	Format string
}

// Defaults returns the configuration used when nothing is overridden.
func Defaults() Config {
	return Config{
		Logging: Logging{
			Spec:   "info",
			Format: "",
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path
// (skipped when path is empty) and DECINT_* environment variables,
// in increasing order of precedence.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := Defaults()
	v.SetDefault("logging.spec", defaults.Logging.Spec)
	v.SetDefault("logging.format", defaults.Logging.Format)

	v.SetEnvPrefix(Prefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", path)
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	if strings.TrimSpace(conf.Logging.Spec) == "" {
		conf.Logging.Spec = defaults.Logging.Spec
	}
	return &conf, nil
}
