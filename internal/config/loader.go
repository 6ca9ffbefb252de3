package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// FileName is the base name of the project config file.
const FileName = ".wle-js-upgrade"

// EnvPrefix prefixes the environment variables that override the config.
const EnvPrefix = "WLE_JS_UPGRADE"

// flagKeys maps config keys to the command line flags that override them.
var flagKeys = map[string]string{
	"parallel":  "parallel",
	"format":    "format",
	"formatter": "formatter",
	"template":  "template",
	"exclude":   "exclude",
	"dry_run":   "dry-run",
	"verbose":   "verbose",
}

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file, environment variables and flags.
	// Priority: defaults → config file → environment variables → flags (flags win)
	Load() (*Config, error)
}

type loader struct {
	rootDir    string
	configFile string
	flags      *pflag.FlagSet
}

// NewLoader creates a loader that looks for the config file in rootDir, or
// reads configFile when it is not empty. Flags that the user set override
// every other source; flags may be nil.
func NewLoader(rootDir, configFile string, flags *pflag.FlagSet) Loader {
	return &loader{
		rootDir:    rootDir,
		configFile: configFile,
		flags:      flags,
	}
}

func (l *loader) Load() (*Config, error) {
	v := viper.New()

	if l.configFile != "" {
		v.SetConfigFile(l.configFile)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(l.rootDir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := l.bindFlags(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine when none was asked for explicitly.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (l *loader) bindFlags(v *viper.Viper) error {
	if l.flags == nil {
		return nil
	}

	for key, name := range flagKeys {
		flag := l.flags.Lookup(name)
		if flag == nil {
			continue
		}

		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}

	return nil
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("parallel", defaults.Parallel)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("formatter", defaults.Formatter)
	v.SetDefault("template", defaults.Template)
	v.SetDefault("exclude", defaults.Exclude)
	v.SetDefault("dry_run", defaults.DryRun)
	v.SetDefault("verbose", defaults.Verbose)
}
