// Package config loads the migration settings from defaults, the project
// config file, the environment and command line flags.
package config

// DefaultFormatter is the command run on every rewritten file.
const DefaultFormatter = "npx prettier --write"

// Config represents the complete wle-js-upgrade configuration.
// It can be loaded from .wle-js-upgrade.yaml with environment variable overrides.
type Config struct {
	Parallel  int      `yaml:"parallel" mapstructure:"parallel"`   // files migrated at once
	Format    bool     `yaml:"format" mapstructure:"format"`       // run the formatter on rewritten files
	Formatter string   `yaml:"formatter" mapstructure:"formatter"` // command line, the file path is appended
	Template  string   `yaml:"template" mapstructure:"template"`   // entrypoint template, empty for the bundled one
	Exclude   []string `yaml:"exclude" mapstructure:"exclude"`     // glob patterns to skip
	DryRun    bool     `yaml:"dry_run" mapstructure:"dry_run"`
	Verbose   bool     `yaml:"verbose" mapstructure:"verbose"`
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Parallel:  1,
		Format:    true,
		Formatter: DefaultFormatter,
		Exclude:   []string{},
	}
}
