package config

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Config holds the command-line flags, each of which can also come from the
// environment.
type Config struct {
	Version kong.VersionFlag `short:"v" name:"version" help:"Print the version and exit."`
	// Dir is the folder holding the language manifest and the PO files
	Dir string `env:"LINTACCEL_DIR" short:"d" name:"dir" default:"po" help:"Folder holding the language manifest and the PO files."`
	// Manifest is the file name, relative to Dir, listing one language code per line
	Manifest string `env:"LINTACCEL_MANIFEST" short:"m" name:"manifest" default:"LINGUAS" help:"Language manifest file name, relative to --dir."`
	// Locale selects the language of the diagnostics
	Locale string `env:"LINTACCEL_LOCALE" short:"l" name:"locale" default:"en" help:"Language of the diagnostics (en, fr)."`
	// LogEnv switches the logger between development and production output
	LogEnv string `env:"LINTACCEL_LOG_ENV" name:"log-env" default:"development" enum:"development,production" help:"Logger configuration: development or production."`
}

// Load reads an optional .env file, then parses args against the environment
// and validates the result.
func Load(args []string, version string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional, variables may come from the calling environment.
	}

	cfg := &Config{}
	parser, err := kong.New(cfg,
		kong.Name("lintaccel"),
		kong.Description("Check PO files for conflicting keyboard accelerators."),
		kong.Vars{"version": version},
	)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if _, err := parser.Parse(args); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Dir) == "" {
		return fmt.Errorf("config: --dir is required and cannot be empty")
	}
	if strings.TrimSpace(c.Manifest) == "" {
		return fmt.Errorf("config: --manifest is required and cannot be empty")
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("config: invalid --locale (%q): %w", c.Locale, err)
	}
	return nil
}
