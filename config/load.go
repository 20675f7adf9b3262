package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/sambeau/dcalc/pkg/dcalc/settings"
)

// Load reads configuration from a file with ENV interpolation.
// If configPath is empty, it searches default locations and falls back to
// Defaults when no file exists.
func Load(configPath string, getenv func(string) string) (*Config, error) {
	path, err := resolveConfigPath(configPath, getenv)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return Defaults(), nil
	}
	return LoadFile(path, getenv)
}

// LoadFile reads one configuration file. It is what the watcher calls on
// every change.
func LoadFile(path string, getenv func(string) string) (*Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Interpolate environment variables
	data = interpolateEnv(data, getenv)

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Path = absPath

	if cfg.REPL.History != "" && !filepath.IsAbs(cfg.REPL.History) {
		cfg.REPL.History = filepath.Join(filepath.Dir(absPath), cfg.REPL.History)
	}
	if out := cfg.Logging.Output; out != "" && out != "stderr" && out != "stdout" && !filepath.IsAbs(out) {
		cfg.Logging.Output = filepath.Join(filepath.Dir(absPath), out)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveConfigPath finds the config file to use.
// Search order: explicit path > DCALC_CONFIG env > ./dcalc.yaml > ~/.config/dcalc/dcalc.yaml
// An empty result with a nil error means no file was found.
func resolveConfigPath(explicit string, getenv func(string) string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	// Try DCALC_CONFIG environment variable
	if envPath := getenv("DCALC_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("DCALC_CONFIG file not found: %s", envPath)
		}
		return envPath, nil
	}

	// Try ./dcalc.yaml
	if _, err := os.Stat("dcalc.yaml"); err == nil {
		return "dcalc.yaml", nil
	}

	// Try ~/.config/dcalc/dcalc.yaml
	home, err := os.UserHomeDir()
	if err == nil {
		xdgPath := filepath.Join(home, ".config", "dcalc", "dcalc.yaml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath, nil
		}
	}

	return "", nil
}

// envPattern matches ${VAR} or ${VAR:-default}
var envPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// interpolateEnv replaces ${VAR} and ${VAR:-default} patterns with environment values.
func interpolateEnv(data []byte, getenv func(string) string) []byte {
	return envPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		parts := envPattern.FindSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		varName := string(parts[1])
		value := getenv(varName)

		if value == "" && len(parts) >= 3 && len(parts[2]) > 0 {
			value = string(parts[2])
		}

		return []byte(value)
	})
}

// Validate checks the configuration and reports every problem at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Precision < settings.MinPrecision || cfg.Precision > settings.MaxPrecision {
		errs = append(errs, fmt.Sprintf("invalid precision: %d (must be %d-%d)", cfg.Precision, settings.MinPrecision, settings.MaxPrecision))
	}

	if _, err := settings.ParseForm(cfg.Complex.Input); err != nil {
		errs = append(errs, "complex.input: "+err.Error())
	}
	if _, err := settings.ParseForm(cfg.Complex.Output); err != nil {
		errs = append(errs, "complex.output: "+err.Error())
	}

	if cfg.Display.Locale != "" {
		if _, err := language.Parse(cfg.Display.Locale); err != nil {
			errs = append(errs, fmt.Sprintf("display.locale: %q is not a valid language tag", cfg.Display.Locale))
		}
	}

	if cfg.REPL.RootLimit < 1 {
		errs = append(errs, fmt.Sprintf("repl.root_limit: %d (must be at least 1)", cfg.REPL.RootLimit))
	}

	// Logging validation
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		errs = append(errs, fmt.Sprintf("invalid log level: %s (must be debug, info, warn, or error)", cfg.Logging.Level))
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[cfg.Logging.Format] {
		errs = append(errs, fmt.Sprintf("invalid log format: %s (must be json or text)", cfg.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
