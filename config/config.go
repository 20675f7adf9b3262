package config

import "github.com/sambeau/dcalc/pkg/dcalc/settings"

// Config represents the complete dcalc configuration
type Config struct {
	Path      string        `yaml:"-"` // Resolved config file, empty when running on defaults
	Precision int           `yaml:"precision"`
	Complex   ComplexConfig `yaml:"complex"`
	Display   DisplayConfig `yaml:"display"`
	REPL      REPLConfig    `yaml:"repl"`
	Logging   LoggingConfig `yaml:"logging"`
}

// ComplexConfig holds complex-number input and output settings
type ComplexConfig struct {
	Input     string `yaml:"input"`      // rectangular or polar
	Output    string `yaml:"output"`     // rectangular or polar
	ShowRoots bool   `yaml:"show_roots"` // list non-real polynomial roots
}

// DisplayConfig holds number display settings
type DisplayConfig struct {
	Grouping bool   `yaml:"grouping"` // thousands separators for plain decimals
	Locale   string `yaml:"locale"`   // BCP 47 tag used for grouping
}

// REPLConfig holds interactive session settings
type REPLConfig struct {
	History   string `yaml:"history"`    // history file, empty = <tmpdir>/.dcalc_history
	RootLimit int    `yaml:"root_limit"` // roots shown when n > 100
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or text
	Output string `yaml:"output"` // stderr, stdout, or file path
}

// Defaults returns a Config with sensible defaults
func Defaults() *Config {
	return &Config{
		Precision: settings.DefaultPrecision,
		Complex: ComplexConfig{
			Input:     "rectangular",
			Output:    "rectangular",
			ShowRoots: true,
		},
		Display: DisplayConfig{
			Locale: "en",
		},
		REPL: REPLConfig{
			RootLimit: settings.DefaultRootLimit,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
			Output: "stderr",
		},
	}
}

// Settings projects the configuration onto a calculator settings value.
// Ans always starts at zero. Call only on a validated config.
func (c *Config) Settings() settings.Settings {
	s := settings.Defaults()
	s.Precision = c.Precision
	s.ComplexInput, _ = settings.ParseForm(c.Complex.Input)
	s.ComplexOutput, _ = settings.ParseForm(c.Complex.Output)
	s.ShowComplexRoots = c.Complex.ShowRoots
	s.Grouping = c.Display.Grouping
	if c.Display.Locale != "" {
		s.Locale = c.Display.Locale
	}
	s.RootLimit = c.REPL.RootLimit
	return s
}
