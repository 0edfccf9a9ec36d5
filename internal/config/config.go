package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Execution settings
	TimeoutMS int

	// Report output settings
	ReportFile string
	ReportDir  string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Count          int
	TimeoutMS      int
	Seed           int64
	MaxStdinLen    int
	MaxArgs        int
	CompareStatus  bool
	CompareStdout  bool
	CompareStderr  bool
	Silent         bool
	SuppressErrors bool
	Verbose        bool
	NoColor        bool
}

// New creates a new Config with defaults, then applies overrides from
// the environment (a .env file is honored when present).
func New() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		TimeoutMS:  DefaultTimeoutMS,
		ReportFile: DefaultReportFile,
		ReportDir:  DefaultReportDir,
		Flags: Flags{
			MaxStdinLen:   DefaultMaxStdinLen,
			MaxArgs:       DefaultMaxArgs,
			CompareStatus: true,
			CompareStdout: true,
			CompareStderr: true,
		},
	}
	cfg.applyEnv()
	return cfg
}

// Load creates a config and applies flags
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Flags = flags

	// Apply flag overrides
	if flags.TimeoutMS > 0 {
		cfg.TimeoutMS = flags.TimeoutMS
	}

	return cfg
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DTR_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			c.TimeoutMS = ms
		}
	}
	if v := os.Getenv("DTR_REPORT_DIR"); v != "" {
		c.ReportDir = v
	}
	if v := os.Getenv("DTR_REPORT_FILE"); v != "" {
		c.ReportFile = v
	}
}

// Timeout returns the per-subprocess wall-clock bound.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// GetReportPath returns the full path to the campaign report JSON file.
// Resolves to an absolute path so run and report always read/write the
// same file regardless of cwd.
func (c *Config) GetReportPath() string {
	p := filepath.Join(c.ReportDir, c.ReportFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
