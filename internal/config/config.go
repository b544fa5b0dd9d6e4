package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/yevmiyelerim/yev/internal/model"
)

// Config is the root configuration for yev, stored in ~/.yev/config.json.
// The file supports single-line // comments for documentation purposes.
type Config struct {
	// DataDir holds the JSON data files. Empty = the yev home directory.
	DataDir string `json:"data_dir"`
	// Backend selects the persistence layer: "json" or "sqlite".
	Backend string `json:"backend"`
	// SQLitePath is the database file for the sqlite backend. Empty = <data_dir>/yev.db.
	SQLitePath string `json:"sqlite_path"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level"`
	// Currency is the symbol printed after amounts.
	Currency string `json:"currency"`
	// SeedJobs fill the job catalog the first time no catalog is stored.
	SeedJobs []model.Job `json:"seed_jobs"`
}

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"

	DefaultLogLevel = "warn"
	DefaultCurrency = "₺"

	// HomeEnv overrides the ~/.yev home directory.
	HomeEnv = "YEV_HOME"
)

// DefaultSeedJobs is the catalog a fresh install starts with.
func DefaultSeedJobs() []model.Job {
	return []model.Job{
		{ID: 1, Name: "İnşaat İşçisi", DailyRate: 500},
		{ID: 2, Name: "Boyacı", DailyRate: 600},
		{ID: 3, Name: "Temizlik", DailyRate: 400},
	}
}

// defaultConfig returns a Config pre-filled with sensible defaults.
func defaultConfig() Config {
	return Config{
		Backend:  BackendJSON,
		LogLevel: DefaultLogLevel,
		Currency: DefaultCurrency,
		SeedJobs: DefaultSeedJobs(),
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// yev configuration – ~/.yev/config.json
//
// All settings are optional. Every key can also be set through the
// environment (YEV_DATA_DIR, YEV_BACKEND, YEV_SQLITE_PATH, YEV_LOG_LEVEL,
// YEV_CURRENCY) or a .env file in the working directory.
{
  // Directory for work.json, payments.json and jobs.json.
  // Leave empty to use ~/.yev.
  "data_dir": "",

  // Persistence backend: "json" (default) or "sqlite".
  "backend": "json",

  // SQLite database file, used when backend is "sqlite".
  // Leave empty for <data_dir>/yev.db.
  "sqlite_path": "",

  // Log verbosity on stderr: debug, info, warn, error.
  "log_level": "warn",

  // Symbol printed after money amounts.
  "currency": "₺",

  // Job catalog used the first time yev runs.
  "seed_jobs": [
    {"id": 1, "name": "İnşaat İşçisi", "dailyRate": 500},
    {"id": 2, "name": "Boyacı", "dailyRate": 600},
    {"id": 3, "name": "Temizlik", "dailyRate": 400}
  ]
}
`

// Home returns the yev home directory: $YEV_HOME, or ~/.yev.
func Home() (string, error) {
	if h := os.Getenv(HomeEnv); h != "" {
		return h, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".yev"), nil
}

// LoadEnvFile loads variables from .env files (default: ./.env) without
// overriding variables already set. A missing file is not an error.
func LoadEnvFile(files ...string) {
	_ = godotenv.Load(files...)
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads <home>/config.json, creating it with annotated defaults on first
// run, then applies environment overrides and resolves relative defaults.
func Load() (Config, error) {
	home, err := Home()
	if err != nil {
		return defaultConfig(), err
	}
	cfg, err := LoadFile(filepath.Join(home, "config.json"))
	if err != nil {
		return cfg, err
	}
	cfg.applyEnv()
	cfg.resolve(home)
	return cfg, nil
}

// LoadFile reads a single config file. A missing file is created from the
// annotated template and the defaults are returned.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg := defaultConfig()
	cfg.SeedJobs = nil
	if err := json.Unmarshal(stripLineComments(data), &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	// Fill zero-value fields with built-in defaults so callers always get
	// a usable Config even if the user only partially fills in the file.
	if cfg.Backend == "" {
		cfg.Backend = BackendJSON
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.Currency == "" {
		cfg.Currency = DefaultCurrency
	}
	if cfg.SeedJobs == nil {
		cfg.SeedJobs = DefaultSeedJobs()
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	for env, dst := range map[string]*string{
		"YEV_DATA_DIR":    &c.DataDir,
		"YEV_BACKEND":     &c.Backend,
		"YEV_SQLITE_PATH": &c.SQLitePath,
		"YEV_LOG_LEVEL":   &c.LogLevel,
		"YEV_CURRENCY":    &c.Currency,
	} {
		if v := os.Getenv(env); v != "" {
			*dst = v
		}
	}
}

func (c *Config) resolve(home string) {
	if c.DataDir == "" {
		c.DataDir = home
	}
	if c.SQLitePath == "" {
		c.SQLitePath = filepath.Join(c.DataDir, "yev.db")
	}
}

// Validate reports every problem with the configuration at once.
func (c Config) Validate() error {
	var problems []string

	switch c.Backend {
	case BackendJSON, BackendSQLite:
	default:
		problems = append(problems, fmt.Sprintf("invalid backend %q: must be %q or %q", c.Backend, BackendJSON, BackendSQLite))
	}
	if c.DataDir == "" {
		problems = append(problems, "data directory cannot be empty")
	}
	if c.Backend == BackendSQLite && c.SQLitePath == "" {
		problems = append(problems, "sqlite path cannot be empty when using the sqlite backend")
	}
	seen := map[int64]bool{}
	for i, j := range c.SeedJobs {
		if strings.TrimSpace(j.Name) == "" {
			problems = append(problems, fmt.Sprintf("seed job %d has an empty name", i+1))
		}
		if j.DailyRate <= 0 {
			problems = append(problems, fmt.Sprintf("seed job %q must have a positive daily rate", j.Name))
		}
		if j.ID != 0 && seen[j.ID] {
			problems = append(problems, fmt.Sprintf("seed job id %d is used twice", j.ID))
		}
		seen[j.ID] = true
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
