package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/danielhkuo/cookie-todo/store"
)

type Config struct {
	Port            int    `env:"PORT" envDefault:"3318"`
	CookieMaxAge    int    `env:"COOKIE_MAX_AGE" envDefault:"31536000"`
	CookieSecure    bool   `env:"COOKIE_SECURE" envDefault:"false"`
	IDPolicy        string `env:"ID_POLICY" envDefault:"counter"`
	MalformedPolicy string `env:"MALFORMED_POLICY" envDefault:"fail"`
	LogFormat       string `env:"LOG_FORMAT" envDefault:"text"`
}

// StoreOptions converts the cookie settings for store.New.
// The config must have passed ParseFlags validation.
func (c Config) StoreOptions() store.Options {
	return store.Options{
		MaxAge:    c.CookieMaxAge,
		Secure:    c.CookieSecure,
		Malformed: store.MalformedPolicy(c.MalformedPolicy),
		IDs:       store.IDPolicy(c.IDPolicy),
	}
}

// LoadDotEnv copies variables from a .env file into the environment.
// Variables already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ParseFlags reads the environment, then lets flags override it
func ParseFlags(args []string) (Config, error) {
	return parse(args, nil)
}

// parse reads environ instead of the process environment when it is non-nil
func parse(args []string, environ map[string]string) (Config, error) {
	var cfg Config

	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("cookie-todo", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.IntVar(&cfg.CookieMaxAge, "cookie-max-age", cfg.CookieMaxAge, "Entry cookie lifetime in seconds (0 for session cookies)")
	fs.BoolVar(&cfg.CookieSecure, "secure", cfg.CookieSecure, "Only send cookies over HTTPS")
	fs.StringVar(&cfg.IDPolicy, "id-policy", cfg.IDPolicy, "Entry id allocation: counter or count")
	fs.StringVar(&cfg.MalformedPolicy, "malformed", cfg.MalformedPolicy, "Malformed cookies: fail or skip")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log output: text or json")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.CookieMaxAge < 0 {
		return Config{}, errors.New("cookie max age must not be negative")
	}
	if _, err := store.ParseIDPolicy(cfg.IDPolicy); err != nil {
		return Config{}, err
	}
	if _, err := store.ParseMalformedPolicy(cfg.MalformedPolicy); err != nil {
		return Config{}, err
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return Config{}, fmt.Errorf("invalid log format %q (want text or json)", cfg.LogFormat)
	}

	return cfg, nil
}
