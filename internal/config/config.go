// Package config reads runtime settings from the environment.
// A .env file, when present, is loaded by the CLI before Load runs.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/words"
)

// Config is the full set of knobs for both front ends.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Game shape
	WordLength int    `env:"WORD_LENGTH" envDefault:"5"`
	MaxTries   int    `env:"MAX_TRIES" envDefault:"0"` // 0 = word length + 1
	Scoring    string `env:"WORDLE_SCORING" envDefault:"simple"`
	Picker     string `env:"WORDLE_PICKER" envDefault:"random"`
	DailySalt  string `env:"DAILY_SALT" envDefault:"local_dev_salt"`

	// Word source
	AnswersFile string `env:"WORDS_ANSWERS_FILE"`
	AllowedFile string `env:"WORDS_ALLOWED_FILE"`
	WordsDB     string `env:"WORDS_DB"`

	// HTTP
	Port           string        `env:"PORT" envDefault:"5175"`
	JWTSecret      string        `env:"JWT_SECRET" envDefault:"dev_secret_change_me"`
	TokenTTL       time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	CookieName     string        `env:"COOKIE_NAME" envDefault:"wordle_game"`
	CookieSecure   bool          `env:"COOKIE_SECURE" envDefault:"false"`
	ClientOrigin   string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	SessionIdleTTL time.Duration `env:"SESSION_IDLE_TTL" envDefault:"2h"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects out-of-range values and unknown enum names.
func (c Config) Validate() error {
	var errs []error
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("invalid LOG_LEVEL %q", c.LogLevel))
	}
	if c.WordLength < 2 || c.WordLength > 12 {
		errs = append(errs, fmt.Errorf("WORD_LENGTH must be 2-12, got %d", c.WordLength))
	}
	if c.MaxTries < 0 || c.MaxTries > game.MaxTriesLimit {
		errs = append(errs, fmt.Errorf("MAX_TRIES must be 0-%d, got %d", game.MaxTriesLimit, c.MaxTries))
	}
	if _, err := game.ParseScoring(c.Scoring); err != nil {
		errs = append(errs, fmt.Errorf("invalid WORDLE_SCORING %q: %w", c.Scoring, err))
	}
	if c.Picker != "random" && c.Picker != "daily" {
		errs = append(errs, fmt.Errorf("WORDLE_PICKER must be random or daily, got %q", c.Picker))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("TOKEN_TTL must be positive"))
	}
	return errors.Join(errs...)
}

// Tries returns the configured attempt count, defaulting to length+1.
func (c Config) Tries() int {
	if c.MaxTries > 0 {
		return c.MaxTries
	}
	return c.WordLength + 1
}

// ScoringMode returns the parsed scoring mode. Validate has already run.
func (c Config) ScoringMode() game.Scoring {
	m, _ := game.ParseScoring(c.Scoring)
	return m
}

// WordOptions maps the word-source settings for words.Load.
func (c Config) WordOptions() words.Options {
	return words.Options{
		Length:      c.WordLength,
		AnswersFile: c.AnswersFile,
		AllowedFile: c.AllowedFile,
		DB:          c.WordsDB,
	}
}
