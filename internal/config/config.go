package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	defaultPort                = 8080
	defaultCoefficientSaturday = "1.5"
	defaultCoefficientSunday   = "2"
	defaultLanguages           = "en:English,de:German"
	fallbackLanguage           = "en"
)

var ErrInvalidLanguages = errors.New("invalid LANGUAGES value")

// Language is one entry of the supported user interface languages.
type Language struct {
	Code  string
	Label string
}

// Config holds the process-wide settings of the service.
//
// Supported env vars:
//   - PORT (default: 8080)
//   - DEFAULT_COEFFICIENT_SATURDAY (default: 1.5)
//   - DEFAULT_COEFFICIENT_SUNDAY (default: 2)
//   - LANGUAGES, comma separated code:label pairs (default: en:English,de:German)
//   - DYNAMODB_CREATE_TABLES, create missing tables on startup (default: false)
//
// Storage settings are read by the database and repository packages.
type Config struct {
	Port                       int
	DefaultCoefficientSaturday decimal.Decimal
	DefaultCoefficientSunday   decimal.Decimal
	SupportedLanguages         []Language
	CreateTables               bool
}

// Load reads the configuration from the environment. A .env file is picked
// up by the godotenv autoload import in the binaries.
func Load() (Config, error) {
	port, err := strconv.Atoi(getenvDefault("PORT", strconv.Itoa(defaultPort)))
	if err != nil {
		return Config{}, fmt.Errorf("invalid PORT: %w", err)
	}
	saturday, err := decimal.NewFromString(getenvDefault("DEFAULT_COEFFICIENT_SATURDAY", defaultCoefficientSaturday))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DEFAULT_COEFFICIENT_SATURDAY: %w", err)
	}
	sunday, err := decimal.NewFromString(getenvDefault("DEFAULT_COEFFICIENT_SUNDAY", defaultCoefficientSunday))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DEFAULT_COEFFICIENT_SUNDAY: %w", err)
	}
	langs, err := ParseLanguages(getenvDefault("LANGUAGES", defaultLanguages))
	if err != nil {
		return Config{}, err
	}
	createTables, err := strconv.ParseBool(getenvDefault("DYNAMODB_CREATE_TABLES", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DYNAMODB_CREATE_TABLES: %w", err)
	}
	return Config{
		Port:                       port,
		DefaultCoefficientSaturday: saturday,
		DefaultCoefficientSunday:   sunday,
		SupportedLanguages:         langs,
		CreateTables:               createTables,
	}, nil
}

// ParseLanguages parses "en:English,de:German". An empty string yields no
// languages.
func ParseLanguages(raw string) ([]Language, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var out []Language
	for _, part := range strings.Split(raw, ",") {
		code, label, ok := strings.Cut(strings.TrimSpace(part), ":")
		code = strings.TrimSpace(code)
		if !ok || code == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLanguages, part)
		}
		out = append(out, Language{Code: code, Label: strings.TrimSpace(label)})
	}
	return out, nil
}

// DefaultLanguage is the first supported language, or "en".
func (c Config) DefaultLanguage() string {
	if len(c.SupportedLanguages) > 0 {
		return c.SupportedLanguages[0].Code
	}
	return fallbackLanguage
}

func (c Config) SupportsLanguage(code string) bool {
	for _, l := range c.SupportedLanguages {
		if l.Code == code {
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
