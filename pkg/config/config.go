package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	gommon "github.com/labstack/gommon/log"

	"cardsmith/pkg/inference"
)

// ProviderGemini generates card stats with the same Gemini client used for artwork.
const ProviderGemini = "gemini"

type Config struct {
	Addr      string
	StaticDir string

	GeminiAPIKey  string
	GeminiBaseURL string
	TextModel     string
	ImageModel    string

	// StatsProvider is either ProviderGemini or a key of inference.Providers.
	StatsProvider string
	StatsAPIKey   string
	StatsBaseURL  string
	StatsModel    string

	TextTimeout  time.Duration
	ImageTimeout time.Duration
	ArtworkWebP  bool

	LogLevel log.Level
}

func Load() (Config, error) {
	c := Config{
		Addr:          ":" + envOr("PORT", "5000"),
		StaticDir:     envOr("STATIC_DIR", "static"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL: os.Getenv("GEMINI_BASE_URL"),
		TextModel:     envOr("GEMINI_TEXT_MODEL", inference.DefaultGeminiTextModel),
		ImageModel:    envOr("GEMINI_IMAGE_MODEL", inference.DefaultGeminiImageModel),
		StatsProvider: strings.ToLower(envOr("STATS_PROVIDER", ProviderGemini)),
		TextTimeout:   60 * time.Second,
		ImageTimeout:  120 * time.Second,
	}

	if c.GeminiAPIKey == "" {
		return Config{}, fmt.Errorf("GEMINI_API_KEY is required")
	}

	if c.StatsProvider != ProviderGemini {
		preset, ok := inference.Providers[c.StatsProvider]
		if !ok {
			return Config{}, fmt.Errorf("invalid STATS_PROVIDER %q: want %s", c.StatsProvider, strings.Join(providerNames(), ", "))
		}
		keyVar := strings.ToUpper(c.StatsProvider) + "_API_KEY"
		c.StatsAPIKey = os.Getenv(keyVar)
		if c.StatsAPIKey == "" {
			return Config{}, fmt.Errorf("%s is required when STATS_PROVIDER=%s", keyVar, c.StatsProvider)
		}
		c.StatsBaseURL = envOr("STATS_BASE_URL", preset.BaseURL)
		c.StatsModel = envOr("STATS_MODEL", preset.Model)
	}

	var err error
	if c.TextTimeout, err = durationOr("TEXT_TIMEOUT", c.TextTimeout); err != nil {
		return Config{}, err
	}
	if c.ImageTimeout, err = durationOr("IMAGE_TIMEOUT", c.ImageTimeout); err != nil {
		return Config{}, err
	}

	if v := os.Getenv("CARD_ARTWORK_WEBP"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid CARD_ARTWORK_WEBP %q: %w", v, err)
		}
		c.ArtworkWebP = b
	}

	level, err := log.ParseLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	c.LogLevel = level

	return c, nil
}

// EchoLevel maps LogLevel onto the level used by echo's logger.
func (c Config) EchoLevel() gommon.Lvl {
	switch {
	case c.LogLevel <= log.DebugLevel:
		return gommon.DEBUG
	case c.LogLevel <= log.InfoLevel:
		return gommon.INFO
	case c.LogLevel <= log.WarnLevel:
		return gommon.WARN
	default:
		return gommon.ERROR
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func providerNames() []string {
	names := []string{ProviderGemini}
	for name := range inference.Providers {
		names = append(names, name)
	}
	sort.Strings(names[1:])
	return names
}
