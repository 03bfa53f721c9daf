package config

import "strings"

const (
	// APIKeyEnv names the only environment variable Streamix reads.
	APIKeyEnv = "TMDB_API_KEY"

	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Config represents the full Streamix configuration document.
type Config struct {
	TMDB   TMDBConfig   `yaml:"tmdb"`
	TVMaze TVMazeConfig `yaml:"tvmaze"`
	UI     UIConfig     `yaml:"ui"`
	Log    LogConfig    `yaml:"log"`
}

// TMDBConfig configures the primary provider.
type TMDBConfig struct {
	APIKey       string `yaml:"api_key,omitempty"`
	BaseURL      string `yaml:"base_url" validate:"required,http_url"`
	ImageBaseURL string `yaml:"image_base_url" validate:"required,http_url"`
	Language     string `yaml:"language" validate:"required,language_tag"`
	GenreID      int    `yaml:"genre_id" validate:"required,min=1"`
}

// TVMazeConfig configures the fallback provider.
type TVMazeConfig struct {
	BaseURL      string `yaml:"base_url" validate:"required,http_url"`
	ImageBaseURL string `yaml:"image_base_url" validate:"required,http_url"`
}

// UIConfig holds browser presentation settings.
type UIConfig struct {
	Theme string `yaml:"theme" validate:"required,oneof=dark light"`
}

// LogConfig controls where and how much Streamix logs.
type LogConfig struct {
	Level string `yaml:"level" validate:"required,oneof=debug info warn error"`
	// File receives log output while the browser owns the terminal.
	File string `yaml:"file,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		TMDB: TMDBConfig{
			BaseURL:      "https://api.themoviedb.org/3",
			ImageBaseURL: "https://image.tmdb.org/t/p/original",
			Language:     "en-US",
			GenreID:      28,
		},
		TVMaze: TVMazeConfig{
			BaseURL:      "https://api.tvmaze.com",
			ImageBaseURL: "https://static.tvmaze.com",
		},
		UI:  UIConfig{Theme: ThemeDark},
		Log: LogConfig{Level: "info"},
	}
}

// HasAPIKey reports whether a usable TMDB credential is configured.
func (c Config) HasAPIKey() bool {
	return c.TMDB.APIKey != ""
}

var placeholderKeys = []string{
	"your_tmdb_api_key_here",
	"your-tmdb-api-key",
	"placeholder",
	"none",
	"null",
}

// NormalizeAPIKey trims key and maps well-known placeholder values to "".
func NormalizeAPIKey(key string) string {
	key = strings.TrimSpace(key)
	for _, placeholder := range placeholderKeys {
		if strings.EqualFold(key, placeholder) {
			return ""
		}
	}
	return key
}
