package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	streamixerrors "github.com/alexisbeaulieu97/streamix/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadOptions controls where Load looks for configuration.
type LoadOptions struct {
	// Path is the YAML file to read. Empty means DefaultPath.
	Path string
	// Required makes a missing file an error. Set when the user passed --config.
	Required bool
	// EnvFile is a dotenv file consulted for TMDB_API_KEY. Empty means ".env".
	EnvFile string
}

// Load assembles the effective configuration: defaults, then the YAML file,
// then the API key from the environment or the dotenv file.
func Load(opts LoadOptions) (*Config, error) {
	path := opts.Path
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	cfg := Default()
	if err := mergeFile(&cfg, path, opts.Required); err != nil {
		return nil, err
	}

	key, err := lookupAPIKey(opts.EnvFile)
	if err != nil {
		return nil, err
	}
	if key != "" {
		cfg.TMDB.APIKey = key
	}
	cfg.TMDB.APIKey = NormalizeAPIKey(cfg.TMDB.APIKey)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ParseConfig reads a configuration file on top of the defaults and validates it.
func ParseConfig(path string) (*Config, error) {
	cfg := Default()
	if err := mergeFile(&cfg, path, true); err != nil {
		return nil, err
	}
	cfg.TMDB.APIKey = NormalizeAPIKey(cfg.TMDB.APIKey)
	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func mergeFile(cfg *Config, path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}
		return streamixerrors.NewParseError(path, 0, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return streamixerrors.NewParseError(path, extractLine(err), err)
	}
	return nil
}

// lookupAPIKey prefers the process environment over the dotenv file.
func lookupAPIKey(envFile string) (string, error) {
	if key, ok := os.LookupEnv(APIKeyEnv); ok && NormalizeAPIKey(key) != "" {
		return key, nil
	}

	if envFile == "" {
		envFile = ".env"
	}
	values, err := godotenv.Read(envFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", streamixerrors.NewParseError(envFile, 0, err)
	}
	return values[APIKeyEnv], nil
}

// DefaultPath returns the per-user configuration file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(dir, "streamix", "config.yaml"), nil
}

// DefaultLogPath returns the log file used while the browser is running.
func DefaultLogPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve cache directory: %w", err)
	}
	return filepath.Join(dir, "streamix", "streamix.log"), nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
