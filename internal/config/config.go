package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/pocketdex/pocketdex/internal/nav"
)

// Config captures the settings pocketdex reads at startup.
type Config struct {
	APIBase        string
	RequestTimeout time.Duration
	Bounds         nav.Bounds
	LogDir         string
}

const (
	defaultConfigPath  = "~/.config/pocketdex/config.toml"
	defaultLogDir      = "~/.local/share/pocketdex/logs"
	defaultAPIBase     = "https://pokeapi.co/api/v2"
	defaultTimeoutSecs = 10
)

// Load locates and parses the pocketdex config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		APIBase:        defaultAPIBase,
		RequestTimeout: defaultTimeoutSecs * time.Second,
		Bounds:         nav.DefaultBounds(),
		LogDir:         mustExpand(defaultLogDir),
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBase            string `toml:"api_base"`
		RequestTimeoutSecs int    `toml:"request_timeout_secs"`
		MinID              int    `toml:"min_id"`
		MaxID              int    `toml:"max_id"`
		LogDir             string `toml:"log_dir"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if base := strings.TrimSpace(raw.APIBase); base != "" {
		cfg.APIBase = base
	}
	if raw.RequestTimeoutSecs > 0 {
		cfg.RequestTimeout = time.Duration(raw.RequestTimeoutSecs) * time.Second
	}
	if raw.MinID > 0 {
		cfg.Bounds.Min = raw.MinID
	}
	if raw.MaxID > 0 && raw.MaxID >= cfg.Bounds.Min {
		cfg.Bounds.Max = raw.MaxID
	}
	if dir := strings.TrimSpace(raw.LogDir); dir != "" {
		cfg.LogDir = mustExpand(dir)
	}

	return cfg, nil
}

// LogPath returns the path of the application log file.
func (c Config) LogPath() string {
	dir := c.LogDir
	if strings.TrimSpace(dir) == "" {
		dir = mustExpand(defaultLogDir)
	}
	return filepath.Join(dir, "pocketdex.log")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
