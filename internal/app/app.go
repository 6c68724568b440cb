package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pocketdex/pocketdex/internal/config"
	"github.com/pocketdex/pocketdex/internal/nav"
	"github.com/pocketdex/pocketdex/internal/pokeapi"
	"github.com/pocketdex/pocketdex/internal/prefs"
	"github.com/pocketdex/pocketdex/internal/state"
	"github.com/pocketdex/pocketdex/internal/ui"
)

// Options configure the pocketdex application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/pocketdex/prefs.toml
	StartID    int    // overrides the remembered id when positive
}

// Run boots the pocketdex TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	// The TUI owns stdout, so logs go to a file.
	logger := newLogger(cfg.LogPath())
	defer func() { _ = logger.Sync() }()
	sugar := logger.Sugar()
	sugar.Infof("starting pocketdex, api_base: %s, window: [%d,%d]",
		cfg.APIBase, cfg.Bounds.Min, cfg.Bounds.Max)

	client, err := pokeapi.NewClient(cfg.APIBase, cfg.RequestTimeout, sugar)
	if err != nil {
		return fmt.Errorf("init pokeapi client: %w", err)
	}

	store := &state.Store{}

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Store:     store,
		Bounds:    cfg.Bounds,
		StartID:   chooseStartID(opts.StartID, userPrefs.LastID, cfg.Bounds),
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		LogPath:   cfg.LogPath(),
	}
	return ui.Run(uiOpts)
}

// chooseStartID picks the first id to show: an explicit flag wins, then the
// id remembered from the previous session, then the window's minimum.
func chooseStartID(flagID, rememberedID int, bounds nav.Bounds) int {
	switch {
	case flagID > 0:
		return bounds.Clamp(flagID)
	case rememberedID > 0:
		return bounds.Clamp(rememberedID)
	default:
		return bounds.Min
	}
}

// newLogger builds a file-backed zap logger, degrading to a no-op logger
// when the log location is unusable.
func newLogger(path string) *zap.Logger {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	logger, err := cfg.Build(zap.AddStacktrace(zap.FatalLevel))
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
