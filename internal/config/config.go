package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/broadlist/decorator"
)

const appName = "broadlist"

type Config struct {
	List    ListConfig    `koanf:"list"`
	Spacing SpacingConfig `koanf:"spacing"`
	Log     LogConfig     `koanf:"log"`
	Store   StoreConfig   `koanf:"store"`
}

// ListConfig holds list behavior settings.
type ListConfig struct {
	LastItemRefresh *bool `koanf:"last_item_refresh"` // rebind the previous last row on append (default: true)
	ScrollMargin    *int  `koanf:"scroll_margin"`     // rows kept visible around the selection (default: 2)
}

// SpacingConfig holds the spacing decorator settings, in cells.
type SpacingConfig struct {
	Spacing       int    `koanf:"spacing"`         // both axes unless overridden
	Horizontal    *int   `koanf:"horizontal"`      // default: spacing
	Vertical      *int   `koanf:"vertical"`        // default: spacing
	Orientation   string `koanf:"orientation"`     // "vertical", "horizontal" or "grid" (default: "vertical")
	TopOrLeft     *bool  `koanf:"top_or_left"`     // space the leading edge (default: true)
	BottomOrRight *bool  `koanf:"bottom_or_right"` // space the trailing edge (default: true)
	Bottom        *int   `koanf:"bottom"`          // bottom spacing of the last row only
	GridSpan      int    `koanf:"grid_span"`       // cells per row in grid mode (default: 1)
}

// LogConfig holds logging settings.
type LogConfig struct {
	File  string `koanf:"file"`  // empty disables logging
	Level string `koanf:"level"` // "debug", "info", "warn", "error" (default: "info")
}

// StoreConfig holds persistence settings.
type StoreConfig struct {
	Path string `koanf:"path"` // sqlite file (default: $XDG_DATA_HOME/broadlist/broadlist.db)
}

func Load() (*Config, error) {
	return loadFrom(getConfigPaths())
}

// loadFrom loads the existing files among paths, later files overriding
// earlier ones.
func loadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Log.File = expandPath(cfg.Log.File)
	cfg.Store.Path = expandPath(cfg.Store.Path)
	cfg.Spacing.Orientation = strings.ToLower(strings.TrimSpace(cfg.Spacing.Orientation))

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/broadlist/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// LastItemRefresh reports whether last-item refresh mode is on.
func (c *Config) LastItemRefresh() bool {
	if c.List.LastItemRefresh == nil {
		return true
	}
	return *c.List.LastItemRefresh
}

// ScrollMargin returns the scroll margin with its default applied.
func (c *Config) ScrollMargin() int {
	if c.List.ScrollMargin == nil || *c.List.ScrollMargin < 0 {
		return 2
	}
	return *c.List.ScrollMargin
}

// SpacingDecorator converts the spacing section into a decorator.
func (c *Config) SpacingDecorator() decorator.Spacing {
	s := c.Spacing
	out := decorator.Spacing{
		Horizontal:        max(s.Spacing, 0),
		Vertical:          max(s.Spacing, 0),
		SkipTopOrLeft:     s.TopOrLeft != nil && !*s.TopOrLeft,
		SkipBottomOrRight: s.BottomOrRight != nil && !*s.BottomOrRight,
		GridSpan:          max(s.GridSpan, 1),
	}
	if s.Horizontal != nil {
		out.Horizontal = max(*s.Horizontal, 0)
	}
	if s.Vertical != nil {
		out.Vertical = max(*s.Vertical, 0)
	}
	if s.Bottom != nil {
		bottom := max(*s.Bottom, 0)
		out.Bottom = &bottom
	}

	switch s.Orientation {
	case "horizontal":
		out.Orientation = decorator.Horizontal
	case "grid", "vertical_grid":
		out.Orientation = decorator.VerticalGrid
	default:
		out.Orientation = decorator.Vertical
	}
	return out
}

// StorePath returns the sqlite file path, creating the default data
// directory when no path is configured.
func (c *Config) StorePath() (string, error) {
	if c.Store.Path != "" {
		return c.Store.Path, nil
	}
	return xdg.DataFile(filepath.Join(appName, appName+".db"))
}
