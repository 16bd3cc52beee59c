package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid settings")

// Settings is the full runtime configuration. Keys absent from a TOML file
// keep their defaults; keys set explicitly, zero included, replace them.
type Settings struct {
	Window  WindowSettings  `toml:"window"`
	Globe   GlobeSettings   `toml:"globe"`
	Render  RenderSettings  `toml:"render"`
	Texture TextureSettings `toml:"texture"`
	Shaders ShaderSettings  `toml:"shaders"`
}

type WindowSettings struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// GlobeSettings holds the sphere tessellation.
type GlobeSettings struct {
	Stacks int `toml:"stacks"`
	Slices int `toml:"slices"`
}

type RenderSettings struct {
	TickRate int `toml:"tick_rate"` // frames per second
}

type TextureSettings struct {
	Path    string `toml:"path"`
	MaxSize int    `toml:"max_size"` // 0 = no downsampling
}

// ShaderSettings names shader files on disk. Empty paths select the embedded sources.
type ShaderSettings struct {
	Vertex   string `toml:"vertex"`
	Fragment string `toml:"fragment"`
}

// Default returns the settings of the stock globe: a 500x500 window, 8x16
// tessellation and 30 ticks per second.
func Default() Settings {
	return Settings{
		Window: WindowSettings{
			Width:  500,
			Height: 500,
			Title:  "globe",
		},
		Globe: GlobeSettings{
			Stacks: 8,
			Slices: 16,
		},
		Render: RenderSettings{
			TickRate: 30,
		},
		Texture: TextureSettings{
			Path:    "assets/textures/earth.jpg",
			MaxSize: 4096,
		},
	}
}

// Load reads a TOML file over the defaults, expands ~ in paths and validates
// the result. An empty path returns the defaults.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		return s, fmt.Errorf("config path: %w", err)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return s, fmt.Errorf("could not read config file: %w", err)
	}
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return s, fmt.Errorf("%w: unknown keys in %s:\n%s", ErrInvalid, expanded, strict.String())
		}
		return s, fmt.Errorf("could not parse config file %s: %w", expanded, err)
	}

	for _, p := range []*string{&s.Texture.Path, &s.Shaders.Vertex, &s.Shaders.Fragment} {
		if *p == "" {
			continue
		}
		e, err := homedir.Expand(*p)
		if err != nil {
			return s, fmt.Errorf("config path %q: %w", *p, err)
		}
		*p = e
	}

	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Validate checks ranges. The tessellation must fit 16-bit vertex indices.
func (s Settings) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, s.Window.Width, s.Window.Height)
	}
	if s.Globe.Stacks <= 0 || s.Globe.Slices <= 0 {
		return fmt.Errorf("%w: tessellation %dx%d", ErrInvalid, s.Globe.Stacks, s.Globe.Slices)
	}
	if (s.Globe.Stacks+1)*(s.Globe.Slices+1) > 1<<16 {
		return fmt.Errorf("%w: tessellation %dx%d exceeds 16-bit indices", ErrInvalid, s.Globe.Stacks, s.Globe.Slices)
	}
	if s.Render.TickRate <= 0 || s.Render.TickRate > 1000 {
		return fmt.Errorf("%w: tick rate %d", ErrInvalid, s.Render.TickRate)
	}
	if s.Texture.MaxSize < 0 {
		return fmt.Errorf("%w: texture max size %d", ErrInvalid, s.Texture.MaxSize)
	}
	if (s.Shaders.Vertex == "") != (s.Shaders.Fragment == "") {
		return fmt.Errorf("%w: shaders.vertex and shaders.fragment must be set together", ErrInvalid)
	}
	return nil
}

// TickPeriod is the nominal time between frames.
func (s Settings) TickPeriod() time.Duration {
	return time.Second / time.Duration(s.Render.TickRate)
}

var (
	mu      sync.RWMutex
	current = Default()
)

// Current returns the process-wide settings.
func Current() Settings {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// SetCurrent replaces the process-wide settings.
func SetCurrent(s Settings) {
	mu.Lock()
	defer mu.Unlock()
	current = s
}

// GetTickRate returns the current frame rate in ticks per second.
func GetTickRate() int {
	mu.RLock()
	defer mu.RUnlock()
	return current.Render.TickRate
}

// SetTickRate changes the frame rate, clamped to 1..1000.
func SetTickRate(rate int) {
	mu.Lock()
	defer mu.Unlock()

	if rate < 1 {
		rate = 1
	}
	if rate > 1000 {
		rate = 1000
	}
	current.Render.TickRate = rate
}
