// Package config loads the settings of the background window from a JSON
// file, falling back to built-in defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/iburimskiy/tokenlistooor-pattern/internal/animated"
	"github.com/iburimskiy/tokenlistooor-pattern/internal/palette"
	"github.com/iburimskiy/tokenlistooor-pattern/internal/pattern"
)

const (
	WindowWidth  = 1200
	WindowHeight = 800
	WindowTitle  = "Tokenlistooor - S: save pattern, F1: stats, Esc/Q: quit"

	DefaultPath = "tokenlistooor-pattern.json"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

type Window struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
}

// Config mirrors the JSON file.
type Config struct {
	Window Window `json:"window"`
	// Seed drives every layout; 0 means a new layout per process.
	Seed int64 `json:"seed"`
	// Animate off forces the static background.
	Animate  bool             `json:"animate"`
	Debug    bool             `json:"debug"`
	Colors   palette.Scheme   `json:"colors"`
	Static   pattern.Options  `json:"static"`
	Animated animated.Options `json:"animated"`
}

// NewDefault returns the built-in settings, used when no file exists.
func NewDefault() *Config {
	return &Config{
		Window:   Window{Width: WindowWidth, Height: WindowHeight, Title: WindowTitle},
		Animate:  true,
		Colors:   palette.Brand(),
		Static:   pattern.DefaultOptions(),
		Animated: animated.DefaultOptions(),
	}
}

// Load reads filename over the defaults. A missing file is not an error.
func Load(filename string) (*Config, error) {
	cfg := NewDefault()
	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	defer file.Close()

	dec := json.NewDecoder(file)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", filename, err)
	}
	return cfg, nil
}

// Save writes cfg to filename as indented JSON.
func Save(cfg *Config, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// StaticOptions returns the static generator settings with the shared colors.
func (c *Config) StaticOptions() pattern.Options {
	opts := c.Static
	opts.Colors = c.Colors
	return opts
}

// AnimatedOptions returns the renderer settings with the shared colors and seed.
func (c *Config) AnimatedOptions() animated.Options {
	opts := c.Animated
	opts.Colors = c.Colors
	opts.Seed = c.Seed
	return opts
}

// Validate reports every out-of-range setting, each wrapping ErrInvalid.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		bad("window size %dx%d", c.Window.Width, c.Window.Height)
	}

	s := c.Static
	if s.Width <= 0 || s.Height <= 0 {
		bad("static size %dx%d", s.Width, s.Height)
	}
	if s.CellWidth <= 0 || s.CellHeight <= 0 {
		bad("static cell %dx%d", s.CellWidth, s.CellHeight)
	}
	if s.FontSize <= 0 {
		bad("static font size %v", s.FontSize)
	}
	for i, sp := range s.Spots {
		if sp.Radius <= 0 {
			bad("static spot %d radius %v", i, sp.Radius)
		}
	}
	checkPolicy("static", s.Policy, bad)
	checkRamp("static", s.Ramp, bad)

	a := c.Animated
	if a.FontSize <= 0 {
		bad("animated font size %v", a.FontSize)
	}
	if a.CellScale <= 0 {
		bad("animated cell scale %v", a.CellScale)
	}
	if a.GlowRadius <= 0 {
		bad("animated glow radius %v", a.GlowRadius)
	}
	if a.Easing <= 0 || a.Easing > 1 {
		bad("animated easing %v not in (0,1]", a.Easing)
	}
	if time.Duration(a.Throttle) < 0 {
		bad("animated pointer throttle %v", time.Duration(a.Throttle))
	}
	prev := -1.0
	for i, st := range a.GlowStops {
		if !unit(st.Offset) || st.Offset < prev {
			bad("animated glow stop %d offset %v", i, st.Offset)
		}
		if !unit(st.Alpha) {
			bad("animated glow stop %d alpha %v", i, st.Alpha)
		}
		prev = st.Offset
	}
	checkPolicy("animated", a.Policy, bad)
	checkRamp("animated", a.Ramp, bad)

	return errors.Join(errs...)
}

func checkPolicy(name string, p pattern.Policy, bad func(string, ...any)) {
	for _, pr := range []struct {
		label string
		v     float64
	}{
		{"horizontal", p.Horizontal},
		{"vertical", p.Vertical},
		{"primary", p.Primary},
		{"cluster primary", p.ClusterPrimary},
	} {
		if !unit(pr.v) {
			bad("%s policy %s probability %v", name, pr.label, pr.v)
		}
	}
}

func checkRamp(name string, r pattern.Ramp, bad func(string, ...any)) {
	if !unit(r.Idle) || !unit(r.Floor) || r.Gain < 0 {
		bad("%s opacity ramp %+v", name, r)
	}
}

func unit(v float64) bool { return v >= 0 && v <= 1 }
