package animated

import (
	"time"

	"github.com/iburimskiy/tokenlistooor-pattern/internal/palette"
	"github.com/iburimskiy/tokenlistooor-pattern/internal/pattern"
)

// Options tunes the animated background.
type Options struct {
	FontSize   float64        `json:"font_size"`
	CellScale  float64        `json:"cell_scale"`
	GlowRadius float64        `json:"glow_radius"`
	GlowStops  []GlowStop     `json:"glow_stops"`
	Easing     float64        `json:"easing"`
	Throttle   Duration       `json:"pointer_throttle"`
	Policy     pattern.Policy `json:"policy"`
	Ramp       pattern.Ramp   `json:"ramp"`
	Colors     palette.Scheme `json:"-"`
	// Seed drives glyph placement; 0 draws from the clock.
	Seed int64 `json:"-"`
}

// DefaultOptions matches the pre-rendered look with a 300-unit glow.
func DefaultOptions() Options {
	return Options{
		FontSize:   16,
		CellScale:  1.5,
		GlowRadius: 300,
		GlowStops: []GlowStop{
			{Offset: 0, Alpha: 0.25},
			{Offset: 0.3, Alpha: 0.15},
			{Offset: 0.7, Alpha: 0.05},
			{Offset: 1, Alpha: 0},
		},
		Easing:   0.1,
		Throttle: Duration(16 * time.Millisecond),
		Policy:   pattern.AnimatedPolicy(),
		Ramp:     pattern.Ramp{Idle: 0.3, Floor: 0.3, Gain: 0.7},
		Colors:   palette.Brand(),
	}
}

// Duration is a time.Duration that reads and writes as "16ms".
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}
