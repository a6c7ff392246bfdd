package animated

import "time"

// Point is a position in container coordinates.
type Point struct {
	X, Y float64
}

// Follower trails a target with exponential easing: every Step closes the
// given fraction of the remaining distance.
type Follower struct {
	Pos, Target Point
	Easing      float64
}

// Step advances Pos one frame toward Target and returns it.
func (f *Follower) Step() Point {
	f.Pos.X += (f.Target.X - f.Pos.X) * f.Easing
	f.Pos.Y += (f.Target.Y - f.Pos.Y) * f.Easing
	return f.Pos
}

// Reset puts both Pos and Target at p.
func (f *Follower) Reset(p Point) {
	f.Pos, f.Target = p, p
}

// throttle accepts at most one event per interval.
type throttle struct {
	interval time.Duration
	last     time.Time
}

func (t *throttle) allow(now time.Time) bool {
	if !t.last.IsZero() && now.Sub(t.last) < t.interval {
		return false
	}
	t.last = now
	return true
}

// Smoothstep eases t in [0,1] as t*t*(3-2t).
func Smoothstep(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}
