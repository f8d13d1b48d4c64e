// internal/component/ripple.go
package component

import "go-pond-pet/internal/config"

// Ripple is an expanding ring on the pond surface. Alpha is derived from the
// radius so it fades to exactly 0 as the ring reaches its maximum size.
type Ripple struct {
	X, Y      float64
	Radius    float64
	MaxRadius float64
	Alpha     int
}

// NewRipple creates a ripple at (x, y) that will expand to maxRadius.
func NewRipple(x, y, maxRadius float64) Ripple {
	return Ripple{
		X:         x,
		Y:         y,
		Radius:    config.RippleStartRadius,
		MaxRadius: maxRadius,
		Alpha:     config.RippleBaseAlpha,
	}
}

// Step expands the ripple by one tick and reports whether it is still alive.
func (r *Ripple) Step(p *config.Preset) bool {
	r.Radius += config.RippleExpandSpeed
	a := int(config.RippleBaseAlpha * (1 - r.Radius/r.MaxRadius))
	if a < 0 {
		a = 0
	}
	r.Alpha = a
	return r.Radius < r.MaxRadius
}
