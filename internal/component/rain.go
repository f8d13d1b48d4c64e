// internal/component/rain.go
package component

import "go-pond-pet/internal/config"

// RainDrop is a falling streak spawned at the top of the window.
type RainDrop struct {
	X, Y   float64
	Length int
	Speed  int
}

// Step advances the drop by one tick and reports whether it is still above
// the bottom of the window. Surface-band crossing is the simulation's
// concern, not the drop's.
func (r *RainDrop) Step(p *config.Preset) bool {
	r.Y += float64(r.Speed)
	return r.Y < float64(p.WindowHeight)
}
