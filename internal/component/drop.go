// internal/component/drop.go
package component

import "go-pond-pet/internal/config"

// WaterDrop is a splash droplet launched upward from the pond surface.
type WaterDrop struct {
	X, Y      float64
	Size      int
	VelocityY float64
	Lifetime  int // remaining ticks
}

// Step advances the drop by one tick and reports whether it is still alive.
// The drop follows a projectile arc: negative (upward) initial velocity
// overcome by constant gravity.
func (d *WaterDrop) Step(p *config.Preset) bool {
	d.Y += d.VelocityY
	d.VelocityY += config.DropGravity
	d.Lifetime--
	return d.Lifetime > 0 && d.Y < p.FloorY()
}
