// internal/component/lotus.go
package component

import "go-pond-pet/internal/config"

// LotusLeaf floats at a fixed spot; its phase drives a rendering wobble.
type LotusLeaf struct {
	X, Y        float64
	Size        int
	WobblePhase float64
}

// Step advances the wobble phase. Leaves are never removed.
func (l *LotusLeaf) Step() {
	l.WobblePhase += config.LeafWobbleStep
}
