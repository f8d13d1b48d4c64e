// internal/component/star.go
package component

import "go-pond-pet/internal/config"

// Star sits in the upper sky; its phase drives a rendering twinkle.
type Star struct {
	X, Y         float64
	Size         int
	TwinklePhase float64
}

// Step advances the twinkle phase. Stars are never removed.
func (s *Star) Step() {
	s.TwinklePhase += config.StarTwinkleStep
}
