// internal/component/fish.go
package component

import (
	"math"

	"go-pond-pet/internal/config"
	"go-pond-pet/internal/utils"
)

// FishState is the fish's behavior state.
type FishState int

const (
	FishSwimming FishState = iota
	FishJumping
)

// Fish swims back and forth along a fixed baseline and occasionally leaps
// out of the water. Fish live for the whole process; they are never removed.
type Fish struct {
	X, Y         float64
	Size         int
	Direction    int // 1 = right, -1 = left
	State        FishState
	JumpVelocity float64
	BaseY        float64 // fixed at creation
	SwimPhase    float64
}

// NewFish creates a swimming fish anchored to baseline y.
func NewFish(x, y float64, size, direction int, phase float64) Fish {
	return Fish{
		X:         x,
		Y:         y,
		Size:      size,
		Direction: direction,
		State:     FishSwimming,
		BaseY:     y,
		SwimPhase: phase,
	}
}

// Step advances the fish state machine by one tick. It reports whether the
// fish started a jump this tick, so the simulation can announce it.
func (f *Fish) Step(p *config.Preset, rng *utils.PRNGService) bool {
	if f.State == FishJumping {
		f.Y += f.JumpVelocity
		f.JumpVelocity += config.FishJumpGravity
		if f.Y >= f.BaseY {
			f.Y = f.BaseY
			f.State = FishSwimming
		}
		return false
	}

	f.SwimPhase += config.FishSwimPhaseStep
	f.X += config.FishSwimSpeed * float64(f.Direction)
	// Pure oscillation around the baseline; vertical drift never persists.
	f.Y = f.BaseY + config.FishSwimAmplitude*math.Sin(f.SwimPhase)

	if f.X < config.FishEdgeMargin || f.X > float64(p.WindowWidth)-config.FishEdgeMargin {
		f.Direction = -f.Direction
	}

	if rng.Chance(config.FishJumpChance) {
		f.State = FishJumping
		f.JumpVelocity = config.FishJumpVelocity
		return true
	}
	return false
}
