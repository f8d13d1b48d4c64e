// internal/sim/sim.go
package sim

import (
	"math"
	"time"

	"go-pond-pet/internal/component"
	"go-pond-pet/internal/config"
	"go-pond-pet/internal/event"
	"go-pond-pet/internal/utils"
)

// Simulation owns every live entity and is the only place they mutate.
// All operations are total: out-of-range spawn coordinates are clamped or
// accepted as-is, since entities self-destruct once out of bounds.
type Simulation struct {
	preset *config.Preset
	rng    *utils.PRNGService
	events *event.Dispatcher

	now       func() time.Time
	startTime time.Time
	runDays   int
	mountains bool // one-way latch, never resets

	// Window-drag transient state, mutated only by drag intents.
	dragging                 bool
	dragAnchorX, dragAnchorY int

	Drops   []component.WaterDrop
	Rain    []component.RainDrop
	Ripples []component.Ripple
	Fish    []component.Fish
	Leaves  []component.LotusLeaf
	Stars   []component.Star
}

// NewSimulation creates the pond and its permanent inhabitants.
func NewSimulation(preset *config.Preset, rng *utils.PRNGService, events *event.Dispatcher) *Simulation {
	s := &Simulation{
		preset: preset,
		rng:    rng,
		events: events,
		now:    time.Now,
	}
	s.startTime = s.now()
	s.populate()
	return s
}

func (s *Simulation) populate() {
	w := s.preset.WindowWidth
	h := s.preset.WindowHeight

	for i := 0; i < config.FishCount; i++ {
		dir := 1
		if s.rng.Chance(2) {
			dir = -1
		}
		s.Fish = append(s.Fish, component.NewFish(
			float64(s.rng.IntRange(config.FishSpawnMargin, w-config.FishSpawnMargin)),
			float64(h)-42,
			s.rng.IntRange(config.FishMinSize, config.FishMaxSize),
			dir,
			s.rng.Float64()*math.Pi*2,
		))
	}

	s.Leaves = []component.LotusLeaf{
		{X: 70, Y: float64(h) - 55, Size: 25},
		{X: float64(w) - 90, Y: float64(h) - 50, Size: 20},
	}

	for i := 0; i < config.StarCount; i++ {
		s.Stars = append(s.Stars, component.Star{
			X:            float64(s.rng.IntRange(10, w-10)),
			Y:            float64(s.rng.IntRange(10, h/2)),
			Size:         s.rng.IntRange(config.StarMinSize, config.StarMaxSize),
			TwinklePhase: s.rng.Float64() * math.Pi * 2,
		})
	}
}

// Preset returns the active engine parameterization.
func (s *Simulation) Preset() *config.Preset {
	return s.preset
}

// SpawnDrop launches a water drop at a random x within the pond bounds.
func (s *Simulation) SpawnDrop() {
	w := s.preset.WindowWidth
	m := int(s.preset.DropSpawnMargin)
	s.SpawnDropAt(float64(s.rng.IntRange(m, w-m)))
}

// SpawnDropAt launches a water drop at the given x on the pond surface, with
// the configured base velocity plus a small uniform jitter.
func (s *Simulation) SpawnDropAt(x float64) {
	x = utils.Clamp(x, 0, float64(s.preset.WindowWidth))
	s.Drops = append(s.Drops, component.WaterDrop{
		X:         x,
		Y:         s.preset.SurfaceY(),
		Size:      s.rng.IntRange(config.DropMinSize, config.DropMaxSize),
		VelocityY: config.DropInitialVelocity + s.rng.FloatRange(-config.DropVelocityJitter, config.DropVelocityJitter),
		Lifetime:  config.DropLifetime,
	})
	s.events.Dispatch(event.Event{Type: event.DropSpawned})
}

// SpawnRain adds one rain drop at a random x along the top of the window.
func (s *Simulation) SpawnRain() {
	s.Rain = append(s.Rain, component.RainDrop{
		X:      float64(s.rng.IntRange(0, s.preset.WindowWidth)),
		Y:      0,
		Length: s.rng.IntRange(config.RainMinLength, config.RainMaxLength),
		Speed:  s.rng.IntRange(config.RainMinSpeed, config.RainMaxSpeed),
	})
}

// SpawnRainBurst adds count rain drops at once.
func (s *Simulation) SpawnRainBurst(count int) {
	for i := 0; i < count; i++ {
		s.SpawnRain()
	}
}

// SpawnRipple starts a ripple at a random x on the pond surface line.
func (s *Simulation) SpawnRipple() {
	w := s.preset.WindowWidth
	m := int(s.preset.RippleSpawnMargin)
	s.SpawnRippleAt(float64(s.rng.IntRange(m, w-m)), s.preset.RippleY())
}

// SpawnRippleAt starts a ripple at (x, y) with a randomized maximum radius.
func (s *Simulation) SpawnRippleAt(x, y float64) {
	maxR := float64(s.rng.IntRange(config.RippleMinRadius, config.RippleMaxRadius))
	s.Ripples = append(s.Ripples, component.NewRipple(x, y, maxR))
}

// Advance performs the single authoritative per-tick update. The order
// matters: a rain drop that crosses the surface this tick produces its
// ripple before pruning.
func (s *Simulation) Advance() {
	s.updateRunDays()

	// Water drops
	drops := s.Drops[:0]
	for i := range s.Drops {
		if s.Drops[i].Step(s.preset) {
			drops = append(drops, s.Drops[i])
		}
	}
	s.Drops = drops

	// Rain: a drop that crosses the surface band spawns a ripple at the
	// crossing point and is removed; below the window it vanishes silently.
	surface := s.preset.SurfaceY()
	rain := s.Rain[:0]
	for i := range s.Rain {
		r := &s.Rain[i]
		prevY := r.Y
		alive := r.Step(s.preset)
		if prevY < surface && r.Y >= surface {
			s.SpawnRippleAt(r.X, s.preset.RippleY())
			s.events.Dispatch(event.Event{
				Type: event.RainSplash,
				Data: event.SplashData{X: r.X, Y: s.preset.RippleY()},
			})
			continue
		}
		if alive {
			rain = append(rain, *r)
		}
	}
	s.Rain = rain

	// Ripples
	ripples := s.Ripples[:0]
	for i := range s.Ripples {
		if s.Ripples[i].Step(s.preset) {
			ripples = append(ripples, s.Ripples[i])
		}
	}
	s.Ripples = ripples

	// Fish, leaves, stars: permanent
	for i := range s.Fish {
		if s.Fish[i].Step(s.preset, s.rng) {
			s.events.Dispatch(event.Event{Type: event.FishJumped})
		}
	}
	for i := range s.Leaves {
		s.Leaves[i].Step()
	}
	for i := range s.Stars {
		s.Stars[i].Step()
	}
}

// AmbientSpawn runs the per-tick stochastic spawn policy. Rain only falls
// while the sun is off-canvas; ambient ripples are independent of the time
// of day. Called once per tick by the surrounding loop, since sun
// visibility comes from the daycycle model.
func (s *Simulation) AmbientSpawn(sunVisible bool) {
	if !sunVisible && s.rng.Chance(s.preset.RainChance) {
		s.SpawnRain()
	}
	if s.rng.Chance(s.preset.RippleChance) {
		s.SpawnRipple()
	}
}

func (s *Simulation) updateRunDays() {
	elapsed := s.now().Sub(s.startTime)
	s.runDays = int(elapsed / (24 * time.Hour))
	if !s.mountains && s.runDays >= config.EasterEggDays {
		s.mountains = true
		s.events.Dispatch(event.Event{Type: event.MilestoneReached, Data: s.runDays})
	}
}

// RunDays returns whole days elapsed since the simulation started.
func (s *Simulation) RunDays() int {
	return s.runDays
}

// MountainsUnlocked reports whether the run-time milestone has been reached.
func (s *Simulation) MountainsUnlocked() bool {
	return s.mountains
}

// BeginDrag records the pointer anchor for a window drag.
func (s *Simulation) BeginDrag(x, y int) {
	s.dragging = true
	s.dragAnchorX = x
	s.dragAnchorY = y
}

// EndDrag clears the drag state.
func (s *Simulation) EndDrag() {
	s.dragging = false
}

// Dragging reports whether a window drag is in progress.
func (s *Simulation) Dragging() bool {
	return s.dragging
}

// DragAnchor returns the window-relative pointer position where the current
// drag started.
func (s *Simulation) DragAnchor() (int, int) {
	return s.dragAnchorX, s.dragAnchorY
}

// RequestExit announces that the process should stop ticking.
func (s *Simulation) RequestExit() {
	s.events.Dispatch(event.Event{Type: event.ExitRequested})
}
