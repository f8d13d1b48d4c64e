// internal/config/config.go
package config

import "image/color"

const (
	TickRate     = 60
	MaxDeltaTime = 0.06

	// Water drops
	DropMinSize         = 4
	DropMaxSize         = 10
	DropInitialVelocity = -7.0
	DropVelocityJitter  = 1.0
	DropGravity         = 0.25
	DropLifetime        = 40

	// Rain
	RainMinLength = 8
	RainMaxLength = 18
	RainMinSpeed  = 4
	RainMaxSpeed  = 8
	RainBurstSize = 20

	// Ripples
	RippleStartRadius = 2.0
	RippleMinRadius   = 15
	RippleMaxRadius   = 30
	RippleExpandSpeed = 0.8
	RippleBaseAlpha   = 200

	// Fish
	FishCount         = 2
	FishMinSize       = 10
	FishMaxSize       = 14
	FishJumpChance    = 200 // 1/N per tick while swimming
	FishSwimSpeed     = 0.3
	FishSwimAmplitude = 3.0
	FishSwimPhaseStep = 0.05
	FishJumpVelocity  = -6.0
	FishJumpGravity   = 0.3
	FishEdgeMargin    = 60.0
	FishSpawnMargin   = 80

	// Lotus leaves / stars: phase accumulators only
	LeafWobbleStep  = 0.02
	StarTwinkleStep = 0.08
	StarCount       = 15
	StarMinSize     = 1
	StarMaxSize     = 3

	SunRadius = 28

	// Milestone: alternate scenery unlocks after this many days of runtime.
	EasterEggDays = 3

	// Help overlay
	HelpHoldSeconds = 2.0
	HelpFadeSeconds = 1.0
)

// Preset bundles the constants that differ between the two engine
// parameterizations. Neither is authoritative; both ship.
type Preset struct {
	Name string

	WindowWidth  int
	WindowHeight int

	SunRiseHour int
	SunSetHour  int
	// Sun arc: y = SunArcBaseY - SunArcAmplitude*sin(pi*t) for t in [0,1].
	SunArcBaseY     float64
	SunArcAmplitude float64

	// Ambient spawn denominators: each tick is a 1/N Bernoulli trial.
	RainChance   int
	RippleChance int

	// Pond geometry, as offsets up from the window bottom.
	FloorOffset       float64 // drops die below WindowHeight - FloorOffset
	SurfaceOffset     float64 // drops spawn at WindowHeight - SurfaceOffset; rain band top
	RippleLineOffset  float64 // ripples sit at WindowHeight - RippleLineOffset
	PondBandTopOffset float64 // interactive band for pointer clicks
	PondBandBotOffset float64
	DropSpawnMargin   float64
	RippleSpawnMargin float64
}

// Classic is the original 320x320 parameterization.
var Classic = Preset{
	Name:              "classic",
	WindowWidth:       320,
	WindowHeight:      320,
	SunRiseHour:       6,
	SunSetHour:        18,
	SunArcBaseY:       220,
	SunArcAmplitude:   160,
	RainChance:        25,
	RippleChance:      60,
	FloorOffset:       30,
	SurfaceOffset:     45,
	RippleLineOffset:  38,
	PondBandTopOffset: 60,
	PondBandBotOffset: 20,
	DropSpawnMargin:   70,
	RippleSpawnMargin: 60,
}

// Compact is the smaller 300x300 parameterization with a lower, shorter
// sun arc and calmer ambient weather.
var Compact = Preset{
	Name:              "compact",
	WindowWidth:       300,
	WindowHeight:      300,
	SunRiseHour:       7,
	SunSetHour:        17,
	SunArcBaseY:       200,
	SunArcAmplitude:   140,
	RainChance:        30,
	RippleChance:      80,
	FloorOffset:       30,
	SurfaceOffset:     45,
	RippleLineOffset:  38,
	PondBandTopOffset: 60,
	PondBandBotOffset: 20,
	DropSpawnMargin:   70,
	RippleSpawnMargin: 60,
}

// Presets maps flag values to engine parameterizations.
var Presets = map[string]*Preset{
	Classic.Name: &Classic,
	Compact.Name: &Compact,
}

// FloorY is the bound below which water drops are destroyed.
func (p *Preset) FloorY() float64 { return float64(p.WindowHeight) - p.FloorOffset }

// SurfaceY is the pond surface: drop spawn height and rain impact line.
func (p *Preset) SurfaceY() float64 { return float64(p.WindowHeight) - p.SurfaceOffset }

// RippleY is the vertical line ambient and rain ripples appear on.
func (p *Preset) RippleY() float64 { return float64(p.WindowHeight) - p.RippleLineOffset }

// InPondBand reports whether y falls in the interactive water band.
func (p *Preset) InPondBand(y float64) bool {
	return y > float64(p.WindowHeight)-p.PondBandTopOffset && y < float64(p.WindowHeight)-p.PondBandBotOffset
}

var (
	WaterMainColor      = color.RGBA{70, 170, 255, 200}
	WaterShadowColor    = color.RGBA{50, 140, 220, 160}
	WaterHighlightColor = color.RGBA{180, 230, 255, 120}
	DropColor           = color.RGBA{150, 220, 255, 230}
	RainColor           = color.RGBA{200, 235, 255, 180}
	RippleColor         = color.RGBA{200, 240, 255, 150}

	SkyDawnColor    = color.RGBA{255, 200, 150, 100}
	SkyMorningColor = color.RGBA{180, 220, 255, 90}
	SkyNoonColor    = color.RGBA{135, 206, 250, 70}
	SkyEveningColor = color.RGBA{255, 180, 140, 100}
	SkyDuskColor    = color.RGBA{255, 140, 100, 110}
	SkyNightColor   = color.RGBA{30, 50, 80, 120}

	SunMorningColor = color.RGBA{255, 240, 130, 255}
	SunNoonColor    = color.RGBA{255, 255, 200, 255}
	SunEveningColor = color.RGBA{255, 160, 90, 255}
	MoonColor       = color.RGBA{240, 240, 255, 200}
	MoonShadowColor = color.RGBA{200, 200, 230, 150}
	MoonGlowColor   = color.RGBA{240, 240, 255, 50}

	MountainFrontColor = color.RGBA{220, 200, 130, 220}
	MountainBackColor  = color.RGBA{180, 160, 100, 200}
	SummitGlowColor    = color.RGBA{255, 240, 180, 150}

	FishBodyColor = color.RGBA{255, 180, 100, 220}
	FishTailColor = color.RGBA{255, 150, 80, 200}
	FishEyeColor  = color.RGBA{0, 0, 0, 200}

	LotusLeafColor = color.RGBA{80, 180, 100, 180}
	LeafVeinColor  = color.RGBA{60, 150, 80, 150}

	HelpTextColor = color.RGBA{255, 255, 255, 200}
)
