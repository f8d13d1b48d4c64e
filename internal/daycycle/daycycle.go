// internal/daycycle/daycycle.go
package daycycle

import (
	"image/color"
	"math"

	"go-pond-pet/internal/config"
)

// Period classifies the wall-clock hour into a named stretch of the day.
type Period int

const (
	Dawn Period = iota // [5, 7)
	Morning            // [7, 11)
	Noon               // [11, 14)
	Afternoon          // [14, 17)
	Evening            // [17, 19)
	Dusk               // [19, 21)
	Night              // [21, 24) and [0, 5)
)

var periodNames = map[Period]string{
	Dawn:      "dawn",
	Morning:   "morning",
	Noon:      "noon",
	Afternoon: "afternoon",
	Evening:   "evening",
	Dusk:      "dusk",
	Night:     "night",
}

func (p Period) String() string {
	if name, ok := periodNames[p]; ok {
		return name
	}
	return "unknown"
}

// Offscreen is the sentinel sun position used outside the rise..set window.
// Negative on both axes, so it is never rendered.
const Offscreen = -50.0

// Classify maps an hour (0-23) to its Period. Boundaries are half-open.
func Classify(hour int) Period {
	switch {
	case hour >= 5 && hour < 7:
		return Dawn
	case hour >= 7 && hour < 11:
		return Morning
	case hour >= 11 && hour < 14:
		return Noon
	case hour >= 14 && hour < 17:
		return Afternoon
	case hour >= 17 && hour < 19:
		return Evening
	case hour >= 19 && hour < 21:
		return Dusk
	default:
		return Night
	}
}

// SkyColor returns the sky wash for a period. Afternoon shares the morning
// color; anything unrecognized falls back to the noon color.
func SkyColor(p Period) color.RGBA {
	switch p {
	case Dawn:
		return config.SkyDawnColor
	case Morning, Afternoon:
		return config.SkyMorningColor
	case Noon:
		return config.SkyNoonColor
	case Evening:
		return config.SkyEveningColor
	case Dusk:
		return config.SkyDuskColor
	case Night:
		return config.SkyNightColor
	default:
		return config.SkyNoonColor
	}
}

// SunColor returns the sun's tint for a period.
func SunColor(p Period) color.RGBA {
	switch p {
	case Dawn, Morning:
		return config.SunMorningColor
	case Noon:
		return config.SunNoonColor
	default:
		return config.SunEveningColor
	}
}

// SunPosition places the sun on a sine arc between the preset's rise and set
// hours (inclusive). X stays at the horizontal center; y is lowest at rise
// and set and peaks at the midpoint. This is a continuous approximation, not
// an ephemeris. Outside the window both coordinates are the Offscreen
// sentinel.
func SunPosition(hour int, p *config.Preset) (float64, float64) {
	if hour < p.SunRiseHour || hour > p.SunSetHour {
		return Offscreen, Offscreen
	}
	total := float64(p.SunSetHour - p.SunRiseHour)
	ratio := float64(hour-p.SunRiseHour) / total
	x := float64(p.WindowWidth) / 2
	y := p.SunArcBaseY - p.SunArcAmplitude*math.Sin(ratio*math.Pi)
	return x, y
}

// SunVisible reports whether the sun is on-canvas at the given hour.
func SunVisible(hour int, p *config.Preset) bool {
	x, _ := SunPosition(hour, p)
	return x >= 0
}

// MoonVisible reports whether the moon is shown. Unlike the sun the moon has
// no arc; it appears at a fixed spot during deep night.
func MoonVisible(hour int) bool {
	return hour >= 21 || hour < 5
}

// MoonPosition is the moon's fixed screen position.
func MoonPosition(p *config.Preset) (float64, float64) {
	return float64(p.WindowWidth) - 70, 60
}
