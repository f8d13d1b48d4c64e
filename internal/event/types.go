// internal/event/types.go
package event

const (
	RainSplash       EventType = "RainSplash"       // a rain drop hit the pond surface
	DropSpawned      EventType = "DropSpawned"      // a water drop was launched
	FishJumped       EventType = "FishJumped"       // a fish left the water
	MilestoneReached EventType = "MilestoneReached" // run-time easter egg unlocked
	ExitRequested    EventType = "ExitRequested"    // user asked to quit
)

// SplashData is the payload of RainSplash: the impact point.
type SplashData struct {
	X, Y float64
}
