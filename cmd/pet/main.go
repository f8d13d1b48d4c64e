// cmd/pet/main.go
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-pond-pet/internal/audio"
	"go-pond-pet/internal/config"
	"go-pond-pet/internal/event"
	"go-pond-pet/internal/sim"
	"go-pond-pet/internal/state"
	"go-pond-pet/internal/utils"
)

// App adapts the state machine to ebiten's game loop and listens for the
// exit intent. Ticks arrive at the fixed TPS; the simulation treats each
// Update call as one tick.
type App struct {
	stateMachine   *state.StateMachine
	preset         *config.Preset
	lastUpdateTime time.Time
	quit           bool
}

// OnEvent implements event.Listener for ExitRequested.
func (a *App) OnEvent(e event.Event) {
	if e.Type == event.ExitRequested {
		a.quit = true
	}
}

func (a *App) Update() error {
	if a.quit {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.preset.WindowWidth, a.preset.WindowHeight
}

func main() {
	presetName := flag.String("preset", config.Classic.Name, "engine preset: classic or compact")
	seed := flag.Int64("seed", 0, "random seed (0 = time-based)")
	flag.Parse()

	preset, ok := config.Presets[*presetName]
	if !ok {
		log.Fatalf("unknown preset %q", *presetName)
	}

	rng := utils.NewPRNGService(*seed)
	dispatcher := event.NewDispatcher()
	world := sim.NewSimulation(preset, rng, dispatcher)

	sounds := audio.NewSoundManager()
	if err := sounds.Initialize(); err != nil {
		log.Printf("audio unavailable, running silent: %v", err)
	}
	defer sounds.Cleanup()
	sounds.Attach(dispatcher)

	sm := state.NewStateMachine()
	sm.SetState(state.NewPondState(sm, world, rng))

	app := &App{
		stateMachine:   sm,
		preset:         preset,
		lastUpdateTime: time.Now(),
	}
	dispatcher.Subscribe(event.ExitRequested, app)

	ebiten.SetWindowSize(preset.WindowWidth, preset.WindowHeight)
	ebiten.SetWindowTitle("Pond Pet")
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetTPS(config.TickRate)

	// Center on the primary monitor.
	mw, mh := ebiten.Monitor().Size()
	ebiten.SetWindowPosition((mw-preset.WindowWidth)/2, (mh-preset.WindowHeight)/2)

	op := &ebiten.RunGameOptions{ScreenTransparent: true}
	if err := ebiten.RunGameWithOptions(app, op); err != nil {
		log.Fatal(err)
	}
}
