// internal/state/pond_state.go
package state

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"go-pond-pet/internal/config"
	"go-pond-pet/internal/daycycle"
	"go-pond-pet/internal/sim"
	"go-pond-pet/internal/system"
	"go-pond-pet/internal/utils"
)

const helpMessage = "any key: splash | space: big splash | R: rain | Esc: quit"

// PondState is the single scene: it translates raw input into simulation
// intents, ticks the world, and draws it.
type PondState struct {
	sm       *StateMachine
	world    *sim.Simulation
	renderer *system.RenderSystem
	preset   *config.Preset
	rng      *utils.PRNGService
	fontFace font.Face

	// Help overlay: held for a moment, then faded out with a tween.
	helpTimer   float64
	helpFade    *gween.Tween
	helpAlpha   float32
	helpVisible bool
}

// NewPondState wires the scene around an existing simulation.
func NewPondState(sm *StateMachine, world *sim.Simulation, rng *utils.PRNGService) *PondState {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Fatal(err)
	}

	return &PondState{
		sm:          sm,
		world:       world,
		renderer:    system.NewRenderSystem(world.Preset()),
		preset:      world.Preset(),
		rng:         rng,
		fontFace:    face,
		helpFade:    gween.New(1, 0, config.HelpFadeSeconds, ease.InQuad),
		helpAlpha:   1,
		helpVisible: true,
	}
}

func (p *PondState) Enter() {}

func (p *PondState) Exit() {}

// Update handles one tick: input intents, then the authoritative world step,
// then the ambient spawn policy for the current hour.
func (p *PondState) Update(deltaTime float64) {
	p.handleKeys()
	p.handleMouse()

	p.world.Advance()

	hour := time.Now().Hour()
	p.world.AmbientSpawn(daycycle.SunVisible(hour, p.preset))

	p.updateHelp(deltaTime)
}

func (p *PondState) handleKeys() {
	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		switch key {
		case ebiten.KeyEscape:
			p.world.RequestExit()
		case ebiten.KeySpace:
			for i := 0; i < p.rng.IntRange(3, 6); i++ {
				p.world.SpawnDrop()
			}
		case ebiten.KeyR:
			p.world.SpawnRainBurst(config.RainBurstSize)
		default:
			p.world.SpawnDrop()
		}
	}
}

func (p *PondState) handleMouse() {
	// Left button drags the whole window around the desktop.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		p.world.BeginDrag(x, y)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		p.world.EndDrag()
	}
	if p.world.Dragging() && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		cx, cy := ebiten.CursorPosition()
		ax, ay := p.world.DragAnchor()
		wx, wy := ebiten.WindowPosition()
		ebiten.SetWindowPosition(wx+cx-ax, wy+cy-ay)
	}

	// Right button pokes the water.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		if p.preset.InPondBand(float64(y)) {
			p.world.SpawnRippleAt(float64(x), p.preset.RippleY())
			p.world.SpawnDropAt(float64(x))
		}
	}
}

func (p *PondState) updateHelp(deltaTime float64) {
	if !p.helpVisible {
		return
	}
	p.helpTimer += deltaTime
	if p.helpTimer < config.HelpHoldSeconds {
		return
	}
	alpha, done := p.helpFade.Update(float32(deltaTime))
	p.helpAlpha = alpha
	if done {
		p.helpVisible = false
	}
}

func (p *PondState) Draw(screen *ebiten.Image) {
	hour := time.Now().Hour()
	p.renderer.Draw(screen, p.world, hour)

	if p.helpVisible {
		clr := config.HelpTextColor
		clr.A = uint8(float32(clr.A) * p.helpAlpha)
		bounds := text.BoundString(p.fontFace, helpMessage)
		w := bounds.Max.X - bounds.Min.X
		text.Draw(screen, helpMessage, p.fontFace, p.preset.WindowWidth/2-w/2, 20, clr)
	}
}
