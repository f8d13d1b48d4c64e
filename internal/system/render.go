// internal/system/render.go
package system

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-pond-pet/internal/component"
	"go-pond-pet/internal/config"
	"go-pond-pet/internal/daycycle"
	"go-pond-pet/internal/sim"
)

// RenderSystem draws the pond scene back to front: sky, stars, moon, sun,
// milestone mountains, rain, lotus leaves, pond basin, fish, ripples, drops.
type RenderSystem struct {
	preset *config.Preset

	fillImg  *ebiten.Image
	fillVs   []ebiten.Vertex
	fillIs   []uint16
	strokeVs []ebiten.Vertex
	strokeIs []uint16
}

func NewRenderSystem(preset *config.Preset) *RenderSystem {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	return &RenderSystem{
		preset:   preset,
		fillImg:  fillImg,
		fillVs:   make([]ebiten.Vertex, 0, 128),
		fillIs:   make([]uint16, 0, 128),
		strokeVs: make([]ebiten.Vertex, 0, 128),
		strokeIs: make([]uint16, 0, 128),
	}
}

// Draw renders one frame of the scene for the given wall-clock hour.
func (s *RenderSystem) Draw(screen *ebiten.Image, world *sim.Simulation, hour int) {
	period := daycycle.Classify(hour)
	sunX, sunY := daycycle.SunPosition(hour, s.preset)

	s.drawSky(screen, period)
	s.drawStars(screen, world.Stars, period)
	s.drawMoon(screen, hour)
	s.drawSun(screen, sunX, sunY, period)
	if world.MountainsUnlocked() {
		s.drawMountains(screen)
	}
	s.drawRain(screen, world.Rain)
	s.drawLotusLeaves(screen, world.Leaves)
	s.drawPond(screen)
	s.drawFish(screen, world.Fish)
	s.drawRipples(screen, world.Ripples)
	s.drawDrops(screen, world.Drops)
}

func (s *RenderSystem) drawSky(screen *ebiten.Image, period daycycle.Period) {
	w := float32(s.preset.WindowWidth)
	h := float32(s.preset.WindowHeight)
	vector.DrawFilledRect(screen, 0, 0, w, h, daycycle.SkyColor(period), false)
}

func (s *RenderSystem) drawStars(screen *ebiten.Image, stars []component.Star, period daycycle.Period) {
	if period != daycycle.Night && period != daycycle.Dusk && period != daycycle.Dawn {
		return
	}

	for i := range stars {
		star := &stars[i]
		brightness := 150 + 50*math.Sin(star.TwinklePhase)
		alpha := int(brightness)
		if alpha > 255 {
			alpha = 255
		}
		if period != daycycle.Night {
			alpha /= 2
		}
		clr := color.RGBA{255, 255, 255, uint8(alpha)}
		vector.DrawFilledCircle(screen, float32(star.X), float32(star.Y), float32(star.Size), clr, true)
	}
}

func (s *RenderSystem) drawMoon(screen *ebiten.Image, hour int) {
	if !daycycle.MoonVisible(hour) {
		return
	}
	mx, my := daycycle.MoonPosition(s.preset)
	x, y := float32(mx), float32(my)

	// Halo, then body, then the crescent shadow.
	vector.DrawFilledCircle(screen, x, y, 40, color.RGBA{240, 240, 255, 30}, true)
	vector.DrawFilledCircle(screen, x, y, 30, config.MoonGlowColor, true)
	vector.DrawFilledCircle(screen, x, y, 20, config.MoonColor, true)
	vector.DrawFilledCircle(screen, x+8, y-3, 16, config.MoonShadowColor, true)
}

func (s *RenderSystem) drawSun(screen *ebiten.Image, sunX, sunY float64, period daycycle.Period) {
	if sunX < 0 {
		return
	}
	clr := daycycle.SunColor(period)
	x, y := float32(sunX), float32(sunY)

	// Layered glow, widest and faintest first.
	for i := 3; i > 0; i-- {
		glow := clr
		glow.A = uint8(20 + i*10)
		vector.DrawFilledCircle(screen, x, y, float32(config.SunRadius+i*15), glow, true)
	}
	vector.DrawFilledCircle(screen, x, y, config.SunRadius, clr, true)
}

// drawMountains renders the easter-egg scenery, scaled from the classic
// 320x320 geometry to the active window size.
func (s *RenderSystem) drawMountains(screen *ebiten.Image) {
	sx := float32(s.preset.WindowWidth) / 320
	sy := float32(s.preset.WindowHeight) / 320

	s.fillTriangle(screen, 30*sx, 220*sy, 160*sx, 80*sy, 290*sx, 220*sy, config.MountainBackColor)
	s.fillTriangle(screen, 70*sx, 200*sy, 160*sx, 100*sy, 250*sx, 200*sy, config.MountainFrontColor)
	s.fillTriangle(screen, 140*sx, 105*sy, 160*sx, 80*sy, 180*sx, 105*sy, config.SummitGlowColor)
}

func (s *RenderSystem) drawRain(screen *ebiten.Image, rain []component.RainDrop) {
	for i := range rain {
		r := &rain[i]
		vector.StrokeLine(screen, float32(r.X), float32(r.Y), float32(r.X), float32(r.Y)+float32(r.Length), 1, config.RainColor, true)
	}
}

func (s *RenderSystem) drawLotusLeaves(screen *ebiten.Image, leaves []component.LotusLeaf) {
	for i := range leaves {
		leaf := &leaves[i]
		wobble := float32(math.Sin(leaf.WobblePhase) * 2)
		cx := float32(leaf.X) + wobble
		cy := float32(leaf.Y) + float32(leaf.Size)/2
		s.fillEllipse(screen, cx, cy, float32(leaf.Size), float32(leaf.Size)/2, config.LotusLeafColor)
		vector.StrokeLine(screen, cx, cy-float32(leaf.Size)/2, cx, cy+float32(leaf.Size)/2, 1, config.LeafVeinColor, true)
	}
}

func (s *RenderSystem) drawPond(screen *ebiten.Image) {
	w := float32(s.preset.WindowWidth)
	h := float32(s.preset.WindowHeight)

	// Shadow, body, highlight.
	s.fillEllipse(screen, w/2+3, h-31, (w-96)/2, 21, config.WaterShadowColor)
	s.fillEllipse(screen, w/2, h-32.5, (w-90)/2, 22.5, config.WaterMainColor)
	s.fillEllipse(screen, w/2, h-44.5, (w-140)/2, 7.5, config.WaterHighlightColor)
}

func (s *RenderSystem) drawFish(screen *ebiten.Image, fish []component.Fish) {
	for i := range fish {
		f := &fish[i]
		size := float32(f.Size)
		cx := float32(f.X)
		cy := float32(f.Y)

		s.fillEllipse(screen, cx, cy, size*0.75, size/2, config.FishBodyColor)

		// Tail points away from the swim direction.
		if f.Direction > 0 {
			s.fillTriangle(screen, cx-size, cy, cx-size*0.66, cy-size/2, cx-size*0.66, cy+size/2, config.FishTailColor)
		} else {
			s.fillTriangle(screen, cx+size, cy, cx+size*0.66, cy-size/2, cx+size*0.66, cy+size/2, config.FishTailColor)
		}

		eyeX := cx + size/2
		if f.Direction < 0 {
			eyeX = cx - size/2
		}
		vector.DrawFilledCircle(screen, eyeX, cy-size/6, 2, config.FishEyeColor, true)
	}
}

func (s *RenderSystem) drawRipples(screen *ebiten.Image, ripples []component.Ripple) {
	for i := range ripples {
		r := &ripples[i]
		if r.Alpha <= 0 {
			continue
		}
		clr := config.RippleColor
		clr.A = uint8(r.Alpha)
		s.strokeEllipse(screen, float32(r.X), float32(r.Y), float32(r.Radius), float32(r.Radius)*0.25, 1, clr)
	}
}

func (s *RenderSystem) drawDrops(screen *ebiten.Image, drops []component.WaterDrop) {
	for i := range drops {
		d := &drops[i]
		alpha := 230 * d.Lifetime / config.DropLifetime
		if alpha < 0 {
			alpha = 0
		}
		clr := config.DropColor
		clr.A = uint8(alpha)
		vector.DrawFilledCircle(screen, float32(d.X), float32(d.Y), float32(d.Size), clr, true)
	}
}

// --- path helpers ---

const ellipseSegments = 32

func appendEllipse(path *vector.Path, cx, cy, rx, ry float32) {
	for i := 0; i <= ellipseSegments; i++ {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		x := cx + rx*float32(math.Cos(a))
		y := cy + ry*float32(math.Sin(a))
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()
}

func (s *RenderSystem) fillEllipse(screen *ebiten.Image, cx, cy, rx, ry float32, clr color.RGBA) {
	path := vector.Path{}
	appendEllipse(&path, cx, cy, rx, ry)
	s.fillPath(screen, &path, clr)
}

func (s *RenderSystem) strokeEllipse(screen *ebiten.Image, cx, cy, rx, ry, width float32, clr color.RGBA) {
	path := vector.Path{}
	appendEllipse(&path, cx, cy, rx, ry)

	s.strokeVs, s.strokeIs = path.AppendVerticesAndIndicesForStroke(s.strokeVs[:0], s.strokeIs[:0], &vector.StrokeOptions{
		Width: width,
	})
	s.drawVertices(screen, s.strokeVs, s.strokeIs, clr)
}

func (s *RenderSystem) fillTriangle(screen *ebiten.Image, x1, y1, x2, y2, x3, y3 float32, clr color.RGBA) {
	path := vector.Path{}
	path.MoveTo(x1, y1)
	path.LineTo(x2, y2)
	path.LineTo(x3, y3)
	path.Close()
	s.fillPath(screen, &path, clr)
}

func (s *RenderSystem) fillPath(screen *ebiten.Image, path *vector.Path, clr color.RGBA) {
	s.fillVs, s.fillIs = path.AppendVerticesAndIndicesForFilling(s.fillVs[:0], s.fillIs[:0])
	s.drawVertices(screen, s.fillVs, s.fillIs, clr)
}

func (s *RenderSystem) drawVertices(screen *ebiten.Image, vs []ebiten.Vertex, is []uint16, clr color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(clr.R) / 255
		vs[i].ColorG = float32(clr.G) / 255
		vs[i].ColorB = float32(clr.B) / 255
		vs[i].ColorA = float32(clr.A) / 255
	}
	screen.DrawTriangles(vs, is, s.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
