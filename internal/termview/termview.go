// Package termview renders a scrubline page in a terminal with tcell.
//
// The view is a RenderSink: the engine drives it exactly as it drives the
// ebiten scene, with geometry measured in virtual pixels of cellW x cellH per
// terminal cell.
package termview

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/scrubline"
)

// Virtual pixel size of one terminal cell.
const (
	cellW = 8.0
	cellH = 16.0
)

const (
	carArt      = "[=o===o=>"
	headlineCol = 2
	letterPitch = 2 // cells per letter, including the gap
)

// frame is the last style the engine emitted for each target.
type frame struct {
	carX    float64
	trail   float64
	letters []scrubline.Style
	cards   []scrubline.Style
	hero    scrubline.Style
}

// View draws one page variant onto a tcell screen.
type View struct {
	screen  tcell.Screen
	cfg     scrubline.Config
	engine  *scrubline.Engine
	pointer scrubline.PointerSource

	cols, rows int
	scroll     float64
	maxScroll  float64

	state   frame
	letters   []rune
	cardIdx   map[string]int
	letterIdx map[string]int
}

// New creates a view for cfg on screen. The screen must already be
// initialized; the view stays idle until Resize.
func New(screen tcell.Screen, cfg scrubline.Config) *View {
	v := &View{
		screen:  screen,
		cfg:     cfg,
		pointer: scrubline.PointerSource{Clamp: cfg.Hero.PointerClamp},
		letters: []rune(cfg.Headline),
		cardIdx: make(map[string]int, len(cfg.Placements)),
	}
	for i, p := range cfg.Placements {
		v.cardIdx[scrubline.CardID(p)] = i
	}
	v.letterIdx = make(map[string]int, len(v.letters))
	for i := range v.letters {
		v.letterIdx[scrubline.LetterID(i)] = i
	}
	v.state.letters = make([]scrubline.Style, len(v.letters))
	v.state.cards = make([]scrubline.Style, len(cfg.Placements))
	for i := range v.state.cards {
		v.state.cards[i].Scale = 1
	}
	v.state.hero = scrubline.Style{Opacity: 1, Scale: 1}
	v.engine = scrubline.NewEngine(cfg, v)
	return v
}

// Engine returns the engine driving the view.
func (v *View) Engine() *scrubline.Engine {
	return v.engine
}

// Scroll returns the document offset in virtual pixels.
func (v *View) Scroll() float64 {
	return v.scroll
}

// Apply records a computed style. It implements scrubline.RenderSink.
func (v *View) Apply(id string, style scrubline.Style) {
	switch id {
	case scrubline.CarID:
		v.state.carX = style.X
	case scrubline.TrailID:
		v.state.trail = style.Width
	case scrubline.HeroID:
		merge(&v.state.hero, style)
	default:
		if i, ok := v.cardIdx[id]; ok {
			merge(&v.state.cards[i], style)
			return
		}
		if i, ok := v.letterIdx[id]; ok {
			merge(&v.state.letters[i], style)
		}
	}
}

// merge copies the fields style declares into dst.
func merge(dst *scrubline.Style, style scrubline.Style) {
	if style.Has(scrubline.FieldX) {
		dst.X = style.X
	}
	if style.Has(scrubline.FieldY) {
		dst.Y = style.Y
	}
	if style.Has(scrubline.FieldOpacity) {
		dst.Opacity = style.Opacity
	}
	if style.Has(scrubline.FieldScale) {
		dst.Scale = style.Scale
	}
	if style.Has(scrubline.FieldTilt) {
		dst.TiltX, dst.TiltY = style.TiltX, style.TiltY
	}
	dst.Fields |= style.Fields
}

// Geometry measures the terminal layout in virtual pixels.
func (v *View) Geometry() scrubline.Geometry {
	if v.cols <= 0 || v.rows <= 0 {
		return scrubline.NotReady
	}
	vw, vh := float64(v.cols)*cellW, float64(v.rows)*cellH
	offsets := make([]float64, len(v.letters))
	for i := range offsets {
		offsets[i] = float64(i*letterPitch) * cellW
	}
	return scrubline.Geometry{
		ContainerWidth: vw,
		TargetWidth:    float64(len(carArt)) * cellW,
		HeadlineLeft:   headlineCol * cellW,
		LetterOffsets:  offsets,
		Region:         scrubline.PinnedRegion{Top: vh, Height: v.cfg.RegionScreens * vh},
		Viewport:       scrubline.Vec2{X: vw, Y: vh},
	}
}

// Resize installs geometry for a cols x rows terminal and re-samples the
// current scroll offset.
func (v *View) Resize(cols, rows int) {
	if cols == v.cols && rows == v.rows {
		return
	}
	v.cols, v.rows = cols, rows
	g := v.Geometry()
	if !v.engine.Install(g) {
		v.maxScroll = 0
		return
	}
	vh := g.Viewport.Y
	v.maxScroll = g.Region.Height + 2*vh
	v.scroll = clamp(v.scroll, 0, v.maxScroll)
	v.sample()
}

// ScrollBy moves the document by dy virtual pixels.
func (v *View) ScrollBy(dy float64) {
	v.ScrollTo(v.scroll + dy)
}

// ScrollTo jumps to document offset y.
func (v *View) ScrollTo(y float64) {
	y = clamp(y, 0, v.maxScroll)
	if y == v.scroll {
		return
	}
	v.scroll = y
	v.sample()
}

// PointerAt feeds a terminal cell position to the hero tilt.
func (v *View) PointerAt(col, row int) {
	rect := scrubline.Rect{
		Y:      -v.scroll,
		Width:  float64(v.cols) * cellW,
		Height: float64(v.rows) * cellH,
	}
	off := v.pointer.Sample(rect, (float64(col)+0.5)*cellW, (float64(row)+0.5)*cellH)
	v.engine.Pointer(scrubline.PointerSample{Offset: off, Generation: v.engine.Generation()})
}

// Tick advances letter tweens by dt seconds.
func (v *View) Tick(dt float32) {
	v.engine.Tick(dt)
}

func (v *View) sample() {
	v.engine.Scroll(scrubline.ScrollSample{ScrollY: v.scroll, Generation: v.engine.Generation()})
}

// Draw renders the current frame and shows it.
func (v *View) Draw() {
	v.screen.Clear()
	g := v.engine.Geometry()
	if g.Ready() {
		v.drawIntro()
		v.drawStage(g)
	}
	v.screen.Show()
}

func (v *View) drawIntro() {
	h := v.state.hero
	if h.Opacity < 0.5 {
		return
	}
	row := int(math.Round((-v.scroll+h.Y)/cellH)) + v.rows/2
	msg := "scroll down  (j/k, wheel, PgUp/PgDn, q quits)"
	col := (v.cols-len(msg))/2 + int(math.Round(h.X/cellW))
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	if math.Abs(h.TiltY) > 6 {
		style = style.Italic(true)
	}
	v.puts(col, row, msg, style)
}

func (v *View) drawStage(g scrubline.Geometry) {
	top := int(math.Round(g.Region.ScreenY(v.scroll) / cellH))
	if top >= v.rows || top+v.rows <= 0 {
		return
	}
	trackRow := top + v.rows/2

	trailStyle := tcell.StyleDefault.Background(tcell.NewRGBColor(0x45, 0xdb, 0x7d))
	trailCells := int(v.state.trail / cellW)
	for x := 0; x < trailCells && x < v.cols; x++ {
		v.screen.SetContent(x, trackRow, ' ', nil, trailStyle)
	}

	for i, r := range v.letters {
		s := v.state.letters[i]
		if s.Opacity < 0.5 {
			continue
		}
		col := headlineCol + i*letterPitch
		row := trackRow + int(math.Round(s.Y/cellH))
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(s.Opacity >= 0.99)
		if col < trailCells && row == trackRow {
			style = trailStyle.Foreground(tcell.ColorBlack).Bold(true)
		}
		v.screen.SetContent(col, row, r, nil, style)
	}

	carStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	v.puts(int(v.state.carX/cellW), trackRow, carArt, carStyle)

	for i, p := range v.cfg.Placements {
		s := v.state.cards[i]
		if s.Opacity < 0.5 {
			continue
		}
		v.drawCard(p, s, top)
	}
}

func (v *View) drawCard(p scrubline.CardPlacement, s scrubline.Style, top int) {
	bg := tcell.NewRGBColor(int32(p.Color.R*255), int32(p.Color.G*255), int32(p.Color.B*255))
	fg := tcell.ColorBlack
	if p.Color.R+p.Color.G+p.Color.B < 1.2 {
		fg = tcell.ColorWhite
	}
	style := tcell.StyleDefault.Background(bg).Foreground(fg)

	text := " " + p.Value + " "
	if s.Scale >= 0.9 && p.Label != "" {
		text = " " + p.Value + "  " + p.Label + " "
	}
	col := int(s.X/cellW) - len(text)/2
	row := top + int(math.Round(s.Y/cellH))
	v.puts(col, row, text, style)
}

// puts writes s at (col, row), clipping to the screen.
func (v *View) puts(col, row int, s string, style tcell.Style) {
	if row < 0 || row >= v.rows {
		return
	}
	x := col
	for _, r := range s {
		if x >= 0 && x < v.cols {
			v.screen.SetContent(x, row, r, nil, style)
		}
		x++
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
