package scrubline

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object: it owns the node tree for one page variant,
// the engine driving it, the viewport scroll state, and input plumbing.
//
// Document layout, top to bottom: an intro screen holding the hero, the
// pinned region (RegionScreens viewport heights of scroll during which the
// stage stays at the top of the viewport), and an outro screen.
type Scene struct {
	cfg  Config
	font Font

	root  *Node
	intro *Node
	hero  *Node
	stage *Node
	track *Node
	trail *Node
	car   *Node
	head  *Node
	cards *Node

	engine   *Engine
	sink     *NodeSink
	probe    Probe
	viewport Viewport
	pointer  PointerSource

	width, height float64
	sampled       bool

	// ClearColor fills the screen before drawing. A zero alpha skips the fill.
	ClearColor Color
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string
	// WheelStep is the scroll distance per wheel notch, in pixels.
	WheelStep float64

	debug      bool
	frameStats debugStats
	overlay    overlay
	render     renderer
	updateFunc func() error

	// Input state
	ptr             pointerState
	injectQueue     []syntheticEvent
	sizeOverride    Vec2
	testRunner      *TestRunner
	screenshotQueue []string
}

// NewScene builds the node tree for cfg. font is used for the headline, the
// hero and the cards; pass nil to load the bundled default font at
// cfg.FontSize. The scene stays idle until Resize gives it a viewport.
func NewScene(cfg Config, font Font) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if font == nil {
		f, err := DefaultFont(cfg.FontSize)
		if err != nil {
			return nil, fmt.Errorf("load default font: %w", err)
		}
		font = f
	}
	s := &Scene{
		cfg:           cfg,
		font:          font,
		root:          NewContainer("root"),
		sink:          NewNodeSink(),
		pointer:       PointerSource{Clamp: cfg.Hero.PointerClamp},
		ClearColor:    RGB(0x12, 0x12, 0x12),
		ScreenshotDir: "screenshots",
		WheelStep:     60,
	}
	s.engine = NewEngine(cfg, s.sink)
	s.build()
	return s, nil
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Engine returns the engine driving the scene.
func (s *Scene) Engine() *Engine {
	return s.engine
}

// Viewport returns the scene's scroll state.
func (s *Scene) Viewport() *Viewport {
	return &s.viewport
}

// Node returns the node bound to a target id (see CarID, LetterID, CardID).
func (s *Scene) Node(id string) *Node {
	return s.sink.Node(id)
}

// SetUpdateFunc registers a callback run at the end of every Update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics and per-frame engine stats are logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool

// build creates every node once. Sizes and positions are filled in by
// layout on each resize.
func (s *Scene) build() {
	cfg := s.cfg

	s.intro = NewContainer("intro")
	s.hero = NewText("hero", "Scroll down", s.font)
	s.hero.TextBlock.Color = RGB(0x9a, 0x9a, 0x9a)
	s.intro.AddChild(s.hero)

	s.stage = NewRect("stage", 0, 0, RGB(0xd1, 0xd1, 0xd1))
	s.track = NewRect("track", 0, cfg.CarHeight, RGB(0x1e, 0x1e, 0x1e))
	s.track.Clip = true

	s.trail = NewRect("trail", 0, cfg.CarHeight, RGB(0x45, 0xdb, 0x7d))
	s.trail.ZIndex = 1

	s.head = NewContainer("headline")
	s.head.ZIndex = 5
	for i, r := range []rune(cfg.Headline) {
		l := NewText(fmt.Sprintf("letter-%d", i), string(r), s.font)
		l.TextBlock.Color = RGB(0x11, 0x11, 0x11)
		s.head.AddChild(l)
	}

	s.car = newCarNode(cfg.CarWidth, cfg.CarHeight)
	s.car.ZIndex = 10

	s.track.AddChild(s.trail)
	s.track.AddChild(s.head)
	s.track.AddChild(s.car)
	s.stage.AddChild(s.track)

	s.cards = NewContainer("cards")
	for _, p := range cfg.Placements {
		s.cards.AddChild(newCardNode(p, s.font))
	}
	s.stage.AddChild(s.cards)

	s.root.AddChild(s.intro)
	s.root.AddChild(s.stage)
}

// newCarNode draws a simple side-view car out of rectangles.
func newCarNode(w, h float64) *Node {
	car := NewContainer("car")
	car.Width, car.Height = w, h
	body := NewRect("body", w, h*0.35, RGB(0xe8, 0x3b, 0x3b))
	body.Y = h * 0.45
	cabin := NewRect("cabin", w*0.55, h*0.22, RGB(0xc0, 0x2a, 0x2a))
	cabin.X, cabin.Y = w*0.2, h*0.25
	glass := NewRect("glass", w*0.45, h*0.14, RGB(0x9f, 0xd8, 0xff))
	glass.X, glass.Y = w*0.25, h*0.29
	car.AddChild(body)
	car.AddChild(cabin)
	car.AddChild(glass)
	for i, fx := range []float64{0.18, 0.68} {
		wheel := NewRect(fmt.Sprintf("wheel-%d", i), w*0.18, h*0.18, RGB(0x14, 0x14, 0x14))
		wheel.X, wheel.Y = w*fx, h*0.72
		car.AddChild(wheel)
	}
	return car
}

// cardWidth and cardHeight size every statistic card.
const (
	cardWidth  = 260
	cardHeight = 150
)

func newCardNode(p CardPlacement, font Font) *Node {
	card := NewRect("card-"+p.ID, cardWidth, cardHeight, p.Color)
	card.SetPivot(cardWidth/2, cardHeight/2)
	card.ZIndex = 5
	ink := RGB(0x11, 0x11, 0x11)
	if p.Color.R+p.Color.G+p.Color.B < 1.2 {
		ink = ColorWhite
	}
	value := NewText("value", p.Value, font)
	value.TextBlock.Color = ink
	value.X, value.Y = 24, 20
	value.SetScale(0.6, 0.6)
	label := NewText("label", p.Label, font)
	label.TextBlock.Color = ink
	label.X, label.Y = 24, 100
	label.SetScale(0.18, 0.18)
	card.AddChild(value)
	card.AddChild(label)
	return card
}

// Resize lays the scene out for a w x h viewport, re-measures geometry and
// reinstalls the engine's targets. Calls with an unchanged size are no-ops,
// as are calls with a non-positive size.
func (s *Scene) Resize(w, h float64) {
	if w == s.width && h == s.height {
		return
	}
	s.width, s.height = w, h
	if w <= 0 || h <= 0 {
		s.engine.Teardown()
		s.sink.Unbind()
		return
	}

	s.layout()
	s.bind()

	s.probe = Probe{
		Track:         s.track,
		Car:           s.car,
		Headline:      s.head,
		Viewport:      Vec2{X: w, Y: h},
		RegionTop:     h,
		RegionScreens: s.cfg.RegionScreens,
	}
	region := s.cfg.RegionScreens * h
	s.viewport.Resize(h, h+region+h+h)

	ready := s.engine.Install(s.probe.Measure())
	logger.Info("scrubline: resized",
		"width", w, "height", h,
		"ready", ready,
		"generation", s.engine.Generation())
	s.sampled = false
}

// layout positions every node for the current viewport size.
func (s *Scene) layout() {
	w, h := s.width, s.height
	cfg := s.cfg

	hw, hh := nodeDimensions(s.hero)
	s.hero.SetPivot(hw/2, hh/2)
	s.hero.SetPosition(w/2, h/2)

	s.stage.Width, s.stage.Height = w, h
	s.track.Width = w
	s.track.SetPosition(0, (h-cfg.CarHeight)/2)
	s.trail.Width = 0
	s.car.SetPosition(0, 0)

	s.head.SetPosition(w*0.05, cfg.CarHeight*0.15)
	offsets := LetterOffsets(s.font, cfg.Headline, cfg.LetterGap)
	for i, l := range s.head.Children() {
		lw, lh := nodeDimensions(l)
		l.SetPivot(lw/2, lh/2)
		l.SetPosition(offsets[i]+lw/2, lh/2)
	}

	for _, c := range s.cards.Children() {
		c.SetPosition(0, 0)
	}
	markSubtreeDirty(s.root)
}

// bind registers every animated node with the sink. Called after layout so
// the sink captures the laid-out positions as bases.
func (s *Scene) bind() {
	s.sink.Unbind()
	s.sink.Bind(CarID, s.car)
	s.sink.Bind(TrailID, s.trail)
	s.sink.Bind(HeroID, s.hero)
	for i, l := range s.head.Children() {
		s.sink.Bind(LetterID(i), l)
	}
	for i, c := range s.cards.Children() {
		s.sink.Bind(CardID(s.cfg.Placements[i]), c)
	}
}

// Update processes input, feeds the engine, advances tweens, and refreshes
// world transforms. Call once per tick.
func (s *Scene) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	return s.step(dt)
}

// step is Update with an explicit time step.
func (s *Scene) step(dt float32) error {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	before := s.engine.Stats()

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()

	if s.viewport.update(dt) || !s.sampled {
		s.sampleScroll()
	}
	s.engine.Tick(dt)
	s.place()
	updateWorldTransform(s.root, identity, 1, false)

	if s.debug {
		s.frameStats = frameStats(before, s.engine.Stats(), time.Since(t0))
		s.debugLog(s.frameStats)
	}
	s.overlay.update(dt, s)

	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

// sampleScroll sends the current scroll offset to the engine.
func (s *Scene) sampleScroll() {
	s.engine.Scroll(ScrollSample{
		ScrollY:    s.viewport.ScrollY,
		Generation: s.engine.Generation(),
	})
	s.sampled = true
}

// samplePointer sends a pointer position, in screen coordinates, to the
// engine as an offset from the center of the hero screen.
func (s *Scene) samplePointer(x, y float64) {
	heroRect := Rect{X: 0, Y: -s.viewport.ScrollY, Width: s.width, Height: s.height}
	s.engine.Pointer(PointerSample{
		Offset:     s.pointer.Sample(heroRect, x, y),
		Generation: s.engine.Generation(),
	})
}

// place moves the intro and the pinned stage for the current scroll offset.
func (s *Scene) place() {
	scroll := s.viewport.ScrollY
	s.intro.SetPosition(0, -scroll)
	s.stage.SetPosition(0, s.engine.Geometry().Region.ScreenY(scroll))
}

// Draw renders the scene into screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	s.render.drawCalls = 0
	s.render.draw(screen, s.root)
	s.frameStats.drawCalls = s.render.drawCalls
	s.flushScreenshots(screen)
	s.overlay.draw(screen)
}

// Layout implements the ebiten.Game sizing contract and resizes the scene.
// An injected resize pins the logical size until ClearSizeOverride, so the
// window size reported each frame does not undo it.
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	if s.sizeOverride.X > 0 && s.sizeOverride.Y > 0 {
		s.Resize(s.sizeOverride.X, s.sizeOverride.Y)
		return int(s.sizeOverride.X), int(s.sizeOverride.Y)
	}
	s.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// ClearSizeOverride drops the size pinned by InjectResize; the next Layout
// follows the window again.
func (s *Scene) ClearSizeOverride() {
	s.sizeOverride = Vec2{}
}
