package scrubline

// EngineStats counts what the engine has done since it was created.
type EngineStats struct {
	Installs        int
	Applied         int
	DroppedNotReady int
	DroppedStale    int
	Mutations       int
}

// letterAnim is the engine's per-letter presentation state. In RevealInstant
// mode only target is used.
type letterAnim struct {
	style  Style
	target RevealState
	primed bool
	tween  *TweenGroup
}

// Engine maps progress samples to target styles and hands them to a
// RenderSink. It keeps no state across samples other than the installed
// TargetSet, the last pointer offset, and (in RevealTween mode) the running
// letter tweens.
//
// Engine is single-threaded: all methods must be called from the goroutine
// that owns the render loop.
type Engine struct {
	cfg  Config
	sink RenderSink

	set        *TargetSet
	generation uint64

	reveal  []RevealState
	letters []letterAnim

	pointer Vec2
	hero    Style

	stats EngineStats
}

// NewEngine creates an idle engine. Nothing is emitted until a ready
// Geometry is installed.
func NewEngine(cfg Config, sink RenderSink) *Engine {
	if sink == nil {
		sink = SinkFunc(func(string, Style) {})
	}
	return &Engine{cfg: cfg, sink: sink}
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// RevealMode reports how letters move between hidden and visible.
func (e *Engine) RevealMode() RevealMode {
	return e.cfg.Reveal
}

// Generation returns the generation of the most recent Install. Samples must
// carry this value to be applied.
func (e *Engine) Generation() uint64 {
	return e.generation
}

// Ready reports whether a target set is installed.
func (e *Engine) Ready() bool {
	return e.set != nil
}

// Targets returns the installed target set, or nil while idle.
func (e *Engine) Targets() *TargetSet {
	return e.set
}

// Geometry returns the installed geometry, or NotReady while idle.
func (e *Engine) Geometry() Geometry {
	if e.set == nil {
		return NotReady
	}
	return e.set.Geometry
}

// Stats returns a snapshot of the engine counters.
func (e *Engine) Stats() EngineStats {
	return e.stats
}

// Install replaces the installed geometry. The previous target set is
// revoked before anything new is built, so no target from the old geometry
// can be mutated afterwards. If g is not ready the engine goes idle and
// Install returns false.
func (e *Engine) Install(g Geometry) bool {
	e.Teardown()
	e.generation++
	e.stats.Installs++

	g.Generation = e.generation
	set := BuildTargets(g, e.cfg)
	if set == nil {
		logger.Debug("scrubline: geometry not ready, engine idle",
			"generation", e.generation,
			"container_width", g.ContainerWidth,
			"target_width", g.TargetWidth)
		return false
	}

	e.set = set
	n := len(g.LetterOffsets)
	if cap(e.reveal) < n {
		e.reveal = make([]RevealState, n)
	}
	e.reveal = e.reveal[:n]
	e.letters = make([]letterAnim, n)

	logger.Debug("scrubline: installed geometry",
		"generation", e.generation,
		"container_width", g.ContainerWidth,
		"target_width", g.TargetWidth,
		"end_x", set.EndX,
		"letters", n)
	return true
}

// Teardown revokes the installed target set and leaves the engine idle.
// Running letter tweens and the last hero style are dropped with it, so a
// pointer sample after the next Install starts from that geometry's hero.
func (e *Engine) Teardown() {
	e.hero = Style{}
	if e.set == nil {
		return
	}
	e.set.revoke()
	e.set = nil
	e.letters = nil
}

// check decides whether a sample for generation gen may be applied.
func (e *Engine) check(gen uint64) Result {
	if e.set == nil {
		e.stats.DroppedNotReady++
		return DroppedNotReady
	}
	if gen != e.set.Generation {
		e.stats.DroppedStale++
		logger.Debug("scrubline: dropped stale sample",
			"sample_generation", gen,
			"generation", e.set.Generation)
		return DroppedStale
	}
	e.stats.Applied++
	return Applied
}

// emit forwards one mutation to the sink unless its target is revoked.
func (e *Engine) emit(t *AnimatedTarget, style Style) {
	if t == nil || t.Revoked() {
		return
	}
	e.stats.Mutations++
	e.sink.Apply(t.ID, style)
}

// CarProgress returns the car phase progress at scrollY for the installed
// geometry, or 0 while idle.
func (e *Engine) CarProgress(scrollY float64) float64 {
	if e.set == nil {
		return 0
	}
	return e.set.Car.Trigger.Progress(e.set.Geometry.Region, scrollY)
}

// CarX returns the car's translation at progress p:
// interpolate(0, endX, p, easing).
func (e *Engine) CarX(p float64) float64 {
	if e.set == nil {
		return 0
	}
	return e.set.Car.At(p).X
}

// TrailWidth returns the trail rectangle's width at progress p: the car's
// translation plus the lead fraction of the car width. It is also the sweep
// position letters are revealed against.
func (e *Engine) TrailWidth(p float64) float64 {
	if e.set == nil {
		return 0
	}
	return e.CarX(p) + e.set.Lead
}

// CardStyle returns card i's style at its own phase progress p.
func (e *Engine) CardStyle(i int, p float64) Style {
	if e.set == nil || i < 0 || i >= len(e.set.Cards) {
		return Style{}
	}
	return e.set.Cards[i].At(p)
}

// RevealStates returns the letter states computed for the last applied
// scroll sample. The slice is reused; callers must not keep it.
func (e *Engine) RevealStates() []RevealState {
	return e.reveal
}

// LetterStyle returns the style last emitted for letter i.
func (e *Engine) LetterStyle(i int) Style {
	if i < 0 || i >= len(e.letters) {
		return Style{}
	}
	return e.letters[i].style
}

// Scroll maps one scroll sample onto every scroll-driven target. Samples
// produced against an older geometry are dropped, as are samples that
// arrive while the engine is idle.
func (e *Engine) Scroll(s ScrollSample) Result {
	if r := e.check(s.Generation); r != Applied {
		return r
	}
	set := e.set
	region := set.Geometry.Region

	p := set.Car.Trigger.Progress(region, s.ScrollY)
	car := set.Car.At(p)
	sweep := car.X + set.Lead
	e.emit(set.Trail, Style{Width: sweep, Fields: FieldWidth})
	e.emit(set.Car, car)

	e.reveal = Reveal(sweep, set.Geometry.HeadlineLeft, set.Geometry.LetterOffsets, e.reveal)
	e.applyReveal()

	for _, card := range set.Cards {
		e.emit(card, card.At(card.Trigger.Progress(region, s.ScrollY)))
	}

	if set.Hero != nil {
		e.hero = set.Hero.At(ScrollProgress(0, region.Top, s.ScrollY))
		e.emitHero()
	}
	return Applied
}

// Pointer applies a pointer offset to the hero. The offset is used as given;
// clamping, if any, belongs to the PointerSource.
func (e *Engine) Pointer(s PointerSample) Result {
	if r := e.check(s.Generation); r != Applied {
		return r
	}
	e.pointer = s.Offset
	if e.set.Hero != nil {
		if e.hero.Fields == 0 {
			e.hero = e.set.Hero.Start
		}
		e.emitHero()
	}
	return Applied
}

func (e *Engine) emitHero() {
	h := e.cfg.Hero
	style := e.hero
	style.X += e.pointer.X * h.Parallax * 2
	style.Y += e.pointer.Y * h.Parallax * 2
	style.TiltX = -e.pointer.Y * h.MaxTilt * 2
	style.TiltY = e.pointer.X * h.MaxTilt * 2
	style.Fields |= FieldX | FieldY | FieldTilt
	e.emit(e.set.Hero, style)
}

// applyReveal pushes the current reveal states to the letters. Instant mode
// emits every letter on every sample; tween mode starts a tween for each
// letter whose state flipped and leaves the rest to Tick.
func (e *Engine) applyReveal() {
	set := e.set
	for i, state := range e.reveal {
		t := set.Letters[i]
		want := t.Start
		if state == Visible {
			want = t.End
		}
		la := &e.letters[i]

		if e.cfg.Reveal != RevealTween || !la.primed {
			la.style = want
			la.target = state
			la.primed = true
			la.tween = nil
			e.emit(t, want)
			continue
		}
		if la.target == state {
			continue
		}
		// Last sample wins: the running tween is replaced from wherever
		// the letter currently is.
		la.target = state
		la.tween = TweenReveal(&la.style, want, e.cfg.RevealDuration, t.Interp.Func())
	}
}

// Tick advances running letter tweens by dt seconds and emits their styles.
// It does nothing in RevealInstant mode or while idle.
func (e *Engine) Tick(dt float32) {
	if e.set == nil || e.cfg.Reveal != RevealTween {
		return
	}
	for i := range e.letters {
		la := &e.letters[i]
		if la.tween == nil {
			continue
		}
		la.tween.Update(dt)
		e.emit(e.set.Letters[i], la.style)
		if la.tween.Done {
			la.tween = nil
		}
	}
}

// Animating reports whether any letter tween is still running.
func (e *Engine) Animating() bool {
	for i := range e.letters {
		if e.letters[i].tween != nil {
			return true
		}
	}
	return false
}
