package termview

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/scrubline"
)

const frameInterval = 16 * time.Millisecond

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (v *View) HandleEvent(ev tcell.Event) bool {
	page := float64(v.rows) * cellH / 2
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyDown:
			v.ScrollBy(2 * cellH)
		case tcell.KeyUp:
			v.ScrollBy(-2 * cellH)
		case tcell.KeyPgDn:
			v.ScrollBy(page)
		case tcell.KeyPgUp:
			v.ScrollBy(-page)
		case tcell.KeyHome:
			v.ScrollTo(0)
		case tcell.KeyEnd:
			v.ScrollTo(v.maxScroll)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'j':
				v.ScrollBy(2 * cellH)
			case 'k':
				v.ScrollBy(-2 * cellH)
			case ' ':
				v.ScrollBy(page)
			}
		}
	case *tcell.EventMouse:
		switch {
		case ev.Buttons()&tcell.WheelDown != 0:
			v.ScrollBy(3 * cellH)
		case ev.Buttons()&tcell.WheelUp != 0:
			v.ScrollBy(-3 * cellH)
		}
		x, y := ev.Position()
		v.PointerAt(x, y)
	case *tcell.EventResize:
		v.screen.Sync()
		v.Resize(ev.Size())
	}
	return true
}

// pollEvents forwards screen events until the screen is finalized, which
// closes events, or until done is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// Run opens screen, drives the view until ctx is done or the user quits,
// and restores the terminal.
func Run(ctx context.Context, screen tcell.Screen, cfg scrubline.Config) error {
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	v := New(screen, cfg)
	v.Resize(screen.Size())
	v.Draw()

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, events, done)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok || !v.HandleEvent(ev) {
				return nil
			}
			v.Draw()
		case now := <-ticker.C:
			if v.engine.Animating() {
				v.Tick(float32(now.Sub(last).Seconds()))
				v.Draw()
			}
			last = now
		}
	}
}
