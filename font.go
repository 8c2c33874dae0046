package scrubline

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
)

// Font is the interface for text measurement.
type Font interface {
	MeasureString(text string) (width, height float64)
	LineHeight() float64
}

// TextBlock holds text content and formatting for a text node.
type TextBlock struct {
	Content string
	Font    Font
	Color   Color
}

// Measure returns the block's rendered size, or zero without a font.
func (tb *TextBlock) Measure() (w, h float64) {
	if tb.Font == nil || tb.Content == "" {
		return 0, 0
	}
	return tb.Font.MeasureString(tb.Content)
}

// LetterOffsets returns the left edge of each rune in s when laid out in a
// single line with font f and gap extra pixels between letters. Offsets are
// relative to the line's left edge and follow source order.
func LetterOffsets(f Font, s string, gap float64) []float64 {
	offsets := make([]float64, 0, utf8.RuneCountInString(s))
	i := 0
	for pos := range s {
		w := 0.0
		if pos > 0 {
			w, _ = f.MeasureString(s[:pos])
		}
		offsets = append(offsets, w+float64(i)*gap)
		i++
	}
	return offsets
}

// --- TTFFont ---

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	face *text.GoTextFace
	lh   float64
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("scrubline: parse TTF data: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &TTFFont{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}, nil
}

// DefaultFont loads the bundled bold Go font at the given size.
func DefaultFont(size float64) (*TTFFont, error) {
	return LoadTTFFont(gobold.TTF, size)
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying GoTextFace for drawing.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}

// --- MonoFont ---

// MonoFont is a fixed-advance font used for headless layout: every rune is
// Advance pixels wide and Height pixels tall.
type MonoFont struct {
	Advance float64
	Height  float64
}

// MeasureString returns the width and height of s.
func (f MonoFont) MeasureString(s string) (width, height float64) {
	n := utf8.RuneCountInString(s)
	if n == 0 {
		return 0, 0
	}
	return float64(n) * f.Advance, f.Height
}

// LineHeight returns Height.
func (f MonoFont) LineHeight() float64 {
	return f.Height
}
