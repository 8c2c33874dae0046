package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/phanxgames/scrubline"
)

type traceOptions struct {
	variant string
	width   float64
	height  float64
	steps   int
	mono    bool
}

// traceRow is the engine state after one scroll sample.
type traceRow struct {
	scrollY  float64
	progress float64
	carX     float64
	trail    float64
	visible  int
	letters  int
	cards    float64 // mean card opacity
	result   scrubline.Result
}

func newTraceCommand(ctx *commandContext) *cobra.Command {
	opts := traceOptions{width: 1200, height: 800, steps: 10}

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Print the engine state across the pinned region without a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.width <= 0 || opts.height <= 0 {
				return fmt.Errorf("trace: viewport must be positive, got %gx%g", opts.width, opts.height)
			}
			if opts.steps < 1 {
				return fmt.Errorf("trace: --steps must be at least 1")
			}
			cfg, err := ctx.sceneConfig(opts.variant)
			if err != nil {
				return err
			}
			var font scrubline.Font = scrubline.MonoFont{Advance: cfg.FontSize * 0.6, Height: cfg.FontSize}
			if !opts.mono {
				ttf, err := scrubline.DefaultFont(cfg.FontSize)
				if err != nil {
					return fmt.Errorf("trace: load font: %w", err)
				}
				font = ttf
			}

			g := traceGeometry(cfg, font, opts.width, opts.height)
			rows := traceFrames(cfg, g, opts.steps)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  %gx%g  end x %.1f\n", cfg.Name, opts.width, opts.height, g.EndX(cfg.Track))
			fmt.Fprintln(out, renderTraceTable(rows, tableStyle(out)))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.variant, "variant", "", "Built-in variant ("+variantNames()+")")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "Viewport width in pixels")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "Viewport height in pixels")
	cmd.Flags().IntVar(&opts.steps, "steps", opts.steps, "Number of intervals across the pinned region")
	cmd.Flags().BoolVar(&opts.mono, "mono", false, "Measure letters with a fixed-advance font")
	return cmd
}

// traceGeometry lays the page out the way Scene does for a w x h viewport.
func traceGeometry(cfg scrubline.Config, font scrubline.Font, w, h float64) scrubline.Geometry {
	return scrubline.Geometry{
		ContainerWidth: w,
		TargetWidth:    cfg.CarWidth,
		HeadlineLeft:   w * 0.05,
		LetterOffsets:  scrubline.LetterOffsets(font, cfg.Headline, cfg.LetterGap),
		Region:         scrubline.PinnedRegion{Top: h, Height: cfg.RegionScreens * h},
		Viewport:       scrubline.Vec2{X: w, Y: h},
	}
}

// traceFrames samples the region at steps+1 evenly spaced offsets. Letter
// tweens are settled after every sample.
func traceFrames(cfg scrubline.Config, g scrubline.Geometry, steps int) []traceRow {
	cards := make(map[string]float64, len(cfg.Placements))
	sink := scrubline.SinkFunc(func(id string, s scrubline.Style) {
		if s.Has(scrubline.FieldOpacity) {
			cards[id] = s.Opacity
		}
	})
	engine := scrubline.NewEngine(cfg, sink)
	engine.Install(g)

	rows := make([]traceRow, 0, steps+1)
	for i := 0; i <= steps; i++ {
		y := g.Region.Top + g.Region.Height*float64(i)/float64(steps)
		res := engine.Scroll(scrubline.ScrollSample{ScrollY: y, Generation: engine.Generation()})
		for engine.Animating() {
			engine.Tick(cfg.RevealDuration + 0.01)
		}

		p := engine.CarProgress(y)
		row := traceRow{
			scrollY:  y,
			progress: p,
			carX:     engine.CarX(p),
			trail:    engine.TrailWidth(p),
			letters:  len(g.LetterOffsets),
			result:   res,
		}
		for _, st := range engine.RevealStates() {
			if st == scrubline.Visible {
				row.visible++
			}
		}
		if n := len(cfg.Placements); n > 0 {
			var sum float64
			for _, pl := range cfg.Placements {
				sum += cards[scrubline.CardID(pl)]
			}
			row.cards = sum / float64(n)
		}
		rows = append(rows, row)
	}
	return rows
}

func renderTraceTable(rows []traceRow, style table.Style) string {
	headers := []string{"Scroll", "Progress", "Car X", "Trail", "Letters", "Cards", "Result"}
	aligns := []columnAlignment{alignRight, alignRight, alignRight, alignRight, alignRight, alignRight, alignLeft}
	body := make([][]string, 0, len(rows))
	for _, r := range rows {
		body = append(body, []string{
			strconv.FormatFloat(r.scrollY, 'f', 0, 64),
			strconv.FormatFloat(r.progress, 'f', 3, 64),
			strconv.FormatFloat(r.carX, 'f', 1, 64),
			strconv.FormatFloat(r.trail, 'f', 1, 64),
			fmt.Sprintf("%d/%d", r.visible, r.letters),
			strconv.FormatFloat(r.cards, 'f', 2, 64),
			r.result.String(),
		})
	}
	return renderTable(headers, body, aligns, style)
}
