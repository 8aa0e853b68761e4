package main

import (
	"context"
	"flag"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/Givikap120/lazer-go/app/graphics/particles"
	"github.com/Givikap120/lazer-go/app/settings"
	"github.com/Givikap120/lazer-go/framework/graphics/batch"
	"github.com/Givikap120/lazer-go/framework/math/vector"
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
)

// Area covered by a full fountain burst, in pixels
const (
	previewWidth  = 800
	previewHeight = 1300
)

func runPreview(cfg *settings.Config, args []string) error {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	fps := fs.Int("fps", 60, "update rate")
	seed := fs.Int64("seed", time.Now().UnixNano(), "random seed")
	fs.Parse(args)

	interval, err := frameInterval(*fps)
	if err != nil {
		return err
	}

	spewer, _, err := newSpewer(cfg, *seed)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}

	if err = screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}

	defer screen.Fini()

	width, height := screen.Size()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var active atomic.Bool
	active.Store(true)

	frames := make(chan *particles.DrawSnapshot, 1)

	go updateLoop(ctx, spewer, &active, interval, frames)

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}

			events <- ev
		}
	}()

	collector := &batch.QuadCollector{}

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}

			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}

				if ev.Key() == tcell.KeyRune && ev.Rune() == ' ' {
					active.Store(!active.Load())
				}
			case *tcell.EventResize:
				// the spewer is owned by the update loop, so the matrix is swapped on the snapshot instead
				width, height = screen.Size()
				screen.Sync()
			}
		case snapshot := <-frames:
			snapshot.Matrix = previewMatrix(width, height)

			collector.Reset()
			drawn := snapshot.Blit(collector)

			drawPreview(screen, collector.Quads, drawn, active.Load())
		}
	}
}

// updateLoop owns the spewer. Snapshots that the screen didn't pick up in time are replaced by newer ones.
func updateLoop(ctx context.Context, spewer *particles.Spewer, active *atomic.Bool, interval time.Duration, frames chan *particles.DrawSnapshot) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	start := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			spewer.SetActive(active.Load())
			spewer.Update(float64(now.Sub(start).Microseconds()) / 1000)

			snapshot := spewer.Snapshot()

			select {
			case frames <- snapshot:
			default:
				select {
				case <-frames:
				default:
				}

				frames <- snapshot
			}
		}
	}
}

func frameInterval(fps int) (time.Duration, error) {
	if fps <= 0 {
		return 0, fmt.Errorf("update rate must be positive, got %d", fps)
	}

	return time.Second / time.Duration(fps), nil
}

// previewMatrix maps fountain pixels to terminal cells, the fountain sits in the bottom left corner.
func previewMatrix(width, height int) mgl32.Mat3 {
	return batch.DrawMatrix(
		vector.NewVec2f(2, float32(height-2)),
		vector.NewVec2f(float32(width)/previewWidth, float32(height)/previewHeight),
		0,
	)
}

func drawPreview(screen tcell.Screen, quads []batch.DrawnQuad, drawn int, active bool) {
	screen.Clear()

	width, height := screen.Size()

	for _, quad := range quads {
		centre := quad.Quad.Centre()

		x, y := int(centre.X), int(centre.Y)
		if x < 0 || y < 0 || x >= width || y >= height {
			continue
		}

		r, g, b, _ := quad.Colour.RGBA8()
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))

		screen.SetContent(x, y, particleRune(quad.Colour.A), nil, style)
	}

	status := fmt.Sprintf(" %d particles | active: %t | space: toggle, q: quit ", drawn, active)
	for i, r := range status {
		if i >= width {
			break
		}

		screen.SetContent(i, 0, r, nil, tcell.StyleDefault.Reverse(true))
	}

	screen.Show()
}

func particleRune(alpha float32) rune {
	switch {
	case alpha > 0.66:
		return '*'
	case alpha > 0.33:
		return '+'
	default:
		return '.'
	}
}
