package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/Givikap120/lazer-go/app/graphics/particles"
	"github.com/Givikap120/lazer-go/app/settings"
	"github.com/Givikap120/lazer-go/framework/graphics/batch"
	"github.com/Givikap120/lazer-go/framework/graphics/texture"
	"github.com/olekukonko/tablewriter"
)

func newSpewer(cfg *settings.Config, seed int64) (*particles.Spewer, *particles.StarFountain, error) {
	tex := texture.NewRegion(32, 32)

	if cfg.Particles.Texture != "" {
		var err error
		if tex, err = texture.LoadRegion(cfg.Particles.Texture); err != nil {
			return nil, nil, err
		}
	}

	fountain := particles.NewStarFountain(rand.New(rand.NewSource(seed)))

	spewer := particles.NewSpewer(tex, cfg.Particles.PerSecond, cfg.Particles.MaxDuration)
	spewer.Factory = fountain
	spewer.Gravity = cfg.Particles.Gravity

	return spewer, fountain, nil
}

func runParticles(cfg *settings.Config, args []string) error {
	fs := flag.NewFlagSet("particles", flag.ExitOnError)
	active := fs.Float64("active", 1000, "how long the fountain spawns, in milliseconds")
	length := fs.Float64("length", 3000, "simulated time, in milliseconds")
	step := fs.Float64("step", 500, "report interval, in milliseconds")
	fps := fs.Float64("fps", 240, "update rate")
	seed := fs.Int64("seed", 1, "random seed")
	fs.Parse(args)

	if *fps <= 0 || *step <= 0 {
		return fmt.Errorf("update rate and report interval must be positive, got %v and %v", *fps, *step)
	}

	spewer, _, err := newSpewer(cfg, *seed)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Time", "Active", "Present", "Spawned", "Drawn"})

	collector := &batch.QuadCollector{}
	snapshot := new(particles.DrawSnapshot)

	frame := 1000 / *fps
	nextReport := 0.0

	// the clock starts at one frame, particles stamped at zero are treated as unused
	for time := frame; time <= *length; time += frame {
		spewer.SetActive(time <= *active)
		spewer.Update(time)

		if time < nextReport {
			continue
		}

		nextReport += *step

		collector.Reset()
		spewer.ApplyState(snapshot)
		drawn := snapshot.Blit(collector)

		table.Append([]string{
			fmt.Sprintf("%.0fms", time),
			fmt.Sprint(spewer.Active()),
			fmt.Sprint(spewer.IsPresent()),
			fmt.Sprintf("%d/%d", spewer.Len(), spewer.Cap()),
			fmt.Sprint(drawn),
		})
	}

	table.Render()

	return nil
}
