package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Givikap120/lazer-go/app/graphics"
	"github.com/Givikap120/lazer-go/app/rulesets/taiko"
	"github.com/Givikap120/lazer-go/app/settings"
	"github.com/olekukonko/tablewriter"
)

func runTaiko(_ *settings.Config, args []string) error {
	fs := flag.NewFlagSet("taiko", flag.ExitOnError)
	kiai := fs.Bool("kiai", false, "show pieces as during kiai time")
	fs.Parse(args)

	palette := graphics.NewPalette()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Piece", "Strong", "Position", "Diameter", "Width", "Accent", "Glow"})

	for _, piece := range taiko.VisualTestScene(*kiai) {
		table.Append([]string{
			piece.Kind.String(),
			fmt.Sprint(piece.Strong),
			piece.Position.String(),
			fmt.Sprintf("%.1f", piece.Diameter()),
			fmt.Sprintf("%.0f", piece.Width),
			piece.AccentColour(palette).Hex(),
			fmt.Sprintf("%.2f", piece.GlowAlpha()),
		})
	}

	table.Render()

	return nil
}
