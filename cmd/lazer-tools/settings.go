package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"

	"github.com/Givikap120/lazer-go/app/settings"
	"github.com/olekukonko/tablewriter"
)

func runSettings(cfg *settings.Config, args []string) error {
	fs := flag.NewFlagSet("settings", flag.ExitOnError)
	watch := fs.Bool("watch", false, "search again whenever the settings file changes")
	fs.Parse(args)

	term := strings.Join(fs.Args(), " ")

	printSettings(cfg, term)

	if !*watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := settings.Watch(ctx, settingsPath, func(cfg *settings.Config) { printSettings(cfg, term) }); err != nil {
		return err
	}

	<-ctx.Done()

	return nil
}

func printSettings(cfg *settings.Config, term string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Setting", "Value", "Options"})

	for _, item := range settings.Search(settings.Panel(cfg), term) {
		table.Append([]string{item.Label(), item.Value(), strings.Join(item.FilterTerms()[1:], ", ")})
	}

	table.Render()
}
