package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/Givikap120/lazer-go/app/replays"
	"github.com/Givikap120/lazer-go/app/settings"
	"github.com/Givikap120/lazer-go/app/users"
	"github.com/dustin/go-humanize"
)

func runReplay(cfg *settings.Config, args []string) error {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() == 0 {
		return errors.New("usage: lazer-tools replay <file.osr>")
	}

	for _, path := range fs.Args() {
		summary, err := replays.LoadReplay(path, nil)
		if err != nil {
			return err
		}

		activity := summary.Activity()

		fmt.Println(path)
		fmt.Println("  Score:", humanize.Comma(summary.Score), "| Combo:", summary.MaxCombo, "| Hits:", summary.Hits)
		fmt.Println("  Status:", activity.Status())
		fmt.Println("  Details:", activity.Details(cfg.Discord.PresenceMode))

		if cfg.Discord.PresenceMode == users.PresenceOff {
			fmt.Println("  Rich presence is off")
		}
	}

	return nil
}
