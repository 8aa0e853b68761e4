package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/Givikap120/lazer-go/app/settings"
	"github.com/Givikap120/lazer-go/app/tournament"
	"github.com/olekukonko/tablewriter"
)

func runTeamIntro(cfg *settings.Config, args []string) error {
	fs := flag.NewFlagSet("teamintro", flag.ExitOnError)
	watch := fs.Bool("watch", false, "print the layout again whenever the bracket changes")
	fs.Parse(args)

	storage := tournament.NewDirStorage(cfg.Tournament.Directory)

	ladder, err := tournament.LoadLadder(cfg.BracketPath())
	if err != nil {
		return err
	}

	if err = printTeamIntro(ladder, storage); err != nil {
		return err
	}

	if !*watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = tournament.WatchLadder(ctx, cfg.BracketPath(), func(ladder *tournament.Ladder) {
		if err := printTeamIntro(ladder, storage); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	})
	if err != nil {
		return err
	}

	<-ctx.Done()

	return nil
}

func printTeamIntro(ladder *tournament.Ladder, storage tournament.Storage) error {
	_, team1, team2, round, err := ladder.CurrentMatch()
	if err != nil {
		return err
	}

	intro := tournament.NewTeamIntro(team1, team2, round, storage, time.Now)

	fmt.Println(intro.Round.Heading.Text)
	fmt.Println(intro.Round.Name.Text, "|", intro.Round.Date.Text)

	if intro.Background.Path != "" {
		fmt.Println("Background:", intro.Background.Path)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Side", "Team", "Flag", "Accent", "Players"})

	for _, panel := range []tournament.TeamPanel{intro.Left, intro.Right} {
		accent := ""
		if panel.Flag.Accent != nil {
			accent = panel.Flag.Accent.Hex()
		}

		players := make([]string, 0, len(panel.Players))
		for _, p := range panel.Players {
			players = append(players, p.Text)
		}

		table.Append([]string{
			panel.Title.Text,
			panel.Name.Text,
			panel.Flag.Path,
			accent,
			strings.Join(players, ", "),
		})
	}

	table.Render()

	return nil
}
