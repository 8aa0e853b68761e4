package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/Givikap120/lazer-go/app/platform"
	"github.com/Givikap120/lazer-go/app/settings"
)

type command struct {
	description string
	run         func(cfg *settings.Config, args []string) error
}

var settingsPath = settings.DefaultPath

var commands = map[string]command{
	"particles":  {"simulate the star fountain and report particle counts", runParticles},
	"preview":    {"draw the star fountain in the terminal", runPreview},
	"mostplayed": {"fetch and cache most played beatmaps of a user", runMostPlayed},
	"teamintro":  {"show the team intro layout of the current tournament match", runTeamIntro},
	"presence":   {"send an activity to Discord rich presence", runPresence},
	"replay":     {"show the activity for watching a replay file", runReplay},
	"settings":   {"search the settings panel", runSettings},
	"taiko":      {"list the taiko hit object visual test scene", runTaiko},
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: lazer-tools [-settings path] <command> [flags]")
	fmt.Fprintln(os.Stderr, "\nCommands:")

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %-12s %s\n", name, commands[name].description)
	}
}

func main() {
	flag.StringVar(&settingsPath, "settings", settings.DefaultPath, "path to settings file")
	verbose := flag.Bool("v", false, "log system information on startup")

	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	cmd, ok := commands[flag.Arg(0)]
	if !ok {
		fmt.Fprintln(os.Stderr, "Unknown command:", flag.Arg(0))
		usage()
		os.Exit(2)
	}

	if *verbose {
		platform.LogSystemInfo()
	}

	cfg, err := settings.Load(settingsPath)
	if err != nil {
		log.Fatalln(err)
	}

	if err = cmd.run(cfg, flag.Args()[1:]); err != nil {
		log.Fatalln(err)
	}
}
