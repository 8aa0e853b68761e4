package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/Givikap120/lazer-go/app/beatmap"
	"github.com/Givikap120/lazer-go/app/discord"
	"github.com/Givikap120/lazer-go/app/graphics"
	"github.com/Givikap120/lazer-go/app/online/rooms"
	"github.com/Givikap120/lazer-go/app/rulesets"
	"github.com/Givikap120/lazer-go/app/settings"
	"github.com/Givikap120/lazer-go/app/users"
)

var activityKinds = []string{"modding", "choosing", "solo", "multiplayer", "playlist", "editing", "spectating", "searching", "lobby", "watching"}

func runPresence(cfg *settings.Config, args []string) error {
	fs := flag.NewFlagSet("presence", flag.ExitOnError)
	kind := fs.String("activity", "choosing", fmt.Sprint("activity kind, one of ", activityKinds))
	artist := fs.String("artist", "", "beatmap artist")
	title := fs.String("title", "", "beatmap title")
	difficulty := fs.String("difficulty", "", "beatmap difficulty name")
	ruleset := fs.String("ruleset", "osu", "ruleset short name")
	restarts := fs.Int("restarts", 0, "restart count of a solo game")
	room := fs.String("room", "", "lobby room name")
	player := fs.String("player", "", "player of a watched replay")
	mode := fs.String("mode", cfg.Discord.PresenceMode.String(), "presence mode (off, limited, full)")
	hold := fs.Duration("hold", 15*time.Second, "how long the activity stays visible")
	dry := fs.Bool("dry", false, "print the activity without connecting to Discord")
	fs.Parse(args)

	var presenceMode users.PresenceMode
	if err := presenceMode.UnmarshalText([]byte(*mode)); err != nil {
		return err
	}

	info := &beatmap.BeatmapInfo{
		DifficultyName: *difficulty,
		Metadata:       &beatmap.Metadata{Artist: *artist, Title: *title},
	}

	rulesetInfo, ok := rulesets.DefaultStore().GetRulesetByShortName(*ruleset)
	if !ok {
		return fmt.Errorf("unknown ruleset: %s", *ruleset)
	}

	info.Ruleset = rulesetInfo

	activity, err := buildActivity(*kind, info, rulesetInfo, *restarts, *room, *player)
	if err != nil {
		return err
	}

	fmt.Println("Status: ", activity.Status())
	fmt.Println("Details:", activity.Details(presenceMode))
	fmt.Println("Colour: ", activity.Colour(graphics.NewPalette()).Hex())

	if *dry || presenceMode == users.PresenceOff {
		return nil
	}

	presence := discord.Connect(cfg.Discord.AppID, presenceMode)
	presence.SetActivity(activity)

	time.Sleep(*hold)

	presence.Disconnect()

	return nil
}

func buildActivity(kind string, info *beatmap.BeatmapInfo, ruleset *rulesets.Info, restarts int, room, player string) (users.Activity, error) {
	switch kind {
	case "modding":
		return &users.Modding{}, nil
	case "choosing":
		return &users.ChoosingBeatmap{}, nil
	case "solo":
		return users.NewInSoloGame(info, ruleset, restarts), nil
	case "multiplayer":
		return users.NewInMultiplayerGame(info, ruleset), nil
	case "playlist":
		return users.NewInPlaylistGame(info, ruleset), nil
	case "editing":
		return users.NewEditing(info), nil
	case "spectating":
		return &users.Spectating{}, nil
	case "searching":
		return &users.SearchingForLobby{}, nil
	case "lobby":
		return users.NewInLobby(&rooms.Room{Name: room}), nil
	case "watching":
		return users.NewWatchingReplay(&users.User{Username: player}, info), nil
	}

	return nil, fmt.Errorf("unknown activity: %s", kind)
}
