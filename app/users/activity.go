package users

import (
	"fmt"

	"github.com/Givikap120/lazer-go/app/beatmap"
	"github.com/Givikap120/lazer-go/app/graphics"
	"github.com/Givikap120/lazer-go/app/online/rooms"
	"github.com/Givikap120/lazer-go/app/rulesets"
	"github.com/Givikap120/lazer-go/framework/math/color"
)

// Activity is what the user is currently doing, shown in the user panel and rich presence.
type Activity interface {
	Status() string
	Details(mode PresenceMode) string
	Colour(palette *graphics.Palette) color.Color
}

type baseActivity struct{}

func (baseActivity) Details(PresenceMode) string {
	return ""
}

func (baseActivity) Colour(palette *graphics.Palette) color.Color {
	return palette.GreenDarker
}

type Modding struct {
	baseActivity
}

func (Modding) Status() string {
	return "Modding a map"
}

func (Modding) Colour(palette *graphics.Palette) color.Color {
	return palette.PurpleDark
}

type ChoosingBeatmap struct {
	baseActivity
}

func (ChoosingBeatmap) Status() string {
	return "Choosing a beatmap"
}

// InGame is shared by all gameplay activities.
type InGame struct {
	baseActivity

	Beatmap *beatmap.BeatmapInfo
	Ruleset *rulesets.Info
}

func (a *InGame) Status() string {
	return a.Ruleset.PlayingVerb()
}

func (a *InGame) Details(PresenceMode) string {
	return a.Beatmap.String()
}

type InMultiplayerGame struct {
	InGame
}

func NewInMultiplayerGame(info *beatmap.BeatmapInfo, ruleset *rulesets.Info) *InMultiplayerGame {
	return &InMultiplayerGame{InGame{Beatmap: info, Ruleset: ruleset}}
}

func (a *InMultiplayerGame) Status() string {
	return a.InGame.Status() + " with others"
}

type InPlaylistGame struct {
	InGame
}

func NewInPlaylistGame(info *beatmap.BeatmapInfo, ruleset *rulesets.Info) *InPlaylistGame {
	return &InPlaylistGame{InGame{Beatmap: info, Ruleset: ruleset}}
}

type InSoloGame struct {
	InGame

	restartCount int
}

func NewInSoloGame(info *beatmap.BeatmapInfo, ruleset *rulesets.Info, restartCount int) *InSoloGame {
	return &InSoloGame{InGame: InGame{Beatmap: info, Ruleset: ruleset}, restartCount: restartCount}
}

func (a *InSoloGame) Details(PresenceMode) string {
	if a.restartCount == 0 {
		return a.Beatmap.String()
	}

	return fmt.Sprintf("(%dx) %s", a.restartCount+1, a.Beatmap.String())
}

type Editing struct {
	baseActivity

	Beatmap *beatmap.BeatmapInfo
}

func NewEditing(info *beatmap.BeatmapInfo) *Editing {
	return &Editing{Beatmap: info}
}

func (a *Editing) Status() string {
	return "Editing a beatmap"
}

func (a *Editing) Details(PresenceMode) string {
	return a.Beatmap.String()
}

type Spectating struct {
	baseActivity
}

func (Spectating) Status() string {
	return "Spectating a game"
}

type SearchingForLobby struct {
	baseActivity
}

func (SearchingForLobby) Status() string {
	return "Looking for a lobby"
}

type InLobby struct {
	baseActivity

	Room *rooms.Room
}

func NewInLobby(room *rooms.Room) *InLobby {
	return &InLobby{Room: room}
}

func (a *InLobby) Status() string {
	return "In a lobby"
}

// Details hides the room name unless presence is fully shared.
func (a *InLobby) Details(mode PresenceMode) string {
	if mode == PresenceLimited || a.Room == nil {
		return ""
	}

	return a.Room.Name
}

type WatchingReplay struct {
	baseActivity

	Player  *User
	Beatmap *beatmap.BeatmapInfo
}

func NewWatchingReplay(player *User, info *beatmap.BeatmapInfo) *WatchingReplay {
	return &WatchingReplay{Player: player, Beatmap: info}
}

func (a *WatchingReplay) Status() string {
	return "Watching a replay"
}

func (a *WatchingReplay) Details(PresenceMode) string {
	if a.Beatmap == nil {
		return a.Player.String()
	}

	return fmt.Sprintf("%s playing %s", a.Player.String(), a.Beatmap.String())
}
