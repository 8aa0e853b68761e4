package tournament

import (
	"image"
	_ "image/png"
	"log"
	"time"

	"github.com/EdlinOrg/prominentcolor"
	"github.com/Givikap120/lazer-go/app/graphics"
	"github.com/Givikap120/lazer-go/framework/graphics/layout"
	"github.com/Givikap120/lazer-go/framework/math/color"
	"github.com/Givikap120/lazer-go/framework/math/vector"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	teamIntroVideo  = "BG Team - Both OWC.m4v"
	roundDateFormat = "02 January 15:04 UTC"

	unknownRound = "Unknown Grouping"
	unknownTeam  = "???"
)

var upper = cases.Upper(language.Und)

type Text struct {
	Text    string
	Font    string
	Size    float32
	Colour  color.Color
	Spacing vector.Vector2f

	Anchor layout.Anchor
	Origin layout.Anchor
}

type Video struct {
	// Path is empty when the video is missing from storage
	Path string
	Loop bool
}

type Flag struct {
	Path  string
	Size  vector.Vector2f
	Scale float32

	// Space below the flag, before the team name
	MarginBottom float32

	// Accent is the dominant colour of the flag image, nil if it couldn't be read
	Accent *color.Color
}

type TeamPanel struct {
	Team *Team

	// Relative size inside the screen
	Size   vector.Vector2f
	Anchor layout.Anchor
	Origin layout.Anchor

	Colour color.Color

	Flag  Flag
	Name  Text
	Title Text

	// Relative horizontal offsets of the team display and the player list
	DisplayX float32
	PlayersX float32

	DisplayAnchor layout.Anchor
	DisplayOrigin layout.Anchor

	PlayersSpacing vector.Vector2f
	PlayersPadding float32

	Players []Text
}

type RoundDisplay struct {
	Height  float32
	Anchor  layout.Anchor
	Origin  layout.Anchor
	Spacing vector.Vector2f

	Heading Text
	Name    Text
	Date    Text
}

// TeamIntro is the "coming up next" screen showing both teams of a match.
type TeamIntro struct {
	Background Video

	Left  TeamPanel
	Right TeamPanel

	Round RoundDisplay
}

// NewTeamIntro lays out the intro screen. Missing teams or round are shown with placeholders,
// now is used as the date when the round has none.
func NewTeamIntro(team1, team2 *Team, round *Round, storage Storage, now func() time.Time) *TeamIntro {
	palette := graphics.NewPalette()

	intro := &TeamIntro{
		Left:  newTeamPanel(team1, true, palette.TeamRed, storage),
		Right: newTeamPanel(team2, false, palette.TeamBlue, storage),
		Round: newRoundDisplay(round, now),
	}

	intro.Background.Loop = true

	if storage.Exists(teamIntroVideo) {
		intro.Background.Path = storage.GetFullPath(teamIntroVideo)
	} else {
		log.Println("Team intro video is missing:", teamIntroVideo)
	}

	return intro
}

func newRoundDisplay(round *Round, now func() time.Time) RoundDisplay {
	col := graphics.Gray(0.33)

	name := unknownRound
	date := now()

	if round != nil {
		name = round.Name
		date = round.StartDate
	}

	return RoundDisplay{
		Height:  0.25,
		Anchor:  layout.BottomCentre,
		Origin:  layout.BottomCentre,
		Spacing: vector.NewVec2f(0, 10),
		Heading: Text{
			Text:   "COMING UP NEXT",
			Font:   "Exo2.0-SemiBold",
			Size:   15,
			Colour: col,
			Anchor: layout.TopCentre,
			Origin: layout.TopCentre,
		},
		Name: Text{
			Text:    name,
			Font:    "Exo2.0-Light",
			Size:    50,
			Colour:  col,
			Spacing: vector.NewVec2f(10, 0),
			Anchor:  layout.TopCentre,
			Origin:  layout.TopCentre,
		},
		Date: Text{
			Text:   date.UTC().Format(roundDateFormat),
			Size:   20,
			Colour: col,
			Anchor: layout.TopCentre,
			Origin: layout.TopCentre,
		},
	}
}

func newTeamPanel(team *Team, left bool, colour color.Color, storage Storage) TeamPanel {
	panel := TeamPanel{
		Team:     team,
		Size:     vector.NewVec2f(0.5, 0.6),
		Anchor:   layout.Centre,
		Origin:   layout.CentreLeft,
		Colour:   colour,
		DisplayX: 0.36,
		PlayersX: -0.1,

		DisplayAnchor: layout.CentreLeft,
		DisplayOrigin: layout.Centre,

		PlayersSpacing: vector.NewVec2f(0, 5),
		PlayersPadding: 20,

		Flag: Flag{
			Size:         vector.NewVec2f(300, 200),
			Scale:        0.4,
			MarginBottom: 20,
		},
	}

	title := "Team Blue"
	playerAnchor := layout.CentreLeft

	if left {
		panel.Origin = layout.CentreRight
		panel.DisplayX = -0.36
		panel.PlayersX = 0.1
		panel.DisplayAnchor = layout.CentreRight
		title = "Team Red"
		playerAnchor = layout.CentreRight
	}

	name := unknownTeam
	if team != nil {
		name = upper.String(team.FullName)
	}

	panel.Name = Text{
		Text:   name,
		Font:   "Exo2.0-Light",
		Size:   40,
		Colour: color.NewRGB(0, 0, 0),
		Anchor: layout.TopCentre,
		Origin: layout.TopCentre,
	}

	panel.Title = Text{
		Text:   upper.String(title),
		Size:   20,
		Colour: colour,
		Anchor: layout.TopCentre,
		Origin: layout.TopCentre,
	}

	if team == nil {
		return panel
	}

	for _, p := range team.Players {
		panel.Players = append(panel.Players, Text{
			Text:   p.Username,
			Size:   24,
			Colour: colour,
			Anchor: playerAnchor,
			Origin: playerAnchor,
		})
	}

	if team.FlagName != "" {
		panel.Flag.Path, panel.Flag.Accent = loadFlag(storage, team.FlagName)
	}

	return panel
}

func loadFlag(storage Storage, flagName string) (string, *color.Color) {
	name := "Flags/" + flagName + ".png"

	if !storage.Exists(name) {
		log.Println("Flag not found:", name)
		return "", nil
	}

	path := storage.GetFullPath(name)

	stream, err := storage.GetStream(name)
	if err != nil {
		log.Println("Failed to open flag:", err)
		return path, nil
	}

	defer stream.Close()

	img, _, err := image.Decode(stream)
	if err != nil {
		log.Println("Failed to decode flag", name+":", err)
		return path, nil
	}

	colours, err := prominentcolor.Kmeans(img)
	if err != nil || len(colours) == 0 {
		log.Println("Failed to find flag accent colour", name+":", err)
		return path, nil
	}

	c := colours[0].Color
	accent := color.NewRGBA8(uint8(c.R), uint8(c.G), uint8(c.B), 255)

	return path, &accent
}
