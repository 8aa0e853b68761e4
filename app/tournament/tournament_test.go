package tournament

import (
	"context"
	"errors"
	"image"
	imgcolor "image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Givikap120/lazer-go/app/users"
	"github.com/Givikap120/lazer-go/framework/graphics/layout"
	"github.com/Givikap120/lazer-go/framework/math/vector"
)

const ladderJSON = `{
	"Teams": [
		{"FullName": "South Korea", "Acronym": "KOR", "FlagName": "KR", "Players": [{"id": 1, "username": "Lifeline"}, {"id": 2, "username": "Bubbleman"}]},
		{"FullName": "United States", "Acronym": "USA", "FlagName": "US", "Players": [{"id": 3, "username": "Vaxei"}]}
	],
	"Rounds": [
		{"Name": "Grand Finals", "StartDate": "2018-12-16T09:00:00Z", "BestOf": 13}
	],
	"Matches": [
		{"ID": 1, "Team1Acronym": "KOR", "Team2Acronym": "USA", "Round": "Grand Finals", "Current": true}
	]
}`

func writeLadder(t *testing.T, dir, data string) string {
	t.Helper()

	path := filepath.Join(dir, "bracket.json")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	return path
}

func fixedNow() time.Time {
	return time.Date(2024, time.March, 5, 18, 30, 0, 0, time.UTC)
}

func TestLadderCurrentMatch(t *testing.T) {
	ladder, err := LoadLadder(writeLadder(t, t.TempDir(), ladderJSON))
	if err != nil {
		t.Fatalf("LoadLadder() error = %v", err)
	}

	match, team1, team2, round, err := ladder.CurrentMatch()
	if err != nil {
		t.Fatalf("CurrentMatch() error = %v", err)
	}

	if match.ID != 1 || team1.Acronym != "KOR" || team2.Acronym != "USA" || round.BestOf != 13 {
		t.Errorf("CurrentMatch() = %+v, %+v, %+v, %+v", match, team1, team2, round)
	}

	if ladder.FindTeam("kor") != team1 {
		t.Error("FindTeam should ignore case")
	}

	ladder.Matches[0].Current = false

	if _, _, _, _, err = ladder.CurrentMatch(); !errors.Is(err, ErrNoCurrentMatch) {
		t.Errorf("CurrentMatch() error = %v, expected ErrNoCurrentMatch", err)
	}
}

func TestLoadLadderInvalid(t *testing.T) {
	if _, err := LoadLadder(writeLadder(t, t.TempDir(), "{")); err == nil {
		t.Error("expected parse error")
	}

	if _, err := LoadLadder(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected read error")
	}
}

func TestTeamIntro(t *testing.T) {
	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, teamIntroVideo), []byte("video"), 0644); err != nil {
		t.Fatal(err)
	}

	team1 := &Team{FullName: "South Korea", Players: []users.User{{Username: "Lifeline"}, {Username: "Bubbleman"}}}
	team2 := &Team{FullName: "United States", Players: []users.User{{Username: "Vaxei"}}}
	round := &Round{Name: "Grand Finals", StartDate: time.Date(2018, time.December, 16, 9, 0, 0, 0, time.UTC)}

	intro := NewTeamIntro(team1, team2, round, NewDirStorage(dir), fixedNow)

	if intro.Background.Path != filepath.Join(dir, teamIntroVideo) || !intro.Background.Loop {
		t.Errorf("Background = %+v", intro.Background)
	}

	tests := []struct {
		name     string
		actual   string
		expected string
	}{
		{"left name", intro.Left.Name.Text, "SOUTH KOREA"},
		{"left title", intro.Left.Title.Text, "TEAM RED"},
		{"right name", intro.Right.Name.Text, "UNITED STATES"},
		{"right title", intro.Right.Title.Text, "TEAM BLUE"},
		{"heading", intro.Round.Heading.Text, "COMING UP NEXT"},
		{"round", intro.Round.Name.Text, "Grand Finals"},
		{"date", intro.Round.Date.Text, "16 December 09:00 UTC"},
	}

	for _, test := range tests {
		if test.actual != test.expected {
			t.Errorf("%s = %q, expected %q", test.name, test.actual, test.expected)
		}
	}

	if len(intro.Left.Players) != 2 || intro.Left.Players[1].Text != "Bubbleman" {
		t.Errorf("left players = %+v", intro.Left.Players)
	}

	if intro.Left.Origin != layout.CentreRight || intro.Right.Origin != layout.CentreLeft {
		t.Errorf("panel origins = %v, %v", intro.Left.Origin, intro.Right.Origin)
	}

	if intro.Left.DisplayAnchor != layout.CentreRight || intro.Right.DisplayAnchor != layout.CentreLeft ||
		intro.Left.DisplayOrigin != layout.Centre || intro.Right.DisplayOrigin != layout.Centre {
		t.Errorf("team display anchors = %v/%v, %v/%v",
			intro.Left.DisplayAnchor, intro.Left.DisplayOrigin, intro.Right.DisplayAnchor, intro.Right.DisplayOrigin)
	}

	if intro.Left.PlayersSpacing != vector.NewVec2f(0, 5) || intro.Right.PlayersPadding != 20 || intro.Left.Flag.MarginBottom != 20 {
		t.Errorf("player list spacing %v, padding %v, flag margin %v",
			intro.Left.PlayersSpacing, intro.Right.PlayersPadding, intro.Left.Flag.MarginBottom)
	}

	if intro.Round.Anchor != layout.BottomCentre || intro.Round.Origin != layout.BottomCentre {
		t.Errorf("round display anchor/origin = %v/%v", intro.Round.Anchor, intro.Round.Origin)
	}

	if intro.Left.DisplayX != -0.36 || intro.Right.PlayersX != -0.1 {
		t.Errorf("panel offsets = %v, %v", intro.Left.DisplayX, intro.Right.PlayersX)
	}

	r, g, b, _ := intro.Left.Colour.RGBA8()
	if r != 129 || g != 68 || b != 65 {
		t.Errorf("left colour = %d %d %d, expected team red", r, g, b)
	}

	if intro.Left.Players[0].Colour != intro.Left.Colour {
		t.Error("player names should use the team colour")
	}
}

func TestTeamIntroPlaceholders(t *testing.T) {
	intro := NewTeamIntro(nil, nil, nil, NewDirStorage(t.TempDir()), fixedNow)

	if intro.Left.Name.Text != "???" || intro.Right.Name.Text != "???" {
		t.Errorf("team names = %q, %q, expected ???", intro.Left.Name.Text, intro.Right.Name.Text)
	}

	if intro.Round.Name.Text != "Unknown Grouping" {
		t.Errorf("round = %q, expected Unknown Grouping", intro.Round.Name.Text)
	}

	if intro.Round.Date.Text != "05 March 18:30 UTC" {
		t.Errorf("date = %q, expected current time", intro.Round.Date.Text)
	}

	if intro.Background.Path != "" {
		t.Errorf("missing video should leave an empty path, got %q", intro.Background.Path)
	}

	if len(intro.Left.Players) != 0 {
		t.Errorf("expected no players, got %d", len(intro.Left.Players))
	}
}

func TestTeamIntroFlag(t *testing.T) {
	dir := t.TempDir()

	if err := os.MkdirAll(filepath.Join(dir, "Flags"), 0755); err != nil {
		t.Fatal(err)
	}

	img := image.NewRGBA(image.Rect(0, 0, 60, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 60; x++ {
			c := imgcolor.RGBA{R: 200, G: 20, B: 30, A: 255}
			if y >= 30 {
				c = imgcolor.RGBA{R: 20, G: 40, B: 200, A: 255}
			}

			img.Set(x, y, c)
		}
	}

	file, err := os.Create(filepath.Join(dir, "Flags", "KR.png"))
	if err != nil {
		t.Fatal(err)
	}

	if err = png.Encode(file, img); err != nil {
		t.Fatal(err)
	}

	file.Close()

	intro := NewTeamIntro(&Team{FullName: "South Korea", FlagName: "KR"}, &Team{FullName: "Nowhere", FlagName: "XX"}, nil, NewDirStorage(dir), fixedNow)

	if intro.Left.Flag.Path != filepath.Join(dir, "Flags", "KR.png") {
		t.Errorf("left flag path = %q", intro.Left.Flag.Path)
	}

	if accent := intro.Left.Flag.Accent; accent != nil && accent.R < accent.B {
		t.Errorf("accent = %v, expected the dominant red", accent)
	}

	if intro.Right.Flag.Path != "" || intro.Right.Flag.Accent != nil {
		t.Errorf("missing flag = %+v, expected empty", intro.Right.Flag)
	}

	if intro.Left.Flag.Scale != 0.4 || intro.Left.Flag.Size.X != 300 {
		t.Errorf("flag layout = %+v", intro.Left.Flag)
	}
}

func TestWatchLadder(t *testing.T) {
	dir := t.TempDir()
	path := writeLadder(t, dir, ladderJSON)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *Ladder, 4)

	if err := WatchLadder(ctx, path, func(l *Ladder) { reloaded <- l }); err != nil {
		t.Fatalf("WatchLadder() error = %v", err)
	}

	writeLadder(t, dir, `{"Teams": [{"FullName": "Japan", "Acronym": "JPN"}]}`)

	select {
	case ladder := <-reloaded:
		if len(ladder.Teams) != 1 || ladder.Teams[0].Acronym != "JPN" {
			t.Errorf("reloaded ladder = %+v", ladder)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ladder was not reloaded")
	}
}
