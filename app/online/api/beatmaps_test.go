package api

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Givikap120/lazer-go/app/beatmap"
	"github.com/Givikap120/lazer-go/app/rulesets"
)

const mostPlayedJSON = `{
	"beatmap_id": 129891,
	"count": 1234,
	"beatmap": {
		"id": 129891,
		"beatmapset_id": 39804,
		"version": "FOUR DIMENSIONS",
		"difficulty_rating": 7.07,
		"mode_int": 0,
		"total_length": 257,
		"checksum": "da8aae79c8f3306b5d65ec951874a7fb"
	},
	"beatmapset": {
		"id": 39804,
		"title": "FREEDOM DiVE",
		"title_unicode": "FREEDOM DiVE",
		"artist": "xi",
		"artist_unicode": "xi",
		"creator": "Nakagawa-Kanon",
		"user_id": 87065,
		"status": "ranked",
		"play_count": 50000000,
		"covers": {"cover": "https://assets.ppy.sh/beatmaps/39804/covers/cover.jpg"}
	}
}`

func TestGetBeatmapInfo(t *testing.T) {
	var entry UserMostPlayedBeatmap

	if err := json.Unmarshal([]byte(mostPlayedJSON), &entry); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if entry.BeatmapID != 129891 || entry.PlayCount != 1234 {
		t.Errorf("BeatmapID, PlayCount = %d, %d", entry.BeatmapID, entry.PlayCount)
	}

	info, err := entry.GetBeatmapInfo(rulesets.DefaultStore())
	if err != nil {
		t.Fatalf("GetBeatmapInfo() error = %v", err)
	}

	if info.BeatmapSet == nil || info.BeatmapSet.OnlineID != 39804 {
		t.Fatalf("BeatmapSet = %+v, expected set 39804", info.BeatmapSet)
	}

	if info.Metadata != info.BeatmapSet.Metadata {
		t.Error("beatmap metadata should be shared with its set")
	}

	if info.BeatmapSet.Status != beatmap.StatusRanked {
		t.Errorf("Status = %v, expected ranked", info.BeatmapSet.Status)
	}

	if info.Ruleset == nil || info.Ruleset.ShortName != "osu" {
		t.Errorf("Ruleset = %v, expected osu", info.Ruleset)
	}

	if info.Length != 257*time.Second {
		t.Errorf("Length = %v, expected 4m17s", info.Length)
	}

	if s := info.String(); s != "xi - FREEDOM DiVE (Nakagawa-Kanon) [FOUR DIMENSIONS]" {
		t.Errorf("String() = %q", s)
	}
}

func TestGetBeatmapInfoMissingParts(t *testing.T) {
	tests := []struct {
		entry    UserMostPlayedBeatmap
		expected error
	}{
		{UserMostPlayedBeatmap{BeatmapSet: &APIBeatmapSet{}}, ErrMissingBeatmap},
		{UserMostPlayedBeatmap{Beatmap: &APIBeatmap{}}, ErrMissingBeatmapSet},
	}

	for _, test := range tests {
		if _, err := test.entry.GetBeatmapInfo(rulesets.DefaultStore()); !errors.Is(err, test.expected) {
			t.Errorf("GetBeatmapInfo() error = %v, expected %v", err, test.expected)
		}
	}
}

func TestGetBeatmapInfoFallsBackToEntryID(t *testing.T) {
	entry := UserMostPlayedBeatmap{BeatmapID: 42, Beatmap: &APIBeatmap{}, BeatmapSet: &APIBeatmapSet{}}

	info, err := entry.GetBeatmapInfo(rulesets.DefaultStore())
	if err != nil {
		t.Fatal(err)
	}

	if info.OnlineID != 42 {
		t.Errorf("OnlineID = %d, expected 42", info.OnlineID)
	}
}

func TestToBeatmapSetLinksDifficulties(t *testing.T) {
	set := (&APIBeatmapSet{
		OnlineID: 1,
		Title:    "Songs",
		Beatmaps: []APIBeatmap{{OnlineID: 10, RulesetID: 1}, {OnlineID: 11, RulesetID: 3}},
	}).ToBeatmapSet(rulesets.DefaultStore())

	if len(set.Beatmaps) != 2 {
		t.Fatalf("expected 2 beatmaps, got %d", len(set.Beatmaps))
	}

	for _, b := range set.Beatmaps {
		if b.BeatmapSet != set || b.Metadata != set.Metadata {
			t.Errorf("beatmap %d not linked to its set", b.OnlineID)
		}
	}

	if set.Beatmaps[1].Ruleset.ShortName != "mania" {
		t.Errorf("second difficulty ruleset = %v, expected mania", set.Beatmaps[1].Ruleset)
	}
}

func TestGetBeatmapInfoWithoutStore(t *testing.T) {
	var entry UserMostPlayedBeatmap
	if err := json.Unmarshal([]byte(mostPlayedJSON), &entry); err != nil {
		t.Fatal(err)
	}

	info, err := entry.GetBeatmapInfo(nil)
	if err != nil {
		t.Fatalf("GetBeatmapInfo(nil) error = %v", err)
	}

	if info.Ruleset != nil || info.OnlineID != 129891 || info.BeatmapSet == nil {
		t.Errorf("GetBeatmapInfo(nil) = %+v, expected beatmap without ruleset", info)
	}
}
