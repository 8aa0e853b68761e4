package beatmap

import "testing"

func TestBeatmapInfoString(t *testing.T) {
	metadata := &Metadata{Artist: "xi", Title: "FREEDOM DiVE", Author: "Nakagawa-Kanon"}

	tests := []struct {
		info     *BeatmapInfo
		expected string
	}{
		{&BeatmapInfo{Metadata: metadata, DifficultyName: "FOUR DIMENSIONS"}, "xi - FREEDOM DiVE (Nakagawa-Kanon) [FOUR DIMENSIONS]"},
		{&BeatmapInfo{Metadata: metadata}, "xi - FREEDOM DiVE (Nakagawa-Kanon)"},
		{&BeatmapInfo{DifficultyName: "Insane"}, "[Insane]"},
		{nil, ""},
	}

	for _, test := range tests {
		if result := test.info.String(); result != test.expected {
			t.Errorf("BeatmapInfo.String() = %q, expected %q", result, test.expected)
		}
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name     string
		expected OnlineStatus
	}{
		{"ranked", StatusRanked},
		{"Loved", StatusLoved},
		{"graveyard", StatusGraveyard},
		{"something", StatusPending},
	}

	for _, test := range tests {
		if result := ParseStatus(test.name); result != test.expected {
			t.Errorf("ParseStatus(%s) = %v, expected %v", test.name, result, test.expected)
		}
	}

	if StatusQualified.String() != "qualified" {
		t.Errorf("StatusQualified.String() = %s", StatusQualified.String())
	}
}
