package main

import (
	"testing"
	"time"

	"github.com/Givikap120/lazer-go/app/beatmap"
	"github.com/Givikap120/lazer-go/app/rulesets"
	"github.com/Givikap120/lazer-go/app/users"
	"github.com/Givikap120/lazer-go/framework/graphics/batch"
	"github.com/Givikap120/lazer-go/framework/math/vector"
)

func TestBuildActivity(t *testing.T) {
	osu, _ := rulesets.DefaultStore().GetRuleset(0)
	info := &beatmap.BeatmapInfo{DifficultyName: "Insane", Metadata: &beatmap.Metadata{Artist: "xi", Title: "Blue Zenith", Author: "Asphyxia"}}

	for _, kind := range activityKinds {
		activity, err := buildActivity(kind, info, osu, 1, "room", "player")
		if err != nil {
			t.Errorf("buildActivity(%q) error = %v", kind, err)
			continue
		}

		if activity.Status() == "" {
			t.Errorf("buildActivity(%q).Status() is empty", kind)
		}
	}

	activity, _ := buildActivity("watching", info, osu, 0, "", "player")
	if details, expected := activity.Details(users.PresenceFull), "player playing xi - Blue Zenith (Asphyxia) [Insane]"; details != expected {
		t.Errorf("Details() = %q, expected %q", details, expected)
	}

	if _, err := buildActivity("sleeping", info, osu, 0, "", ""); err == nil {
		t.Error("buildActivity(\"sleeping\") expected error")
	}
}

func TestParticleRune(t *testing.T) {
	tests := []struct {
		alpha    float32
		expected rune
	}{
		{1, '*'},
		{0.5, '+'},
		{0.1, '.'},
	}

	for _, test := range tests {
		if r := particleRune(test.alpha); r != test.expected {
			t.Errorf("particleRune(%v) = %q, expected %q", test.alpha, r, test.expected)
		}
	}
}

func TestPreviewMatrix(t *testing.T) {
	m := previewMatrix(80, 26)

	tests := []struct {
		pos      vector.Vector2f
		expected vector.Vector2f
	}{
		{vector.NewVec2f(0, 0), vector.NewVec2f(2, 24)},
		{vector.NewVec2f(previewWidth, -previewHeight), vector.NewVec2f(82, -2)},
	}

	for _, test := range tests {
		if res := batch.Transform(m, test.pos); res.Dst(test.expected) > 0.001 {
			t.Errorf("Transform(%s) = %s, expected %s", test.pos, res, test.expected)
		}
	}
}

func TestFrameInterval(t *testing.T) {
	tests := []struct {
		fps      int
		expected time.Duration
		err      bool
	}{
		{60, time.Second / 60, false},
		{1000, time.Millisecond, false},
		{0, 0, true},
		{-30, 0, true},
	}

	for _, test := range tests {
		interval, err := frameInterval(test.fps)

		if (err != nil) != test.err {
			t.Errorf("frameInterval(%d) error = %v, expected error %v", test.fps, err, test.err)
		}

		if interval != test.expected {
			t.Errorf("frameInterval(%d) = %v, expected %v", test.fps, interval, test.expected)
		}
	}
}
