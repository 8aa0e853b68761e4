package beatmap

import (
	"fmt"
	"strings"
	"time"

	"github.com/Givikap120/lazer-go/app/rulesets"
)

type Metadata struct {
	Title         string
	TitleUnicode  string
	Artist        string
	ArtistUnicode string
	Author        string
	AuthorID      int
	Source        string
	Tags          string
}

func (m *Metadata) String() string {
	if m == nil {
		return ""
	}

	return strings.TrimSpace(fmt.Sprintf("%s - %s (%s)", m.Artist, m.Title, m.Author))
}

type OnlineStatus int

const (
	StatusGraveyard OnlineStatus = iota - 2
	StatusWIP
	StatusPending
	StatusRanked
	StatusApproved
	StatusQualified
	StatusLoved
)

var statusNames = map[string]OnlineStatus{
	"graveyard": StatusGraveyard,
	"wip":       StatusWIP,
	"pending":   StatusPending,
	"ranked":    StatusRanked,
	"approved":  StatusApproved,
	"qualified": StatusQualified,
	"loved":     StatusLoved,
}

// ParseStatus maps API status names, unknown names are treated as pending.
func ParseStatus(name string) OnlineStatus {
	if status, ok := statusNames[strings.ToLower(name)]; ok {
		return status
	}

	return StatusPending
}

func (s OnlineStatus) String() string {
	for name, status := range statusNames {
		if status == s {
			return name
		}
	}

	return "unknown"
}

type BeatmapSetInfo struct {
	OnlineID int
	Metadata *Metadata
	Status   OnlineStatus
	Beatmaps []*BeatmapInfo

	PlayCount      int
	FavouriteCount int
	CoverURL       string
}

type BeatmapInfo struct {
	OnlineID       int
	DifficultyName string
	StarRating     float64
	Length         time.Duration
	MD5Hash        string

	Ruleset *rulesets.Info

	Metadata   *Metadata
	BeatmapSet *BeatmapSetInfo
}

func (b *BeatmapInfo) String() string {
	if b == nil {
		return ""
	}

	difficulty := ""
	if b.DifficultyName != "" {
		difficulty = "[" + b.DifficultyName + "]"
	}

	return strings.TrimSpace(b.Metadata.String() + " " + difficulty)
}
