package api

import (
	"errors"
	"time"

	"github.com/Givikap120/lazer-go/app/beatmap"
	"github.com/Givikap120/lazer-go/app/rulesets"
)

var (
	ErrMissingBeatmap    = errors.New("api: response has no beatmap")
	ErrMissingBeatmapSet = errors.New("api: response has no beatmap set")
)

type APIBeatmap struct {
	OnlineID       int     `json:"id"`
	BeatmapSetID   int     `json:"beatmapset_id"`
	DifficultyName string  `json:"version"`
	StarRating     float64 `json:"difficulty_rating"`
	RulesetID      int     `json:"mode_int"`
	Length         float64 `json:"total_length"`
	Checksum       string  `json:"checksum"`
}

func (b *APIBeatmap) ToBeatmapInfo(store *rulesets.Store) *beatmap.BeatmapInfo {
	info := &beatmap.BeatmapInfo{
		OnlineID:       b.OnlineID,
		DifficultyName: b.DifficultyName,
		StarRating:     b.StarRating,
		Length:         time.Duration(b.Length * float64(time.Second)),
		MD5Hash:        b.Checksum,
	}

	if ruleset, ok := store.GetRuleset(b.RulesetID); ok {
		info.Ruleset = ruleset
	}

	return info
}

type APICovers struct {
	Cover     string `json:"cover"`
	Card      string `json:"card"`
	List      string `json:"list"`
	SlimCover string `json:"slimcover"`
}

type APIBeatmapSet struct {
	OnlineID       int          `json:"id"`
	Title          string       `json:"title"`
	TitleUnicode   string       `json:"title_unicode"`
	Artist         string       `json:"artist"`
	ArtistUnicode  string       `json:"artist_unicode"`
	Author         string       `json:"creator"`
	AuthorID       int          `json:"user_id"`
	Source         string       `json:"source"`
	Tags           string       `json:"tags"`
	Status         string       `json:"status"`
	PlayCount      int          `json:"play_count"`
	FavouriteCount int          `json:"favourite_count"`
	Covers         APICovers    `json:"covers"`
	Beatmaps       []APIBeatmap `json:"beatmaps"`
}

func (s *APIBeatmapSet) ToBeatmapSet(store *rulesets.Store) *beatmap.BeatmapSetInfo {
	set := &beatmap.BeatmapSetInfo{
		OnlineID: s.OnlineID,
		Metadata: &beatmap.Metadata{
			Title:         s.Title,
			TitleUnicode:  s.TitleUnicode,
			Artist:        s.Artist,
			ArtistUnicode: s.ArtistUnicode,
			Author:        s.Author,
			AuthorID:      s.AuthorID,
			Source:        s.Source,
			Tags:          s.Tags,
		},
		Status:         beatmap.ParseStatus(s.Status),
		PlayCount:      s.PlayCount,
		FavouriteCount: s.FavouriteCount,
		CoverURL:       s.Covers.Cover,
	}

	for i := range s.Beatmaps {
		info := s.Beatmaps[i].ToBeatmapInfo(store)
		info.BeatmapSet = set
		info.Metadata = set.Metadata

		set.Beatmaps = append(set.Beatmaps, info)
	}

	return set
}

type UserMostPlayedBeatmap struct {
	BeatmapID int `json:"beatmap_id"`
	PlayCount int `json:"count"`

	Beatmap    *APIBeatmap    `json:"beatmap"`
	BeatmapSet *APIBeatmapSet `json:"beatmapset"`
}

// GetBeatmapInfo builds a beatmap with its set and metadata filled in.
func (m *UserMostPlayedBeatmap) GetBeatmapInfo(store *rulesets.Store) (*beatmap.BeatmapInfo, error) {
	if m.Beatmap == nil {
		return nil, ErrMissingBeatmap
	}

	if m.BeatmapSet == nil {
		return nil, ErrMissingBeatmapSet
	}

	set := m.BeatmapSet.ToBeatmapSet(store)

	info := m.Beatmap.ToBeatmapInfo(store)
	if info.OnlineID == 0 {
		info.OnlineID = m.BeatmapID
	}

	info.BeatmapSet = set
	info.Metadata = set.Metadata

	return info, nil
}
