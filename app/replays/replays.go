package replays

import (
	"fmt"
	"log"
	"os"

	"github.com/Givikap120/lazer-go/app/beatmap"
	"github.com/Givikap120/lazer-go/app/users"
	"github.com/wieku/rplpa"
)

// BeatmapLookup resolves a beatmap by its MD5 hash, returning nil when it is not known.
type BeatmapLookup func(md5 string) *beatmap.BeatmapInfo

type Summary struct {
	Player   string
	Beatmap  *beatmap.BeatmapInfo
	Score    int64
	MaxCombo int
	Hits     [4]int // 300, 100, 50, miss
}

func LoadReplay(path string, lookup BeatmapLookup) (*Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read replay: %w", err)
	}

	replay, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse replay %s: %w", path, err)
	}

	summary := summarize(replay, lookup)

	if summary.Beatmap == nil {
		log.Println("Beatmap of replay", path, "not found, md5:", replay.BeatmapMD5)
	}

	return summary, nil
}

// LoadWatchingActivity builds the activity shown while a replay file is being watched.
func LoadWatchingActivity(path string, lookup BeatmapLookup) (*users.WatchingReplay, error) {
	summary, err := LoadReplay(path, lookup)
	if err != nil {
		return nil, err
	}

	return summary.Activity(), nil
}

func (s *Summary) Activity() *users.WatchingReplay {
	return users.NewWatchingReplay(&users.User{Username: s.Player}, s.Beatmap)
}

// parse guards against truncated files making the parser panic.
func parse(data []byte) (replay *rplpa.Replay, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("corrupted replay: %v", r)
		}
	}()

	return rplpa.ParseReplay(data)
}

func summarize(replay *rplpa.Replay, lookup BeatmapLookup) *Summary {
	summary := &Summary{
		Player:   replay.Username,
		Score:    int64(replay.Score),
		MaxCombo: int(replay.MaxCombo),
		Hits: [4]int{
			int(replay.Count300),
			int(replay.Count100),
			int(replay.Count50),
			int(replay.CountMiss),
		},
	}

	if lookup != nil {
		summary.Beatmap = lookup(replay.BeatmapMD5)
	}

	return summary
}
