package tournament

import (
	"context"
	"log"

	"github.com/Givikap120/lazer-go/framework/files"
)

// WatchLadder reloads the ladder when bracket.json is edited by another tool.
func WatchLadder(ctx context.Context, path string, onReload func(*Ladder)) error {
	return files.Watch(ctx, path, func() {
		ladder, err := LoadLadder(path)
		if err != nil {
			log.Println("Failed to reload ladder:", err)
			return
		}

		log.Println("Ladder reloaded:", len(ladder.Teams), "teams,", len(ladder.Matches), "matches")

		onReload(ladder)
	})
}
