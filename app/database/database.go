package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/Givikap120/lazer-go/app/beatmap"
	"github.com/Givikap120/lazer-go/app/rulesets"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS most_played (
	user_id       INTEGER NOT NULL,
	beatmap_id    INTEGER NOT NULL,
	beatmapset_id INTEGER NOT NULL,
	play_count    INTEGER NOT NULL,
	artist        TEXT    NOT NULL,
	title         TEXT    NOT NULL,
	creator       TEXT    NOT NULL,
	version       TEXT    NOT NULL,
	stars         REAL    NOT NULL,
	ruleset_id    INTEGER NOT NULL,
	updated_at    INTEGER NOT NULL,
	PRIMARY KEY (user_id, beatmap_id)
);`

// MostPlayed is a cached most played beatmap of a user.
type MostPlayed struct {
	Beatmap   *beatmap.BeatmapInfo
	PlayCount int
	UpdatedAt time.Time
}

type DB struct {
	db       *sql.DB
	rulesets *rulesets.Store
}

func Open(path string, store *rulesets.Store) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err = db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	log.Println("Opened cache database:", path)

	return &DB{db: db, rulesets: store}, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

// StoreMostPlayed replaces the cached list of the user in a single transaction.
func (d *DB) StoreMostPlayed(userID int, entries []MostPlayed) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}

	if _, err = tx.Exec("DELETE FROM most_played WHERE user_id = ?", userID); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear most played: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO most_played
		(user_id, beatmap_id, beatmapset_id, play_count, artist, title, creator, version, stars, ruleset_id, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}

	defer stmt.Close()

	now := time.Now().Unix()

	for _, e := range entries {
		b := e.Beatmap
		if b == nil {
			log.Println("Skipping most played entry without a beatmap, user:", userID)
			continue
		}

		setID := 0
		if b.BeatmapSet != nil {
			setID = b.BeatmapSet.OnlineID
		}

		metadata := b.Metadata
		if metadata == nil {
			metadata = &beatmap.Metadata{}
		}

		rulesetID := 0
		if b.Ruleset != nil {
			rulesetID = b.Ruleset.ID
		}

		_, err = stmt.Exec(userID, b.OnlineID, setID, e.PlayCount, metadata.Artist, metadata.Title, metadata.Author, b.DifficultyName, b.StarRating, rulesetID, now)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert beatmap %d: %w", b.OnlineID, err)
		}
	}

	return tx.Commit()
}

// MostPlayed returns the cached list sorted by play count.
func (d *DB) MostPlayed(userID int) ([]MostPlayed, error) {
	rows, err := d.db.Query(`SELECT beatmap_id, beatmapset_id, play_count, artist, title, creator, version, stars, ruleset_id, updated_at
		FROM most_played WHERE user_id = ? ORDER BY play_count DESC, beatmap_id ASC`, userID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var result []MostPlayed

	for rows.Next() {
		var (
			b         = &beatmap.BeatmapInfo{Metadata: &beatmap.Metadata{}}
			setID     int
			rulesetID int
			updatedAt int64
			entry     MostPlayed
		)

		err = rows.Scan(&b.OnlineID, &setID, &entry.PlayCount, &b.Metadata.Artist, &b.Metadata.Title, &b.Metadata.Author, &b.DifficultyName, &b.StarRating, &rulesetID, &updatedAt)
		if err != nil {
			return nil, err
		}

		b.BeatmapSet = &beatmap.BeatmapSetInfo{OnlineID: setID, Metadata: b.Metadata}

		if r, ok := d.rulesets.GetRuleset(rulesetID); ok {
			b.Ruleset = r
		}

		entry.Beatmap = b
		entry.UpdatedAt = time.Unix(updatedAt, 0)

		result = append(result, entry)
	}

	return result, rows.Err()
}
