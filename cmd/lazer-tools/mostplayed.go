package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/Givikap120/lazer-go/app/database"
	"github.com/Givikap120/lazer-go/app/online/api"
	"github.com/Givikap120/lazer-go/app/rulesets"
	"github.com/Givikap120/lazer-go/app/settings"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

func runMostPlayed(cfg *settings.Config, args []string) error {
	fs := flag.NewFlagSet("mostplayed", flag.ExitOnError)
	userID := fs.Int("user", cfg.Online.UserID, "user id")
	limit := fs.Int("limit", 10, "number of beatmaps to fetch")
	offset := fs.Int("offset", 0, "offset into the list")
	offline := fs.Bool("offline", false, "only read the local cache")
	fs.Parse(args)

	if *userID <= 0 {
		return errors.New("user id is not set, use -user or OSU_USER_ID")
	}

	store := rulesets.DefaultStore()

	db, err := database.Open(cfg.Online.CacheDB, store)
	if err != nil {
		return err
	}

	defer db.Close()

	var entries []database.MostPlayed

	fetched := false

	if !*offline {
		entries, err = fetchMostPlayed(cfg, store, *userID, *limit, *offset)
		if err != nil {
			log.Println("Failed to fetch most played beatmaps, falling back to cache:", err)
		} else {
			fetched = true

			if err = db.StoreMostPlayed(*userID, entries); err != nil {
				log.Println("Failed to cache most played beatmaps:", err)
			}
		}
	}

	if !fetched {
		if entries, err = db.MostPlayed(*userID); err != nil {
			return fmt.Errorf("failed to read cache: %w", err)
		}
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", "Beatmap", "Stars", "Mode", "Plays", "Cached"})

	for i, e := range entries {
		mode := ""
		if e.Beatmap.Ruleset != nil {
			mode = e.Beatmap.Ruleset.ShortName
		}

		cached := ""
		if !e.UpdatedAt.IsZero() {
			cached = humanize.Time(e.UpdatedAt)
		}

		table.Append([]string{
			strconv.Itoa(i + 1),
			e.Beatmap.String(),
			fmt.Sprintf("%.2f", e.Beatmap.StarRating),
			mode,
			humanize.Comma(int64(e.PlayCount)),
			cached,
		})
	}

	table.Render()

	return nil
}

func fetchMostPlayed(cfg *settings.Config, store *rulesets.Store, userID, limit, offset int) ([]database.MostPlayed, error) {
	if cfg.Online.ClientID == "" || cfg.Online.ClientSecret == "" {
		return nil, errors.New("client credentials are not set, use OSU_CLIENT_ID and OSU_CLIENT_SECRET")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := api.NewClient(ctx, cfg.Online.Endpoint, cfg.Online.ClientID, cfg.Online.ClientSecret)

	response, err := client.UserMostPlayed(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	entries := make([]database.MostPlayed, 0, len(response))

	for i := range response {
		info, err := response[i].GetBeatmapInfo(store)
		if err != nil {
			log.Printf("Skipping most played entry %d: %s", response[i].BeatmapID, err)
			continue
		}

		entries = append(entries, database.MostPlayed{
			Beatmap:   info,
			PlayCount: response[i].PlayCount,
		})
	}

	return entries, nil
}
