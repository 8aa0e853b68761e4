package rulesets

import "sort"

type Info struct {
	ID        int
	ShortName string
	Name      string
}

// PlayingVerb is shown in user status while playing the ruleset.
func (info *Info) PlayingVerb() string {
	if info == nil {
		return "Playing"
	}

	switch info.ShortName {
	case "osu":
		return "Clicking circles"
	case "taiko":
		return "Bashing drums"
	case "fruits":
		return "Catching fruit"
	case "mania":
		return "Smashing keys"
	default:
		return "Playing"
	}
}

func (info *Info) String() string {
	if info == nil {
		return "unknown"
	}

	return info.Name
}

type Store struct {
	rulesets map[int]*Info
}

func NewStore(rulesets ...*Info) *Store {
	store := &Store{rulesets: make(map[int]*Info, len(rulesets))}

	for _, r := range rulesets {
		store.rulesets[r.ID] = r
	}

	return store
}

func DefaultStore() *Store {
	return NewStore(
		&Info{ID: 0, ShortName: "osu", Name: "osu!"},
		&Info{ID: 1, ShortName: "taiko", Name: "osu!taiko"},
		&Info{ID: 2, ShortName: "fruits", Name: "osu!catch"},
		&Info{ID: 3, ShortName: "mania", Name: "osu!mania"},
	)
}

// GetRuleset finds a ruleset by id. A nil store knows no rulesets.
func (store *Store) GetRuleset(id int) (*Info, bool) {
	if store == nil {
		return nil, false
	}

	info, ok := store.rulesets[id]
	return info, ok
}

func (store *Store) GetRulesetByShortName(shortName string) (*Info, bool) {
	if store == nil {
		return nil, false
	}

	for _, info := range store.rulesets {
		if info.ShortName == shortName {
			return info, true
		}
	}

	return nil, false
}

func (store *Store) All() []*Info {
	if store == nil {
		return nil
	}

	all := make([]*Info, 0, len(store.rulesets))
	for _, info := range store.rulesets {
		all = append(all, info)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].ID < all[j].ID
	})

	return all
}
