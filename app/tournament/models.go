package tournament

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Givikap120/lazer-go/app/users"
)

var ErrNoCurrentMatch = errors.New("tournament: no current match")

type Team struct {
	FullName string       `json:"FullName"`
	Acronym  string       `json:"Acronym"`
	FlagName string       `json:"FlagName"`
	Seed     string       `json:"Seed"`
	Players  []users.User `json:"Players"`
}

// Round is a stage of the tournament, such as "Quarterfinals".
type Round struct {
	Name        string    `json:"Name"`
	Description string    `json:"Description"`
	StartDate   time.Time `json:"StartDate"`
	BestOf      int       `json:"BestOf"`
}

type Match struct {
	ID           int    `json:"ID"`
	Team1Acronym string `json:"Team1Acronym"`
	Team2Acronym string `json:"Team2Acronym"`
	Round        string `json:"Round"`
	Current      bool   `json:"Current"`
	Team1Score   int    `json:"Team1Score"`
	Team2Score   int    `json:"Team2Score"`
}

// Ladder is the tournament state stored in bracket.json.
type Ladder struct {
	Teams   []*Team  `json:"Teams"`
	Rounds  []*Round `json:"Rounds"`
	Matches []*Match `json:"Matches"`
}

func LoadLadder(path string) (*Ladder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ladder: %w", err)
	}

	ladder := new(Ladder)
	if err = json.Unmarshal(data, ladder); err != nil {
		return nil, fmt.Errorf("failed to parse ladder %s: %w", path, err)
	}

	return ladder, nil
}

func (l *Ladder) FindTeam(acronym string) *Team {
	for _, team := range l.Teams {
		if strings.EqualFold(team.Acronym, acronym) {
			return team
		}
	}

	return nil
}

func (l *Ladder) FindRound(name string) *Round {
	for _, round := range l.Rounds {
		if round.Name == name {
			return round
		}
	}

	return nil
}

// CurrentMatch resolves the match marked as current. Teams and round may be nil if they are not in the ladder.
func (l *Ladder) CurrentMatch() (match *Match, team1, team2 *Team, round *Round, err error) {
	for _, m := range l.Matches {
		if m.Current {
			return m, l.FindTeam(m.Team1Acronym), l.FindTeam(m.Team2Acronym), l.FindRound(m.Round), nil
		}
	}

	return nil, nil, nil, nil, ErrNoCurrentMatch
}
