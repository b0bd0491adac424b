// Package roster holds the curated reference table of notable NCAA men's
// basketball players for the 2025-26 season. The injury analyzer uses it to
// correct model-estimated impact scores and to build prompt context.
//
// The table is immutable after construction. Callers receive it by explicit
// dependency injection; there is no package-level mutable state.
package roster

import (
	"fmt"
	"sort"
	"strings"
)

// Tier ranks a player's importance, ordered by decreasing impact.
type Tier string

const (
	TierSuperstar Tier = "superstar" // impact 10: NPOY candidates, consensus All-Americans
	TierStar      Tier = "star"      // impact 9: All-American caliber, top ~20 nationally
	TierKeyStar   Tier = "key_star"  // impact 8: all-conference first team, top ~50
	TierStarter   Tier = "starter"   // impact 7: important starters on ranked teams
	TierRotation  Tier = "rotation"  // impact 6: key rotation players on contenders
)

// Entry describes one reference player.
type Entry struct {
	Team     string
	Position string
	Tier     Tier
	Impact   int
	Note     string
}

// IsStarter reports whether the tier implies a starting role.
func (e Entry) IsStarter() bool {
	switch e.Tier {
	case TierSuperstar, TierStar, TierKeyStar, TierStarter:
		return true
	}
	return false
}

// Star pairs a canonical player name with its entry, for team listings.
type Star struct {
	Player string
	Entry
}

// Table is an immutable lookup of canonical player name to entry.
type Table struct {
	players map[string]Entry
}

// NewTable builds a table from the given entries. The map is copied.
func NewTable(players map[string]Entry) *Table {
	m := make(map[string]Entry, len(players))
	for k, v := range players {
		m[k] = v
	}
	return &Table{players: m}
}

// Default returns the curated 2025-26 reference table.
func Default() *Table {
	return NewTable(starPlayers)
}

// Lookup finds a reference entry for a player name. Match order: exact key,
// case-insensitive key, then last-name match gated by a matching first
// initial ("J. Toppin" resolves to "JT Toppin"; bare "Toppin" does not).
func (t *Table) Lookup(name string) (Entry, bool) {
	if name == "" {
		return Entry{}, false
	}
	if e, ok := t.players[name]; ok {
		return e, true
	}

	nameLower := strings.ToLower(strings.TrimSpace(name))
	nameParts := strings.Fields(nameLower)
	if len(nameParts) == 0 {
		return Entry{}, false
	}

	for key, e := range t.players {
		keyLower := strings.ToLower(key)
		if keyLower == nameLower {
			return e, true
		}
		keyParts := strings.Fields(keyLower)
		if len(keyParts) < 2 {
			continue
		}
		if keyParts[len(keyParts)-1] == nameParts[len(nameParts)-1] &&
			nameParts[0][0] == keyParts[0][0] {
			return e, true
		}
	}
	return Entry{}, false
}

// TeamStars returns all reference players for a team, highest impact first.
func (t *Table) TeamStars(team string) []Star {
	teamLower := strings.ToLower(strings.TrimSpace(team))
	var stars []Star
	for name, e := range t.players {
		if strings.ToLower(e.Team) == teamLower {
			stars = append(stars, Star{Player: name, Entry: e})
		}
	}
	sort.Slice(stars, func(i, j int) bool {
		if stars[i].Impact != stars[j].Impact {
			return stars[i].Impact > stars[j].Impact
		}
		return stars[i].Player < stars[j].Player
	})
	return stars
}

// StarContext builds a text block of key players for two teams, injected into
// extraction prompts so the model prefers curated impact scores.
func (t *Table) StarContext(team1, team2 string) string {
	var lines []string
	for _, team := range []string{team1, team2} {
		stars := t.TeamStars(team)
		if len(stars) == 0 {
			lines = append(lines, fmt.Sprintf("\n%s: No star player data available", team))
			continue
		}
		lines = append(lines, fmt.Sprintf("\n%s KEY PLAYERS:", team))
		for _, s := range stars {
			lines = append(lines, fmt.Sprintf("  - %s (%s) — %s (impact %d/10) — %s",
				s.Player, s.Position, strings.ToUpper(string(s.Tier)), s.Impact, s.Note))
		}
	}
	return strings.Join(lines, "\n")
}
