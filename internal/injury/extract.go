package injury

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Outcome classifies an extraction attempt. Callers currently collapse all
// three to an empty list; the distinction exists for logging.
type Outcome int

const (
	OutcomeParsed Outcome = iota // records parsed from the reply
	OutcomeEmpty                 // reply parsed to an empty list
	OutcomeFailed                // reply was not a parseable list
)

func (o Outcome) String() string {
	switch o {
	case OutcomeParsed:
		return "parsed"
	case OutcomeEmpty:
		return "empty"
	default:
		return "failed"
	}
}

// rawRecord tolerates the loose typing of model output (float impact scores,
// missing fields).
type rawRecord struct {
	Team         string      `json:"team"`
	Player       string      `json:"player"`
	Position     string      `json:"position"`
	Status       string      `json:"status"`
	Injury       string      `json:"injury"`
	IsStarter    bool        `json:"is_starter"`
	ImpactScore  json.Number `json:"impact_score"`
	DateReported string      `json:"date_reported"`
}

// parseRecords extracts a JSON array of injury records from a model reply.
// The reply may be wrapped in prose or code fences, or be entirely non-JSON;
// every failure mode degrades to an empty list.
func parseRecords(text string) ([]Record, Outcome) {
	if strings.Contains(text, "```") {
		parts := strings.Split(text, "```")
		if len(parts) > 1 {
			text = parts[1]
		}
		text = strings.TrimPrefix(text, "json")
		text = strings.TrimSpace(text)
	}

	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start >= 0 && end > start {
		text = text[start : end+1]
	}

	var raw []rawRecord
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, OutcomeFailed
	}
	if len(raw) == 0 {
		return nil, OutcomeEmpty
	}

	records := make([]Record, 0, len(raw))
	for _, r := range raw {
		records = append(records, Record{
			Team:         r.Team,
			Player:       r.Player,
			Position:     r.Position,
			Status:       r.Status,
			Injury:       r.Injury,
			IsStarter:    r.IsStarter,
			ImpactScore:  clampImpact(r.ImpactScore),
			DateReported: r.DateReported,
		})
	}
	return records, OutcomeParsed
}

// clampImpact coerces a model-supplied score into [1,10], defaulting to 3
// when absent or unparseable.
func clampImpact(n json.Number) int {
	s := n.String()
	if s == "" {
		return 3
	}
	f, err := n.Float64()
	if err != nil {
		return 3
	}
	score := int(f)
	if score < 1 {
		return 1
	}
	if score > 10 {
		return 10
	}
	return score
}

// ---------------------------------------------------------------------------
// Prompt builders
// ---------------------------------------------------------------------------

func buildAllPrompt(newsText string) string {
	return fmt.Sprintf(`Analyze these recent college basketball injury news headlines and extract current injury statuses.
For each injured player mentioned, provide:
- team: Team name (common name like "Duke", "North Carolina", "Tennessee")
- player: Full player name
- position: Position (PG/SG/SF/PF/C/G/F) — infer if not stated
- status: One of "Out", "Doubtful", "Questionable", "Probable", "Day-to-Day"
- injury: Brief injury type (e.g. "knee", "ankle sprain", "foot")
- is_starter: true/false — infer from context (leading scorer, key player = starter)
- impact_score: 1-10 (10=star player out, 7-9=key starter, 4-6=role player, 1-3=bench/probable)
- date_reported: Date from the article (YYYY-MM-DD)

Focus on players who are currently OUT or QUESTIONABLE. Ignore old resolved injuries.
Return ONLY a JSON array. If nothing found, return [].

NEWS HEADLINES:
%s`, newsText)
}

func buildTeamPrompt(team, today, starContext, newsText string) string {
	return fmt.Sprintf(`Analyze these news articles about %[1]s basketball and extract CURRENT injury statuses.
Today's date is %[2]s.

CRITICAL: Only include players who ACTUALLY PLAY FOR %[1]s. Do NOT include players from other teams even if they appear in the articles. Be careful with similar team names (e.g. "Kansas" vs "Arkansas", "Mississippi" vs "Mississippi State", "Indiana" vs "Indiana State"). Verify each player's team from the article context.
%[3]s
For each injured player on %[1]s, provide:
- team: "%[1]s"
- player: Full player name
- position: Position (PG/SG/SF/PF/C/G/F)
- status: One of "Out", "Doubtful", "Questionable", "Probable", "Day-to-Day", "Indefinite"
- injury: Brief injury type
- is_starter: true/false
- impact_score: 1-10 (USE the KEY PLAYERS REFERENCE above if the player is listed there)
- date_reported: Most recent report date (YYYY-MM-DD)

Only include players with ACTIVE injuries (not returned players). Use the most recent article for each player's status.
Return ONLY a JSON array. If no current injuries for %[1]s, return [].

NEWS:
%[4]s`, team, today, starContext, newsText)
}

func buildMatchupPrompt(team1, team2, today, starRef, newsText string) string {
	return fmt.Sprintf(`Analyze these injury news articles for an upcoming game: %[1]s vs %[2]s.
Today's date is %[3]s.

CRITICAL: Only include players who ACTUALLY PLAY FOR either %[1]s or %[2]s. Do NOT include players from other teams that happen to appear in the articles. Be very careful with similar team names (e.g. "Kansas" vs "Arkansas", "Mississippi" vs "Mississippi State", "Indiana" vs "Indiana State", "Michigan" vs "Michigan State"). Verify each player's team from the article context before including them.

KEY PLAYERS REFERENCE (use these impact scores when the player matches):
%[4]s
If an injured player is listed in the reference above, you MUST use that impact_score. If not listed, estimate 4-6 for rotation players, 1-3 for bench.

For each player with a CURRENT injury affecting either %[1]s or %[2]s, provide:
- team: The team name (must be exactly "%[1]s" or "%[2]s")
- player: Full player name
- position: Position (PG/SG/SF/PF/C/G/F)
- status: One of "Out", "Doubtful", "Questionable", "Probable", "Day-to-Day", "Indefinite"
- injury: Brief injury type
- is_starter: true/false
- impact_score: 1-10 (USE the KEY PLAYERS REFERENCE above if the player is listed there)

Only include ACTIVE injuries — not players who have returned. Use most recent information.
Return ONLY a JSON array. If both teams are healthy, return [].

NEWS ARTICLES:
%[5]s`, team1, team2, today, starRef, newsText)
}

// buildTeamStarContext renders the key-players reference block injected into
// single-team prompts.
func buildTeamStarContext(team string, stars []starLine) string {
	if len(stars) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "\n\nKEY PLAYERS REFERENCE for %s (use these impact scores):\n", team)
	for _, s := range stars {
		fmt.Fprintf(&b, "  - %s (%s) — %s, impact=%d/10 — %s\n",
			s.player, s.position, strings.ToUpper(s.tier), s.impact, s.note)
	}
	b.WriteString("If an injured player is listed above, USE the impact_score from this reference. If not listed, estimate 4-6 for rotation players, 1-3 for bench.\n")
	return b.String()
}

// starLine decouples prompt rendering from the roster package types.
type starLine struct {
	player   string
	position string
	tier     string
	impact   int
	note     string
}
