package injury

import (
	"log/slog"
	"strings"

	"github.com/hoopsight/hoopsight/internal/roster"
)

// teamNormalizations are applied in order to both sides before recomparing.
var teamNormalizations = [][2]string{
	{".", ""},
	{"'", ""},
	{"st ", "state "},
	{"uconn", "connecticut"},
}

// TeamMatch fuzzily matches a model-supplied team name against a target.
// Order: case-fold exact, normalized exact, then a mutual-prefix rule gated
// on target length >= 5. The prefix rule tolerates the model's paraphrasing
// ("Iowa St." vs "Iowa State") at the cost of occasional false positives on
// legitimately similar names (Mississippi / Mississippi State); that
// tradeoff is deliberate and must not be tightened silently.
func TeamMatch(scrapedName, targetName string) bool {
	if scrapedName == "" || targetName == "" {
		return false
	}
	s := strings.ToLower(strings.TrimSpace(scrapedName))
	t := strings.ToLower(strings.TrimSpace(targetName))
	if s == t {
		return true
	}

	sClean, tClean := s, t
	for _, r := range teamNormalizations {
		sClean = strings.ReplaceAll(sClean, r[0], r[1])
		tClean = strings.ReplaceAll(tClean, r[0], r[1])
	}
	if sClean == tClean {
		return true
	}
	if len(tClean) >= 5 &&
		(strings.HasPrefix(sClean, tClean) || strings.HasPrefix(tClean, sClean)) {
		return true
	}
	return false
}

// filterToTeam keeps only records attributed to the target team.
func filterToTeam(records []Record, target string) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if TeamMatch(r.Team, target) {
			out = append(out, r)
		}
	}
	return out
}

// applyStarOverrides replaces model-estimated impact scores with curated
// values wherever the player resolves in the reference table, and marks each
// record star_verified accordingly.
func applyStarOverrides(records []Record, stars *roster.Table, logger *slog.Logger) []Record {
	for i := range records {
		entry, ok := stars.Lookup(records[i].Player)
		if !ok {
			records[i].StarVerified = false
			continue
		}
		old := records[i].ImpactScore
		records[i].ImpactScore = entry.Impact
		records[i].IsStarter = entry.IsStarter()
		records[i].StarVerified = true
		if old != entry.Impact {
			logger.Info("star override applied",
				"player", records[i].Player,
				"old_impact", old,
				"new_impact", entry.Impact,
				"tier", string(entry.Tier))
		}
	}
	return records
}
