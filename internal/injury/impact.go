package injury

import (
	"fmt"
	"math"
	"strings"
)

// statusWeights scale a record's impact score by how certain the absence is.
var statusWeights = map[string]float64{
	StatusOut:          1.0,
	StatusDoubtful:     0.85,
	StatusQuestionable: 0.4,
	StatusDayToDay:     0.5,
	StatusProbable:     0.15,
}

// defaultStatusWeight applies to statuses outside the recognized set.
const defaultStatusWeight = 0.5

// adjEMFactor converts aggregate weighted-impact points into an
// efficiency-margin penalty, in the upstream rating system's AdjEM units.
const adjEMFactor = 0.4

// Aggregate reduces a team's injury list into a single weighted-severity
// summary. Pure function, no I/O.
func Aggregate(records []Record) ImpactSummary {
	if len(records) == 0 {
		return ImpactSummary{
			KeyPlayersOut: []string{},
			Summary:       "Fully healthy",
			Severity:      SeverityNone,
		}
	}

	var totalImpact float64
	var outStarters, outPlayers int
	keyPlayersOut := []string{}

	for _, r := range records {
		weight, ok := statusWeights[r.Status]
		if !ok {
			weight = defaultStatusWeight
		}
		totalImpact += float64(r.ImpactScore) * weight

		sidelined := r.Status == StatusOut || r.Status == StatusDoubtful
		if sidelined && r.IsStarter {
			outStarters++
			keyPlayersOut = append(keyPlayersOut, r.Player)
		}
		if sidelined {
			outPlayers++
		}
	}

	adjEMPenalty := round2(totalImpact * adjEMFactor)
	varianceBoost := round2(float64(outPlayers)*0.15 + float64(outStarters)*0.25)
	tempoAdj := round2(-float64(outStarters) * 0.3)

	var severity string
	switch {
	case adjEMPenalty >= 5:
		severity = SeverityCritical
	case adjEMPenalty >= 2.5:
		severity = SeveritySignificant
	case adjEMPenalty >= 1:
		severity = SeverityModerate
	case adjEMPenalty > 0:
		severity = SeverityMinor
	default:
		severity = SeverityNone
	}

	var parts []string
	if len(keyPlayersOut) > 0 {
		parts = append(parts, "Key out: "+strings.Join(keyPlayersOut, ", "))
	}
	if outPlayers > len(keyPlayersOut) {
		parts = append(parts, fmt.Sprintf("+%d others out/doubtful", outPlayers-len(keyPlayersOut)))
	}
	summary := "Minor injuries only"
	if len(parts) > 0 {
		summary = strings.Join(parts, "; ")
	}

	return ImpactSummary{
		AdjEMPenalty:     adjEMPenalty,
		VarianceBoost:    varianceBoost,
		TempoAdj:         tempoAdj,
		OutStarters:      outStarters,
		OutPlayers:       outPlayers,
		TotalImpactScore: round1(totalImpact),
		KeyPlayersOut:    keyPlayersOut,
		Summary:          summary,
		Severity:         severity,
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
