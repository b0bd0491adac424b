// Package injury implements the injury intelligence pipeline: news text goes
// to a language model for structured extraction, records are attributed to
// teams and corrected against the reference roster, and per-team impact is
// reduced to a weighted severity summary.
package injury

// Player statuses recognized by the aggregator. Anything else receives the
// default status weight.
const (
	StatusOut          = "Out"
	StatusDoubtful     = "Doubtful"
	StatusQuestionable = "Questionable"
	StatusProbable     = "Probable"
	StatusDayToDay     = "Day-to-Day"
	StatusIndefinite   = "Indefinite"
)

// Severity buckets derived from the efficiency-margin penalty.
const (
	SeverityNone        = "none"
	SeverityMinor       = "minor"
	SeverityModerate    = "moderate"
	SeveritySignificant = "significant"
	SeverityCritical    = "critical"
)

// Record is one structured injury extracted from news text.
type Record struct {
	Team         string `json:"team"`
	Player       string `json:"player"`
	Position     string `json:"position"` // PG/SG/SF/PF/C/G/F
	Status       string `json:"status"`
	Injury       string `json:"injury"`
	IsStarter    bool   `json:"is_starter"`
	ImpactScore  int    `json:"impact_score"` // always in [1,10]
	DateReported string `json:"date_reported,omitempty"`
	StarVerified bool   `json:"star_verified"`
}

// ImpactSummary is the weighted reduction of a team's injury list.
type ImpactSummary struct {
	AdjEMPenalty     float64  `json:"adj_em_penalty"`
	VarianceBoost    float64  `json:"variance_boost"`
	TempoAdj         float64  `json:"tempo_adj"`
	OutStarters      int      `json:"out_starters"`
	OutPlayers       int      `json:"out_players"`
	TotalImpactScore float64  `json:"total_impact_score"`
	KeyPlayersOut    []string `json:"key_players_out"`
	Summary          string   `json:"summary"`
	Severity         string   `json:"severity"`
}

// AllResult is the response payload for the all-injuries flow.
type AllResult struct {
	Injuries         []Record `json:"injuries"`
	Source           string   `json:"source"`
	ArticlesAnalyzed int      `json:"articles_analyzed"`
	FetchedAt        string   `json:"fetched_at"`
	Count            int      `json:"count"`
	Error            string   `json:"error,omitempty"`
}

// TeamResult is the response payload for the single-team flow.
type TeamResult struct {
	Injuries         []Record      `json:"injuries"`
	Team             string        `json:"team"`
	Source           string        `json:"source"`
	ArticlesAnalyzed int           `json:"articles_analyzed"`
	FetchedAt        string        `json:"fetched_at"`
	Impact           ImpactSummary `json:"impact"`
}

// MatchupResult pairs both teams' injuries and impact for a single game.
// NetInjuryEdge is team2's penalty minus team1's: positive means team2 is
// more hurt.
type MatchupResult struct {
	Team1         string        `json:"team1"`
	Team2         string        `json:"team2"`
	Team1Injuries []Record      `json:"team1_injuries"`
	Team2Injuries []Record      `json:"team2_injuries"`
	Team1Impact   ImpactSummary `json:"team1_impact"`
	Team2Impact   ImpactSummary `json:"team2_impact"`
	NetInjuryEdge float64       `json:"net_injury_edge"`
	FetchedAt     string        `json:"fetched_at"`
}
