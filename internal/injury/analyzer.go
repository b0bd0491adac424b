package injury

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hoopsight/hoopsight/internal/news"
	"github.com/hoopsight/hoopsight/internal/roster"
)

// Cache TTLs per flow.
const (
	allInjuriesMaxAge = 120 * time.Minute
	teamMaxAge        = 120 * time.Minute
	matchupMaxAge     = 60 * time.Minute
)

// Completer is the language-model text-completion dependency.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// NewsSource is the news-fetching dependency.
type NewsSource interface {
	FetchGeneral(ctx context.Context, limit int) []news.Item
	FetchForTeam(ctx context.Context, teamName string, maxResults int) []news.Item
	FetchMatchup(ctx context.Context, team1, team2 string) string
}

// Service is the injury intelligence capability. Two implementations exist:
// Analyzer (full pipeline) and Disabled (neutral stubs when no model
// credentials are configured).
type Service interface {
	Enabled() bool
	AllInjuries(ctx context.Context, forceRefresh bool) (*AllResult, error)
	TeamInjuries(ctx context.Context, team string, forceRefresh bool) (*TeamResult, error)
	MatchupInjuries(ctx context.Context, team1, team2 string) (*MatchupResult, error)
}

// Analyzer orchestrates the pipeline: fetch news, extract records via the
// model, attribute and correct them, aggregate impact, cache the result.
type Analyzer struct {
	fetcher NewsSource
	llm     Completer
	cache   *Cache
	stars   *roster.Table
	logger  *slog.Logger
	now     func() time.Time
}

// NewAnalyzer wires the pipeline dependencies.
func NewAnalyzer(fetcher NewsSource, llm Completer, cache *Cache, stars *roster.Table, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		fetcher: fetcher,
		llm:     llm,
		cache:   cache,
		stars:   stars,
		logger:  logger,
		now:     time.Now,
	}
}

// Enabled reports that the full pipeline is active.
func (a *Analyzer) Enabled() bool { return true }

// AllInjuries extracts current injuries nationwide from the general feed.
func (a *Analyzer) AllInjuries(ctx context.Context, forceRefresh bool) (*AllResult, error) {
	const cacheKey = "all_injuries_news"
	if !forceRefresh {
		var cached AllResult
		if a.cache.Get(cacheKey, allInjuriesMaxAge, &cached) {
			return &cached, nil
		}
	}

	articles := a.fetcher.FetchGeneral(ctx, 50)
	if len(articles) == 0 {
		return &AllResult{
			Injuries:  []Record{},
			Source:    "espn_news",
			FetchedAt: a.timestamp(),
			Error:     "No injury news found",
		}, nil
	}

	lines := make([]string, 0, len(articles))
	for _, art := range articles {
		lines = append(lines, fmt.Sprintf("[%s] %s. %s",
			truncateString(art.Published, 10), art.Headline, art.Description))
	}

	records := a.extract(ctx, buildAllPrompt(strings.Join(lines, "\n")))
	records = applyStarOverrides(records, a.stars, a.logger)
	if records == nil {
		records = []Record{}
	}

	result := &AllResult{
		Injuries:         records,
		Source:           "espn_news+claude",
		ArticlesAnalyzed: len(articles),
		FetchedAt:        a.timestamp(),
		Count:            len(records),
	}
	a.cache.Set(cacheKey, result)
	return result, nil
}

// TeamInjuries extracts current injuries for one team from the team search
// feed plus the team-filtered general feed.
func (a *Analyzer) TeamInjuries(ctx context.Context, team string, forceRefresh bool) (*TeamResult, error) {
	cacheKey := "team_injuries_" + team
	if !forceRefresh {
		var cached TeamResult
		if a.cache.Get(cacheKey, teamMaxAge, &cached) {
			return &cached, nil
		}
	}

	teamArticles := a.fetcher.FetchForTeam(ctx, team, 15)
	general := a.fetcher.FetchGeneral(ctx, 50)

	// Keep only general-feed articles that mention the team.
	teamLower := strings.ToLower(team)
	var filtered []news.Item
	for _, art := range general {
		if strings.Contains(strings.ToLower(art.Headline), teamLower) ||
			strings.Contains(strings.ToLower(art.Description), teamLower) {
			filtered = append(filtered, art)
		}
	}

	all := append(filtered, teamArticles...)
	if len(all) == 0 {
		return &TeamResult{
			Injuries:  []Record{},
			Team:      team,
			Source:    "none",
			FetchedAt: a.timestamp(),
			Impact:    Aggregate(nil),
		}, nil
	}

	lines := make([]string, 0, len(all))
	for _, art := range all {
		lines = append(lines, fmt.Sprintf("[%s] %s (%s) %s",
			truncateString(art.Published, 16), art.Headline, art.Source,
			truncateString(art.Description, 150)))
	}
	newsText := truncateString(strings.Join(lines, "\n"), 5000)

	starContext := buildTeamStarContext(team, a.teamStarLines(team))
	prompt := buildTeamPrompt(team, a.today(), starContext, newsText)

	records := a.extract(ctx, prompt)
	records = filterToTeam(records, team)
	records = applyStarOverrides(records, a.stars, a.logger)

	result := &TeamResult{
		Injuries:         records,
		Team:             team,
		Source:           "google_news+espn+claude",
		ArticlesAnalyzed: len(all),
		FetchedAt:        a.timestamp(),
		Impact:           Aggregate(records),
	}
	a.cache.Set(cacheKey, result)
	return result, nil
}

// MatchupInjuries analyzes both sides of an upcoming game and computes the
// net injury edge (positive means team2 is more hurt).
func (a *Analyzer) MatchupInjuries(ctx context.Context, team1, team2 string) (*MatchupResult, error) {
	cacheKey := fmt.Sprintf("matchup_%s_vs_%s", team1, team2)
	var cached MatchupResult
	if a.cache.Get(cacheKey, matchupMaxAge, &cached) {
		return &cached, nil
	}

	newsText := a.fetcher.FetchMatchup(ctx, team1, team2)
	starRef := a.stars.StarContext(team1, team2)
	prompt := buildMatchupPrompt(team1, team2, a.today(), starRef, newsText)

	records := a.extract(ctx, prompt)
	records = applyStarOverrides(records, a.stars, a.logger)

	t1Records := filterToTeam(records, team1)
	t2Records := filterToTeam(records, team2)
	t1Impact := Aggregate(t1Records)
	t2Impact := Aggregate(t2Records)

	result := &MatchupResult{
		Team1:         team1,
		Team2:         team2,
		Team1Injuries: t1Records,
		Team2Injuries: t2Records,
		Team1Impact:   t1Impact,
		Team2Impact:   t2Impact,
		NetInjuryEdge: round2(t2Impact.AdjEMPenalty - t1Impact.AdjEMPenalty),
		FetchedAt:     a.timestamp(),
	}
	a.cache.Set(cacheKey, result)
	return result, nil
}

// extract runs one completion and parses the reply. Every failure mode
// degrades to an empty record list; the outcome is logged for diagnosis.
func (a *Analyzer) extract(ctx context.Context, prompt string) []Record {
	reply, err := a.llm.Complete(ctx, prompt)
	if err != nil {
		a.logger.Warn("extraction completion failed", "error", err)
		return []Record{}
	}

	records, outcome := parseRecords(reply)
	switch outcome {
	case OutcomeFailed:
		a.logger.Warn("extraction reply was not a JSON array", "reply_len", len(reply))
	case OutcomeEmpty:
		a.logger.Debug("extraction found no injuries")
	}
	if records == nil {
		records = []Record{}
	}
	return records
}

func (a *Analyzer) teamStarLines(team string) []starLine {
	stars := a.stars.TeamStars(team)
	lines := make([]starLine, 0, len(stars))
	for _, s := range stars {
		lines = append(lines, starLine{
			player:   s.Player,
			position: s.Position,
			tier:     string(s.Tier),
			impact:   s.Impact,
			note:     s.Note,
		})
	}
	return lines
}

func (a *Analyzer) today() string {
	return a.now().Format("2006-01-02")
}

func (a *Analyzer) timestamp() string {
	return a.now().Format(time.RFC3339)
}

func truncateString(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// ---------------------------------------------------------------------------
// Disabled implementation
// ---------------------------------------------------------------------------

// Disabled is the Service used when no model credentials are configured.
// Every method returns a well-formed neutral payload so downstream consumers
// never need to special-case feature unavailability as an error.
type Disabled struct{}

// Enabled reports that the module is inactive.
func (Disabled) Enabled() bool { return false }

func (Disabled) AllInjuries(ctx context.Context, forceRefresh bool) (*AllResult, error) {
	return &AllResult{
		Injuries:  []Record{},
		Source:    "disabled",
		FetchedAt: time.Now().Format(time.RFC3339),
	}, nil
}

func (Disabled) TeamInjuries(ctx context.Context, team string, forceRefresh bool) (*TeamResult, error) {
	return &TeamResult{
		Injuries:  []Record{},
		Team:      team,
		Source:    "disabled",
		FetchedAt: time.Now().Format(time.RFC3339),
		Impact:    Aggregate(nil),
	}, nil
}

func (Disabled) MatchupInjuries(ctx context.Context, team1, team2 string) (*MatchupResult, error) {
	return &MatchupResult{
		Team1:         team1,
		Team2:         team2,
		Team1Injuries: []Record{},
		Team2Injuries: []Record{},
		Team1Impact:   Aggregate(nil),
		Team2Impact:   Aggregate(nil),
		FetchedAt:     time.Now().Format(time.RFC3339),
	}, nil
}
