package injury

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsight/hoopsight/internal/news"
	"github.com/hoopsight/hoopsight/internal/roster"
)

type stubCompleter struct {
	reply string
	err   error
	calls int
}

func (s *stubCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	s.calls++
	return s.reply, s.err
}

type stubNews struct {
	general []news.Item
	team    map[string][]news.Item
	matchup string
}

func (s *stubNews) FetchGeneral(ctx context.Context, limit int) []news.Item {
	return s.general
}

func (s *stubNews) FetchForTeam(ctx context.Context, teamName string, maxResults int) []news.Item {
	return s.team[teamName]
}

func (s *stubNews) FetchMatchup(ctx context.Context, team1, team2 string) string {
	return s.matchup
}

func emptyRoster() *roster.Table {
	return roster.NewTable(map[string]roster.Entry{})
}

func newTestAnalyzer(t *testing.T, fetcher NewsSource, llm Completer, stars *roster.Table) *Analyzer {
	t.Helper()
	return NewAnalyzer(fetcher, llm, NewCache(t.TempDir(), nil), stars, nil)
}

func TestAllInjuriesNoNews(t *testing.T) {
	llm := &stubCompleter{}
	a := newTestAnalyzer(t, &stubNews{}, llm, emptyRoster())

	got, err := a.AllInjuries(context.Background(), false)

	require.NoError(t, err)
	assert.Equal(t, "espn_news", got.Source)
	assert.Equal(t, "No injury news found", got.Error)
	assert.NotNil(t, got.Injuries)
	assert.Empty(t, got.Injuries)
	assert.Zero(t, llm.calls, "no extraction without articles")
}

func TestAllInjuriesExtractsAndCaches(t *testing.T) {
	fetcher := &stubNews{general: []news.Item{
		{Headline: "Star guard out with ankle sprain", Description: "Expected to miss two weeks", Published: "2026-01-10T12:00Z"},
	}}
	llm := &stubCompleter{
		reply: `[{"team":"Duke","player":"A Guard","status":"Out","impact_score":8,"is_starter":true}]`,
	}
	a := newTestAnalyzer(t, fetcher, llm, emptyRoster())

	got, err := a.AllInjuries(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, "espn_news+claude", got.Source)
	assert.Equal(t, 1, got.ArticlesAnalyzed)
	assert.Equal(t, 1, got.Count)
	require.Len(t, got.Injuries, 1)
	assert.Equal(t, "A Guard", got.Injuries[0].Player)

	// Second call is served from cache.
	again, err := a.AllInjuries(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, got.Count, again.Count)
	assert.Equal(t, 1, llm.calls)

	// force bypasses the cache.
	_, err = a.AllInjuries(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, 2, llm.calls)
}

func TestTeamInjuriesFiltersAndAggregates(t *testing.T) {
	fetcher := &stubNews{
		team: map[string][]news.Item{
			"Duke": {{Headline: "Duke center questionable with knee injury", Published: "Mon, 12 Jan 2026 10:00:00 +0000", Source: "CBS"}},
		},
	}
	// The model leaks a record for another team; it must be filtered out.
	llm := &stubCompleter{
		reply: `[
			{"team":"Duke","player":"Big Man","status":"Out","impact_score":5,"is_starter":true},
			{"team":"Kansas","player":"Other Guy","status":"Out","impact_score":9,"is_starter":true}
		]`,
	}
	a := newTestAnalyzer(t, fetcher, llm, emptyRoster())

	got, err := a.TeamInjuries(context.Background(), "Duke", false)
	require.NoError(t, err)

	assert.Equal(t, "google_news+espn+claude", got.Source)
	require.Len(t, got.Injuries, 1)
	assert.Equal(t, "Big Man", got.Injuries[0].Player)

	assert.InDelta(t, 2.0, got.Impact.AdjEMPenalty, 1e-9)
	assert.Equal(t, 1, got.Impact.OutStarters)
	assert.Equal(t, SeverityModerate, got.Impact.Severity)
}

func TestTeamInjuriesNoArticles(t *testing.T) {
	llm := &stubCompleter{}
	a := newTestAnalyzer(t, &stubNews{}, llm, emptyRoster())

	got, err := a.TeamInjuries(context.Background(), "Duke", false)
	require.NoError(t, err)

	assert.Equal(t, "none", got.Source)
	assert.Empty(t, got.Injuries)
	assert.Equal(t, SeverityNone, got.Impact.Severity)
	assert.Zero(t, llm.calls)
}

func TestTeamInjuriesAppliesStarOverride(t *testing.T) {
	table := roster.NewTable(map[string]roster.Entry{
		"JT Toppin": {Team: "Texas Tech", Position: "PF", Tier: roster.TierKeyStar, Impact: 9},
	})
	fetcher := &stubNews{
		team: map[string][]news.Item{
			"Texas Tech": {{Headline: "Toppin doubtful", Published: "Mon, 12 Jan 2026 10:00:00 +0000"}},
		},
	}
	llm := &stubCompleter{
		reply: `[{"team":"Texas Tech","player":"J. Toppin","status":"Doubtful","impact_score":4,"is_starter":false}]`,
	}
	a := newTestAnalyzer(t, fetcher, llm, table)

	got, err := a.TeamInjuries(context.Background(), "Texas Tech", false)
	require.NoError(t, err)

	require.Len(t, got.Injuries, 1)
	assert.True(t, got.Injuries[0].StarVerified)
	assert.Equal(t, 9, got.Injuries[0].ImpactScore)
	assert.True(t, got.Injuries[0].IsStarter)
}

func TestMatchupInjuriesNetEdge(t *testing.T) {
	fetcher := &stubNews{matchup: "=== ESPN Recent Injury News ===\n[2026-01-10] two players hurt"}
	llm := &stubCompleter{
		reply: `[
			{"team":"Duke","player":"A","status":"Out","impact_score":5,"is_starter":true},
			{"team":"Kansas","player":"B","status":"Out","impact_score":10,"is_starter":true},
			{"team":"Kansas","player":"C","status":"Day-to-Day","impact_score":5,"is_starter":false}
		]`,
	}
	a := newTestAnalyzer(t, fetcher, llm, emptyRoster())

	got, err := a.MatchupInjuries(context.Background(), "Duke", "Kansas")
	require.NoError(t, err)

	assert.Len(t, got.Team1Injuries, 1)
	assert.Len(t, got.Team2Injuries, 2)
	assert.InDelta(t, 2.0, got.Team1Impact.AdjEMPenalty, 1e-9)
	assert.InDelta(t, 5.0, got.Team2Impact.AdjEMPenalty, 1e-9)
	assert.InDelta(t, 3.0, got.NetInjuryEdge, 1e-9)

	// Cached on the second call.
	_, err = a.MatchupInjuries(context.Background(), "Duke", "Kansas")
	require.NoError(t, err)
	assert.Equal(t, 1, llm.calls)
}

func TestExtractionFailureDegradesToEmpty(t *testing.T) {
	fetcher := &stubNews{general: []news.Item{
		{Headline: "Guard out with injury", Published: "2026-01-10"},
	}}
	llm := &stubCompleter{err: errors.New("upstream unavailable")}
	a := newTestAnalyzer(t, fetcher, llm, emptyRoster())

	got, err := a.AllInjuries(context.Background(), false)
	require.NoError(t, err)

	assert.NotNil(t, got.Injuries)
	assert.Empty(t, got.Injuries)
	assert.Zero(t, got.Count)
}

func TestDisabledService(t *testing.T) {
	var svc Service = Disabled{}

	assert.False(t, svc.Enabled())

	all, err := svc.AllInjuries(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, "disabled", all.Source)
	assert.Empty(t, all.Injuries)

	team, err := svc.TeamInjuries(context.Background(), "Duke", false)
	require.NoError(t, err)
	assert.Equal(t, "disabled", team.Source)
	assert.Equal(t, SeverityNone, team.Impact.Severity)

	matchup, err := svc.MatchupInjuries(context.Background(), "Duke", "Kansas")
	require.NoError(t, err)
	assert.Zero(t, matchup.NetInjuryEdge)
	assert.Empty(t, matchup.Team1Injuries)
}
