package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsight/hoopsight/internal/config"
	"github.com/hoopsight/hoopsight/internal/httpcache"
	"github.com/hoopsight/hoopsight/internal/injury"
	"github.com/hoopsight/hoopsight/internal/kenpom"
)

// failingService simulates an injury backend failure.
type failingService struct{}

func (failingService) Enabled() bool { return true }

func (failingService) AllInjuries(ctx context.Context, force bool) (*injury.AllResult, error) {
	return nil, errors.New("pipeline exploded")
}

func (failingService) TeamInjuries(ctx context.Context, team string, force bool) (*injury.TeamResult, error) {
	return nil, errors.New("pipeline exploded")
}

func (failingService) MatchupInjuries(ctx context.Context, team1, team2 string) (*injury.MatchupResult, error) {
	return nil, errors.New("pipeline exploded")
}

func newTestHandler(t *testing.T, upstream http.HandlerFunc, injuries injury.Service) *Handler {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	kp := kenpom.NewClient(srv.URL, "test-key", 6000, nil)
	cfg := &config.Config{}
	return New(kp, httpcache.New(true), injuries, cfg)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGetRatingsProxiesAndCaches(t *testing.T) {
	calls := 0
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `[{"team":"Duke"}]`)
	}, injury.Disabled{})

	rec := httptest.NewRecorder()
	h.GetRatings(rec, httptest.NewRequest(http.MethodGet, "/api/ratings?year=2026", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))
	assert.JSONEq(t, `[{"team":"Duke"}]`, rec.Body.String())
	etag := rec.Header().Get("ETag")
	assert.NotEmpty(t, etag)

	// Second request is a cache hit; upstream is not called again.
	rec = httptest.NewRecorder()
	h.GetRatings(rec, httptest.NewRequest(http.MethodGet, "/api/ratings?year=2026", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))
	assert.Equal(t, 1, calls)

	// A matching If-None-Match returns 304.
	req := httptest.NewRequest(http.MethodGet, "/api/ratings?year=2026", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	h.GetRatings(rec, req)
	assert.Equal(t, http.StatusNotModified, rec.Code)
}

func TestGetRatingsUpstreamFailure(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}, injury.Disabled{})

	rec := httptest.NewRecorder()
	h.GetRatings(rec, httptest.NewRequest(http.MethodGet, "/api/ratings", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Contains(t, body["error"], "502")
}

func TestGetFanMatchRequiresDate(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}, injury.Disabled{})

	rec := httptest.NewRecorder()
	h.GetFanMatch(rec, httptest.NewRequest(http.MethodGet, "/api/fanmatch", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Date parameter is required", body["error"])
}

func TestGetTeamInjuriesRequiresTeam(t *testing.T) {
	h := newTestHandler(t, nil, injury.Disabled{})

	rec := httptest.NewRecorder()
	h.GetTeamInjuries(rec, httptest.NewRequest(http.MethodGet, "/api/injuries/team", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "team parameter is required", body["error"])
}

func TestGetMatchupInjuriesRequiresBothTeams(t *testing.T) {
	h := newTestHandler(t, nil, injury.Disabled{})

	rec := httptest.NewRecorder()
	h.GetMatchupInjuries(rec, httptest.NewRequest(http.MethodGet, "/api/injuries/matchup?team1=Duke", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "team1 and team2 parameters are required", body["error"])
}

func TestGetAllInjuriesDisabledService(t *testing.T) {
	h := newTestHandler(t, nil, injury.Disabled{})

	rec := httptest.NewRecorder()
	h.GetAllInjuries(rec, httptest.NewRequest(http.MethodGet, "/api/injuries", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "disabled", body["source"])
}

func TestInjuryFailureIncludesEmptyList(t *testing.T) {
	h := newTestHandler(t, nil, failingService{})

	rec := httptest.NewRecorder()
	h.GetTeamInjuries(rec, httptest.NewRequest(http.MethodGet, "/api/injuries/team?team=Duke", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "pipeline exploded", body["error"])
	require.Contains(t, body, "injuries")
	assert.Empty(t, body["injuries"])
}

func TestHealthCheck(t *testing.T) {
	h := newTestHandler(t, nil, injury.Disabled{})

	rec := httptest.NewRecorder()
	h.HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, false, body["injury_analysis"])
}
