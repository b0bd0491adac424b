package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/hoopsight/hoopsight/internal/api/respond"
	"github.com/hoopsight/hoopsight/internal/httpcache"
	"github.com/hoopsight/hoopsight/internal/kenpom"
)

// filtersFromQuery maps the public query parameters onto upstream filters.
func filtersFromQuery(r *http.Request) kenpom.Filters {
	q := r.URL.Query()
	f := kenpom.Filters{
		Conference: q.Get("conference"),
		Date:       q.Get("date"),
		ConfOnly:   q.Get("conf_only") == "true",
		Preseason:  q.Get("preseason") == "true",
	}
	if y := q.Get("year"); y != "" {
		f.Year, _ = strconv.Atoi(y)
	}
	if t := q.Get("team_id"); t != "" {
		f.TeamID, _ = strconv.Atoi(t)
	}
	return f
}

// proxy runs one upstream fetch with response caching and ETag handling.
func (h *Handler) proxy(w http.ResponseWriter, r *http.Request, cacheKey string,
	fetch func(ctx context.Context) (json.RawMessage, error)) {

	ttl := httpcache.TTLStats
	if data, etag, ok := h.cache.Get(cacheKey); ok {
		if httpcache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, ttl, true)
		return
	}

	data, err := fetch(r.Context())
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	etag := h.cache.Set(cacheKey, data, ttl)
	respond.WriteJSON(w, data, etag, ttl, false)
}

// GetRatings returns team ratings, strength of schedule, and tempo.
func (h *Handler) GetRatings(w http.ResponseWriter, r *http.Request) {
	f := filtersFromQuery(r)
	h.proxy(w, r, "ratings:"+r.URL.RawQuery, func(ctx context.Context) (json.RawMessage, error) {
		return h.kenpom.Ratings(ctx, f)
	})
}

// GetArchive returns historical ratings from a specific date or preseason.
func (h *Handler) GetArchive(w http.ResponseWriter, r *http.Request) {
	f := filtersFromQuery(r)
	h.proxy(w, r, "archive:"+r.URL.RawQuery, func(ctx context.Context) (json.RawMessage, error) {
		return h.kenpom.Archive(ctx, f)
	})
}

// GetFourFactors returns the four factors for offense and defense.
func (h *Handler) GetFourFactors(w http.ResponseWriter, r *http.Request) {
	f := filtersFromQuery(r)
	h.proxy(w, r, "four-factors:"+r.URL.RawQuery, func(ctx context.Context) (json.RawMessage, error) {
		return h.kenpom.FourFactors(ctx, f)
	})
}

// GetPointDistribution returns the share of points from FT, 2PT, and 3PT.
func (h *Handler) GetPointDistribution(w http.ResponseWriter, r *http.Request) {
	f := filtersFromQuery(r)
	h.proxy(w, r, "pointdist:"+r.URL.RawQuery, func(ctx context.Context) (json.RawMessage, error) {
		return h.kenpom.PointDistribution(ctx, f)
	})
}

// GetHeight returns team height and experience data.
func (h *Handler) GetHeight(w http.ResponseWriter, r *http.Request) {
	f := filtersFromQuery(r)
	h.proxy(w, r, "height:"+r.URL.RawQuery, func(ctx context.Context) (json.RawMessage, error) {
		return h.kenpom.Height(ctx, f)
	})
}

// GetMiscStats returns shooting percentages, blocks, steals, and assists.
func (h *Handler) GetMiscStats(w http.ResponseWriter, r *http.Request) {
	f := filtersFromQuery(r)
	h.proxy(w, r, "misc-stats:"+r.URL.RawQuery, func(ctx context.Context) (json.RawMessage, error) {
		return h.kenpom.MiscStats(ctx, f)
	})
}

// GetFanMatch returns game predictions for a specific date.
func (h *Handler) GetFanMatch(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		respond.WriteError(w, http.StatusBadRequest, "Date parameter is required")
		return
	}
	h.proxy(w, r, "fanmatch:"+date, func(ctx context.Context) (json.RawMessage, error) {
		return h.kenpom.FanMatch(ctx, date)
	})
}

// GetConferenceRatings returns conference-level ratings.
func (h *Handler) GetConferenceRatings(w http.ResponseWriter, r *http.Request) {
	f := filtersFromQuery(r)
	h.proxy(w, r, "conf-ratings:"+r.URL.RawQuery, func(ctx context.Context) (json.RawMessage, error) {
		return h.kenpom.ConferenceRatings(ctx, f)
	})
}

// GetTeams returns the team list for a season.
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	f := filtersFromQuery(r)
	h.proxy(w, r, "teams:"+r.URL.RawQuery, func(ctx context.Context) (json.RawMessage, error) {
		return h.kenpom.Teams(ctx, f)
	})
}

// GetConferences returns the conference list for a season.
func (h *Handler) GetConferences(w http.ResponseWriter, r *http.Request) {
	f := filtersFromQuery(r)
	h.proxy(w, r, "conferences:"+r.URL.RawQuery, func(ctx context.Context) (json.RawMessage, error) {
		return h.kenpom.Conferences(ctx, f)
	})
}
