// Package news fetches candidate injury coverage from two independent
// sources: the ESPN college-basketball news API (structured JSON) and the
// Google News RSS search feed (XML). Both calls fail soft — a transport
// failure is logged and yields an empty result, never an error to the caller.
package news

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	espnNewsURL   = "https://site.api.espn.com/apis/site/v2/sports/basketball/mens-college-basketball/news"
	googleRSSBase = "https://news.google.com/rss/search?hl=en-US&gl=US&ceid=US:en&q="

	fetchTimeout = 15 * time.Second

	// Team-feed articles older than this are discarded. Items with
	// unparseable dates are kept (fail open).
	maxArticleAge = 45 * 24 * time.Hour

	// Matchup text blocks are hard-cut at this many bytes to bound
	// prompt size.
	matchupCharBudget = 6000

	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/120.0.0.0 Safari/537.36"
)

// injuryKeywords filter the general feed down to injury coverage
// (case-insensitive substring match on headline+description).
var injuryKeywords = []string{
	"injur", "out for", "out indefinitely", "miss ", "misses ",
	"sidelined", "questionable", "day-to-day", "surgery",
	"sprain", "torn", "fracture", "concussion", "knee",
	"ankle", "shoulder", "hamstring", "acl", "mcl",
}

// Item is a normalized news article from either source.
type Item struct {
	Headline    string `json:"headline"`
	Description string `json:"description"`
	Published   string `json:"published"`
	Source      string `json:"source"`
}

// Fetcher retrieves injury news. Zero-value URLs fall back to the live feeds.
type Fetcher struct {
	httpClient *http.Client
	espnURL    string
	rssBase    string
	seasonYear int
	logger     *slog.Logger
	now        func() time.Time
}

// NewFetcher creates a Fetcher. seasonYear qualifies team search queries.
func NewFetcher(seasonYear int, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		httpClient: &http.Client{Timeout: fetchTimeout},
		espnURL:    espnNewsURL,
		rssBase:    googleRSSBase,
		seasonYear: seasonYear,
		logger:     logger,
		now:        time.Now,
	}
}

// ---------------------------------------------------------------------------
// General feed (ESPN)
// ---------------------------------------------------------------------------

// espnResponse is the minimal shape of the ESPN news API reply.
type espnResponse struct {
	Articles []struct {
		Headline    string `json:"headline"`
		Description string `json:"description"`
		Published   string `json:"published"`
	} `json:"articles"`
}

// FetchGeneral retrieves up to limit recent articles from the general feed
// and keeps only those matching an injury keyword.
func (f *Fetcher) FetchGeneral(ctx context.Context, limit int) []Item {
	u := fmt.Sprintf("%s?limit=%d", f.espnURL, limit)
	body, err := f.get(ctx, u)
	if err != nil {
		f.logger.Warn("general news fetch failed", "error", err)
		return nil
	}

	var resp espnResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		f.logger.Warn("general news decode failed", "error", err)
		return nil
	}

	var items []Item
	for _, a := range resp.Articles {
		text := strings.ToLower(a.Headline + " " + a.Description)
		if !containsAny(text, injuryKeywords) {
			continue
		}
		items = append(items, Item{
			Headline:    a.Headline,
			Description: a.Description,
			Published:   a.Published,
			Source:      "espn",
		})
	}
	return items
}

// ---------------------------------------------------------------------------
// Team feed (Google News RSS)
// ---------------------------------------------------------------------------

// rssResponse is the minimal XML structure for Google News RSS.
type rssResponse struct {
	XMLName xml.Name  `xml:"rss"`
	Items   []rssItem `xml:"channel>item"`
}

type rssItem struct {
	Title   string `xml:"title"`
	PubDate string `xml:"pubDate"`
	Source  string `xml:"source"`
}

// FetchForTeam queries the news-search feed for a single team. The team name
// is quoted to avoid substring collisions between similar names ("Kansas"
// inside "Arkansas"). Articles older than 45 days are dropped.
func (f *Fetcher) FetchForTeam(ctx context.Context, teamName string, maxResults int) []Item {
	query := fmt.Sprintf(`"%s" college basketball injury %d`, teamName, f.seasonYear)
	body, err := f.get(ctx, f.rssBase+url.QueryEscape(query))
	if err != nil {
		f.logger.Warn("team news fetch failed", "team", teamName, "error", err)
		return nil
	}

	var rss rssResponse
	if err := xml.Unmarshal(body, &rss); err != nil {
		f.logger.Warn("team news parse failed", "team", teamName, "error", err)
		return nil
	}

	cutoff := f.now().Add(-maxArticleAge)
	var items []Item
	for _, item := range rss.Items {
		if len(items) >= maxResults {
			break
		}
		if t, ok := parsePubDate(item.PubDate); ok && t.Before(cutoff) {
			continue
		}
		source := item.Source
		if source == "" {
			source = "Google News"
		}
		items = append(items, Item{
			Headline:  item.Title,
			Published: item.PubDate,
			Source:    source,
		})
	}
	return items
}

// ---------------------------------------------------------------------------
// Matchup aggregation
// ---------------------------------------------------------------------------

// FetchMatchup aggregates the general feed plus both team feeds into a single
// delimited text block for the extraction prompt. The two team fetches run
// concurrently; the block is hard-truncated at the character budget.
func (f *Fetcher) FetchMatchup(ctx context.Context, team1, team2 string) string {
	general := f.FetchGeneral(ctx, 50)

	var wg sync.WaitGroup
	var t1Items, t2Items []Item
	wg.Add(2)
	go func() {
		defer wg.Done()
		t1Items = f.FetchForTeam(ctx, team1, 10)
	}()
	go func() {
		defer wg.Done()
		t2Items = f.FetchForTeam(ctx, team2, 10)
	}()
	wg.Wait()

	var lines []string
	lines = append(lines, "=== ESPN Recent Injury News ===")
	for _, a := range general {
		lines = append(lines, fmt.Sprintf("[%s] %s", prefix(a.Published, 10), a.Headline))
		if a.Description != "" {
			lines = append(lines, "  "+prefix(a.Description, 200))
		}
	}

	for _, tf := range []struct {
		team  string
		items []Item
	}{{team1, t1Items}, {team2, t2Items}} {
		lines = append(lines, fmt.Sprintf("\n=== %s Injury News (Google) ===", tf.team))
		for _, a := range tf.items {
			lines = append(lines, fmt.Sprintf("[%s] %s (%s)", prefix(a.Published, 16), a.Headline, a.Source))
		}
	}

	text := strings.Join(lines, "\n")
	if len(text) > matchupCharBudget {
		text = text[:matchupCharBudget]
	}
	return text
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (f *Fetcher) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

var pubDateFormats = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC3339,
	"2006-01-02T15:04:05Z",
}

func parsePubDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, f := range pubDateFormats {
		if t, err := time.Parse(f, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// prefix returns at most n bytes of s, matching the original hard cut.
func prefix(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
