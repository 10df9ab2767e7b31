package cfb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// DefaultBaseURL is the CollegeFootballData API root.
const DefaultBaseURL = "https://api.collegefootballdata.com"

// Provider fetches raw ratings and lines payloads from the upstream API.
// Raw bytes are returned so callers can cache responses verbatim.
type Provider interface {
	FetchRatings(ctx context.Context, season int) ([]byte, error)
	FetchLines(ctx context.Context, season, week int, seasonType string) ([]byte, error)
}

// CFBDClient implements Provider against the CollegeFootballData JSON API
// using a bearer-token credential.
type CFBDClient struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

// NewCFBDClient makes a client for the public CFBD API.
func NewCFBDClient(token string) *CFBDClient {
	return &CFBDClient{BaseURL: DefaultBaseURL, Token: token, HTTP: http.DefaultClient}
}

// FetchRatings retrieves the raw SP+ ratings payload for a season.
func (c *CFBDClient) FetchRatings(ctx context.Context, season int) ([]byte, error) {
	q := url.Values{}
	q.Set("year", strconv.Itoa(season))
	return c.get(ctx, "/ratings/sp", q)
}

// FetchLines retrieves the raw betting-lines payload for a season and week.
func (c *CFBDClient) FetchLines(ctx context.Context, season, week int, seasonType string) ([]byte, error) {
	q := url.Values{}
	q.Set("year", strconv.Itoa(season))
	q.Set("week", strconv.Itoa(week))
	q.Set("seasonType", seasonType)
	return c.get(ctx, "/lines", q)
}

func (c *CFBDClient) get(ctx context.Context, path string, q url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Accept", "application/json")

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}
	return body, nil
}

// spRating mirrors one entry of the CFBD /ratings/sp payload. Rating is a
// pointer because the API omits it for some teams.
type spRating struct {
	Team   string   `json:"team"`
	Year   int      `json:"year"`
	Rating *float64 `json:"rating"`
}

// bettingGame mirrors one entry of the CFBD /lines payload.
type bettingGame struct {
	ID         int64         `json:"id"`
	Season     int           `json:"season"`
	SeasonType string        `json:"seasonType"`
	Week       int           `json:"week"`
	HomeTeam   string        `json:"homeTeam"`
	AwayTeam   string        `json:"awayTeam"`
	Lines      []bettingLine `json:"lines"`
}

// bettingLine is one sportsbook's numbers for a game. Spread is home-relative
// and nullable.
type bettingLine struct {
	Provider string   `json:"provider"`
	Spread   *float64 `json:"spread"`
}
