package wakatime

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Egor213/CodeActivity/internal/domain"
	"github.com/Egor213/CodeActivity/internal/metrics"
	"github.com/Egor213/CodeActivity/internal/repo/repoerrs"
)

const (
	DefaultBaseURL = "https://wakatime.com/api/v1"
	summariesPath  = "/users/current/summaries"
)

type summariesResponse struct {
	Data *[]summaryDay `json:"data"`
}

type summaryDay struct {
	Range struct {
		Date string `json:"date"`
	} `json:"range"`
	GrandTotal *struct {
		TotalSeconds float64 `json:"total_seconds"`
	} `json:"grand_total"`
}

type SummariesRepo struct {
	client   *http.Client
	baseURL  string
	counters *metrics.Counters
}

func NewSummariesRepo(client *http.Client, baseURL string, cnt *metrics.Counters) *SummariesRepo {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &SummariesRepo{
		client:   client,
		baseURL:  strings.TrimRight(baseURL, "/"),
		counters: cnt,
	}
}

// NewHTTPClient returns a client with a bounded timeout for upstream calls.
func NewHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

func (r *SummariesRepo) GetSummaries(ctx context.Context, apiKey string, dr domain.DateRange) ([]domain.DaySummary, error) {
	u, err := url.Parse(r.baseURL + summariesPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repoerrs.ErrUpstreamUnavailable, err)
	}
	q := u.Query()
	q.Set("start", dr.StartDate())
	q.Set("end", dr.EndDate())
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repoerrs.ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Authorization", BasicAuthorization(apiKey))
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		r.counters.UpstreamRequests.Inc("error")
		return nil, fmt.Errorf("%w: %w", repoerrs.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		r.counters.UpstreamRequests.Inc("bad_status")
		return nil, fmt.Errorf("%w: %d", repoerrs.ErrUpstreamStatus, resp.StatusCode)
	}

	var payload summariesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		r.counters.UpstreamRequests.Inc("malformed")
		return nil, fmt.Errorf("%w: %w", repoerrs.ErrMalformedPayload, err)
	}

	days, err := toDaySummaries(payload)
	if err != nil {
		r.counters.UpstreamRequests.Inc("malformed")
		return nil, err
	}

	r.counters.UpstreamRequests.Inc("ok")
	return days, nil
}

// BasicAuthorization encodes the key alone, WakaTime treats it as the username.
func BasicAuthorization(apiKey string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(apiKey))
}

func toDaySummaries(payload summariesResponse) ([]domain.DaySummary, error) {
	if payload.Data == nil {
		return nil, fmt.Errorf("%w: missing data", repoerrs.ErrMalformedPayload)
	}

	days := make([]domain.DaySummary, 0, len(*payload.Data))
	for i, d := range *payload.Data {
		if d.Range.Date == "" {
			return nil, fmt.Errorf("%w: day %d has no range.date", repoerrs.ErrMalformedPayload, i)
		}
		if d.GrandTotal == nil {
			return nil, fmt.Errorf("%w: day %s has no grand_total", repoerrs.ErrMalformedPayload, d.Range.Date)
		}
		days = append(days, domain.DaySummary{
			Date:         d.Range.Date,
			TotalSeconds: d.GrandTotal.TotalSeconds,
		})
	}
	return days, nil
}
