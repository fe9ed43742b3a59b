package repo

import (
	"context"
	"net/http"

	"github.com/Egor213/CodeActivity/internal/domain"
	"github.com/Egor213/CodeActivity/internal/metrics"
	"github.com/Egor213/CodeActivity/internal/repo/wakatime"
)

type Summaries interface {
	GetSummaries(ctx context.Context, apiKey string, dr domain.DateRange) ([]domain.DaySummary, error)
}

type Repositories struct {
	Summaries
}

type RepositoriesDependencies struct {
	HTTPClient *http.Client
	BaseURL    string
	Counters   *metrics.Counters
}

func NewRepositories(deps RepositoriesDependencies) *Repositories {
	return &Repositories{
		Summaries: wakatime.NewSummariesRepo(deps.HTTPClient, deps.BaseURL, deps.Counters),
	}
}
