package service

import (
	"context"
	"time"

	"github.com/Egor213/CodeActivity/internal/domain"
	"github.com/Egor213/CodeActivity/internal/repo"
	log "github.com/sirupsen/logrus"
)

type Activity interface {
	GetActivity(ctx context.Context) ([]domain.DayActivity, error)
}

type Services struct {
	Activity
}

type ServicesDependencies struct {
	Repos    *repo.Repositories
	APIKey   string
	Rounding Rounding
	Now      func() time.Time
	Logger   log.FieldLogger
}

func NewServices(deps ServicesDependencies) *Services {
	return &Services{
		Activity: NewActivityService(deps.Repos.Summaries, ActivityConfig{
			APIKey:   deps.APIKey,
			Rounding: deps.Rounding,
			Now:      deps.Now,
		}, deps.Logger),
	}
}
