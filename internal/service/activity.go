package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Egor213/CodeActivity/internal/domain"
	"github.com/Egor213/CodeActivity/internal/repo"
	log "github.com/sirupsen/logrus"
)

const trailingDays = 365

type ActivityConfig struct {
	APIKey   string
	Rounding Rounding
	// Now defaults to time.Now.
	Now func() time.Time
}

type ActivityService struct {
	summariesRepo repo.Summaries
	apiKey        string
	rounding      Rounding
	now           func() time.Time
	logger        log.FieldLogger
}

func NewActivityService(sr repo.Summaries, cfg ActivityConfig, logger log.FieldLogger) *ActivityService {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Rounding == "" {
		cfg.Rounding = RoundingCeil
	}
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &ActivityService{
		summariesRepo: sr,
		apiKey:        cfg.APIKey,
		rounding:      cfg.Rounding,
		now:           cfg.Now,
		logger:        logger,
	}
}

func (s *ActivityService) GetActivity(ctx context.Context) ([]domain.DayActivity, error) {
	if s.apiKey == "" {
		return nil, ErrAPIKeyNotConfigured
	}

	dr := TrailingYear(s.now())

	days, err := s.summariesRepo.GetSummaries(ctx, s.apiKey, dr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCannotFetchActivity, err)
	}

	activity := ToActivity(days, s.rounding)

	s.logger.WithFields(log.Fields{
		"start":       dr.StartDate(),
		"end":         dr.EndDate(),
		"days":        len(days),
		"active_days": len(activity),
	}).Debug("Activity summaries fetched")

	return activity, nil
}

// TrailingYear ends on the UTC calendar day of now and starts exactly 365 days earlier.
func TrailingYear(now time.Time) domain.DateRange {
	y, m, d := now.UTC().Date()
	end := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return domain.DateRange{
		Start: end.AddDate(0, 0, -trailingDays),
		End:   end,
	}
}

// ToActivity keeps upstream order and drops days that round to zero hours.
func ToActivity(days []domain.DaySummary, r Rounding) []domain.DayActivity {
	activity := make([]domain.DayActivity, 0, len(days))
	for _, d := range days {
		count := r.Hours(d.TotalSeconds)
		if count <= 0 {
			continue
		}
		activity = append(activity, domain.DayActivity{
			Date:  d.Date,
			Count: count,
		})
	}
	return activity
}
