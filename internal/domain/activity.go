package domain

import "time"

const DateLayout = "2006-01-02"

type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) StartDate() string {
	return r.Start.Format(DateLayout)
}

func (r DateRange) EndDate() string {
	return r.End.Format(DateLayout)
}

// DaySummary is one day of upstream activity.
type DaySummary struct {
	Date         string
	TotalSeconds float64
}

type DayActivity struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}
