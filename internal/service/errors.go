package service

import "fmt"

var (
	ErrAPIKeyNotConfigured = fmt.Errorf("API key is not configured")
	ErrCannotFetchActivity = fmt.Errorf("cannot fetch activity")
	ErrUnknownRounding     = fmt.Errorf("unknown rounding policy")
)
