package repoerrs

import "errors"

var (
	ErrUpstreamUnavailable = errors.New("upstream request failed")
	ErrUpstreamStatus      = errors.New("upstream returned non-success status")
	ErrMalformedPayload    = errors.New("malformed upstream payload")
)
