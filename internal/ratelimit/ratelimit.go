// Package ratelimit counts requests per client against windowed quotas,
// either in process or in Redis when several instances share the limit.
package ratelimit

import (
	"context"
	"time"
)

// Policy is a quota of Limit requests per Window
type Policy struct {
	Name   string
	Limit  int
	Window time.Duration
}

var (
	// GlobalPolicy applies to every request
	GlobalPolicy = Policy{Name: "global", Limit: 100, Window: 15 * time.Minute}
	// SubmissionPolicy applies to the form submission endpoints
	SubmissionPolicy = Policy{Name: "submission", Limit: 10, Window: time.Hour}
)

// Decision is the outcome of counting one request
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// ResetAfter is the whole number of seconds until the quota recovers
func (d Decision) ResetAfter(now time.Time) int {
	if !d.ResetAt.After(now) {
		return 0
	}
	return int((d.ResetAt.Sub(now) + time.Second - 1) / time.Second)
}

// Store counts requests for a key under a policy
type Store interface {
	Take(ctx context.Context, policy Policy, key string) (Decision, error)
}
