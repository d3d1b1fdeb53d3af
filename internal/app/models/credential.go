package models

import "time"

// Credential is a verified bearer token as seen by the request pipeline.
type Credential struct {
	Token     string
	TokenID   string
	Subject   string
	Directory string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// RemainingLifetime is how long a denylist entry for this credential must live.
func (c *Credential) RemainingLifetime(now time.Time) time.Duration {
	remaining := c.ExpiresAt.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}
