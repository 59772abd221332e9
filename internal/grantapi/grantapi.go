// Package grantapi abstracts the external system holding role assignments.
package grantapi

import (
	"context"
	"errors"
)

// Client is the role-mutation surface the sync pass drives. The external
// system is the sole source of truth for held roles; nothing is cached.
type Client interface {
	// HeldRoles returns every role id the identity currently holds.
	HeldRoles(ctx context.Context, discordID string) ([]string, error)
	// AddRole grants a single role.
	AddRole(ctx context.Context, discordID, roleID string) error
	// RemoveRole revokes a single role.
	RemoveRole(ctx context.Context, discordID, roleID string) error
}

// TransientError marks failures worth retrying (rate limits, timeouts,
// upstream hiccups). Anything else is treated as permanent and classified
// immediately without retry.
type TransientError interface {
	error
	Transient() bool
}

// IsTransient reports whether the error is retryable.
func IsTransient(err error) bool {
	var te TransientError
	if errors.As(err, &te) {
		return te.Transient()
	}
	return false
}
