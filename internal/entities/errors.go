// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrMemberNotFound is returned when no roster record exists for an email.
	ErrMemberNotFound = errors.New("member not found")
	// ErrIdentityNotFound signals a missing identity link.
	ErrIdentityNotFound = errors.New("identity not found")
	// ErrIdentityLinked signals an identity link conflict: the discord id or
	// the email is already linked.
	ErrIdentityLinked = errors.New("identity already linked")
	// ErrRoleMapInvalid signals a missing or malformed role mapping document.
	ErrRoleMapInvalid = errors.New("role map invalid")
	// ErrUnmatched means a linked identity's email has no roster record.
	// Distinct from an empty diff: the caller must not touch any role.
	ErrUnmatched = errors.New("no roster record for identity")
)
