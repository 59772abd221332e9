// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/BotDogs4645/theLAW/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// MemberInterface exposes roster record operations. Upsert is a full
// overwrite of name and teams, never a field merge; the returned flag reports
// whether the row was inserted (true) or updated (false).
type MemberInterface interface {
	UpsertMember(ctx context.Context, record entities.MemberRecord) (bool, error)
	GetMemberByEmail(ctx context.Context, email string) (*entities.MemberRecord, error)
	ListMembers(ctx context.Context) ([]entities.MemberRecord, error)
}

// LinkedIdentityInterface exposes identity-link operations. Links are written
// by the verification flow; the sync engine only lists them.
type LinkedIdentityInterface interface {
	ListLinkedIdentities(ctx context.Context) ([]entities.LinkedIdentity, error)
	CreateLinkedIdentity(ctx context.Context, identity entities.LinkedIdentity) error
	DeleteLinkedIdentity(ctx context.Context, discordID string) (bool, error)
}
