package usecase

import (
	"context"
	"io"

	"github.com/BotDogs4645/theLAW/internal/entities"
)

// RosterUsecaseInterface abstracts roster operations for delivery layer.
type RosterUsecaseInterface interface {
	ImportRoster(ctx context.Context, r io.Reader) (entities.ImportReport, error)
	Member(ctx context.Context, email string) (*entities.MemberRecord, error)
}

// IdentityUsecaseInterface abstracts identity-link operations.
type IdentityUsecaseInterface interface {
	LinkIdentity(ctx context.Context, identity entities.LinkedIdentity) error
	UnlinkIdentity(ctx context.Context, discordID string) error
}

// SyncUsecaseInterface abstracts the role sync pass.
type SyncUsecaseInterface interface {
	SyncRoles(ctx context.Context) (entities.SyncReport, error)
}
