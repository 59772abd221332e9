// Package domain contains application usecases orchestrating domain logic by roster.
package domain

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/BotDogs4645/theLAW/internal/entities"
)

// ImportRoster runs a synchronous import batch from tabular input. Bad rows
// are collected in the report, never fatal; only a broken header or an
// unreachable store aborts.
func (u *Usecase) ImportRoster(ctx context.Context, r io.Reader) (entities.ImportReport, error) {
	if r == nil {
		return entities.ImportReport{}, fmt.Errorf("%w: input is required", entities.ErrInvalidArgument)
	}

	return u.importer.ImportBatch(ctx, r)
}

// Member returns a roster record by email.
func (u *Usecase) Member(ctx context.Context, email string) (*entities.MemberRecord, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if email == "" {
		return nil, fmt.Errorf("%w: email is required", entities.ErrInvalidArgument)
	}

	return u.repo.GetMemberByEmail(ctx, email)
}

// LinkIdentity records a verified discord-to-email association.
func (u *Usecase) LinkIdentity(ctx context.Context, identity entities.LinkedIdentity) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if identity.DiscordID == "" {
		return fmt.Errorf("%w: discord_id is required", entities.ErrInvalidArgument)
	}
	if identity.Email == "" {
		return fmt.Errorf("%w: email is required", entities.ErrInvalidArgument)
	}
	identity.Email = strings.ToLower(identity.Email)

	return u.repo.CreateLinkedIdentity(ctx, identity)
}

// UnlinkIdentity removes an association, e.g. after the member left the guild.
func (u *Usecase) UnlinkIdentity(ctx context.Context, discordID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if discordID == "" {
		return fmt.Errorf("%w: discord_id is required", entities.ErrInvalidArgument)
	}

	deleted, err := u.repo.DeleteLinkedIdentity(ctx, discordID)
	if err != nil {
		return err
	}
	if !deleted {
		return entities.ErrIdentityNotFound
	}
	return nil
}
