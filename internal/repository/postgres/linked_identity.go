package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/BotDogs4645/theLAW/internal/entities"
)

const (
	selectIdentitiesQuery = `SELECT discord_id, email FROM linked_identities ORDER BY discord_id`
	insertIdentityQuery   = `INSERT INTO linked_identities(discord_id, email) VALUES ($1, $2)`
	deleteIdentityQuery   = `DELETE FROM linked_identities WHERE discord_id = $1`
)

// ListLinkedIdentities returns every verified discord-to-email link.
func (p *Postgres) ListLinkedIdentities(ctx context.Context) ([]entities.LinkedIdentity, error) {
	rows, err := p.db.Query(ctx, selectIdentitiesQuery)
	if err != nil {
		return nil, fmt.Errorf("list linked identities: %w", err)
	}
	defer rows.Close()

	identities := make([]entities.LinkedIdentity, 0)
	for rows.Next() {
		var li entities.LinkedIdentity
		if err := rows.Scan(&li.DiscordID, &li.Email); err != nil {
			p.log.Errorw("failed to scan linked identity", "error", err)
			return nil, fmt.Errorf("scan linked identity: %w", err)
		}
		identities = append(identities, li)
	}

	if err := rows.Err(); err != nil {
		p.log.Errorw("failed to iterate linked identities", "error", err)
		return nil, fmt.Errorf("iterate linked identities: %w", err)
	}

	return identities, nil
}

// CreateLinkedIdentity records a verified link. Both discord id and email are
// unique: one discord account per roster email and vice versa.
func (p *Postgres) CreateLinkedIdentity(ctx context.Context, identity entities.LinkedIdentity) error {
	if _, err := p.db.Exec(ctx, insertIdentityQuery, identity.DiscordID, identity.Email); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return entities.ErrIdentityLinked
		}
		return fmt.Errorf("create linked identity: %w", err)
	}

	p.log.Infow("identity linked", "discord_id", identity.DiscordID, "email", identity.Email)
	return nil
}

// DeleteLinkedIdentity removes a link, e.g. when a member leaves the guild.
// Returns false when no link existed.
func (p *Postgres) DeleteLinkedIdentity(ctx context.Context, discordID string) (bool, error) {
	tag, err := p.db.Exec(ctx, deleteIdentityQuery, discordID)
	if err != nil {
		return false, fmt.Errorf("delete linked identity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	p.log.Infow("identity unlinked", "discord_id", discordID)
	return true, nil
}
