package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/BotDogs4645/theLAW/internal/entities"
)

const (
	upsertMemberQuery = `
INSERT INTO members(email, first_name, last_name, teams)
VALUES ($1, $2, $3, $4)
ON CONFLICT (email) DO UPDATE
SET first_name = EXCLUDED.first_name, last_name = EXCLUDED.last_name, teams = EXCLUDED.teams, updated_at = now()
RETURNING (xmax = 0) AS inserted
`
	selectMemberQuery  = `SELECT email, first_name, last_name, teams FROM members WHERE email = $1`
	selectMembersQuery = `SELECT email, first_name, last_name, teams FROM members ORDER BY email`
)

const teamsSeparator = ":"

// UpsertMember inserts or fully overwrites a roster record by email. The row
// write is atomic, so concurrent upserts to the same email serialize as
// last-write-wins. Returns true when the row was inserted.
func (p *Postgres) UpsertMember(ctx context.Context, record entities.MemberRecord) (bool, error) {
	var inserted bool
	err := p.db.QueryRow(ctx, upsertMemberQuery,
		record.Email, record.FirstName, record.LastName, joinTeams(record.Teams),
	).Scan(&inserted)
	if err != nil {
		p.log.Errorw("failed to upsert member", "error", err, "email", record.Email)
		return false, fmt.Errorf("upsert member: %w", err)
	}
	return inserted, nil
}

// GetMemberByEmail fetches a single roster record.
func (p *Postgres) GetMemberByEmail(ctx context.Context, email string) (*entities.MemberRecord, error) {
	var (
		m     entities.MemberRecord
		teams string
	)
	err := p.db.QueryRow(ctx, selectMemberQuery, strings.ToLower(email)).
		Scan(&m.Email, &m.FirstName, &m.LastName, &teams)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrMemberNotFound
		}
		return nil, fmt.Errorf("get member: %w", err)
	}
	m.Teams = splitTeams(teams)
	return &m, nil
}

// ListMembers returns the full roster.
func (p *Postgres) ListMembers(ctx context.Context) ([]entities.MemberRecord, error) {
	rows, err := p.db.Query(ctx, selectMembersQuery)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	members := make([]entities.MemberRecord, 0)
	for rows.Next() {
		var (
			m     entities.MemberRecord
			teams string
		)
		if err := rows.Scan(&m.Email, &m.FirstName, &m.LastName, &teams); err != nil {
			p.log.Errorw("failed to scan member", "error", err)
			return nil, fmt.Errorf("scan member: %w", err)
		}
		m.Teams = splitTeams(teams)
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		p.log.Errorw("failed to iterate members", "error", err)
		return nil, fmt.Errorf("iterate members: %w", err)
	}

	return members, nil
}

func joinTeams(teams []string) string {
	return strings.Join(teams, teamsSeparator)
}

func splitTeams(raw string) []string {
	if raw == "" {
		return []string{}
	}
	return strings.Split(raw, teamsSeparator)
}
