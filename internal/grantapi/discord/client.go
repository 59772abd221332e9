// Package discord implements the grant API against a Discord guild.
package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const auditReason = "roster sync"

// Client mutates guild member roles through the Discord REST API.
type Client struct {
	log     *zap.SugaredLogger
	session *discordgo.Session
	guildID string
}

// New opens a Discord session for the configured guild. The gateway is not
// connected; only REST endpoints are used.
func New(log *zap.SugaredLogger, token, guildID string) (*Client, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}

	return &Client{
		log:     log.Named("grantapi.discord"),
		session: session,
		guildID: guildID,
	}, nil
}

// HeldRoles fetches the member's current role ids from the guild.
func (c *Client) HeldRoles(ctx context.Context, discordID string) ([]string, error) {
	member, err := c.session.GuildMember(c.guildID, discordID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, classify("fetch member roles", err)
	}
	return member.Roles, nil
}

// AddRole grants one role to the member.
func (c *Client) AddRole(ctx context.Context, discordID, roleID string) error {
	err := c.session.GuildMemberRoleAdd(c.guildID, discordID, roleID,
		discordgo.WithContext(ctx), discordgo.WithAuditLogReason(auditReason))
	if err != nil {
		return classify("add role", err)
	}
	c.log.Debugw("role added", "discord_id", discordID, "role_id", roleID)
	return nil
}

// RemoveRole revokes one role from the member.
func (c *Client) RemoveRole(ctx context.Context, discordID, roleID string) error {
	err := c.session.GuildMemberRoleRemove(c.guildID, discordID, roleID,
		discordgo.WithContext(ctx), discordgo.WithAuditLogReason(auditReason))
	if err != nil {
		return classify("remove role", err)
	}
	c.log.Debugw("role removed", "discord_id", discordID, "role_id", roleID)
	return nil
}
