// Package entities contains core business entities.
package entities

// LinkedIdentity associates a Discord user id with a roster email. Links are
// created by the verification flow; the sync engine only reads them.
type LinkedIdentity struct {
	DiscordID string
	Email     string
}
