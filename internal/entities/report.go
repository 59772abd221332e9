// Package entities contains core business entities.
package entities

// RowRejection records a roster row skipped during import.
type RowRejection struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportReport summarizes a roster import batch.
type ImportReport struct {
	Inserted int            `json:"inserted"`
	Updated  int            `json:"updated"`
	Rejected []RowRejection `json:"rejected"`
}

// RoleChangeSet is the computed diff for one identity. Ephemeral: recomputed
// every sync pass, never persisted.
type RoleChangeSet struct {
	ToAdd    []string
	ToRemove []string
}

// Empty reports whether the diff requires no mutation.
func (c RoleChangeSet) Empty() bool {
	return len(c.ToAdd) == 0 && len(c.ToRemove) == 0
}

// SyncOutcome classifies the result of syncing one identity.
type SyncOutcome string

const (
	// OutcomeUnchanged means the diff was empty.
	OutcomeUnchanged SyncOutcome = "UNCHANGED"
	// OutcomeApplied means all add/remove calls succeeded.
	OutcomeApplied SyncOutcome = "APPLIED"
	// OutcomePartial means some role mutations failed after retries.
	OutcomePartial SyncOutcome = "PARTIAL_FAILURE"
	// OutcomeUnmatched means the identity's email has no roster record.
	OutcomeUnmatched SyncOutcome = "UNMATCHED"
	// OutcomeFailed means held roles could not be fetched at all.
	OutcomeFailed SyncOutcome = "FAILED"
)

// SyncDetail is one identity's result for operator display.
type SyncDetail struct {
	DiscordID string      `json:"discord_id"`
	Email     string      `json:"email"`
	Outcome   SyncOutcome `json:"outcome"`
	Added     []string    `json:"added,omitempty"`
	Removed   []string    `json:"removed,omitempty"`
	FailedAdd []string    `json:"failed_add,omitempty"`
	FailedRem []string    `json:"failed_remove,omitempty"`
	Error     string      `json:"error,omitempty"`
}

// SyncReport aggregates a full sync pass. Details is capped by configuration;
// counts always cover every identity processed.
type SyncReport struct {
	Total     int          `json:"total"`
	Applied   int          `json:"applied"`
	Unchanged int          `json:"unchanged"`
	Partial   int          `json:"partial_failure"`
	Unmatched int          `json:"unmatched"`
	Failed    int          `json:"failed"`
	Stopped   bool         `json:"stopped"`
	Details   []SyncDetail `json:"details,omitempty"`
}
