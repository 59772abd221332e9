// Package oapi holds transport DTOs for the HTTP API.
package oapi

// ErrorResponseErrorCode enumerates machine-readable error codes.
type ErrorResponseErrorCode string

const (
	// NOTFOUND marks missing resources and generic failures.
	NOTFOUND ErrorResponseErrorCode = "NOT_FOUND"
	// INVALIDARGUMENT marks failed input validation.
	INVALIDARGUMENT ErrorResponseErrorCode = "INVALID_ARGUMENT"
	// IDENTITYLINKED marks an identity link conflict.
	IDENTITYLINKED ErrorResponseErrorCode = "IDENTITY_LINKED"
	// SYNCFAILED marks a structural sync failure (no report produced).
	SYNCFAILED ErrorResponseErrorCode = "SYNC_FAILED"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error struct {
		Code    ErrorResponseErrorCode `json:"code"`
		Message string                 `json:"message"`
	} `json:"error"`
}

// Member is the transport view of a roster record.
type Member struct {
	Email     string   `json:"email"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Teams     []string `json:"teams"`
}

// RowRejection reports one skipped import row.
type RowRejection struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportReport is the transport view of an import batch result.
type ImportReport struct {
	Inserted int            `json:"inserted"`
	Updated  int            `json:"updated"`
	Rejected []RowRejection `json:"rejected"`
}

// SyncDetail is one identity's sync outcome for operator display.
type SyncDetail struct {
	DiscordID string   `json:"discord_id"`
	Email     string   `json:"email"`
	Outcome   string   `json:"outcome"`
	Added     []string `json:"added,omitempty"`
	Removed   []string `json:"removed,omitempty"`
	FailedAdd []string `json:"failed_add,omitempty"`
	FailedRem []string `json:"failed_remove,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// SyncSummary is the operator-facing result of a sync pass.
type SyncSummary struct {
	Summary   string       `json:"summary"`
	Total     int          `json:"total"`
	Applied   int          `json:"applied"`
	Unchanged int          `json:"unchanged"`
	Partial   int          `json:"partial_failure"`
	Unmatched int          `json:"unmatched"`
	Failed    int          `json:"failed"`
	Stopped   bool         `json:"stopped"`
	Details   []SyncDetail `json:"details,omitempty"`
}
