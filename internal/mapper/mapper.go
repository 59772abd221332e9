// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"fmt"

	"github.com/BotDogs4645/theLAW/internal/entities"
	"github.com/BotDogs4645/theLAW/internal/oapi"
)

// ToOAPIMember maps entities.MemberRecord to transport model.
func ToOAPIMember(m entities.MemberRecord) oapi.Member {
	teams := make([]string, 0, len(m.Teams))
	teams = append(teams, m.Teams...)

	return oapi.Member{
		Email:     m.Email,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Teams:     teams,
	}
}

// ToOAPIImportReport maps entities.ImportReport to transport model.
func ToOAPIImportReport(r entities.ImportReport) oapi.ImportReport {
	rejected := make([]oapi.RowRejection, 0, len(r.Rejected))
	for _, rej := range r.Rejected {
		rejected = append(rejected, oapi.RowRejection{Row: rej.Row, Reason: rej.Reason})
	}

	return oapi.ImportReport{
		Inserted: r.Inserted,
		Updated:  r.Updated,
		Rejected: rejected,
	}
}

// ToOAPISyncSummary maps entities.SyncReport to the operator summary.
func ToOAPISyncSummary(r entities.SyncReport) oapi.SyncSummary {
	details := make([]oapi.SyncDetail, 0, len(r.Details))
	for _, d := range r.Details {
		details = append(details, oapi.SyncDetail{
			DiscordID: d.DiscordID,
			Email:     d.Email,
			Outcome:   string(d.Outcome),
			Added:     d.Added,
			Removed:   d.Removed,
			FailedAdd: d.FailedAdd,
			FailedRem: d.FailedRem,
			Error:     d.Error,
		})
	}

	summary := fmt.Sprintf(
		"Sync complete. Applied: %d, Up-to-date: %d, Partial: %d, Unmatched: %d, Failed: %d",
		r.Applied, r.Unchanged, r.Partial, r.Unmatched, r.Failed,
	)
	if r.Stopped {
		summary += " (stopped early)"
	}

	return oapi.SyncSummary{
		Summary:   summary,
		Total:     r.Total,
		Applied:   r.Applied,
		Unchanged: r.Unchanged,
		Partial:   r.Partial,
		Unmatched: r.Unmatched,
		Failed:    r.Failed,
		Stopped:   r.Stopped,
		Details:   details,
	}
}
