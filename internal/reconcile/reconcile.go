// Package reconcile computes the minimal role diff for one linked identity.
//
// The computation is a pure function of its inputs: the roster snapshot, the
// immutable role map, and the identity's currently held roles. Roles outside
// the managed set are never touched.
package reconcile

import (
	"sort"
	"strings"

	"github.com/BotDogs4645/theLAW/internal/entities"
)

// ComputeDiff returns the add/remove set that moves the identity's held roles
// to the desired state. Returns entities.ErrUnmatched when the identity's
// email has no roster record; the caller must then leave every role alone —
// a transient roster gap must never strip the verified role.
func ComputeDiff(
	identity entities.LinkedIdentity,
	rosterByEmail map[string]entities.MemberRecord,
	roleMap entities.RoleMap,
	heldRoles []string,
) (entities.RoleChangeSet, error) {
	record, ok := rosterByEmail[strings.ToLower(identity.Email)]
	if !ok {
		return entities.RoleChangeSet{}, entities.ErrUnmatched
	}

	desired := map[string]struct{}{
		roleMap.VerifiedRoleID: {},
	}
	for _, team := range record.Teams {
		// unmapped team codes are inert, not an error
		if roleID, mapped := roleMap.RoleFor(team); mapped {
			desired[roleID] = struct{}{}
		}
	}

	managed := roleMap.ManagedRoles()
	actual := make(map[string]struct{}, len(heldRoles))
	for _, roleID := range heldRoles {
		if _, ok := managed[roleID]; ok {
			actual[roleID] = struct{}{}
		}
	}

	var diff entities.RoleChangeSet
	for roleID := range desired {
		if _, held := actual[roleID]; !held {
			diff.ToAdd = append(diff.ToAdd, roleID)
		}
	}
	for roleID := range actual {
		if _, want := desired[roleID]; !want {
			diff.ToRemove = append(diff.ToRemove, roleID)
		}
	}

	sort.Strings(diff.ToAdd)
	sort.Strings(diff.ToRemove)
	return diff, nil
}

// RosterByEmail indexes a roster snapshot by lower-cased email.
func RosterByEmail(members []entities.MemberRecord) map[string]entities.MemberRecord {
	byEmail := make(map[string]entities.MemberRecord, len(members))
	for _, m := range members {
		byEmail[strings.ToLower(m.Email)] = m
	}
	return byEmail
}
