// Package entities contains core business entities.
package entities

// RoleMap is the immutable mapping from team codes to Discord role ids plus
// the distinguished verified role. Loaded once at startup and passed by value;
// a reload means restarting the process, never mutating a live map.
type RoleMap struct {
	VerifiedRoleID string
	TeamRoles      map[string]string
}

// ManagedRoles returns the set of role ids this engine is authorized to
// mutate: the verified role plus every mapped team role. Roles outside this
// set are invisible to reconciliation.
func (m RoleMap) ManagedRoles() map[string]struct{} {
	managed := make(map[string]struct{}, len(m.TeamRoles)+1)
	managed[m.VerifiedRoleID] = struct{}{}
	for _, roleID := range m.TeamRoles {
		managed[roleID] = struct{}{}
	}
	return managed
}

// RoleFor returns the role id mapped to a team code, if any.
func (m RoleMap) RoleFor(team string) (string, bool) {
	roleID, ok := m.TeamRoles[team]
	return roleID, ok
}
