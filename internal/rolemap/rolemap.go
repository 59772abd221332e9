// Package rolemap loads the team-to-role mapping document.
package rolemap

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/BotDogs4645/theLAW/internal/entities"
)

// Load reads the mapping file (JSON, comments tolerated) and combines it with
// the configured verified role id into an immutable RoleMap. Any failure here
// is structural: the caller must abort before attempting a sync pass.
func Load(path, verifiedRoleID string) (entities.RoleMap, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return entities.RoleMap{}, fmt.Errorf("%w: read %s: %v", entities.ErrRoleMapInvalid, path, err)
	}

	var teamRoles map[string]string
	if err := json.Unmarshal(jsonc.ToJSON(raw), &teamRoles); err != nil {
		return entities.RoleMap{}, fmt.Errorf("%w: parse %s: %v", entities.ErrRoleMapInvalid, path, err)
	}

	rm := entities.RoleMap{
		VerifiedRoleID: verifiedRoleID,
		TeamRoles:      teamRoles,
	}
	if err := Validate(rm); err != nil {
		return entities.RoleMap{}, err
	}
	return rm, nil
}

// Validate enforces role map invariants: a verified role id, non-empty role
// ids, no team mapped to the verified role, and an injective team mapping.
func Validate(rm entities.RoleMap) error {
	if rm.VerifiedRoleID == "" {
		return fmt.Errorf("%w: verified role id is empty", entities.ErrRoleMapInvalid)
	}

	seen := make(map[string]string, len(rm.TeamRoles))
	for team, roleID := range rm.TeamRoles {
		if team == "" {
			return fmt.Errorf("%w: empty team code", entities.ErrRoleMapInvalid)
		}
		if roleID == "" {
			return fmt.Errorf("%w: team %s has empty role id", entities.ErrRoleMapInvalid, team)
		}
		if roleID == rm.VerifiedRoleID {
			return fmt.Errorf("%w: team %s maps to the verified role", entities.ErrRoleMapInvalid, team)
		}
		if other, dup := seen[roleID]; dup {
			return fmt.Errorf("%w: teams %s and %s map to the same role %s", entities.ErrRoleMapInvalid, other, team, roleID)
		}
		seen[roleID] = team
	}
	return nil
}
