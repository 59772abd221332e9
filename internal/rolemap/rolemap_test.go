package rolemap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BotDogs4645/theLAW/internal/entities"

	"github.com/stretchr/testify/require"
)

func writeRolesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roles.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeRolesFile(t, `{
		// varsity and junior varsity
		"V25": "111",
		"JV26": "222"
	}`)

	rm, err := Load(path, "999")
	require.NoError(t, err)
	require.Equal(t, "999", rm.VerifiedRoleID)
	require.Equal(t, map[string]string{"V25": "111", "JV26": "222"}, rm.TeamRoles)

	managed := rm.ManagedRoles()
	require.Len(t, managed, 3)
	require.Contains(t, managed, "999")
	require.Contains(t, managed, "111")
	require.Contains(t, managed, "222")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"), "999")
	require.ErrorIs(t, err, entities.ErrRoleMapInvalid)
}

func TestLoadMalformed(t *testing.T) {
	path := writeRolesFile(t, `{"V25": `)
	_, err := Load(path, "999")
	require.ErrorIs(t, err, entities.ErrRoleMapInvalid)
}

func TestValidateRejectsDuplicateRole(t *testing.T) {
	err := Validate(entities.RoleMap{
		VerifiedRoleID: "999",
		TeamRoles:      map[string]string{"A": "111", "B": "111"},
	})
	require.ErrorIs(t, err, entities.ErrRoleMapInvalid)
}

func TestValidateRejectsVerifiedCollision(t *testing.T) {
	err := Validate(entities.RoleMap{
		VerifiedRoleID: "999",
		TeamRoles:      map[string]string{"A": "999"},
	})
	require.ErrorIs(t, err, entities.ErrRoleMapInvalid)
}

func TestValidateRejectsEmptyIDs(t *testing.T) {
	require.ErrorIs(t,
		Validate(entities.RoleMap{VerifiedRoleID: ""}),
		entities.ErrRoleMapInvalid)
	require.ErrorIs(t,
		Validate(entities.RoleMap{VerifiedRoleID: "999", TeamRoles: map[string]string{"A": ""}}),
		entities.ErrRoleMapInvalid)
	require.ErrorIs(t,
		Validate(entities.RoleMap{VerifiedRoleID: "999", TeamRoles: map[string]string{"": "111"}}),
		entities.ErrRoleMapInvalid)
}
