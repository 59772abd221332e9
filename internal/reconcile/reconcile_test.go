package reconcile

import (
	"testing"

	"github.com/BotDogs4645/theLAW/internal/entities"

	"github.com/stretchr/testify/require"
)

func testRoleMap() entities.RoleMap {
	return entities.RoleMap{
		VerifiedRoleID: "role_V",
		TeamRoles: map[string]string{
			"A": "role_A",
			"B": "role_B",
		},
	}
}

func testRoster(records ...entities.MemberRecord) map[string]entities.MemberRecord {
	return RosterByEmail(records)
}

func TestComputeDiffMovesBetweenTeams(t *testing.T) {
	roster := testRoster(entities.MemberRecord{Email: "jo@example.edu", Teams: []string{"A"}})
	identity := entities.LinkedIdentity{DiscordID: "1", Email: "jo@example.edu"}

	diff, err := ComputeDiff(identity, roster, testRoleMap(), []string{"role_B", "role_V"})
	require.NoError(t, err)
	require.Equal(t, []string{"role_A"}, diff.ToAdd)
	require.Equal(t, []string{"role_B"}, diff.ToRemove)

	// applying the diff and recomputing yields nothing more to do
	diff2, err := ComputeDiff(identity, roster, testRoleMap(), []string{"role_A", "role_V"})
	require.NoError(t, err)
	require.True(t, diff2.Empty())
}

func TestComputeDiffUnmatched(t *testing.T) {
	roster := testRoster(entities.MemberRecord{Email: "someone@example.edu", Teams: []string{"A"}})
	identity := entities.LinkedIdentity{DiscordID: "1", Email: "gone@example.edu"}

	_, err := ComputeDiff(identity, roster, testRoleMap(), []string{"role_V", "role_B"})
	require.ErrorIs(t, err, entities.ErrUnmatched)
}

func TestComputeDiffEmailCaseInsensitive(t *testing.T) {
	roster := testRoster(entities.MemberRecord{Email: "jo@example.edu", Teams: []string{}})
	identity := entities.LinkedIdentity{DiscordID: "1", Email: "Jo@Example.EDU"}

	diff, err := ComputeDiff(identity, roster, testRoleMap(), nil)
	require.NoError(t, err)
	require.Equal(t, []string{"role_V"}, diff.ToAdd)
}

func TestComputeDiffIgnoresUnmanagedRoles(t *testing.T) {
	roster := testRoster(entities.MemberRecord{Email: "jo@example.edu", Teams: []string{"A"}})
	identity := entities.LinkedIdentity{DiscordID: "1", Email: "jo@example.edu"}

	held := []string{"role_A", "role_V", "role_moderator", "role_booster"}
	diff, err := ComputeDiff(identity, roster, testRoleMap(), held)
	require.NoError(t, err)
	require.True(t, diff.Empty(), "roles outside the managed set must be invisible")
}

func TestComputeDiffUnmappedTeamInert(t *testing.T) {
	roster := testRoster(entities.MemberRecord{Email: "jo@example.edu", Teams: []string{"A", "RETIRED"}})
	identity := entities.LinkedIdentity{DiscordID: "1", Email: "jo@example.edu"}

	diff, err := ComputeDiff(identity, roster, testRoleMap(), []string{"role_V"})
	require.NoError(t, err)
	require.Equal(t, []string{"role_A"}, diff.ToAdd)
	require.Empty(t, diff.ToRemove)
}

func TestComputeDiffAddsVerifiedForTeamlessMember(t *testing.T) {
	roster := testRoster(entities.MemberRecord{Email: "jo@example.edu", Teams: []string{}})
	identity := entities.LinkedIdentity{DiscordID: "1", Email: "jo@example.edu"}

	diff, err := ComputeDiff(identity, roster, testRoleMap(), []string{"role_A", "role_B"})
	require.NoError(t, err)
	require.Equal(t, []string{"role_V"}, diff.ToAdd)
	require.Equal(t, []string{"role_A", "role_B"}, diff.ToRemove)
}

func TestComputeDiffDeterministic(t *testing.T) {
	roster := testRoster(entities.MemberRecord{Email: "jo@example.edu", Teams: []string{"B", "A"}})
	identity := entities.LinkedIdentity{DiscordID: "1", Email: "jo@example.edu"}

	first, err := ComputeDiff(identity, roster, testRoleMap(), nil)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := ComputeDiff(identity, roster, testRoleMap(), nil)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestComputeDiffContainment(t *testing.T) {
	roleMap := testRoleMap()
	managed := roleMap.ManagedRoles()
	roster := testRoster(entities.MemberRecord{Email: "jo@example.edu", Teams: []string{"A", "X", "B"}})
	identity := entities.LinkedIdentity{DiscordID: "1", Email: "jo@example.edu"}

	helds := [][]string{
		nil,
		{"role_V"},
		{"role_A", "role_B", "role_V"},
		{"role_other", "role_A"},
		{"role_other"},
	}
	for _, held := range helds {
		diff, err := ComputeDiff(identity, roster, roleMap, held)
		require.NoError(t, err)
		for _, roleID := range append(diff.ToAdd, diff.ToRemove...) {
			_, ok := managed[roleID]
			require.True(t, ok, "diff touched unmanaged role %s", roleID)
		}
	}
}

func TestRosterByEmailLowercasesKeys(t *testing.T) {
	byEmail := RosterByEmail([]entities.MemberRecord{
		{Email: "Jo@Example.EDU"},
		{Email: "amy@example.edu"},
	})
	require.Contains(t, byEmail, "jo@example.edu")
	require.Contains(t, byEmail, "amy@example.edu")
}
