package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cardcast-dev/cardcast/internal/models"
	"github.com/cardcast-dev/cardcast/internal/types"
)

func TestCreateTeamEnrollsCreatorAsAdmin(t *testing.T) {
	db := newTestDB(t)
	teams := NewTeamService(db)
	creator := createTestUser(t, db, "alice")

	team, err := teams.Create(creator.ID, "The Oracles", nil)
	require.NoError(t, err)
	require.Equal(t, "The Oracles", team.Name)

	membership, err := teams.Membership(team.ID, creator.ID)
	require.NoError(t, err)
	require.Equal(t, types.RoleAdmin, membership.Role)
	require.True(t, membership.IsActive)
}

func TestCreateTeamDuplicateName(t *testing.T) {
	db := newTestDB(t)
	teams := NewTeamService(db)
	creator := createTestUser(t, db, "alice")
	other := createTestUser(t, db, "bob")

	_, err := teams.Create(creator.ID, "The Oracles", nil)
	require.NoError(t, err)

	_, err = teams.Create(other.ID, "The Oracles", nil)
	require.ErrorIs(t, err, ErrTeamExists)
}

func TestJoinIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	teams := NewTeamService(db)
	creator := createTestUser(t, db, "alice")
	joiner := createTestUser(t, db, "bob")

	team, err := teams.Create(creator.ID, "The Oracles", nil)
	require.NoError(t, err)

	first, err := teams.Join(team.ID, joiner.ID)
	require.NoError(t, err)
	require.Equal(t, types.RoleMember, first.Role)

	second, err := teams.Join(team.ID, joiner.ID)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.TeamMembership{}).
		Where("team_id = ? AND user_id = ?", team.ID, joiner.ID).
		Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestJoinUnknownTeam(t *testing.T) {
	db := newTestDB(t)
	teams := NewTeamService(db)
	user := createTestUser(t, db, "alice")

	_, err := teams.Join(9999, user.ID)
	require.ErrorIs(t, err, ErrTeamNotFound)
}

func TestListForUserScopesToMemberships(t *testing.T) {
	db := newTestDB(t)
	teams := NewTeamService(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	mine, err := teams.Create(alice.ID, "Alice Team", nil)
	require.NoError(t, err)

	_, err = teams.Create(bob.ID, "Bob Team", nil)
	require.NoError(t, err)

	visible, err := teams.ListForUser(alice.ID)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	require.Equal(t, mine.ID, visible[0].ID)
}

func TestGetForUserHidesNonMemberTeams(t *testing.T) {
	db := newTestDB(t)
	teams := NewTeamService(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	team, err := teams.Create(alice.ID, "Alice Team", nil)
	require.NoError(t, err)

	_, err = teams.GetForUser(team.ID, bob.ID)
	require.ErrorIs(t, err, ErrTeamNotFound)

	got, err := teams.GetForUser(team.ID, alice.ID)
	require.NoError(t, err)
	require.Len(t, got.TeamMemberships, 1)
}
