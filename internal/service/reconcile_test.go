package service_test

import (
	"testing"

	"github.com/teamEPYC/leave-management-app-sub000/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDesiredFromSetsManagerWins(t *testing.T) {
	both := uuid.New()
	memberOnly := uuid.New()
	managerOnly := uuid.New()

	desired := service.DesiredFromSets(
		[]uuid.UUID{managerOnly, both},
		[]uuid.UUID{memberOnly, both},
	)

	assert.Len(t, desired, 3)
	assert.True(t, desired[managerOnly])
	assert.True(t, desired[both], "user in both lists should end up approval manager")
	assert.False(t, desired[memberOnly])
}

func TestDiffMembershipsIdenticalSetsIsEmpty(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	existing := map[uuid.UUID]bool{a: true, b: false}
	desired := map[uuid.UUID]bool{a: true, b: false}

	diff := service.DiffMemberships(existing, desired)

	assert.True(t, diff.Empty())
	assert.Empty(t, diff.ToAdd)
	assert.Empty(t, diff.ToRemove)
	assert.Empty(t, diff.ToRoleChange)
}

func TestDiffMembershipsAdditionsRemovalsRoleChanges(t *testing.T) {
	stays := uuid.New()
	leaves := uuid.New()
	promoted := uuid.New()
	joins := uuid.New()

	existing := map[uuid.UUID]bool{stays: false, leaves: false, promoted: false}
	desired := map[uuid.UUID]bool{stays: false, promoted: true, joins: true}

	diff := service.DiffMemberships(existing, desired)

	assert.False(t, diff.Empty())
	assert.Equal(t, []uuid.UUID{leaves}, diff.ToRemove)
	assert.Equal(t, map[uuid.UUID]bool{promoted: true}, diff.ToRoleChange)
	assert.Equal(t, map[uuid.UUID]bool{joins: true}, diff.ToAdd)
}

func TestDiffMembershipsDemotion(t *testing.T) {
	demoted := uuid.New()

	diff := service.DiffMemberships(
		map[uuid.UUID]bool{demoted: true},
		map[uuid.UUID]bool{demoted: false},
	)

	assert.Empty(t, diff.ToAdd)
	assert.Empty(t, diff.ToRemove)
	assert.Equal(t, map[uuid.UUID]bool{demoted: false}, diff.ToRoleChange)
}

func TestDiffMembershipsEmptyDesiredRemovesEveryone(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	diff := service.DiffMemberships(map[uuid.UUID]bool{a: true, b: false}, map[uuid.UUID]bool{})

	assert.Len(t, diff.ToRemove, 2)
	assert.ElementsMatch(t, []uuid.UUID{a, b}, diff.ToRemove)
	assert.Empty(t, diff.ToAdd)
	assert.Empty(t, diff.ToRoleChange)
}
