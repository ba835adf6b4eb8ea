package nav

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keepsake-app/keepsake/internal/route"
)

func newTestRegistry(t *testing.T) *route.Registry {
	t.Helper()
	reg, err := route.NewTableRegistry()
	require.NoError(t, err)
	return reg
}

func TestStackStartsAtRoot(t *testing.T) {
	s, err := NewStack(newTestRegistry(t), route.Moments)
	require.NoError(t, err)

	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, route.Moments, s.Top().Route)
	assert.False(t, s.Pop(), "pop at root must be a no-op")
	assert.Equal(t, 1, s.Depth())
}

func TestStackPushPopRestoresPriorTop(t *testing.T) {
	s, err := NewStack(newTestRegistry(t), route.Moments)
	require.NoError(t, err)

	require.NoError(t, s.Push(route.MomentDetail, map[string]any{"momentId": "m-1"}))
	before := s.Top()

	require.NoError(t, s.Push(route.MomentDetail, map[string]any{"momentId": "m-2"}))
	require.True(t, s.Pop())

	after := s.Top()
	assert.Equal(t, before, after, "pop must restore the exact prior entry, params and ordinal included")
}

func TestStackOrdinalsIncrease(t *testing.T) {
	s, err := NewStack(newTestRegistry(t), route.Moments)
	require.NoError(t, err)

	require.NoError(t, s.Push(route.MomentDetail, map[string]any{"momentId": "m-1"}))
	require.NoError(t, s.Push(route.MomentDetail, map[string]any{"momentId": "m-2"}))

	entries := s.Entries()
	require.Len(t, entries, 3)
	for i := 1; i < len(entries); i++ {
		assert.Greater(t, entries[i].Ordinal, entries[i-1].Ordinal)
	}
}

func TestStackRejectedPushLeavesStackUntouched(t *testing.T) {
	s, err := NewStack(newTestRegistry(t), route.Moments)
	require.NoError(t, err)
	before := s.Entries()

	// Missing required param.
	err = s.Push(route.MomentDetail, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, route.ErrContractViolation))
	assert.Equal(t, before, s.Entries())

	// Unregistered route.
	err = s.Push("Nope", nil)
	require.Error(t, err)
	assert.Equal(t, before, s.Entries())
}

func TestStackEntryUnaffectedByCallerMapReuse(t *testing.T) {
	s, err := NewStack(newTestRegistry(t), route.Moments)
	require.NoError(t, err)

	params := map[string]any{"momentId": "m-1"}
	require.NoError(t, s.Push(route.MomentDetail, params))

	params["momentId"] = "m-2"
	assert.Equal(t, "m-1", s.Top().Params["momentId"],
		"a pushed entry must not change when the caller reuses its params map")
}

func TestStackRejectsOverlayRoutes(t *testing.T) {
	s, err := NewStack(newTestRegistry(t), route.Games)
	require.NoError(t, err)

	err = s.Push(route.MemoryGrid, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, route.ErrContractViolation))
	assert.Equal(t, 1, s.Depth())
}

func TestStackReset(t *testing.T) {
	s, err := NewStack(newTestRegistry(t), route.Family)
	require.NoError(t, err)

	require.NoError(t, s.Push(route.FamilyMemberDetail, map[string]any{"memberId": "f-1"}))
	require.NoError(t, s.Push(route.FamilyMemberDetail, map[string]any{"memberId": "f-2"}))
	s.Reset()

	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, route.Family, s.Top().Route)
}
