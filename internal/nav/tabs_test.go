package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keepsake-app/keepsake/internal/route"
)

func TestTabRouterStartsOnHome(t *testing.T) {
	r, err := NewTabRouter(newTestRegistry(t))
	require.NoError(t, err)

	assert.Equal(t, TabHome, r.Active())
	assert.Equal(t, route.Home, r.Visible().Route)
}

func TestTabSwitchPreservesStacks(t *testing.T) {
	r, err := NewTabRouter(newTestRegistry(t))
	require.NoError(t, err)

	r.Select(TabMoments)
	require.NoError(t, r.ActiveStack().Push(route.MomentDetail, map[string]any{"momentId": "m-1"}))
	deep := r.ActiveStack().Top()

	// Away and back: the stack must be exactly where it was left.
	r.Select(TabGames)
	assert.Equal(t, route.Games, r.Visible().Route)

	r.Select(TabMoments)
	assert.Equal(t, deep, r.ActiveStack().Top())
	assert.Equal(t, 2, r.ActiveStack().Depth())
}

func TestTabSelectIsIdempotent(t *testing.T) {
	r, err := NewTabRouter(newTestRegistry(t))
	require.NoError(t, err)

	r.Select(TabFamily)
	require.NoError(t, r.ActiveStack().Push(route.FamilyMemberDetail, map[string]any{"memberId": "f-1"}))

	r.Select(TabFamily)
	assert.Equal(t, 2, r.ActiveStack().Depth(), "re-selecting the active tab must not reset its stack")
}

func TestTabResetAll(t *testing.T) {
	r, err := NewTabRouter(newTestRegistry(t))
	require.NoError(t, err)

	r.Select(TabMoments)
	require.NoError(t, r.ActiveStack().Push(route.MomentDetail, map[string]any{"momentId": "m-1"}))
	r.Select(TabFamily)
	require.NoError(t, r.ActiveStack().Push(route.FamilyMemberDetail, map[string]any{"memberId": "f-1"}))

	r.ResetAll()

	assert.Equal(t, TabHome, r.Active())
	for _, tab := range Tabs {
		assert.Equal(t, 1, r.Stack(tab).Depth(), "stack %s not reset", tab)
	}
}

func TestEveryTabHasARootAndRoute(t *testing.T) {
	r, err := NewTabRouter(newTestRegistry(t))
	require.NoError(t, err)

	for _, tab := range Tabs {
		s := r.Stack(tab)
		require.NotNil(t, s, "tab %s has no stack", tab)
		assert.Equal(t, tab.RootRoute(), s.Root())
	}
}

func TestHeaderActionsPerDomain(t *testing.T) {
	r, err := NewTabRouter(newTestRegistry(t))
	require.NoError(t, err)

	want := map[Tab]string{
		TabHome:    route.AddReminder,
		TabGames:   route.Leaderboard,
		TabMoments: route.AddMoment,
		TabFamily:  route.AddFamilyMember,
	}
	for tab, target := range want {
		actions := r.Stack(tab).Actions()
		require.NotEmpty(t, actions, "tab %s has no header action", tab)
		assert.Equal(t, target, actions[0].Request().Target)
	}
	assert.Empty(t, r.Stack(TabProfile).Actions())
}
