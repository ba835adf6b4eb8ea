package nav

import (
	"fmt"

	"github.com/keepsake-app/keepsake/internal/route"
)

// Tab identifies one of the five feature domains.
type Tab int

const (
	TabHome Tab = iota
	TabGames
	TabMoments
	TabFamily
	TabProfile
)

// Tabs lists the domains in display order.
var Tabs = []Tab{TabHome, TabGames, TabMoments, TabFamily, TabProfile}

func (t Tab) String() string {
	switch t {
	case TabHome:
		return "home"
	case TabGames:
		return "games"
	case TabMoments:
		return "moments"
	case TabFamily:
		return "family"
	case TabProfile:
		return "profile"
	default:
		return "unknown"
	}
}

// RootRoute returns the route name a tab's stack is rooted at.
func (t Tab) RootRoute() string {
	switch t {
	case TabHome:
		return route.Home
	case TabGames:
		return route.Games
	case TabMoments:
		return route.Moments
	case TabFamily:
		return route.Family
	case TabProfile:
		return route.Profile
	default:
		return ""
	}
}

// TabRouter composes the five feature stacks as mutually exclusive tabs.
// Exactly one tab is active; switching never mutates any stack, so each
// domain's history survives the whole authenticated session.
type TabRouter struct {
	active Tab
	stacks map[Tab]*Stack
}

// NewTabRouter builds the five stacks with their header actions and
// activates Home.
func NewTabRouter(registry *route.Registry) (*TabRouter, error) {
	actions := map[Tab][]HeaderAction{
		TabHome: {
			{Icon: "⏰", LabelKey: "action.add_reminder", Target: route.AddReminder},
		},
		TabGames: {
			{Icon: "🏆", LabelKey: "action.leaderboard", Target: route.Leaderboard},
		},
		TabMoments: {
			{Icon: "✚", LabelKey: "action.add_moment", Target: route.AddMoment},
		},
		TabFamily: {
			{Icon: "✚", LabelKey: "action.add_family_member", Target: route.AddFamilyMember},
		},
	}

	stacks := make(map[Tab]*Stack, len(Tabs))
	for _, tab := range Tabs {
		stack, err := NewStack(registry, tab.RootRoute(), actions[tab]...)
		if err != nil {
			return nil, fmt.Errorf("tab %s: %w", tab, err)
		}
		stacks[tab] = stack
	}
	return &TabRouter{active: TabHome, stacks: stacks}, nil
}

// Select makes a tab active. Idempotent; no stack is mutated.
func (r *TabRouter) Select(tab Tab) {
	if _, ok := r.stacks[tab]; ok {
		r.active = tab
	}
}

// Active returns the current tab.
func (r *TabRouter) Active() Tab {
	return r.active
}

// ActiveStack returns the active tab's feature stack.
func (r *TabRouter) ActiveStack() *Stack {
	return r.stacks[r.active]
}

// Stack returns the feature stack for a tab.
func (r *TabRouter) Stack(tab Tab) *Stack {
	return r.stacks[tab]
}

// Visible returns the top-of-stack entry of the active tab.
func (r *TabRouter) Visible() Entry {
	return r.ActiveStack().Top()
}

// ResetAll truncates every stack to its root entry and re-activates Home.
// Called when the authenticated branch is torn down.
func (r *TabRouter) ResetAll() {
	for _, stack := range r.stacks {
		stack.Reset()
	}
	r.active = TabHome
}
