// Package nav implements the view-routing state machine: the root
// finite-state machine over the session, the tab router, the per-domain
// feature stacks and the overlay presenter. The packages above it (the TUI
// shell) only read router state and issue typed navigation requests.
package nav

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/keepsake-app/keepsake/internal/route"
	"github.com/keepsake-app/keepsake/internal/session"
)

// State is the root router's branch. Exactly one branch is mounted at any
// time and it is a total function of the latest session snapshot.
type State int

const (
	StateLoading State = iota
	StateOnboarding
	StateLogin
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateOnboarding:
		return "onboarding"
	case StateLogin:
		return "login"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// NextState is the pure transition function from session snapshot to root
// branch. It is total: every snapshot maps to exactly one state.
func NextState(snap session.Snapshot) State {
	switch {
	case snap.Loading:
		return StateLoading
	case !snap.Onboarded:
		return StateOnboarding
	case snap.User == nil:
		return StateLogin
	default:
		return StateAuthenticated
	}
}

// inlineOwner maps non-root inline routes to the feature domain that owns
// them. A dispatch targeting one of these from another tab switches tabs
// first, then pushes.
var inlineOwner = map[string]Tab{
	route.MomentDetail:       TabMoments,
	route.FamilyMemberDetail: TabFamily,
}

// Root is the top-level router. It owns the tab router and the overlay
// presenter and mutates them only on session transitions and dispatched
// navigation requests. All methods run on the UI event loop; there is no
// internal locking because there is exactly one owner per piece of state.
type Root struct {
	registry *route.Registry
	log      *zap.Logger

	state    State
	userID   uuid.UUID
	tabs     *TabRouter
	overlays *Presenter
}

// NewRoot builds the router tree in the Loading state. log may be nil.
func NewRoot(registry *route.Registry, log *zap.Logger) (*Root, error) {
	if log == nil {
		log = zap.NewNop()
	}
	tabs, err := NewTabRouter(registry)
	if err != nil {
		return nil, err
	}
	return &Root{
		registry: registry,
		log:      log,
		state:    StateLoading,
		tabs:     tabs,
		overlays: NewPresenter(registry),
	}, nil
}

// State returns the mounted branch.
func (r *Root) State() State { return r.state }

// Tabs returns the tab router. Only meaningful while Authenticated.
func (r *Root) Tabs() *TabRouter { return r.tabs }

// Overlays returns the overlay presenter. Only meaningful while
// Authenticated.
func (r *Root) Overlays() *Presenter { return r.overlays }

// Registry returns the route registry backing this router tree.
func (r *Root) Registry() *route.Registry { return r.registry }

// Apply consumes a session snapshot and performs the state transition.
// Leaving Authenticated tears the whole authenticated tree down: every
// stack back to its root entry, every overlay dismissed, active tab Home.
// Nothing survives into the next login.
func (r *Root) Apply(snap session.Snapshot) State {
	next := NextState(snap)
	var nextUser uuid.UUID
	if snap.User != nil {
		nextUser = snap.User.ID
	}

	if next == r.state {
		// Same branch, but not necessarily the same session. No state may
		// leak from one user into another.
		if next == StateAuthenticated && nextUser != r.userID {
			r.tabs.ResetAll()
			r.overlays.DismissAll()
			r.log.Info("authenticated user changed, tree reset")
			r.userID = nextUser
		}
		return r.state
	}

	if r.state == StateAuthenticated {
		r.tabs.ResetAll()
		r.overlays.DismissAll()
	}
	r.log.Info("root transition",
		zap.Stringer("from", r.state),
		zap.Stringer("to", next))
	r.state = next
	r.userID = nextUser
	return r.state
}

// Dispatch resolves a typed navigation request and applies it to whichever
// router owns the target: overlay mount, tab switch, or stack push
// (switching to the owning tab first when the target belongs to a sibling
// domain). Outside the Authenticated state every dispatch is rejected.
func (r *Root) Dispatch(req route.Request) error {
	if r.state != StateAuthenticated {
		return fmt.Errorf("dispatch %q: no authenticated tree mounted (state %s)", req.Target, r.state)
	}
	resolved, err := r.registry.Resolve(req)
	if err != nil {
		r.log.Warn("dispatch rejected", zap.String("route", req.Target), zap.Error(err))
		return err
	}

	def := resolved.Definition
	switch {
	case def.Presentation.IsOverlay():
		return r.overlays.Present(def.Name, resolved.Params)

	case def.Name == route.MainTabs:
		// Navigating "to the tabs" collapses the overlay layer.
		r.overlays.DismissAll()
		return nil

	default:
		for _, tab := range Tabs {
			if tab.RootRoute() == def.Name {
				r.tabs.Select(tab)
				return nil
			}
		}
		if owner, ok := inlineOwner[def.Name]; ok {
			r.tabs.Select(owner)
		}
		return r.tabs.ActiveStack().Push(def.Name, resolved.Params)
	}
}

// Back is the single back-navigation entry point. Order: dismiss the
// frontmost overlay, else pop the active stack, else fall back to the Home
// tab. At Home's root entry it is a no-op. Reports whether anything changed.
func (r *Root) Back() bool {
	if r.state != StateAuthenticated {
		return false
	}
	if top, ok := r.overlays.Top(); ok {
		r.overlays.Dismiss(top.Route)
		return true
	}
	if r.tabs.ActiveStack().Pop() {
		return true
	}
	if r.tabs.Active() != TabHome {
		r.tabs.Select(TabHome)
		return true
	}
	return false
}
