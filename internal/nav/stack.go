package nav

import (
	"github.com/keepsake-app/keepsake/internal/route"
)

// Entry is one screen in a feature stack. Ordinal increases monotonically
// per stack; the entry with the highest ordinal is the visible one.
type Entry struct {
	Route   string
	Params  map[string]any
	Ordinal uint64
}

// Stack is a feature stack router: the ordered push/pop history of one
// feature domain. It always holds at least its root entry. Every push is
// validated through the route registry before the stack is touched.
type Stack struct {
	registry *route.Registry
	root     string
	entries  []Entry
	next     uint64
	actions  []HeaderAction
}

// NewStack creates a stack seeded with its root entry. The root route must
// be registered and inline.
func NewStack(registry *route.Registry, rootRoute string, actions ...HeaderAction) (*Stack, error) {
	s := &Stack{registry: registry, root: rootRoute, actions: actions}
	if err := s.Push(rootRoute, nil); err != nil {
		return nil, err
	}
	return s, nil
}

// Push validates the request and appends a new entry with a fresh ordinal.
// On any violation the stack is left exactly as it was. Overlay routes are
// rejected here: they never belong to a stack's ordered sequence.
func (s *Stack) Push(routeName string, params map[string]any) error {
	resolved, err := s.registry.Resolve(route.Request{Target: routeName, Params: params})
	if err != nil {
		return err
	}
	if resolved.Definition.Presentation.IsOverlay() {
		return &route.ViolationError{
			Route:  routeName,
			Causes: []string{"overlay routes cannot be pushed onto a feature stack"},
		}
	}
	s.next++
	s.entries = append(s.entries, Entry{
		Route:   resolved.Definition.Name,
		Params:  resolved.Params,
		Ordinal: s.next,
	})
	return nil
}

// Pop removes the visible entry. At the root entry it is a deterministic
// no-op that reports false; callers decide whether false escalates to
// tab-level back navigation.
func (s *Stack) Pop() bool {
	if len(s.entries) <= 1 {
		return false
	}
	s.entries = s.entries[:len(s.entries)-1]
	return true
}

// Reset truncates to the root entry. Used on logout.
func (s *Stack) Reset() {
	s.entries = s.entries[:1]
}

// Top returns the visible entry.
func (s *Stack) Top() Entry {
	return s.entries[len(s.entries)-1]
}

// Depth returns the number of entries, root included.
func (s *Stack) Depth() int {
	return len(s.entries)
}

// Entries returns a copy of the sequence, bottom first.
func (s *Stack) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Root returns the root route name.
func (s *Stack) Root() string {
	return s.root
}

// Actions returns the domain's declared header actions.
func (s *Stack) Actions() []HeaderAction {
	return s.actions
}
