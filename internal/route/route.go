// Package route holds the static route table and the typed dispatch choke
// point. Every navigation request in the application passes through
// Registry.Resolve, which checks the target exists and that its params
// satisfy the route's JSON schema. Screens downstream of Resolve never
// re-validate their params.
package route

// Presentation controls how a resolved route is mounted.
// Inline routes live inside a feature stack; Modal and FullScreenModal
// routes are overlays above the tab layer. The two overlay modes differ
// only in rendering, not in semantics.
type Presentation int

const (
	Inline Presentation = iota
	Modal
	FullScreenModal
)

// IsOverlay reports whether the presentation mounts outside any stack.
func (p Presentation) IsOverlay() bool {
	return p == Modal || p == FullScreenModal
}

func (p Presentation) String() string {
	switch p {
	case Inline:
		return "inline"
	case Modal:
		return "modal"
	case FullScreenModal:
		return "fullScreenModal"
	default:
		return "unknown"
	}
}

// Definition is an immutable route entry: a unique name, the JSON schema its
// params must satisfy (nil means "no params accepted"), and how it is
// presented. Definitions are registered once at startup.
type Definition struct {
	Name         string
	ParamSchema  map[string]any
	Presentation Presentation
}

// Request is a typed navigation request: a target route plus the params the
// caller wants to hand to it. Construct one and pass it to Registry.Resolve;
// never mount a screen from an unresolved request.
type Request struct {
	Target string
	Params map[string]any
}

// Resolved is the output of successful dispatch: the route definition and
// the params that were validated against its schema.
type Resolved struct {
	Definition Definition
	Params     map[string]any
}
