package nav

import (
	"github.com/keepsake-app/keepsake/internal/route"
)

// Overlay is a mounted Modal or FullScreenModal route. Overlays exist
// outside every feature stack and are dismissed independently of tab and
// stack state.
type Overlay struct {
	Route        string
	Params       map[string]any
	Presentation route.Presentation
}

// Presenter manages the set of currently mounted overlays. Overlays do not
// stack semantically; re-presenting a mounted route replaces its params and
// brings it to the front.
type Presenter struct {
	registry *route.Registry
	mounted  []Overlay
}

// NewPresenter creates an empty presenter over the registry.
func NewPresenter(registry *route.Registry) *Presenter {
	return &Presenter{registry: registry}
}

// Present validates the request and mounts the overlay. Presenting an
// inline route is a contract violation: inline routes belong to stacks.
func (p *Presenter) Present(routeName string, params map[string]any) error {
	resolved, err := p.registry.Resolve(route.Request{Target: routeName, Params: params})
	if err != nil {
		return err
	}
	if !resolved.Definition.Presentation.IsOverlay() {
		return &route.ViolationError{
			Route:  routeName,
			Causes: []string{"inline routes cannot be presented as overlays"},
		}
	}
	p.dismiss(routeName)
	p.mounted = append(p.mounted, Overlay{
		Route:        resolved.Definition.Name,
		Params:       resolved.Params,
		Presentation: resolved.Definition.Presentation,
	})
	return nil
}

// Dismiss unmounts an overlay by route name. Reports whether it was mounted.
func (p *Presenter) Dismiss(routeName string) bool {
	return p.dismiss(routeName)
}

func (p *Presenter) dismiss(routeName string) bool {
	for i, ov := range p.mounted {
		if ov.Route == routeName {
			p.mounted = append(p.mounted[:i], p.mounted[i+1:]...)
			return true
		}
	}
	return false
}

// DismissAll unmounts every overlay. Called on logout reset.
func (p *Presenter) DismissAll() {
	p.mounted = nil
}

// Top returns the frontmost overlay, if any.
func (p *Presenter) Top() (Overlay, bool) {
	if len(p.mounted) == 0 {
		return Overlay{}, false
	}
	return p.mounted[len(p.mounted)-1], true
}

// IsMounted reports whether an overlay route is currently mounted.
func (p *Presenter) IsMounted(routeName string) bool {
	for _, ov := range p.mounted {
		if ov.Route == routeName {
			return true
		}
	}
	return false
}

// Mounted returns a copy of the mounted overlays, back to front.
func (p *Presenter) Mounted() []Overlay {
	out := make([]Overlay, len(p.mounted))
	copy(out, p.mounted)
	return out
}
