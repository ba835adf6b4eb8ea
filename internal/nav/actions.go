package nav

import "github.com/keepsake-app/keepsake/internal/route"

// HeaderAction is a declarative header-level action a feature domain
// exposes: an icon, a label key for i18n, a target route and a params
// constructor. The domain never receives a navigation callback; whoever
// renders the header turns the descriptor into a route.Request and sends it
// through the usual dispatch, so domains stay decoupled.
type HeaderAction struct {
	Icon         string
	LabelKey     string
	Target       string
	ParamBuilder func() map[string]any
}

// Request materializes the action into a typed navigation request.
func (a HeaderAction) Request() route.Request {
	var params map[string]any
	if a.ParamBuilder != nil {
		params = a.ParamBuilder()
	}
	return route.Request{Target: a.Target, Params: params}
}
