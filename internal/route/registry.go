package route

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// emptySchema is what a nil ParamSchema compiles to: an object with no
// accepted properties. Passing any param to such a route is a violation.
var emptySchema = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
}

// Registry maps route names to their definitions and validates every
// navigation request against the target's param schema. Schemas are compiled
// once and cached; Resolve is safe for concurrent use, though in practice
// all dispatch happens on the UI event loop.
type Registry struct {
	mu    sync.RWMutex
	defs  map[string]Definition
	cache sync.Map // route name -> *gojsonschema.Schema
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]Definition)}
}

// Register adds a route definition. Duplicate names are a wiring error and
// surface as ErrDuplicateRoute; the caller is expected to treat that as
// fatal at startup.
func (r *Registry) Register(def Definition) error {
	if def.Name == "" {
		return fmt.Errorf("route registration: empty name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.defs[def.Name]; exists {
		return fmt.Errorf("route %q: %w", def.Name, ErrDuplicateRoute)
	}
	r.defs[def.Name] = def
	return nil
}

// Lookup returns the definition for a route name.
func (r *Registry) Lookup(name string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[name]
	return def, ok
}

// Names returns all registered route names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve validates a navigation request and returns the target definition
// with its validated params. It fails with a *ViolationError (matching
// ErrContractViolation) when the target is unregistered or the params do not
// satisfy its schema. This is the only place parameter validation happens.
func (r *Registry) Resolve(req Request) (Resolved, error) {
	def, ok := r.Lookup(req.Target)
	if !ok {
		return Resolved{}, violation(req.Target, "route is not registered")
	}

	schema, err := r.compiled(def)
	if err != nil {
		return Resolved{}, fmt.Errorf("route %q: compile schema: %w", def.Name, err)
	}

	// Copy the caller's map: stack entries and overlays hold on to the
	// resolved params, and a caller reusing its map must not reach them.
	params := make(map[string]any, len(req.Params))
	for k, v := range req.Params {
		params[k] = v
	}
	result, err := schema.Validate(gojsonschema.NewGoLoader(params))
	if err != nil {
		return Resolved{}, fmt.Errorf("route %q: validate params: %w", def.Name, err)
	}
	if !result.Valid() {
		causes := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			causes = append(causes, desc.String())
		}
		return Resolved{}, violation(def.Name, causes...)
	}

	return Resolved{Definition: def, Params: params}, nil
}

func (r *Registry) compiled(def Definition) (*gojsonschema.Schema, error) {
	if cached, ok := r.cache.Load(def.Name); ok {
		return cached.(*gojsonschema.Schema), nil
	}

	raw := def.ParamSchema
	if raw == nil {
		raw = emptySchema
	}
	jsonBytes, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(jsonBytes))
	if err != nil {
		return nil, err
	}

	r.cache.Store(def.Name, schema)
	return schema, nil
}
