package analysis

import "fmt"

// RuleFactory produces a fresh instance of a lint rule with default
// configuration.
type RuleFactory func() TokenStreamRule

// Registry holds the set of known lint rules.  It is populated explicitly by
// the host application at startup; there is no process-wide implicit
// registration.
type Registry struct {
	factories map[string]RuleFactory
	names     []string
}

// NewRegistry creates a new, empty rule registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]RuleFactory)}
}

// Register adds a rule factory under the given name.  Registering the same
// name twice is a programming error.
func (r *Registry) Register(name string, factory RuleFactory) error {
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("rule %q registered twice", name)
	}

	r.factories[name] = factory
	r.names = append(r.names, name)
	return nil
}

// Names returns the registered rule names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// New creates a fresh instance of the named rule.  The second return value
// indicates whether the rule is known.
func (r *Registry) New(name string) (TokenStreamRule, bool) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, false
	}

	return factory(), true
}

// Descriptor returns the descriptor of the named rule.  The second return
// value indicates whether the rule is known.
func (r *Registry) Descriptor(name string) (RuleDescriptor, bool) {
	factory, ok := r.factories[name]
	if !ok {
		return RuleDescriptor{}, false
	}

	return factory().Descriptor(), true
}
