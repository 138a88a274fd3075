package formvalidation

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrRuleNotFound is returned by [Registry.Rule] for names with no
// registered rule. Hitting it means a misconfigured rule composition, not
// bad end-user input; compose configurations with [Registry.MustRule] so the
// mistake surfaces at startup rather than on the keystroke path.
var ErrRuleNotFound = errors.New("rule not found")

// Registry holds named rules and field configurations. It is read-mostly:
// written during startup or test setup, then read concurrently from the
// validation hot path. Construct fresh registries with [NewRegistry] for
// test isolation instead of mutating [Default].
type Registry struct {
	mu      sync.RWMutex
	rules   map[string]Rule
	configs map[string]FieldConfig
}

// NewRegistry returns a registry pre-seeded with the built-in rules and
// field configurations.
func NewRegistry() *Registry {
	r := &Registry{
		rules:   make(map[string]Rule),
		configs: make(map[string]FieldConfig),
	}
	for _, rule := range builtinRules() {
		r.rules[rule.Name] = rule
	}
	for _, cfg := range builtinConfigs() {
		r.configs[cfg.Name] = cfg
	}
	return r
}

// RegisterRule inserts or overwrites a rule by name.
func (r *Registry) RegisterRule(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules[rule.Name] = rule
}

// Rule returns the rule registered under name, or [ErrRuleNotFound].
func (r *Registry) Rule(name string) (Rule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.rules[name]
	if !ok {
		return Rule{}, fmt.Errorf("%w: %q", ErrRuleNotFound, name)
	}
	return rule, nil
}

// MustRule is like [Registry.Rule] but panics on unknown names. Use it when
// composing field configurations, where a missing rule is a programmer
// error.
func (r *Registry) MustRule(name string) Rule {
	rule, err := r.Rule(name)
	if err != nil {
		panic(err)
	}
	return rule
}

// RegisterFieldConfig inserts or overwrites a field configuration by name.
func (r *Registry) RegisterFieldConfig(cfg FieldConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configs[cfg.Name] = cfg
}

// FieldConfigFor returns the configuration registered for a field name.
// A false return is not an error: a field with no configuration is simply
// not validated.
func (r *Registry) FieldConfigFor(name string) (FieldConfig, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cfg, ok := r.configs[name]
	return cfg, ok
}

// FieldConfigs returns all registered field configurations sorted by name.
func (r *Registry) FieldConfigs() []FieldConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]FieldConfig, 0, len(r.configs))
	for _, cfg := range r.configs {
		out = append(out, cfg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the process-scoped registry, created on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = NewRegistry()
	})
	return defaultReg
}

// RegisterRule inserts or overwrites a rule in the default registry.
func RegisterRule(rule Rule) {
	Default().RegisterRule(rule)
}

// GetRule returns a rule from the default registry, or [ErrRuleNotFound].
func GetRule(name string) (Rule, error) {
	return Default().Rule(name)
}

// MustRule returns a rule from the default registry, panicking on unknown
// names.
func MustRule(name string) Rule {
	return Default().MustRule(name)
}

// RegisterFieldConfig inserts or overwrites a field configuration in the
// default registry.
func RegisterFieldConfig(cfg FieldConfig) {
	Default().RegisterFieldConfig(cfg)
}

// GetFieldConfig returns a field configuration from the default registry.
func GetFieldConfig(name string) (FieldConfig, bool) {
	return Default().FieldConfigFor(name)
}

// ValidateField validates a value against the default registry's
// configuration for name. An explicit config overrides the registry lookup.
func ValidateField(name string, value any, explicit ...FieldConfig) Result {
	return Default().Validate(name, value, explicit...)
}
