package formvalidation

// Validate evaluates a value against the configuration for a field name.
// Resolution order: an explicit config wins over the registry lookup, which
// wins over the implicit always-valid default for unconfigured names.
//
// The evaluation is pure: the optional transform runs first, then the rules
// in declaration order. A rule that returns false contributes its message; a
// rule whose predicate panics contributes a synthetic message and never
// aborts its siblings. The result is a fresh value on every call and
// identical inputs yield identical results.
func (r *Registry) Validate(name string, value any, explicit ...FieldConfig) Result {
	cfg, ok := r.resolveConfig(name, explicit)
	if !ok {
		return validResult()
	}
	if cfg.Transform != nil {
		value = cfg.Transform(value)
	}
	errs := []string{}
	for _, rule := range effectiveRules(cfg) {
		if failed, msg := rule.run(value); failed {
			errs = append(errs, msg)
		}
	}
	return Result{Valid: len(errs) == 0, Errors: errs}
}

func (r *Registry) resolveConfig(name string, explicit []FieldConfig) (FieldConfig, bool) {
	if len(explicit) > 0 {
		return explicit[0], true
	}
	return r.FieldConfigFor(name)
}

// effectiveRules prepends [Required] when the config's Required flag is set
// but its rule list carries no required rule, so caller-supplied configs
// behave the same as built-ins that spell the rule out with field-specific
// wording.
func effectiveRules(cfg FieldConfig) []Rule {
	if !cfg.Required {
		return cfg.Rules
	}
	for _, rule := range cfg.Rules {
		if rule.Name == Required.Name {
			return cfg.Rules
		}
	}
	rules := make([]Rule, 0, len(cfg.Rules)+1)
	rules = append(rules, Required)
	return append(rules, cfg.Rules...)
}
