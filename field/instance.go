package field

import (
	"sync"

	"github.com/Gobd/formvalidation"
)

// Options configures a field [Instance].
type Options struct {
	// Value is the field's initial value. It is validated immediately so a
	// parent aggregator knows true validity from the first observation.
	Value string

	// Config describes the field. When its rule list and transform are
	// empty, validation falls back to the registry configuration for
	// Config.Name; an unconfigured name is always valid.
	Config formvalidation.FieldConfig

	// Registry resolves named configurations. Nil means the process default.
	Registry *formvalidation.Registry

	// EnableValidation gates error display only. Validation itself always
	// runs so OnValidationChange reports true validity regardless.
	EnableValidation bool

	// OnValidationChange, when set, receives every fresh validation result,
	// never gated by touch state.
	OnValidationChange func(formvalidation.Result)

	// Clock drives the autofill confirmation timer. Nil means runtime
	// timers; tests substitute a fake.
	Clock Clock
}

// Instance owns the interaction state for one mounted input. Its handlers
// are safe for concurrent use; the host UI typically calls them from a
// serial event loop, but the confirmation timer fires on its own goroutine.
type Instance struct {
	mu       sync.Mutex
	reg      *formvalidation.Registry
	cfg      formvalidation.FieldConfig
	autofill formvalidation.AutofillConfig
	enabled  bool
	notify   func(formvalidation.Result)
	clock    Clock

	result     formvalidation.Result
	touched    bool
	autofilled bool
	focused    bool
	lastValue  string
	timer      Timer
	closed     bool
}

// State is a point-in-time snapshot of an instance, safe to hand to the
// rendering layer. DisplayErrors is the only part of it UI consumers should
// render; Result is for form-level aggregation.
type State struct {
	Result         formvalidation.Result
	HasBeenTouched bool
	WasAutofilled  bool
	HasFocus       bool
	DisplayErrors  []string
}

// New creates an instance and runs the first value observation: the initial
// value is validated and reported before New returns.
func New(opts Options) *Instance {
	reg := opts.Registry
	if reg == nil {
		reg = formvalidation.Default()
	}
	clock := opts.Clock
	if clock == nil {
		clock = SystemClock()
	}
	autofill := formvalidation.DefaultAutofillConfig(opts.Config.Type)
	if opts.Config.Autofill != nil {
		autofill = *opts.Config.Autofill
	}

	i := &Instance{
		reg:      reg,
		cfg:      opts.Config,
		autofill: autofill,
		enabled:  opts.EnableValidation,
		notify:   opts.OnValidationChange,
		clock:    clock,
	}
	i.lastValue = opts.Value
	i.result = i.evaluate(opts.Value)
	if i.notify != nil {
		i.notify(i.result)
	}
	return i
}

// evaluate resolves the configuration the same way the evaluator does: an
// instance config that carries rules (or a transform) wins; otherwise the
// registry entry for the field name, falling back to always-valid.
func (i *Instance) evaluate(value string) formvalidation.Result {
	if len(i.cfg.Rules) > 0 || i.cfg.Transform != nil || i.cfg.Required {
		return i.reg.Validate(i.cfg.Name, value, i.cfg)
	}
	return i.reg.Validate(i.cfg.Name, value)
}

// HandleFocus marks the field focused and touched. Manual focus always
// counts as interaction immediately; there is no delay.
func (i *Instance) HandleFocus() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.focused = true
	i.touched = true
}

// HandleBlur clears focus. Touch state is unchanged.
func (i *Instance) HandleBlur() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.focused = false
}

// HandleChange processes a value change. Autofill detection runs first, so
// a just-detected fill is visible to the validation reaction that follows;
// then, if the value differs from the last observed one, it is re-validated
// and the result reported to OnValidationChange unconditionally.
//
// Detection runs at most once per instance: once autofilled, never again.
func (i *Instance) HandleChange(newValue, oldValue string) {
	i.mu.Lock()
	if !i.autofilled && looksAutofilled(newValue, oldValue, i.touched, i.focused, i.autofill) {
		i.autofilled = true
		i.timer = i.clock.AfterFunc(i.autofill.TouchedDelay, i.confirmAutofill)
	}

	changed := newValue != i.lastValue
	var res formvalidation.Result
	if changed {
		i.lastValue = newValue
		res = i.evaluate(newValue)
		i.result = res
	}
	notify := i.notify
	i.mu.Unlock()

	if changed && notify != nil {
		notify(res)
	}
}

// confirmAutofill runs when the confirmation timer fires: the bulk fill is
// treated as an interaction, the same as a manual blur. A timer that fires
// after Close is a no-op.
func (i *Instance) confirmAutofill() {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.closed {
		return
	}
	i.touched = true
}

// Close cancels any pending confirmation timer. Call it when the input
// unmounts; it is idempotent.
func (i *Instance) Close() {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.closed {
		return
	}
	i.closed = true
	if i.timer != nil {
		i.timer.Stop()
	}
}

// Result returns the latest validation result, independent of touch state.
func (i *Instance) Result() formvalidation.Result {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.result
}

// DisplayErrors returns the errors the UI should render right now: empty
// until the field has been touched or validation display is disabled.
func (i *Instance) DisplayErrors() []string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.displayErrorsLocked()
}

func (i *Instance) displayErrorsLocked() []string {
	if !i.enabled || !i.touched {
		return []string{}
	}
	out := make([]string, len(i.result.Errors))
	copy(out, i.result.Errors)
	return out
}

// State returns a snapshot of the instance.
func (i *Instance) State() State {
	i.mu.Lock()
	defer i.mu.Unlock()
	return State{
		Result:         i.result,
		HasBeenTouched: i.touched,
		WasAutofilled:  i.autofilled,
		HasFocus:       i.focused,
		DisplayErrors:  i.displayErrorsLocked(),
	}
}
