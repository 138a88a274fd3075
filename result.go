package formvalidation

// Result is the outcome of evaluating a field's rules against one value.
// It is a fresh value object on every evaluation and is never mutated in
// place; Errors holds the failing rules' messages in declaration order.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// validResult is the outcome for fields with no resolvable configuration.
func validResult() Result {
	return Result{Valid: true, Errors: []string{}}
}
