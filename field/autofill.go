package field

import (
	"strings"

	"github.com/Gobd/formvalidation"
)

// looksAutofilled decides whether a value change was a bulk external fill
// rather than manual typing. All conditions must hold: the old value was
// blank, the new one is not, the length grew by more than the threshold,
// the field has never been focused and is not focused now, and the new
// content matches every configured pattern for the field's type.
func looksAutofilled(newValue, oldValue string, touched, focused bool, cfg formvalidation.AutofillConfig) bool {
	if strings.TrimSpace(oldValue) != "" {
		return false
	}
	if newValue == "" {
		return false
	}
	if len(newValue)-len(oldValue) <= cfg.MinChangeThreshold {
		return false
	}
	if touched || focused {
		return false
	}
	for _, re := range cfg.ContentPatterns {
		if !re.MatchString(newValue) {
			return false
		}
	}
	return true
}
