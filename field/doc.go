// Package field implements the per-input interaction state machine that
// drives progressive-disclosure validation.
//
// An [Instance] tracks three flags per input: touched (monotonic, set by
// focus or by a confirmed autofill), focus (freely toggled), and autofilled
// (monotonic, set by the detection heuristic). Every value change is
// validated immediately and reported to the OnValidationChange callback so a
// parent aggregator always sees true validity, but [Instance.DisplayErrors]
// stays empty until the field has been touched — a user never sees an error
// before interacting.
//
// Bulk-filled content gets no focus or blur, so it is detected structurally:
// a large change into a never-focused field whose new content matches the
// field type's patterns marks the instance autofilled and arms a one-shot
// timer; when the timer fires the field counts as touched, the same as a
// manual blur. [Instance.Close] cancels a pending timer.
package field
