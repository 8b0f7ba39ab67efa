// errors.go: typed errors surfaced at the package boundary.
//
// Two kinds exist (see also the contracts on MapKeys and Hide):
//
//   - *UnsupportedShapeError — MapKeys was asked to normalize a value that is
//     none of the three accepted map-like shapes. The message names the
//     offending value.
//   - *NotConfigurableError — a field could not be (re)written or (re)hidden
//     because it is locked. Never silently ignored; skipping the hide would
//     break the invariant that bookkeeping fields stay out of equality.
//
// Classify, OwnKeys and Equal are total and have no error path for
// well-formed inputs.

package mobx

import "fmt"

// UnsupportedShapeError reports a value outside the three map-like shapes
// (plain record, pair sequence, key/value container).
type UnsupportedShapeError struct {
	Value Value
}

func (e *UnsupportedShapeError) Error() string {
	return fmt.Sprintf("cannot get keys of a non map-like value: %s", e.Value)
}

// NotConfigurableError reports a write or hide attempt on a locked field.
type NotConfigurableError struct {
	Field  string
	Target Value
}

func (e *NotConfigurableError) Error() string {
	return fmt.Sprintf("field %q of %s is not writable or configurable", e.Field, e.Target)
}
