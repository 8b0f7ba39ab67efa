// props.go — field enumeration and the hidden-field annotator.
//
// Other subsystems attach bookkeeping state (administration handles,
// interceptor lists, ...) to records they hand out. Hide keeps that state
// addressable by name while guaranteeing it never shows up in OwnKeys, in
// MapKeys, or in structural equality.

package mobx

////////////////////////////////////////////////////////////////////////////////
//                              ENUMERABLE KEYS
////////////////////////////////////////////////////////////////////////////////

// OwnKeys returns the value's own visible field names in declaration order.
// Hidden fields are excluded. For values that are not record-like (no named
// own fields) it returns nil; it never fails.
func OwnKeys(v Value) []string {
	switch v.Tag {
	case VTRecord:
		return v.Data.(*Record).Keys()
	case VTObject:
		return v.Data.(*Object).Fields.Keys()
	default:
		return nil
	}
}

////////////////////////////////////////////////////////////////////////////////
//                            HIDDEN-FIELD ANNOTATOR
////////////////////////////////////////////////////////////////////////////////

// Hide defines name on v as a hidden field holding val. Hidden fields stay
// directly addressable through Record.Get but are excluded from OwnKeys and
// from structural equality. With writable=false the field is additionally
// locked: later Set, Assign or Hide calls on it fail with
// *NotConfigurableError. Hiding an already-locked field fails the same way —
// silently skipping would leak the field back into equality.
//
// v must be a record or an object; anything else yields
// *UnsupportedShapeError.
func Hide(v Value, name string, val Value, writable bool) error {
	switch v.Tag {
	case VTRecord:
		return v.Data.(*Record).hide(name, val, writable)
	case VTObject:
		return v.Data.(*Object).Fields.hide(name, val, writable)
	default:
		return &UnsupportedShapeError{Value: v}
	}
}

////////////////////////////////////////////////////////////////////////////////
//                              SHALLOW RECORD MERGE
////////////////////////////////////////////////////////////////////////////////

// Assign copies src's visible fields into dst in key order, overwriting
// existing visible fields. Hidden fields on either side are untouched. A
// locked destination field aborts with *NotConfigurableError; both arguments
// must be records.
func Assign(dst, src Value) error {
	if dst.Tag != VTRecord {
		return &UnsupportedShapeError{Value: dst}
	}
	if src.Tag != VTRecord {
		return &UnsupportedShapeError{Value: src}
	}
	d, s := dst.Data.(*Record), src.Data.(*Record)
	for _, k := range s.Keys() {
		v, _ := s.Get(k)
		if err := d.Set(k, v); err != nil {
			return err
		}
	}
	return nil
}
