// equal.go — recursive structural equality over classified values.

package mobx

import (
	"fmt"
	"math"
)

// MaxEqualDepth bounds the nesting Equal will recurse into. Comparing values
// nested deeper violates Equal's precondition (callers needing to bound cost
// must pre-check size/depth) and panics with a descriptive message.
const MaxEqualDepth = 1000

// Equal reports whether a and b are structurally identical.
//
// Rules, in order:
//  1. identical primitives and identical container references are equal
//     (numbers compare numerically across int/num, null equals null);
//  2. two NaNs are equal;
//  3. a primitive that was not caught by (1) equals nothing;
//  4. disagreement on "is a sequence" or "is a key/value container" is a
//     hard inequality, never coerced;
//  5. sequences compare positionally after a length check;
//  6. key/value containers compare per key after a size check — a key of a
//     missing from b fails outright, even when a's value there is null;
//  7. records and opaque objects compare their visible fields: same count,
//     every key of a present in b, values recursively equal;
//  8. any remaining combination is unequal.
//
// Equal is pure, reflexive and symmetric for acyclic finite inputs. Cycles
// are unsupported; nesting beyond MaxEqualDepth panics.
func Equal(a, b Value) bool { return equalAt(a, b, 0) }

func equalAt(a, b Value, depth int) bool {
	if depth > MaxEqualDepth {
		panic(fmt.Sprintf("mobx: Equal exceeded max nesting depth %d (cyclic value?)", MaxEqualDepth))
	}

	if identical(a, b) {
		return true
	}
	if bothNaN(a, b) {
		return true
	}

	ca := Classify(a)
	if ca == ClassPrimitive || ca == ClassNull {
		// identity already failed above
		return false
	}
	cb := Classify(b)

	aSeq, bSeq := ca == ClassSequence, cb == ClassSequence
	if aSeq != bSeq {
		return false
	}
	if aSeq {
		return equalSequences(a, b, depth)
	}

	aKV, bKV := ca == ClassKeyValue, cb == ClassKeyValue
	if aKV != bKV {
		return false
	}
	if aKV {
		return equalKeyValues(a, b, depth)
	}

	if cb == ClassPrimitive || cb == ClassNull {
		return false
	}
	// both sides are records or opaque objects
	return equalRecords(a, b, depth)
}

func equalSequences(a, b Value, depth int) bool {
	as, ok := sequenceView(a)
	if !ok {
		return false
	}
	bs, ok := sequenceView(b)
	if !ok {
		return false
	}
	if as.Len() != bs.Len() {
		return false
	}
	for i := 0; i < as.Len(); i++ {
		if !equalAt(as.At(i), bs.At(i), depth+1) {
			return false
		}
	}
	return true
}

func equalKeyValues(a, b Value, depth int) bool {
	am, ok := keyValueView(a)
	if !ok {
		return false
	}
	bm, ok := keyValueView(b)
	if !ok {
		return false
	}
	if am.Len() != bm.Len() {
		return false
	}
	for _, k := range am.Keys() {
		av, _ := am.Get(k)
		bv, ok := bm.Get(k)
		if !ok || !equalAt(av, bv, depth+1) {
			return false
		}
	}
	return true
}

func equalRecords(a, b Value, depth int) bool {
	ra, ok := recordView(a)
	if !ok {
		return false
	}
	rb, ok := recordView(b)
	if !ok {
		return false
	}
	if ra.Len() != rb.Len() {
		return false
	}
	for _, k := range ra.Keys() {
		if !rb.Has(k) {
			return false
		}
		av, _ := ra.Get(k)
		bv, _ := rb.Get(k)
		if !equalAt(av, bv, depth+1) {
			return false
		}
	}
	return true
}

// recordView exposes the visible-field set of a record or an opaque object.
func recordView(v Value) (*Record, bool) {
	switch v.Tag {
	case VTRecord:
		return v.Data.(*Record), true
	case VTObject:
		return v.Data.(*Object).Fields, true
	default:
		return nil, false
	}
}

// identical mirrors reference/primitive identity: numbers numerically,
// strings and bools by payload, containers by pointer. Sequences are slices
// and have no cheap identity; they always take the structural path.
func identical(a, b Value) bool {
	if isNumber(a) && isNumber(b) {
		return toFloat(a) == toFloat(b)
	}
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case VTNull:
		return true
	case VTBool:
		return a.Data.(bool) == b.Data.(bool)
	case VTStr:
		return a.Data.(string) == b.Data.(string)
	case VTFun:
		return a.Data == b.Data
	case VTMap:
		return a.Data.(*MapObject) == b.Data.(*MapObject)
	case VTRecord:
		return a.Data.(*Record) == b.Data.(*Record)
	case VTObject:
		return a.Data.(*Object) == b.Data.(*Object)
	default:
		return false
	}
}

func bothNaN(a, b Value) bool {
	return a.Tag == VTNum && b.Tag == VTNum &&
		math.IsNaN(a.Data.(float64)) && math.IsNaN(b.Data.(float64))
}
