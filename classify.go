// classify.go — type classification and map-shape normalization.
//
// Classification decides which comparison strategy applies to a value. The
// container cases are open-ended: host container kinds that are neither
// []Value nor *MapObject register a capability predicate here (usually the
// one returned by TagKind) and are from then on classified — and compared —
// like the native kind, without this file ever naming their concrete type.
//
// Registration is expected during single-threaded initialization, before any
// concurrent comparisons run; the registries are plain slices on purpose.

package mobx

////////////////////////////////////////////////////////////////////////////////
//                                CLASSIFICATION
////////////////////////////////////////////////////////////////////////////////

// Classification is the verdict of Classify. Exactly one applies per value.
type Classification int

const (
	ClassNull      Classification = iota // null
	ClassPrimitive                       // bool/int/num/str/fun
	ClassSequence                        // ordered, positionally compared
	ClassKeyValue                        // size/keys/get, order-insensitive keys
	ClassRecord                          // plain record, visible fields only
	ClassOpaque                          // object of no recognized container kind
)

func (c Classification) String() string {
	switch c {
	case ClassNull:
		return "null"
	case ClassPrimitive:
		return "primitive"
	case ClassSequence:
		return "sequence"
	case ClassKeyValue:
		return "key/value"
	case ClassRecord:
		return "record"
	default:
		return "opaque"
	}
}

// Predicate tests whether a value belongs to some registered container kind.
type Predicate func(Value) bool

var (
	sequenceKinds []Predicate
	keyValueKinds []Predicate
)

// RegisterSequenceKind makes values matched by pred classify as sequences.
// Call at init time only.
func RegisterSequenceKind(pred Predicate) { sequenceKinds = append(sequenceKinds, pred) }

// RegisterKeyValueKind makes values matched by pred classify as key/value
// containers. Call at init time only.
func RegisterKeyValueKind(pred Predicate) { keyValueKinds = append(keyValueKinds, pred) }

// Classify returns the unique classification of v. The container checks run
// in a fixed order — sequence kinds before key/value kinds before the plain
// record case — so a tagged container is never misread as an opaque object.
// Pure: no side effects, same verdict for an unmutated value.
func Classify(v Value) Classification {
	switch v.Tag {
	case VTNull:
		return ClassNull
	case VTBool, VTInt, VTNum, VTStr, VTFun:
		return ClassPrimitive
	case VTArray:
		return ClassSequence
	case VTMap:
		return ClassKeyValue
	case VTRecord:
		return ClassRecord
	}
	for _, pred := range sequenceKinds {
		if pred(v) {
			return ClassSequence
		}
	}
	for _, pred := range keyValueKinds {
		if pred(v) {
			return ClassKeyValue
		}
	}
	return ClassOpaque
}

////////////////////////////////////////////////////////////////////////////////
//                            MAP-SHAPE NORMALIZATION
////////////////////////////////////////////////////////////////////////////////

// MapKeys returns the canonical ordered key list of a map-like value. Three
// shapes are accepted, each enumerated in its own natural order:
//
//   - plain record          → visible field names, declaration order
//   - sequence of pairs     → first element of each pair, sequence order
//     (duplicates preserved, never deduplicated)
//   - key/value container   → the container's key enumeration
//
// Anything else fails with *UnsupportedShapeError naming the value. The
// result is stable for an unmutated value.
func MapKeys(v Value) ([]string, error) {
	switch Classify(v) {
	case ClassRecord:
		return v.Data.(*Record).Keys(), nil
	case ClassSequence:
		return pairListKeys(v)
	case ClassKeyValue:
		kv, ok := keyValueView(v)
		if !ok {
			return nil, &UnsupportedShapeError{Value: v}
		}
		return kv.Keys(), nil
	default:
		return nil, &UnsupportedShapeError{Value: v}
	}
}

func pairListKeys(v Value) ([]string, error) {
	seq, ok := sequenceView(v)
	if !ok {
		return nil, &UnsupportedShapeError{Value: v}
	}
	keys := make([]string, seq.Len())
	for i := range keys {
		k, _, ok := asPair(seq.At(i))
		if !ok {
			return nil, &UnsupportedShapeError{Value: seq.At(i)}
		}
		keys[i] = k
	}
	return keys, nil
}

////////////////////////////////////////////////////////////////////////////////
//                               CONTAINER VIEWS
////////////////////////////////////////////////////////////////////////////////

// arraySeq adapts []Value to the Sequence contract.
type arraySeq []Value

func (a arraySeq) Len() int       { return len(a) }
func (a arraySeq) At(i int) Value { return a[i] }

// sequenceView exposes any sequence-classified value through the Sequence
// contract. ok is false when the value is not a sequence, or when a tagged
// object fails to supply a conforming backing.
func sequenceView(v Value) (Sequence, bool) {
	switch v.Tag {
	case VTArray:
		return arraySeq(v.Data.([]Value)), true
	case VTObject:
		if Classify(v) != ClassSequence {
			return nil, false
		}
		seq, ok := v.Data.(*Object).Backing.(Sequence)
		return seq, ok
	default:
		return nil, false
	}
}

// keyValueView exposes any key/value-classified value through the KeyValue
// contract, same rules as sequenceView.
func keyValueView(v Value) (KeyValue, bool) {
	switch v.Tag {
	case VTMap:
		return v.Data.(*MapObject), true
	case VTObject:
		if Classify(v) != ClassKeyValue {
			return nil, false
		}
		kv, ok := v.Data.(*Object).Backing.(KeyValue)
		return kv, ok
	default:
		return nil, false
	}
}
