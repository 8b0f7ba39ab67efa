// value.go
//
// Universal value carrier and the three container representations the
// comparison core understands natively:
//
//   - []Value        — ordered sequence (VTArray)
//   - *MapObject     — insertion-ordered key/value container (VTMap)
//   - *Record        — plain record with per-field visibility (VTRecord)
//   - *Object/*Class — host-object instances with a shared shape (VTObject)
//
// Host containers that are none of the above participate through the
// structural Sequence/KeyValue contracts plus a capability marker on their
// Class (see tag.go). This file owns the data model only; classification
// lives in classify.go and comparison in equal.go.

package mobx

import (
	"fmt"
	"strconv"
)

////////////////////////////////////////////////////////////////////////////////
//                              PUBLIC TYPES & CTORS
////////////////////////////////////////////////////////////////////////////////

// ValueTag enumerates all runtime kinds a Value may hold.
// The tag determines which Go type Value.Data carries.
type ValueTag int

const (
	VTNull   ValueTag = iota // null (no payload)
	VTBool                   // bool
	VTInt                    // int64
	VTNum                    // float64
	VTStr                    // string
	VTFun                    // opaque function handle; compared by identity
	VTArray                  // []Value (ordered sequence)
	VTMap                    // *MapObject (insertion-ordered key/value container)
	VTRecord                 // *Record (plain record; ordered, visibility-aware fields)
	VTObject                 // *Object (instance of a *Class; opaque unless tagged)
)

// Value is the universal carrier passed through classification and equality.
//
// Invariants:
//   - When Tag==VTNull, Data is nil.
//   - When Tag==VTRecord, Data is *Record preserving declaration order.
//   - When Tag==VTMap, Data is *MapObject preserving insertion order.
//
// The core only reads Values; it never takes ownership or mutates payloads.
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// String renders a short, human-friendly representation used in error
// messages that must name an offending value.
func (v Value) String() string {
	switch v.Tag {
	case VTNull:
		return "null"
	case VTBool:
		return fmt.Sprintf("%v", v.Data.(bool))
	case VTInt:
		return strconv.FormatInt(v.Data.(int64), 10)
	case VTNum:
		return strconv.FormatFloat(v.Data.(float64), 'g', -1, 64)
	case VTStr:
		return fmt.Sprintf("%q", v.Data.(string))
	case VTFun:
		return "<fun>"
	case VTArray:
		return fmt.Sprintf("<array len=%d>", len(v.Data.([]Value)))
	case VTMap:
		return fmt.Sprintf("<map size=%d>", v.Data.(*MapObject).Len())
	case VTRecord:
		return fmt.Sprintf("<record keys=%d>", v.Data.(*Record).Len())
	case VTObject:
		o := v.Data.(*Object)
		return fmt.Sprintf("<object %s>", o.Class.Name)
	default:
		return "<unknown>"
	}
}

// Null is the singleton null Value (no payload).
var Null = Value{Tag: VTNull}

// Primitive constructors for convenience.
func Bool(b bool) Value    { return Value{Tag: VTBool, Data: b} }
func Int(n int64) Value    { return Value{Tag: VTInt, Data: n} }
func Num(f float64) Value  { return Value{Tag: VTNum, Data: f} }
func Str(s string) Value   { return Value{Tag: VTStr, Data: s} }
func Arr(xs []Value) Value { return Value{Tag: VTArray, Data: xs} }

// Fun wraps an opaque function handle. Functions have no structural content;
// two VTFun values are equal only when they carry the same handle.
func Fun(f interface{}) Value { return Value{Tag: VTFun, Data: f} }

// Pair builds a 2-element key/value pair as an ordered sequence. Pair lists
// are one of the three accepted map-like shapes (see MapKeys).
func Pair(key string, v Value) Value { return Arr([]Value{Str(key), v}) }

////////////////////////////////////////////////////////////////////////////////
//                         STRUCTURAL CONTAINER CONTRACTS
////////////////////////////////////////////////////////////////////////////////

// Sequence is the structural contract an ordered-sequence container exposes
// to the comparison core: a length and positional access.
type Sequence interface {
	Len() int
	At(i int) Value
}

// KeyValue is the structural contract a key/value container exposes: a size,
// a key enumeration in the container's own iteration order, and get-by-key.
// The comparison core and MapKeys invoke it structurally, never through the
// container's nominal type.
type KeyValue interface {
	Len() int
	Keys() []string
	Get(key string) (Value, bool)
}

////////////////////////////////////////////////////////////////////////////////
//                                  MAP OBJECT
////////////////////////////////////////////////////////////////////////////////

// MapObject is the native key/value container. Insertion order is the
// iteration order: setting a new key appends it to the order; overwriting an
// existing key keeps its position. MapObject implements KeyValue.
type MapObject struct {
	entries map[string]Value
	order   []string
}

// NewMap returns an empty MapObject.
func NewMap() *MapObject {
	return &MapObject{entries: map[string]Value{}}
}

// MapOf builds a VTMap from Pair values, in argument order.
// It panics if an element is not a Pair-shaped sequence.
func MapOf(pairs ...Value) Value {
	mo := NewMap()
	for _, p := range pairs {
		k, v := splitPair(p)
		mo.Set(k, v)
	}
	return Value{Tag: VTMap, Data: mo}
}

// MapVal wraps an existing MapObject into a Value.
func MapVal(mo *MapObject) Value { return Value{Tag: VTMap, Data: mo} }

// Set inserts or overwrites key. New keys go to the end of the order.
func (m *MapObject) Set(key string, v Value) {
	if _, ok := m.entries[key]; !ok {
		m.order = append(m.order, key)
	}
	m.entries[key] = v
}

// Delete removes key and its order slot. Missing keys are a no-op.
func (m *MapObject) Delete(key string) {
	if _, ok := m.entries[key]; !ok {
		return
	}
	delete(m.entries, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

func (m *MapObject) Len() int { return len(m.entries) }

// Keys returns the insertion-ordered key list (a copy; callers may keep it).
func (m *MapObject) Keys() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

func (m *MapObject) Get(key string) (Value, bool) {
	v, ok := m.entries[key]
	return v, ok
}

////////////////////////////////////////////////////////////////////////////////
//                                    RECORD
////////////////////////////////////////////////////////////////////////////////

// Record is a plain record: an ordered set of named fields where each field
// is either visible (participates in key enumeration and equality) or hidden
// (bookkeeping attached via Hide; addressable by name but invisible to
// OwnKeys, MapKeys, and Equal). A locked field can no longer be rewritten or
// re-hidden; attempts surface *NotConfigurableError.
type Record struct {
	fields map[string]*recField
	order  []string // visible keys, declaration order
}

type recField struct {
	value  Value
	hidden bool
	locked bool
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{fields: map[string]*recField{}}
}

// Rec builds a VTRecord from Pair values, in argument order.
// It panics if an element is not a Pair-shaped sequence.
func Rec(pairs ...Value) Value {
	r := NewRecord()
	for _, p := range pairs {
		k, v := splitPair(p)
		// a fresh record has no locked fields; Set cannot fail here
		_ = r.Set(k, v)
	}
	return Value{Tag: VTRecord, Data: r}
}

// RecVal wraps an existing Record into a Value.
func RecVal(r *Record) Value { return Value{Tag: VTRecord, Data: r} }

// Set writes a visible field. New fields append to the declaration order;
// existing fields keep position and visibility. Writing a locked field fails.
func (r *Record) Set(key string, v Value) error {
	f, ok := r.fields[key]
	if !ok {
		r.fields[key] = &recField{value: v}
		r.order = append(r.order, key)
		return nil
	}
	if f.locked {
		return &NotConfigurableError{Field: key, Target: RecVal(r)}
	}
	f.value = v
	return nil
}

// Get retrieves a field by name. Hidden fields remain directly addressable.
func (r *Record) Get(key string) (Value, bool) {
	f, ok := r.fields[key]
	if !ok {
		return Null, false
	}
	return f.value, true
}

// Has reports whether key is a visible field (hidden fields do not count).
func (r *Record) Has(key string) bool {
	f, ok := r.fields[key]
	return ok && !f.hidden
}

// Keys returns the visible field names in declaration order.
func (r *Record) Keys() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len counts visible fields only.
func (r *Record) Len() int { return len(r.order) }

// hide marks a field hidden, creating it if absent. See Hide in props.go for
// the public contract and the NotConfigurable rules.
func (r *Record) hide(key string, v Value, writable bool) error {
	f, ok := r.fields[key]
	if ok {
		if f.locked {
			return &NotConfigurableError{Field: key, Target: RecVal(r)}
		}
		if !f.hidden {
			// remove from the visible order; the field keeps its value slot
			for i, k := range r.order {
				if k == key {
					r.order = append(r.order[:i], r.order[i+1:]...)
					break
				}
			}
		}
	} else {
		f = &recField{}
		r.fields[key] = f
	}
	f.value = v
	f.hidden = true
	f.locked = !writable
	return nil
}

////////////////////////////////////////////////////////////////////////////////
//                                 CLASS & OBJECT
////////////////////////////////////////////////////////////////////////////////

// Class is the shared shape behind host-object instances (the static-world
// stand-in for a prototype/constructor). Capability markers attached by
// TagKind live here, so every instance reports them at zero per-instance
// cost. Markers are never enumerable and are matched by name, not by Class
// identity, walking the Parent chain.
//
// Classes are built and tagged during single-threaded initialization, before
// any concurrent comparisons run.
type Class struct {
	Name    string
	Parent  *Class
	markers map[string]bool
}

// NewClass declares a shape with an optional parent (nil for roots).
func NewClass(name string, parent *Class) *Class {
	return &Class{Name: name, Parent: parent, markers: map[string]bool{}}
}

// hasMarker walks the parent chain, so subclasses inherit capabilities.
func (c *Class) hasMarker(name string) bool {
	for k := c; k != nil; k = k.Parent {
		if k.markers[name] {
			return true
		}
	}
	return false
}

// Object is an instance of a Class. Fields holds its enumerable state (used
// by record-style equality when the object is opaque). Backing, when
// non-nil, is the container payload consulted through the Sequence/KeyValue
// contracts once a capability predicate classifies the object as a container.
type Object struct {
	Class   *Class
	Fields  *Record
	Backing interface{}
}

// New instantiates the class with empty fields and no backing.
func (c *Class) New() *Object {
	return &Object{Class: c, Fields: NewRecord()}
}

// ObjVal wraps an Object into a Value.
func ObjVal(o *Object) Value { return Value{Tag: VTObject, Data: o} }

////////////////////////////////////////////////////////////////////////////////
//                                 SMALL HELPERS
////////////////////////////////////////////////////////////////////////////////

func isNumber(v Value) bool { return v.Tag == VTInt || v.Tag == VTNum }

func toFloat(v Value) float64 {
	if v.Tag == VTInt {
		return float64(v.Data.(int64))
	}
	return v.Data.(float64)
}

// splitPair unpacks a Pair-shaped sequence; used by the Rec/MapOf ctors.
func splitPair(p Value) (string, Value) {
	k, v, ok := asPair(p)
	if !ok {
		panic(fmt.Sprintf("mobx: not a key/value pair: %s", p))
	}
	return k, v
}

// asPair recognizes a 2-element sequence whose first element is a string.
func asPair(p Value) (string, Value, bool) {
	if p.Tag != VTArray {
		return "", Null, false
	}
	xs := p.Data.([]Value)
	if len(xs) != 2 || xs[0].Tag != VTStr {
		return "", Null, false
	}
	return xs[0].Data.(string), xs[1], true
}
