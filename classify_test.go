package mobx

import (
	"errors"
	"strings"
	"testing"
)

// Shared test container kinds. Registration happens once, at package init,
// mirroring how real container implementations register at definition time.
var (
	obsMapClass = NewClass("ObservableMap", nil)
	isObsMap    = TagKind("ObservableMap", obsMapClass)
	obsArrClass = NewClass("ObservableArray", nil)
	isObsArr    = TagKind("ObservableArray", obsArrClass)
)

func init() {
	RegisterSequenceKind(isObsArr)
	RegisterKeyValueKind(isObsMap)
}

func newObsMap(pairs ...Value) Value {
	o := obsMapClass.New()
	mo := NewMap()
	for _, p := range pairs {
		k, v := splitPair(p)
		mo.Set(k, v)
	}
	o.Backing = mo
	return ObjVal(o)
}

func newObsArr(xs ...Value) Value {
	o := obsArrClass.New()
	o.Backing = arraySeq(xs)
	return ObjVal(o)
}

// --- Classify ----------------------------------------------------------------

func Test_Classify_Natives(t *testing.T) {
	cases := []struct {
		v    Value
		want Classification
	}{
		{Null, ClassNull},
		{Bool(true), ClassPrimitive},
		{Int(1), ClassPrimitive},
		{Num(1.5), ClassPrimitive},
		{Str("s"), ClassPrimitive},
		{Fun(new(int)), ClassPrimitive},
		{Arr([]Value{Int(1)}), ClassSequence},
		{MapOf(Pair("a", Int(1))), ClassKeyValue},
		{Rec(Pair("a", Int(1))), ClassRecord},
	}
	for _, c := range cases {
		if got := Classify(c.v); got != c.want {
			t.Fatalf("Classify(%s) = %s, want %s", c.v, got, c.want)
		}
	}
}

func Test_Classify_TaggedKinds(t *testing.T) {
	if got := Classify(newObsArr(Int(1))); got != ClassSequence {
		t.Fatalf("tagged sequence classified as %s", got)
	}
	if got := Classify(newObsMap(Pair("a", Int(1)))); got != ClassKeyValue {
		t.Fatalf("tagged key/value container classified as %s", got)
	}
}

func Test_Classify_UntaggedObject_IsOpaque(t *testing.T) {
	c := NewClass("Plain", nil)
	if got := Classify(ObjVal(c.New())); got != ClassOpaque {
		t.Fatalf("untagged object classified as %s, want opaque", got)
	}
}

// --- MapKeys -------------------------------------------------------------------

func Test_MapKeys_Record_DeclarationOrder(t *testing.T) {
	r := Rec(Pair("b", Int(2)), Pair("a", Int(1)))
	keys, err := MapKeys(r)
	if err != nil {
		t.Fatalf("MapKeys: %v", err)
	}
	if len(keys) != 2 || keys[0] != "b" || keys[1] != "a" {
		t.Fatalf("want [b a], got %v", keys)
	}
}

func Test_MapKeys_PairList_KeepsDuplicates(t *testing.T) {
	pairs := Arr([]Value{Pair("a", Int(1)), Pair("b", Int(2)), Pair("a", Int(3))})
	keys, err := MapKeys(pairs)
	if err != nil {
		t.Fatalf("MapKeys: %v", err)
	}
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "a" {
		t.Fatalf("want [a b a], got %v", keys)
	}
}

func Test_MapKeys_Container_InsertionOrder(t *testing.T) {
	m := MapOf(Pair("z", Int(1)), Pair("y", Int(2)))
	keys, err := MapKeys(m)
	if err != nil {
		t.Fatalf("MapKeys: %v", err)
	}
	if len(keys) != 2 || keys[0] != "z" || keys[1] != "y" {
		t.Fatalf("want [z y], got %v", keys)
	}
}

func Test_MapKeys_TaggedContainer(t *testing.T) {
	keys, err := MapKeys(newObsMap(Pair("k", Int(1))))
	if err != nil {
		t.Fatalf("MapKeys: %v", err)
	}
	if len(keys) != 1 || keys[0] != "k" {
		t.Fatalf("want [k], got %v", keys)
	}
}

func Test_MapKeys_SameData_ThreeShapes(t *testing.T) {
	shapes := []Value{
		Rec(Pair("a", Int(1)), Pair("b", Int(2))),
		Arr([]Value{Pair("a", Int(1)), Pair("b", Int(2))}),
		MapOf(Pair("a", Int(1)), Pair("b", Int(2))),
	}
	for _, s := range shapes {
		keys, err := MapKeys(s)
		if err != nil {
			t.Fatalf("MapKeys(%s): %v", s, err)
		}
		if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
			t.Fatalf("MapKeys(%s) = %v, want [a b]", s, keys)
		}
	}
}

func Test_MapKeys_UnsupportedShape(t *testing.T) {
	for _, v := range []Value{Int(3), Str("nope"), Null} {
		_, err := MapKeys(v)
		var shapeErr *UnsupportedShapeError
		if !errors.As(err, &shapeErr) {
			t.Fatalf("MapKeys(%s): want *UnsupportedShapeError, got %v", v, err)
		}
		if !strings.Contains(err.Error(), v.String()) {
			t.Fatalf("error should name the offending value %s: %q", v, err)
		}
	}
}

func Test_MapKeys_MalformedPairList(t *testing.T) {
	bad := Arr([]Value{Pair("a", Int(1)), Int(2)})
	_, err := MapKeys(bad)
	var shapeErr *UnsupportedShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("want *UnsupportedShapeError for malformed pair, got %v", err)
	}
}
