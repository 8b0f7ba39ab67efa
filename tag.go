// tag.go — capability tagging for host container kinds.
//
// A container implementation calls TagKind once at definition time. The
// marker is written to the shared Class (never per instance, never
// enumerable) and the returned predicate is what the implementation hands to
// RegisterSequenceKind/RegisterKeyValueKind. Because the marker name is
// derived from the kind name rather than from Class identity, two Classes
// tagged with the same kind name recognize each other's instances — the
// static-binary analogue of surviving multiple loaded copies of a library.

package mobx

// markerFor derives the deterministic marker name of a kind.
func markerFor(kindName string) string { return "isMobX" + kindName }

// TagKind attaches the capability marker of kindName to class and returns
// the predicate testing for it. The predicate is true for every instance of
// class or of a class descending from it, and for instances of any other
// class tagged with the same kindName; it is false for every other value.
// Tag classes during single-threaded initialization only.
func TagKind(kindName string, class *Class) Predicate {
	marker := markerFor(kindName)
	class.markers[marker] = true
	return func(v Value) bool {
		if v.Tag != VTObject {
			return false
		}
		return v.Data.(*Object).Class.hasMarker(marker)
	}
}
