package optionsbar

import (
	"reflect"
)

// resolvedItem is the (id, label) pair an item maps to for one
// configuration epoch.
type resolvedItem struct {
	id    string
	label string
}

// validateAccessors rejects configurations that can never resolve items:
// a non-string element type with a missing resolver. String element types
// fall back to the identity function for whichever resolver is absent.
func validateAccessors[T comparable](resolveID, resolveLabel func(T) string) error {
	var zero T
	if _, ok := any(zero).(string); ok {
		return nil
	}
	if resolveID == nil {
		return NewConfigurationError("ResolveID", "required for non-string item types")
	}
	if resolveLabel == nil {
		return NewConfigurationError("ResolveLabel", "required for non-string item types")
	}
	return nil
}

// resolveItem maps one item through the accessors. The caller has already
// validated that missing accessors are permitted for T.
func resolveItem[T comparable](item T, resolveID, resolveLabel func(T) string) resolvedItem {
	var ri resolvedItem

	if resolveID != nil {
		ri.id = resolveID(item)
	} else {
		ri.id, _ = any(item).(string)
	}

	if resolveLabel != nil {
		ri.label = resolveLabel(item)
	} else {
		ri.label, _ = any(item).(string)
	}

	return ri
}

// funcPointer reports the code pointer of a resolver so accessor changes
// can be detected across configurations. Two closures over the same
// function body compare equal; callers that swap captured state should
// also swap the item list to force invalidation.
func funcPointer[T comparable](fn func(T) string) uintptr {
	if fn == nil {
		return 0
	}
	return reflect.ValueOf(fn).Pointer()
}

// itemsEqual reports whether two item lists hold the same elements in the
// same order.
func itemsEqual[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
