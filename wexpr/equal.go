package wexpr

import "bytes"

// Equal reports whether e and other are structurally equal: same type, same
// payload, same children in the same order (for Array) or the same
// key/value bindings in the same position (for Map). It is grounded on the
// same recursive-compare shape as glyph/emit_patch.go's valuesEqual, used by
// the round-trip tests TESTABLE PROPERTIES requires.
func (e *Expression) Equal(other *Expression) bool {
	if e == nil && other == nil {
		return true
	}
	if e == nil || other == nil {
		return false
	}
	if e.typ != other.typ {
		return false
	}
	switch e.typ {
	case TypeInvalid, TypeNull:
		return true
	case TypeValue:
		return e.strVal == other.strVal
	case TypeBinaryData:
		return bytes.Equal(e.binVal, other.binVal)
	case TypeArray:
		if len(e.arrVal) != len(other.arrVal) {
			return false
		}
		for i := range e.arrVal {
			if !e.arrVal[i].Equal(other.arrVal[i]) {
				return false
			}
		}
		return true
	case TypeMap:
		if len(e.mapVal) != len(other.mapVal) {
			return false
		}
		for i := range e.mapVal {
			if e.mapVal[i].key != other.mapVal[i].key {
				return false
			}
			if !e.mapVal[i].value.Equal(other.mapVal[i].value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
