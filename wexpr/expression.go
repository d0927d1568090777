package wexpr

// CreateInvalid returns a new Invalid expression.
func CreateInvalid() *Expression {
	return &Expression{typ: TypeInvalid}
}

// CreateNull returns a new Null expression.
func CreateNull() *Expression {
	return &Expression{typ: TypeNull}
}

// CreateValue returns a new Value expression holding s.
func CreateValue(s string) *Expression {
	return &Expression{typ: TypeValue, strVal: s}
}

// CreateValueFromBytes returns a new Value expression holding the given
// bytes, interpreted as UTF-8 text.
func CreateValueFromBytes(b []byte) *Expression {
	return &Expression{typ: TypeValue, strVal: string(b)}
}

// CreateBinaryData returns a new BinaryData expression holding a copy of b.
func CreateBinaryData(b []byte) *Expression {
	return &Expression{typ: TypeBinaryData, binVal: append([]byte(nil), b...)}
}

// CreateArray returns a new, empty Array expression.
func CreateArray() *Expression {
	return &Expression{typ: TypeArray}
}

// CreateMap returns a new, empty Map expression.
func CreateMap() *Expression {
	return &Expression{typ: TypeMap, mapIdx: make(map[string]int)}
}

// Type reports e's current variant.
func (e *Expression) Type() ExpressionType {
	if e == nil {
		return TypeInvalid
	}
	return e.typ
}

// ChangeType resets e's payload to the empty form of t. Any prior payload,
// including children, is released.
func (e *Expression) ChangeType(t ExpressionType) {
	if e == nil {
		return
	}
	e.strVal = ""
	e.binVal = nil
	e.arrVal = nil
	e.mapVal = nil
	e.mapIdx = nil
	e.typ = t
	if t == TypeMap {
		e.mapIdx = make(map[string]int)
	}
}

// Copy returns a deep copy of e; the result shares no storage with e.
func (e *Expression) Copy() *Expression {
	if e == nil {
		return nil
	}
	c := &Expression{typ: e.typ, strVal: e.strVal}
	if e.binVal != nil {
		c.binVal = append([]byte(nil), e.binVal...)
	}
	if e.arrVal != nil {
		c.arrVal = make([]*Expression, len(e.arrVal))
		for i, child := range e.arrVal {
			c.arrVal[i] = child.Copy()
		}
	}
	if e.typ == TypeMap {
		c.mapIdx = make(map[string]int, len(e.mapVal))
	}
	if e.mapVal != nil {
		c.mapVal = make([]mapEntry, len(e.mapVal))
		for i, entry := range e.mapVal {
			c.mapVal[i] = mapEntry{key: entry.key, value: entry.value.Copy()}
			c.mapIdx[entry.key] = i
		}
	}
	return c
}

// Destroy releases e's subtree. Go's garbage collector reclaims unreachable
// expressions on its own, so Destroy does nothing; it exists only so code
// ported from the original C API (wexpr_Expression_destroy) keeps compiling
// and keeps documenting ownership at the call site.
func (e *Expression) Destroy() {}

// Value returns e's payload and true if e is a Value expression, or ("",
// false) otherwise.
func (e *Expression) Value() (string, bool) {
	if e == nil || e.typ != TypeValue {
		return "", false
	}
	return e.strVal, true
}

// SetValue replaces e's payload with s, changing e's type to Value if it
// was not already.
func (e *Expression) SetValue(s string) {
	if e == nil {
		return
	}
	if e.typ != TypeValue {
		e.ChangeType(TypeValue)
	}
	e.strVal = s
}

// BinaryData returns e's payload and true if e is a BinaryData expression,
// or (nil, false) otherwise. The returned slice must not be mutated.
func (e *Expression) BinaryData() ([]byte, bool) {
	if e == nil || e.typ != TypeBinaryData {
		return nil, false
	}
	return e.binVal, true
}

// SetBinaryData copies b in and sets e's type to BinaryData.
func (e *Expression) SetBinaryData(b []byte) {
	if e == nil {
		return
	}
	if e.typ != TypeBinaryData {
		e.ChangeType(TypeBinaryData)
	}
	e.binVal = append([]byte(nil), b...)
}

// ArrayCount returns the number of elements in e, or 0 if e is not an Array.
func (e *Expression) ArrayCount() int {
	if e == nil || e.typ != TypeArray {
		return 0
	}
	return len(e.arrVal)
}

// ArrayAt returns the element at index i, or nil if e is not an Array or i
// is out of range.
func (e *Expression) ArrayAt(i int) *Expression {
	if e == nil || e.typ != TypeArray || i < 0 || i >= len(e.arrVal) {
		return nil
	}
	return e.arrVal[i]
}

// ArrayAppend transfers ownership of child to e, appending it to the end of
// e's elements. e's type becomes Array if it was not already.
func (e *Expression) ArrayAppend(child *Expression) {
	if e == nil || child == nil {
		return
	}
	if e.typ != TypeArray {
		e.ChangeType(TypeArray)
	}
	e.arrVal = append(e.arrVal, child)
}

// MapCount returns the number of key/value pairs in e, or 0 if e is not a
// Map.
func (e *Expression) MapCount() int {
	if e == nil || e.typ != TypeMap {
		return 0
	}
	return len(e.mapVal)
}

// MapKeyAt returns the key at position i in insertion order, and true, or
// ("", false) if e is not a Map or i is out of range.
func (e *Expression) MapKeyAt(i int) (string, bool) {
	if e == nil || e.typ != TypeMap || i < 0 || i >= len(e.mapVal) {
		return "", false
	}
	return e.mapVal[i].key, true
}

// MapValueAt returns the value at position i in insertion order, or nil if
// e is not a Map or i is out of range.
func (e *Expression) MapValueAt(i int) *Expression {
	if e == nil || e.typ != TypeMap || i < 0 || i >= len(e.mapVal) {
		return nil
	}
	return e.mapVal[i].value
}

// MapValueForKey returns the value bound to key, or nil if e is not a Map
// or key is not present. The returned expression is borrowed, not owned.
func (e *Expression) MapValueForKey(key string) *Expression {
	if e == nil || e.typ != TypeMap {
		return nil
	}
	if i, ok := e.mapIdx[key]; ok {
		return e.mapVal[i].value
	}
	return nil
}

// MapSetValueForKey transfers ownership of value to e, binding it to key. If
// key is already present its value is replaced in place, preserving its
// original position; otherwise the pair is appended. e's type becomes Map
// if it was not already.
func (e *Expression) MapSetValueForKey(key string, value *Expression) {
	if e == nil || value == nil {
		return
	}
	if e.typ != TypeMap {
		e.ChangeType(TypeMap)
	}
	if i, ok := e.mapIdx[key]; ok {
		e.mapVal[i].value = value
		return
	}
	e.mapIdx[key] = len(e.mapVal)
	e.mapVal = append(e.mapVal, mapEntry{key: key, value: value})
}
