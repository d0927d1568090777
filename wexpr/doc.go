// Package wexpr implements Wexpr, a human-writable, machine-readable
// structured data format.
//
// Wexpr documents hold exactly one root Expression, a tagged tree node that
// is one of Invalid, Null, Value, BinaryData, Array or Map. The package
// provides two codecs over that tree:
//
//   - a textual codec (ParseText / Expression.ToText) for the human-readable
//     surface syntax, with comments, quoting, and a parse-time reference
//     table ([name] / *[name])
//   - a binary codec (ParseBinaryChunk / Expression.ToBinaryChunk) for a
//     chunked, length-prefixed, type-tagged byte stream that round-trips the
//     same tree
//
// # Textual syntax
//
//	nil                              ; Null
//	foo                              ; unquoted Value
//	"foo bar"                        ; quoted Value
//	#(a b c)                         ; Array
//	@(key1 value1 key2 "value two")  ; Map
//	<SGVsbG8=>                       ; BinaryData (base64)
//	[x] foo   *[x]                   ; reference declaration / expansion
//
// Both codecs are pure functions over their input: a parse or serialize call
// does no I/O and does not block. A tree is not safe for concurrent
// mutation; disjoint trees may be used from separate goroutines without
// coordination.
package wexpr
