package wexpr

// chunkType identifies the payload shape of a binary chunk, per spec.md
// section 4.4.
type chunkType uint8

const (
	chunkNull       chunkType = 0x00
	chunkValue      chunkType = 0x01
	chunkArray      chunkType = 0x02
	chunkMap        chunkType = 0x03
	chunkBinaryData chunkType = 0x04
	chunkChecksum   chunkType = 0x05 // documented extension, see checksum.go
)

// ToBinaryChunk emits the main expression chunk for e: a length-prefixed,
// type-tagged byte stream, self-contained, with no file header. Chunk sizes
// are computed by building each chunk's payload bottom-up before its header
// is written, the two-phase emit spec.md section 9 calls for.
func (e *Expression) ToBinaryChunk() []byte {
	return appendExpressionChunk(nil, e)
}

// appendExpressionChunk appends the chunk encoding of e to buf and returns
// the result.
func appendExpressionChunk(buf []byte, e *Expression) []byte {
	if e == nil {
		return appendChunkHeader(buf, chunkNull, 0)
	}

	switch e.typ {
	case TypeInvalid, TypeNull:
		// The original format has no distinct Invalid chunk type; an
		// invalid expression carries no payload and is indistinguishable
		// from Null on the wire, matching the original header's remark
		// that null/invalid both mean "nothing".
		return appendChunkHeader(buf, chunkNull, 0)

	case TypeValue:
		payload := []byte(e.strVal)
		buf = appendChunkHeader(buf, chunkValue, len(payload))
		return append(buf, payload...)

	case TypeBinaryData:
		buf = appendChunkHeader(buf, chunkBinaryData, len(e.binVal))
		return append(buf, e.binVal...)

	case TypeArray:
		payload := appendArrayPayload(nil, e)
		buf = appendChunkHeader(buf, chunkArray, len(payload))
		return append(buf, payload...)

	case TypeMap:
		payload := appendMapPayload(nil, e)
		buf = appendChunkHeader(buf, chunkMap, len(payload))
		return append(buf, payload...)

	default:
		return appendChunkHeader(buf, chunkNull, 0)
	}
}

func appendArrayPayload(payload []byte, e *Expression) []byte {
	for _, child := range e.arrVal {
		payload = appendExpressionChunk(payload, child)
	}
	return payload
}

func appendMapPayload(payload []byte, e *Expression) []byte {
	for _, entry := range e.mapVal {
		keyBytes := []byte(entry.key)
		payload = appendChunkHeader(payload, chunkValue, len(keyBytes))
		payload = append(payload, keyBytes...)
		payload = appendExpressionChunk(payload, entry.value)
	}
	return payload
}

// appendChunkHeader appends a chunk's 5-byte size+type header to buf. size
// is the exact payload byte length that follows.
func appendChunkHeader(buf []byte, typ chunkType, size int) []byte {
	var hdr [5]byte
	putUint32BE(hdr[0:4], uint32(size))
	hdr[4] = byte(typ)
	return append(buf, hdr[:]...)
}
