package wexpr

// ParseBinaryChunk decodes a single main expression chunk (no file header)
// produced by Expression.ToBinaryChunk, returning the root Expression.
func ParseBinaryChunk(data []byte) (*Expression, error) {
	expr, _, err := decodeChunk(data)
	if err != nil {
		return nil, err
	}
	return expr, nil
}

// decodeChunk decodes one chunk starting at data[0], returning the decoded
// expression (an Invalid expression for a reserved chunk type above 0x04,
// which the Array and Map cases drop) and the number of bytes consumed.
func decodeChunk(data []byte) (*Expression, int, *BinaryError) {
	if len(data) < 5 {
		return nil, 0, newBinaryError(ErrBinaryTruncatedChunk, "chunk header truncated")
	}
	size := int(getUint32BE(data[0:4]))
	typ := chunkType(data[4])
	payloadStart := 5
	payloadEnd := payloadStart + size
	if payloadEnd > len(data) {
		return nil, 0, newBinaryError(ErrBinaryTruncatedChunk, "chunk payload runs past end of input")
	}
	payload := data[payloadStart:payloadEnd]

	switch typ {
	case chunkNull:
		return CreateNull(), payloadEnd, nil

	case chunkValue:
		return &Expression{typ: TypeValue, strVal: string(payload)}, payloadEnd, nil

	case chunkBinaryData:
		return &Expression{typ: TypeBinaryData, binVal: append([]byte(nil), payload...)}, payloadEnd, nil

	case chunkArray:
		arr := CreateArray()
		pos := 0
		for pos < len(payload) {
			child, n, err := decodeChunk(payload[pos:])
			if err != nil {
				return nil, 0, err
			}
			if child.typ != TypeInvalid {
				arr.ArrayAppend(child)
			}
			pos += n
		}
		return arr, payloadEnd, nil

	case chunkMap:
		m := CreateMap()
		pos := 0
		for pos < len(payload) {
			keyExpr, keyChunkType, n, err := decodeMapKeyChunk(payload[pos:])
			if err != nil {
				return nil, 0, err
			}
			if keyChunkType != chunkValue {
				return nil, 0, newBinaryError(ErrBinaryUnknownMapKeyType, "map key chunk type 0x%02x, want 0x01", keyChunkType)
			}
			pos += n
			valueExpr, n, err := decodeChunk(payload[pos:])
			if err != nil {
				return nil, 0, err
			}
			pos += n
			if valueExpr.typ == TypeInvalid {
				continue
			}
			keyText, _ := keyExpr.Value()
			m.MapSetValueForKey(keyText, valueExpr)
		}
		return m, payloadEnd, nil

	default:
		// Reserved/unknown chunk type encountered where an Expression was
		// expected: treat its payload as opaque and skip it, surfacing
		// nothing. Callers that require exactly one top-level expression
		// (ReadDocument) handle skipping at the document level instead; this
		// path exists for forward compatibility if a reserved type is ever
		// nested inside an Array or Map.
		return CreateInvalid(), payloadEnd, nil
	}
}

func decodeMapKeyChunk(data []byte) (*Expression, chunkType, int, *BinaryError) {
	if len(data) < 5 {
		return nil, 0, 0, newBinaryError(ErrBinaryTruncatedChunk, "map key chunk header truncated")
	}
	typ := chunkType(data[4])
	expr, n, err := decodeChunk(data)
	if err != nil {
		return nil, 0, 0, err
	}
	return expr, typ, n, nil
}

// ReadDocument implements the reader contract of spec.md section 4.4: it
// inspects the leading byte to decide between the binary and textual
// codecs, and for binary input validates the 20-byte file header, iterates
// chunks accepting at most one main expression chunk (type <= 0x04),
// silently skipping unknown/reserved chunk types, and verifying an optional
// checksum chunk (type 0x05) if one is present.
func ReadDocument(data []byte) (*Expression, error) {
	if len(data) == 0 || data[0] != headerMagic[0] {
		return ParseText(data, ParseFlagNone)
	}

	if err := parseFileHeader(data); err != nil {
		return nil, err
	}

	var expr *Expression
	var mainChunkBytes []byte
	var wantChecksum uint64
	haveChecksum := false

	pos := HeaderSize
	for pos < len(data) {
		if pos+5 > len(data) {
			return nil, newBinaryError(ErrBinaryTruncatedChunk, "chunk header truncated")
		}
		size := int(getUint32BE(data[pos : pos+4]))
		typ := chunkType(data[pos+4])
		payloadStart := pos + 5
		payloadEnd := payloadStart + size
		if payloadEnd > len(data) {
			return nil, newBinaryError(ErrBinaryTruncatedChunk, "chunk payload runs past end of input")
		}

		switch {
		case typ <= chunkBinaryData:
			if expr != nil {
				return nil, newBinaryError(ErrBinaryMultipleExpressions, "found multiple expression chunks")
			}
			chunkBytes := data[pos:payloadEnd]
			e, _, err := decodeChunk(chunkBytes)
			if err != nil {
				return nil, err
			}
			expr = e
			mainChunkBytes = chunkBytes

		case typ == chunkChecksum:
			if size != 8 {
				return nil, newBinaryError(ErrBinaryTruncatedChunk, "invalid checksum chunk size")
			}
			wantChecksum = getUint64BE(data[payloadStart:payloadEnd])
			haveChecksum = true

		default:
			// unknown/reserved: skip, consuming size+5 bytes as spec.md
			// section 4.4 specifies.
		}

		pos = payloadEnd
	}

	if expr == nil {
		return CreateInvalid(), nil
	}

	if haveChecksum {
		if err := verifyChecksum(mainChunkBytes, wantChecksum); err != nil {
			return nil, err
		}
	}

	return expr, nil
}
