package wexpr

import "github.com/cespare/xxhash/v2"

// CreateBinaryRepresentationChecksummed emits the main expression chunk for
// e (as Expression.ToBinaryChunk does) followed by an aux checksum chunk
// (type 0x05) holding the xxhash64 digest of the main chunk's bytes,
// big-endian. A reader that does not know about type 0x05 still steps over
// it cleanly under the "unknown chunk types are skipped" rule of spec.md
// section 4.4; ReadDocument recognizes it and verifies the digest,
// returning a *BinaryError with code ErrBinaryChecksumMismatch if it does
// not match. This is an additive integrity feature beyond the original
// format (see SPEC_FULL.md's DOMAIN STACK); it does not change the
// documented main-chunk byte layout.
func (e *Expression) CreateBinaryRepresentationChecksummed() []byte {
	main := e.ToBinaryChunk()
	sum := xxhash.Sum64(main)

	var sumBytes [8]byte
	putUint64BE(sumBytes[:], sum)

	buf := append([]byte(nil), main...)
	buf = appendChunkHeader(buf, chunkChecksum, len(sumBytes))
	return append(buf, sumBytes[:]...)
}

func verifyChecksum(mainChunkBytes []byte, want uint64) *BinaryError {
	got := xxhash.Sum64(mainChunkBytes)
	if got != want {
		return newBinaryError(ErrBinaryChecksumMismatch, "expected %#016x, got %#016x", want, got)
	}
	return nil
}
