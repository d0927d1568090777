package wexpr

import "encoding/base64"

// decodeBase64 decodes standard-alphabet Base64 with "=" padding allowed.
// Internal whitespace has already been stripped by the caller.
func decodeBase64(s string, pos Position) ([]byte, *ParseError) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, newParseError(ErrInvalidBase64, pos, "invalid base64 character: %v", err)
	}
	return data, nil
}

// encodeBase64 encodes data using the standard alphabet with "=" padding.
func encodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
