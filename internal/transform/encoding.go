package transform

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// encodeText renders cipher text as upper-case hex.
func encodeText(data []byte) []byte {
	return bytes.ToUpper([]byte(hex.EncodeToString(data)))
}

// decodeText accepts hex in either case, ignoring surrounding whitespace.
func decodeText(text []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(text)
	out := make([]byte, hex.DecodedLen(len(trimmed)))
	n, err := hex.Decode(out, trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: cipher text is not valid hex: %w", ErrCiphertextFormat, err)
	}
	return out[:n], nil
}
