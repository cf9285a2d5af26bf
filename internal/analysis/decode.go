package analysis

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"
)

// DecodeMedia turns a caller-supplied media payload into raw bytes. Callers
// may hand over raw binary, plain base64, or a data URI
// ("data:audio/wav;base64,..."). A payload that looks like base64 but fails
// to decode yields an InvalidEncodingError; raw binary passes through as-is.
func DecodeMedia(input string, data []byte) ([]byte, error) {
	if !utf8.Valid(data) {
		// Not text, so not base64. Raw bytes are accepted verbatim.
		return data, nil
	}

	s := strings.TrimSpace(string(data))
	if s == "" {
		return nil, nil
	}

	if i := strings.Index(s, ";base64,"); strings.HasPrefix(s, "data:") && i >= 0 {
		decoded, err := base64.StdEncoding.DecodeString(s[i+len(";base64,"):])
		if err != nil {
			return nil, &InvalidEncodingError{Input: input, Reason: "data URI carries malformed base64: " + err.Error()}
		}
		return decoded, nil
	}

	if looksBase64(s) {
		decoded, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, &InvalidEncodingError{Input: input, Reason: "malformed base64: " + err.Error()}
		}
		return decoded, nil
	}

	return data, nil
}

// looksBase64 reports whether s consists solely of base64 alphabet characters
// and has base64-compatible length. Short strings are left alone to avoid
// misclassifying ordinary words.
func looksBase64(s string) bool {
	if len(s) < 16 || len(s)%4 != 0 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r == '+' || r == '/' || r == '=':
		default:
			return false
		}
	}
	return true
}
