package request

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
)

// DecodeBody converts a body to text. It tries 7-bit ASCII, then GB18030,
// and yields "" when neither decodes cleanly. Content-Type is not consulted.
func DecodeBody(body []byte) string {
	if isASCII(body) {
		return string(body)
	}
	out, err := simplifiedchinese.GB18030.NewDecoder().Bytes(body)
	// x/text emits replacement characters for invalid input.
	if err != nil || bytes.ContainsRune(out, utf8.RuneError) {
		return ""
	}
	return string(out)
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
