// Package domain defines the core domain models for makeboot.
package domain

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// ByteTokenLength is the number of characters in a byte token.
const ByteTokenLength = 2

// ParseToken converts a two-character hexadecimal token into its byte value.
// Case is not significant. The returned error is ErrInvalidByteLength or
// ErrInvalidHexDigit, with the offending token in Details.
func ParseToken(token string) (byte, error) {
	if utf8.RuneCountInString(token) != ByteTokenLength {
		return 0, ErrInvalidByteLength.WithDetails(fmt.Sprintf("'%s'", token))
	}

	// ParseUint accepts a leading "+" for base 16, so validate digits by hand.
	for i := 0; i < len(token); i++ {
		if !isHexDigit(token[i]) {
			return 0, ErrInvalidHexDigit.WithDetails(fmt.Sprintf("'%s'", token))
		}
	}

	v, err := strconv.ParseUint(token, 16, 8)
	if err != nil {
		return 0, ErrInvalidHexDigit.WithDetails(fmt.Sprintf("'%s'", token)).WithCause(err)
	}
	return byte(v), nil
}

// ParseTokens parses tokens in order and stops at the first invalid one.
func ParseTokens(tokens []string) ([]byte, error) {
	out := make([]byte, 0, len(tokens))
	for _, tok := range tokens {
		b, err := ParseToken(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func isHexDigit(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}
