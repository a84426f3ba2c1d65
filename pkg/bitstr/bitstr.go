// Package bitstr works on bit strings: strings made only of '0' and '1'
package bitstr

import (
	"strconv"
	"strings"
)

// IsBinary reports whether s is a non-empty string of '0' and '1'
func IsBinary(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return false
		}
	}
	return true
}

// Xor returns the bitwise exclusive or of two bit strings of equal length.
// ok is false when either operand is not binary or the lengths differ
func Xor(a, b string) (string, bool) {
	if len(a) != len(b) || !IsBinary(a) || !IsBinary(b) {
		return "", false
	}
	out := make([]byte, len(a))
	for i := range out {
		if a[i] == b[i] {
			out[i] = '0'
		} else {
			out[i] = '1'
		}
	}
	return string(out), true
}

// RotateLeft circularly shifts s left by n positions. Negative n rotates right
func RotateLeft(s string, n int) string {
	if len(s) == 0 {
		return s
	}
	n %= len(s)
	if n < 0 {
		n += len(s)
	}
	return s[n:] + s[:n]
}

// FromUint renders v as a zero-padded bit string of the given width. ok is
// false when v does not fit
func FromUint(v uint64, width int) (string, bool) {
	s := strconv.FormatUint(v, 2)
	if len(s) > width {
		return "", false
	}
	return strings.Repeat("0", width-len(s)) + s, true
}

// ToUint parses a bit string, most significant bit first
func ToUint(s string) (uint64, bool) {
	if !IsBinary(s) || len(s) > 64 {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 2, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// SwapHalves returns the second half of s followed by the first
func SwapHalves(s string) string {
	half := len(s) / 2
	return s[half:] + s[:half]
}

// Blocks splits s into consecutive pieces of size bits. The last piece is
// shorter when len(s) is not a multiple of size
func Blocks(s string, size int) []string {
	blocks := make([]string, 0, (len(s)+size-1)/size)
	for i := 0; i < len(s); i += size {
		end := i + size
		if end > len(s) {
			end = len(s)
		}
		blocks = append(blocks, s[i:end])
	}
	return blocks
}
