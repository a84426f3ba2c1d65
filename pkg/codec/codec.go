// Package codec maps text onto bit strings for the block ciphers
package codec

import (
	"strings"

	"github.com/jesseduffield/keepitsafe/pkg/bitstr"
	"github.com/jesseduffield/keepitsafe/pkg/errs"
	"github.com/samber/lo"
)

// B6Alphabet is the 64 symbol alphabet of the B6 codec. A character's code is
// its index here
const B6Alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ \n"

// PaddingChar fills plaintext up to a whole number of blocks
const PaddingChar = 'Q'

// B6 is the name of the six-bit codec
const B6 = "B6"

// Codec is a bidirectional mapping between an alphabet and fixed-width codes
type Codec interface {
	Name() string
	// Width is the number of bits per character
	Width() int
	Contains(r rune) bool
	Encode(text string) (string, error)
	Decode(bits string) (string, error)
}

// Supported returns the names accepted by Lookup
func Supported() []string {
	return []string{B6}
}

// Lookup returns the codec registered under name
func Lookup(name string) (Codec, error) {
	if !lo.Contains(Supported(), name) {
		return nil, errs.New(errs.ConfigError, "unknown encoding '%s', expected one of %s", name, strings.Join(Supported(), ", "))
	}
	return NewB6(), nil
}

// Pad right-pads text with PaddingChar up to a multiple of blockChars characters
func Pad(text string, blockChars int) string {
	if blockChars <= 0 {
		return text
	}
	n := len([]rune(text))
	if n%blockChars == 0 {
		return text
	}
	return text + strings.Repeat(string(PaddingChar), blockChars-n%blockChars)
}

// Unpad strips every trailing PaddingChar. Plaintext that genuinely ends in
// PaddingChar loses those characters too
func Unpad(text string) string {
	return strings.TrimRight(text, string(PaddingChar))
}

type b6 struct {
	index map[rune]int
}

// NewB6 returns the B6 codec
func NewB6() Codec {
	index := make(map[rune]int, len(B6Alphabet))
	for i, r := range B6Alphabet {
		index[r] = i
	}
	return &b6{index: index}
}

func (c *b6) Name() string { return B6 }

func (c *b6) Width() int { return 6 }

func (c *b6) Contains(r rune) bool {
	_, ok := c.index[r]
	return ok
}

// Encode maps every character of text to its six bit code
func (c *b6) Encode(text string) (string, error) {
	var builder strings.Builder
	builder.Grow(len(text) * c.Width())
	for pos, r := range []rune(text) {
		i, ok := c.index[r]
		if !ok {
			return "", errs.New(errs.EncodingError, "character %q at position %d is not in the %s alphabet", r, pos, c.Name())
		}
		code, _ := bitstr.FromUint(uint64(i), c.Width())
		builder.WriteString(code)
	}
	return builder.String(), nil
}

// Decode maps a bit string back to text
func (c *b6) Decode(bits string) (string, error) {
	if bits == "" {
		return "", nil
	}
	if len(bits)%c.Width() != 0 {
		return "", errs.New(errs.EncodingError, "bit string length %d is not a multiple of %d", len(bits), c.Width())
	}
	if !bitstr.IsBinary(bits) {
		return "", errs.New(errs.EncodingError, "cannot decode a non-binary string")
	}

	var builder strings.Builder
	for _, code := range bitstr.Blocks(bits, c.Width()) {
		i, _ := bitstr.ToUint(code)
		builder.WriteByte(B6Alphabet[i])
	}
	return builder.String(), nil
}
