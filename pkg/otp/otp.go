// Package otp is the one-time pad: every character is shifted along the
// printable ASCII alphabet by the code point of the matching key character
package otp

import (
	"strings"

	"github.com/jesseduffield/keepitsafe/pkg/errs"
)

// Alphabet holds the 95 printable ASCII characters, starting with space
const Alphabet = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"

// Encrypt maps index x to (x + key[i]) mod 95. Characters outside the
// alphabet are copied but still use up their key position
func Encrypt(plaintext, key string) (string, error) {
	return shift(plaintext, key, 1)
}

// Decrypt maps index x to (x - key[i]) mod 95
func Decrypt(ciphertext, key string) (string, error) {
	return shift(ciphertext, key, -1)
}

func shift(text, key string, direction int) (string, error) {
	if text == "" {
		return "", errs.New(errs.InputError, "no content given for encryption/decryption")
	}
	runes := []rune(text)
	keyRunes := []rune(key)
	if len(keyRunes) < len(runes) {
		return "", errs.New(errs.KeyError, "one-time pad key must be at least as long as the text (%d), got %d", len(runes), len(keyRunes))
	}

	size := len(Alphabet)
	var builder strings.Builder
	for i, r := range runes {
		index := strings.IndexRune(Alphabet, r)
		if index == -1 {
			builder.WriteRune(r)
			continue
		}
		shifted := (index + direction*int(keyRunes[i])) % size
		if shifted < 0 {
			shifted += size
		}
		builder.WriteByte(Alphabet[shifted])
	}
	return builder.String(), nil
}
