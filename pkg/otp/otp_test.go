package otp

import (
	"testing"

	"github.com/jesseduffield/keepitsafe/pkg/errs"
	"github.com/stretchr/testify/assert"
)

func TestAlphabet(t *testing.T) {
	assert.Len(t, Alphabet, 95)
	assert.Equal(t, byte('A'), Alphabet[33])
}

func TestEncryptDecryptSingleCharacter(t *testing.T) {
	// (33 + 97) mod 95 = 35
	ciphertext, err := Encrypt("A", "a")
	assert.NoError(t, err)
	assert.Equal(t, "C", ciphertext)

	// (35 - 97) mod 95 = 33
	plaintext, err := Decrypt("C", "a")
	assert.NoError(t, err)
	assert.Equal(t, "A", plaintext)
}

func TestRoundTrip(t *testing.T) {
	type scenario struct {
		text string
		key  string
	}

	scenarios := []scenario{
		{"Hello, World!", "qwertyuiopasdfgh"},
		{"tab\tand\nnewline", "zzzzzzzzzzzzzzzzzzzz"},
		{"~", "~"},
		{"ünïcode", "abcdefg"},
	}

	for _, s := range scenarios {
		ciphertext, err := Encrypt(s.text, s.key)
		assert.NoError(t, err)
		assert.Len(t, []rune(ciphertext), len([]rune(s.text)))

		plaintext, err := Decrypt(ciphertext, s.key)
		assert.NoError(t, err)
		assert.Equal(t, s.text, plaintext)
	}
}

func TestCharactersOutsideAlphabetPassThrough(t *testing.T) {
	ciphertext, err := Encrypt("a\nb", "xyz")
	assert.NoError(t, err)
	assert.Equal(t, '\n', []rune(ciphertext)[1])
}

func TestErrors(t *testing.T) {
	_, err := Encrypt("", "abc")
	assert.True(t, errs.HasErrorCode(err, errs.InputError))

	_, err = Encrypt("abcd", "abc")
	assert.True(t, errs.HasErrorCode(err, errs.KeyError))

	_, err = Decrypt("abcd", "")
	assert.True(t, errs.HasErrorCode(err, errs.KeyError))
}
