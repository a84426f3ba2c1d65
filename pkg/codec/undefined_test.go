package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrip(t *testing.T) {
	text, positions := Strip("Hello, World!", NewB6())

	assert.Equal(t, "Hello World", text)
	assert.Equal(t, Positions{{Index: 5, Char: ','}, {Index: 12, Char: '!'}}, positions)
}

func TestStripKeepsMultibyteRunes(t *testing.T) {
	text, positions := Strip("añb", NewB6())

	assert.Equal(t, "ab", text)
	assert.Equal(t, Positions{{Index: 1, Char: 'ñ'}}, positions)
	assert.Equal(t, "añb", positions.Reinsert(text))
}

func TestReinsert(t *testing.T) {
	type scenario struct {
		name      string
		text      string
		positions Positions
		expected  string
	}

	scenarios := []scenario{
		{
			"nothing to insert",
			"abc",
			Positions{},
			"abc",
		},
		{
			"inside",
			"Hello World",
			Positions{{5, ','}, {12, '!'}},
			"Hello, World!",
		},
		{
			// the ciphertext is longer than the stripped plaintext once padded
			"longer text",
			"abcd",
			Positions{{3, '!'}},
			"abc!d",
		},
		{
			"text continues after the last position",
			"Hello World and more",
			Positions{{5, ','}},
			"Hello, World and more",
		},
		{
			"past the end",
			"ab",
			Positions{{0, '#'}, {7, '!'}, {9, '?'}},
			"#ab!?",
		},
		{
			"only undefined",
			"",
			Positions{{0, '!'}, {1, '?'}},
			"!?",
		},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			assert.Equal(t, s.expected, s.positions.Reinsert(s.text))
		})
	}
}

func TestStripReinsertRoundTrip(t *testing.T) {
	inputs := []string{"", "!!!", "a-b-c", "tab\there", "plain", "Hello, World!", "ñandú", "a, b; c: d"}

	for _, input := range inputs {
		text, positions := Strip(input, NewB6())
		assert.Equal(t, input, positions.Reinsert(text))
	}
}
