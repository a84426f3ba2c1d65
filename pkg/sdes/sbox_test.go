package sdes

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestGenerateSBoxHalvesArePermutations(t *testing.T) {
	for width := 2; width <= 8; width++ {
		for index := 1; index <= 2; index++ {
			table := GenerateSBox(index, width)
			poolSize := 1 << (width - 1)

			assert.Len(t, table, 2*poolSize)
			for _, half := range [][]string{table[:poolSize], table[poolSize:]} {
				assert.Len(t, lo.Uniq(half), poolSize, "width %d index %d", width, index)
				for _, entry := range half {
					assert.Len(t, entry, width-1)
				}
			}
		}
	}
}

func TestGenerateSBoxIsDeterministic(t *testing.T) {
	assert.Equal(t, GenerateSBox(1, 4), GenerateSBox(1, 4))
	assert.NotEqual(t, GenerateSBox(1, 4), GenerateSBox(2, 4))
}

func TestGetSBoxMemoizes(t *testing.T) {
	first := GetSBox(2, 5)
	second := GetSBox(2, 5)

	assert.Equal(t, GenerateSBox(2, 5), first)
	assert.Equal(t, first, second)
}

func TestSubstitute(t *testing.T) {
	table := SBox{"00", "01", "10", "11"}

	out, ok := table.Substitute("10")
	assert.True(t, ok)
	assert.Equal(t, "10", out)

	_, ok = table.Substitute("100")
	assert.False(t, ok)

	_, ok = table.Substitute("1x")
	assert.False(t, ok)
}

func TestSamplePermutationCoversRange(t *testing.T) {
	order := samplePermutation(16, SBoxSeed)

	assert.Len(t, order, 16)
	assert.ElementsMatch(t, lo.Times(16, func(i int) int { return i }), order)
}
