package sdes

import (
	"github.com/jesseduffield/keepitsafe/pkg/bitstr"
	"github.com/samber/lo"
	"github.com/sasha-s/go-deadlock"
)

const (
	// SBoxSeed seeds the first half of every substitution table
	SBoxSeed = 12138
	// the second half is seeded from SBoxSeed times this multiplier
	sboxSeedMultiplier = 3
)

// SBox maps every width-bit input, read as a number, to a (width-1)-bit output
type SBox []string

type sboxKey struct {
	index int
	width int
}

// generated tables are pure functions of (index, width)
var sboxCache = struct {
	deadlock.RWMutex
	tables map[sboxKey]SBox
}{tables: map[sboxKey]SBox{}}

// GetSBox returns table index (1 or 2) for the given input width, building it on first use
func GetSBox(index, width int) SBox {
	key := sboxKey{index: index, width: width}

	sboxCache.RLock()
	table, ok := sboxCache.tables[key]
	sboxCache.RUnlock()
	if ok {
		return table
	}

	table = GenerateSBox(index, width)

	sboxCache.Lock()
	defer sboxCache.Unlock()
	sboxCache.tables[key] = table
	return table
}

// GenerateSBox builds a table with 2^width entries. Each half is the pool of
// all (width-1)-bit strings in an order drawn by sampling without replacement
func GenerateSBox(index, width int) SBox {
	poolSize := 1 << (width - 1)
	pool := lo.Times(poolSize, func(i int) string {
		code, _ := bitstr.FromUint(uint64(i), width-1)
		return code
	})

	table := make(SBox, 2*poolSize)
	firstHalf := samplePermutation(poolSize, uint32(SBoxSeed+width+index))
	for i, j := range firstHalf {
		table[i] = pool[j]
	}
	secondHalf := samplePermutation(poolSize, uint32(SBoxSeed*sboxSeedMultiplier+width+index))
	for i, j := range secondHalf {
		table[i+poolSize] = pool[j]
	}
	return table
}

// samplePermutation draws rand() % size until every value in [0, size) has
// been seen once, keeping the order of first appearance
func samplePermutation(size int, seed uint32) []int {
	random := newGlibcRand(seed)
	seen := make([]bool, size)
	order := make([]int, 0, size)
	for len(order) < size {
		r := random.next() % size
		if seen[r] {
			continue
		}
		seen[r] = true
		order = append(order, r)
	}
	return order
}

// Substitute looks up bits, read as a number, in the table
func (s SBox) Substitute(bits string) (string, bool) {
	i, ok := bitstr.ToUint(bits)
	if !ok || i >= uint64(len(s)) {
		return "", false
	}
	return s[i], true
}
