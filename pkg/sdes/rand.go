package sdes

// glibcRand reproduces the output of glibc's srand/rand (the TYPE_3 additive
// feedback generator), so that substitution tables match the ones built by
// the C implementation of this cipher on Linux.
type glibcRand struct {
	ring [31]int32
	pos  int
}

func newGlibcRand(seed uint32) *glibcRand {
	if seed == 0 {
		seed = 1
	}

	r := make([]int32, 344)
	r[0] = int32(seed)
	for i := 1; i < 31; i++ {
		word := (16807 * int64(r[i-1])) % 2147483647
		if word < 0 {
			word += 2147483647
		}
		r[i] = int32(word)
	}
	for i := 31; i < 34; i++ {
		r[i] = r[i-31]
	}
	for i := 34; i < 344; i++ {
		r[i] = r[i-31] + r[i-3]
	}

	g := &glibcRand{}
	copy(g.ring[:], r[313:])
	return g
}

// next returns the same value as the next call to rand(): 31 non-negative bits
func (g *glibcRand) next() int {
	value := g.ring[g.pos] + g.ring[(g.pos+28)%31]
	g.ring[g.pos] = value
	g.pos = (g.pos + 1) % 31
	return int(uint32(value) >> 1)
}
