package codec

// Position is a character that sits outside a codec alphabet, together with
// its absolute index in the original text
type Position struct {
	Index int
	Char  rune
}

// Positions lists undefined characters in ascending index order
type Positions []Position

// Strip removes every character that c cannot encode, remembering where each
// one was
func Strip(text string, c Codec) (string, Positions) {
	runes := []rune(text)
	kept := make([]rune, 0, len(runes))
	positions := Positions{}
	for i, r := range runes {
		if c.Contains(r) {
			kept = append(kept, r)
			continue
		}
		positions = append(positions, Position{Index: i, Char: r})
	}
	return string(kept), positions
}

// Reinsert puts the recorded characters back at their absolute indices.
// Positions beyond the end of the rebuilt text are appended in order
func (p Positions) Reinsert(text string) string {
	if len(p) == 0 {
		return text
	}

	src := []rune(text)
	total := len(src) + len(p)
	out := make([]rune, 0, total)
	next, taken := 0, 0
	for i := 0; i < total; i++ {
		if next < len(p) && p[next].Index == i {
			out = append(out, p[next].Char)
			next++
			continue
		}
		if taken < len(src) {
			out = append(out, src[taken])
			taken++
			continue
		}
		out = append(out, p[next].Char)
		next++
	}
	return string(out)
}
