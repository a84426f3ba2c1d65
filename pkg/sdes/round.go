package sdes

import (
	"github.com/jesseduffield/keepitsafe/pkg/bitstr"
	"github.com/jesseduffield/keepitsafe/pkg/errs"
)

// Expand grows an even bit string of at least six bits by two, repeating its
// middle pair crosswise: ..ab.. becomes ..baba..
func Expand(r string) (string, error) {
	if !bitstr.IsBinary(r) || len(r) < 6 || len(r)%2 != 0 {
		return "", errs.New(errs.InputError, "cannot expand %q: need an even bit string of at least 6 bits", r)
	}
	m := len(r)/2 - 1
	return r[:m] + string(r[m+1]) + string(r[m]) + string(r[m+1]) + string(r[m]) + r[m+2:], nil
}

// roundFunction is F(r, k): expand r, mix in the subkey, then substitute each
// half of the result through its own table
func roundFunction(r, subkey string, config Config) (string, error) {
	if len(r) != config.BlockSize/2 {
		return "", errs.New(errs.InputError, "half block must be %d bits, got %d", config.BlockSize/2, len(r))
	}
	if len(subkey) != config.SubkeySize() || !bitstr.IsBinary(subkey) {
		return "", errs.New(errs.KeyError, "subkey must be a %d bit string", config.SubkeySize())
	}

	expanded, err := Expand(r)
	if err != nil {
		return "", err
	}
	mixed, ok := bitstr.Xor(expanded, subkey)
	if !ok {
		return "", errs.New(errs.KeyError, "subkey of %d bits does not match the %d bit expansion", len(subkey), len(expanded))
	}

	width := config.SBoxWidth()
	if len(mixed) != 2*width {
		return "", errs.New(errs.ConfigError, "expanded half block of %d bits does not split into two %d bit substitution inputs", len(mixed), width)
	}

	left, ok := GetSBox(1, width).Substitute(mixed[:width])
	if !ok {
		return "", errs.New(errs.InputError, "substitution table 1 has no entry for %s", mixed[:width])
	}
	right, ok := GetSBox(2, width).Substitute(mixed[width:])
	if !ok {
		return "", errs.New(errs.InputError, "substitution table 2 has no entry for %s", mixed[width:])
	}
	return left + right, nil
}
