package sdes

import (
	"github.com/jesseduffield/keepitsafe/pkg/bitstr"
	"github.com/jesseduffield/keepitsafe/pkg/errs"
)

// feistelRound maps (L, R) to (R, F(R, k) xor L)
func feistelRound(block, subkey string, config Config) (string, error) {
	if len(block) != config.BlockSize || !bitstr.IsBinary(block) {
		return "", errs.New(errs.InputError, "block must be a %d bit string, got %d bits", config.BlockSize, len(block))
	}
	half := len(block) / 2
	left, right := block[:half], block[half:]

	f, err := roundFunction(right, subkey, config)
	if err != nil {
		return "", err
	}
	mixed, ok := bitstr.Xor(f, left)
	if !ok {
		return "", errs.New(errs.InputError, "round function output of %d bits does not match the %d bit half block", len(f), len(left))
	}
	return right + mixed, nil
}

// transformBlock runs one round per subkey and uncrosses the halves after the
// last one. Passing the subkeys in reverse order undoes the transform
func transformBlock(block string, subkeys []string, config Config) (string, error) {
	var err error
	for _, subkey := range subkeys {
		block, err = feistelRound(block, subkey, config)
		if err != nil {
			return "", err
		}
	}
	return bitstr.SwapHalves(block), nil
}
