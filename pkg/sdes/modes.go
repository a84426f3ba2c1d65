package sdes

import (
	"strings"

	"github.com/jesseduffield/keepitsafe/pkg/bitstr"
	"github.com/jesseduffield/keepitsafe/pkg/errs"
)

// blockMode drives the Feistel transform across a bit stream
type blockMode interface {
	Name() Mode
	RequiresIV() bool
	// Pads tells whether plaintext must be padded to whole blocks
	Pads() bool
	Encrypt(bits string, keys *KeySchedule, iv string, config Config) (string, error)
	Decrypt(bits string, keys *KeySchedule, iv string, config Config) (string, error)
}

func modeFor(mode Mode) (blockMode, error) {
	switch mode {
	case ECB:
		return &ecbMode{}, nil
	case CBC:
		return &cbcMode{}, nil
	case OFB:
		return &ofbMode{}, nil
	}
	return nil, errs.New(errs.ConfigError, "unknown cipher mode '%s'", mode)
}

func wholeBlocks(bits string, config Config) ([]string, error) {
	if len(bits)%config.BlockSize != 0 {
		return nil, errs.New(errs.InputError, "input of %d bits is not a whole number of %d bit blocks", len(bits), config.BlockSize)
	}
	return bitstr.Blocks(bits, config.BlockSize), nil
}

// ecbMode transforms every block on its own
type ecbMode struct{}

func (e *ecbMode) Name() Mode { return ECB }

func (e *ecbMode) RequiresIV() bool { return false }

func (e *ecbMode) Pads() bool { return true }

func (e *ecbMode) Encrypt(bits string, keys *KeySchedule, iv string, config Config) (string, error) {
	return e.run(bits, keys.Ascending(config.Rounds), config)
}

func (e *ecbMode) Decrypt(bits string, keys *KeySchedule, iv string, config Config) (string, error) {
	return e.run(bits, keys.Descending(config.Rounds), config)
}

func (e *ecbMode) run(bits string, subkeys []string, config Config) (string, error) {
	blocks, err := wholeBlocks(bits, config)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	for _, block := range blocks {
		transformed, err := transformBlock(block, subkeys, config)
		if err != nil {
			return "", err
		}
		out.WriteString(transformed)
	}
	return out.String(), nil
}

// cbcMode mixes every plaintext block with the previous ciphertext block,
// starting from the IV
type cbcMode struct{}

func (c *cbcMode) Name() Mode { return CBC }

func (c *cbcMode) RequiresIV() bool { return true }

func (c *cbcMode) Pads() bool { return true }

func (c *cbcMode) Encrypt(bits string, keys *KeySchedule, iv string, config Config) (string, error) {
	blocks, err := wholeBlocks(bits, config)
	if err != nil {
		return "", err
	}
	subkeys := keys.Ascending(config.Rounds)

	var out strings.Builder
	vector := iv
	for _, block := range blocks {
		mixed, ok := bitstr.Xor(block, vector)
		if !ok {
			return "", errs.New(errs.InputError, "chaining value of %d bits does not match the %d bit block", len(vector), len(block))
		}
		cipherBlock, err := transformBlock(mixed, subkeys, config)
		if err != nil {
			return "", err
		}
		out.WriteString(cipherBlock)
		vector = cipherBlock
	}
	return out.String(), nil
}

func (c *cbcMode) Decrypt(bits string, keys *KeySchedule, iv string, config Config) (string, error) {
	blocks, err := wholeBlocks(bits, config)
	if err != nil {
		return "", err
	}
	subkeys := keys.Descending(config.Rounds)

	var out strings.Builder
	vector := iv
	for _, block := range blocks {
		transformed, err := transformBlock(block, subkeys, config)
		if err != nil {
			return "", err
		}
		plainBlock, ok := bitstr.Xor(transformed, vector)
		if !ok {
			return "", errs.New(errs.InputError, "chaining value of %d bits does not match the %d bit block", len(vector), len(block))
		}
		out.WriteString(plainBlock)
		vector = block
	}
	return out.String(), nil
}

// ofbMode turns the cipher into a keystream generator: the register is
// encrypted once per block and xored onto the data
type ofbMode struct{}

func (o *ofbMode) Name() Mode { return OFB }

func (o *ofbMode) RequiresIV() bool { return true }

func (o *ofbMode) Pads() bool { return false }

func (o *ofbMode) Encrypt(bits string, keys *KeySchedule, iv string, config Config) (string, error) {
	subkeys := keys.Ascending(config.Rounds)

	var out strings.Builder
	register := iv
	for _, block := range bitstr.Blocks(bits, config.BlockSize) {
		var err error
		register, err = transformBlock(register, subkeys, config)
		if err != nil {
			return "", err
		}
		// a short final block only uses the front of the keystream segment
		mixed, ok := bitstr.Xor(block, register[:len(block)])
		if !ok {
			return "", errs.New(errs.InputError, "cannot mix a %d bit block with the keystream", len(block))
		}
		out.WriteString(mixed)
	}
	return out.String(), nil
}

// Decrypt is Encrypt: applying the same keystream twice cancels out
func (o *ofbMode) Decrypt(bits string, keys *KeySchedule, iv string, config Config) (string, error) {
	return o.Encrypt(bits, keys, iv, config)
}
