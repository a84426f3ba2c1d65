package sdes

import (
	"github.com/jesseduffield/keepitsafe/pkg/bitstr"
	"github.com/jesseduffield/keepitsafe/pkg/errs"
	"github.com/samber/lo"
)

// KeySchedule derives round keys from a master key
type KeySchedule struct {
	key string
}

// NewKeySchedule checks that key is a bit string of exactly size bits
func NewKeySchedule(key string, size int) (*KeySchedule, error) {
	if len(key) != size {
		return nil, errs.New(errs.KeyError, "key must be %d bits long, got %d", size, len(key))
	}
	if !bitstr.IsBinary(key) {
		return nil, errs.New(errs.KeyError, "key must only contain 0 and 1")
	}
	return &KeySchedule{key: key}, nil
}

// Subkey rotates the key left by round-1 positions and drops the last bit
func (k *KeySchedule) Subkey(round int) (string, error) {
	if round <= 0 {
		return "", errs.New(errs.KeyError, "round must be positive, got %d", round)
	}
	rotated := bitstr.RotateLeft(k.key, round-1)
	return rotated[:len(rotated)-1], nil
}

// Ascending returns the subkeys for rounds 1..rounds
func (k *KeySchedule) Ascending(rounds int) []string {
	return lo.Times(rounds, func(i int) string {
		subkey, _ := k.Subkey(i + 1)
		return subkey
	})
}

// Descending returns the subkeys for rounds rounds..1, the order that undoes Ascending
func (k *KeySchedule) Descending(rounds int) []string {
	return lo.Reverse(k.Ascending(rounds))
}
