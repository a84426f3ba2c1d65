package sdes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jesseduffield/keepitsafe/pkg/bbs"
	"github.com/jesseduffield/keepitsafe/pkg/codec"
	"github.com/jesseduffield/keepitsafe/pkg/errs"
	"github.com/samber/lo"
)

// Mode is a block chaining mode
type Mode string

const (
	ECB Mode = "ECB"
	CBC Mode = "CBC"
	OFB Mode = "OFB"
)

// Modes returns every supported chaining mode
func Modes() []Mode {
	return []Mode{ECB, CBC, OFB}
}

const (
	minRounds = 2
	maxRounds = 10
	// the half block must be an even bit string of at least six bits
	minBlockSize = 12
	// the S-box tables grow as 2^(blockSize/4)
	maxBlockSize = 64
)

// Config holds the cipher parameters. It is validated once and then only read
type Config struct {
	Rounds    int
	KeySize   int
	BlockSize int
	Encoding  string
	Mode      Mode
	P         uint64
	Q         uint64
}

// ParseConfig reads "rounds,keySize,blockSize,encodeType,cipherType,p,q" and
// validates the result
func ParseConfig(s string) (Config, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 7 {
		return Config{}, errs.New(errs.ConfigError, "expected 7 comma separated fields (rounds,keySize,blockSize,encodeType,cipherType,p,q), got %d", len(fields))
	}
	fields = lo.Map(fields, func(field string, _ int) string {
		return strings.TrimSpace(field)
	})

	ints := make([]int, 3)
	for i, name := range []string{"rounds", "key size", "block size"} {
		value, err := strconv.Atoi(fields[i])
		if err != nil {
			return Config{}, errs.New(errs.ConfigError, "%s must be an integer, got '%s'", name, fields[i])
		}
		ints[i] = value
	}

	primes := make([]uint64, 2)
	for i, name := range []string{"p", "q"} {
		value, err := strconv.ParseUint(fields[5+i], 10, 32)
		if err != nil {
			return Config{}, errs.New(errs.ConfigError, "%s must be a positive integer, got '%s'", name, fields[5+i])
		}
		primes[i] = value
	}

	config := Config{
		Rounds:    ints[0],
		KeySize:   ints[1],
		BlockSize: ints[2],
		Encoding:  fields[3],
		Mode:      Mode(fields[4]),
		P:         primes[0],
		Q:         primes[1],
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate checks the parameters against each other
func (c Config) Validate() error {
	if c.Rounds < minRounds || c.Rounds > maxRounds {
		return errs.New(errs.ConfigError, "rounds must be between %d and %d, got %d", minRounds, maxRounds, c.Rounds)
	}
	if c.KeySize < 1 {
		return errs.New(errs.ConfigError, "key size must be positive, got %d", c.KeySize)
	}
	if c.BlockSize < 1 {
		return errs.New(errs.ConfigError, "block size must be positive, got %d", c.BlockSize)
	}
	if _, err := codec.Lookup(c.Encoding); err != nil {
		return err
	}
	if !lo.Contains(Modes(), c.Mode) {
		return errs.New(errs.ConfigError, "unknown cipher mode '%s', expected one of ECB, CBC, OFB", c.Mode)
	}

	if c.BlockSize < minBlockSize || c.BlockSize%4 != 0 {
		return errs.New(errs.ConfigError, "block size must be a multiple of 4 and at least %d, got %d", minBlockSize, c.BlockSize)
	}
	if c.BlockSize > maxBlockSize {
		return errs.New(errs.ConfigError, "block size must be at most %d, got %d", maxBlockSize, c.BlockSize)
	}
	if c.SubkeySize() != c.BlockSize/2+2 {
		return errs.New(errs.ConfigError, "key size must be block size / 2 + 3 (%d for a %d bit block), got %d", c.BlockSize/2+3, c.BlockSize, c.KeySize)
	}
	if c.Mode != OFB && c.BlockSize%6 != 0 {
		return errs.New(errs.ConfigError, "%s needs a block size that is a multiple of 6, got %d", c.Mode, c.BlockSize)
	}

	for _, prime := range []struct {
		name  string
		value uint64
	}{{"p", c.P}, {"q", c.Q}} {
		if !bbs.IsPrime(prime.value) {
			return errs.New(errs.ConfigError, "%s must be a prime number, got %d", prime.name, prime.value)
		}
		if prime.value%4 != 3 {
			return errs.New(errs.ConfigError, "%s must be congruent to 3 mod 4, got %d", prime.name, prime.value)
		}
	}
	return nil
}

// SubkeySize is the length of every round key
func (c Config) SubkeySize() int {
	return c.KeySize - 1
}

// SBoxWidth is the input width of each substitution table: a quarter block plus one
func (c Config) SBoxWidth() int {
	return c.BlockSize/4 + 1
}

// UsesIV tells whether the mode needs an initialization vector
func (c Config) UsesIV() bool {
	return c.Mode != ECB
}

func (c Config) String() string {
	return fmt.Sprintf("%d,%d,%d,%s,%s,%d,%d", c.Rounds, c.KeySize, c.BlockSize, c.Encoding, c.Mode, c.P, c.Q)
}

// Rows lists the parameters for display
func (c Config) Rows() [][]string {
	return [][]string{
		{"rounds", strconv.Itoa(c.Rounds)},
		{"key size", strconv.Itoa(c.KeySize)},
		{"block size", strconv.Itoa(c.BlockSize)},
		{"encoding", c.Encoding},
		{"mode", string(c.Mode)},
		{"p", strconv.FormatUint(c.P, 10)},
		{"q", strconv.FormatUint(c.Q, 10)},
	}
}
