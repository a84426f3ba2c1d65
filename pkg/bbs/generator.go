// Package bbs derives initialization vectors with a Blum-Blum-Shub style
// generator seeded from a prime table
package bbs

import (
	"math/bits"
	"strings"

	"github.com/jesseduffield/keepitsafe/pkg/errs"
	"github.com/sirupsen/logrus"
)

// Generator produces deterministic bit streams. Identical (p, q, m) and an
// identical table always give the same bits
type Generator struct {
	Log   *logrus.Entry
	Table PrimeTable
}

// NewGenerator returns a generator reading seeds from table
func NewGenerator(log *logrus.Entry, table PrimeTable) *Generator {
	return &Generator{Log: log, Table: table}
}

// Bits returns m bits. The seed is the (p*q)-th prime of the table; x0 is the
// seed squared mod p*q and each further squaring yields one bit, its parity
func (g *Generator) Bits(p, q uint64, m int) (string, error) {
	if p%4 != 3 || q%4 != 3 {
		return "", errs.New(errs.ConfigError, "p (%d) and q (%d) must both be congruent to 3 mod 4", p, q)
	}
	if m <= 0 {
		return "", errs.New(errs.ConfigError, "cannot generate %d bits", m)
	}

	hi, n := bits.Mul64(p, q)
	if hi != 0 {
		return "", errs.New(errs.ConfigError, "p*q overflows")
	}

	seed, err := g.Table.Nth(n)
	if err != nil {
		return "", err
	}
	g.Log.WithFields(logrus.Fields{"n": n, "bits": m}).Debug("seeded blum blum shub generator")

	x := squareMod(seed%n, n)
	var builder strings.Builder
	builder.Grow(m)
	for i := 0; i < m; i++ {
		x = squareMod(x, n)
		if x%2 == 0 {
			builder.WriteByte('0')
		} else {
			builder.WriteByte('1')
		}
	}
	return builder.String(), nil
}

func squareMod(x, n uint64) uint64 {
	hi, lo := bits.Mul64(x, x)
	return bits.Rem64(hi, lo, n)
}
