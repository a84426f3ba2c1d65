// Package sdes implements Simple DES: a toy Feistel cipher with tunable block
// size, key size and round count, chained in ECB, CBC or OFB mode over text
// mapped to bits by a codec.
package sdes

import (
	"github.com/jesseduffield/keepitsafe/pkg/codec"
	"github.com/jesseduffield/keepitsafe/pkg/errs"
	"github.com/sirupsen/logrus"
)

// IVSource derives m initialization vector bits from the primes p and q
type IVSource interface {
	Bits(p, q uint64, m int) (string, error)
}

// Cipher encrypts and decrypts text under one validated Config
type Cipher struct {
	Log      *logrus.Entry
	Config   Config
	codec    codec.Codec
	mode     blockMode
	ivSource IVSource
}

// NewCipher validates config. ivSource may be nil for ECB
func NewCipher(log *logrus.Entry, config Config, ivSource IVSource) (*Cipher, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	textCodec, err := codec.Lookup(config.Encoding)
	if err != nil {
		return nil, err
	}
	mode, err := modeFor(config.Mode)
	if err != nil {
		return nil, err
	}
	if mode.RequiresIV() && ivSource == nil {
		return nil, errs.New(errs.IVSourceError, "%s needs an initialization vector source", config.Mode)
	}

	return &Cipher{
		Log:      log,
		Config:   config,
		codec:    textCodec,
		mode:     mode,
		ivSource: ivSource,
	}, nil
}

// Encrypt pads plaintext (ECB, CBC) and runs the mode forwards. Characters
// outside the codec alphabet are kept verbatim at their original positions
func (c *Cipher) Encrypt(plaintext, key string) (string, error) {
	return c.run(plaintext, key, true)
}

// Decrypt undoes Encrypt. Trailing padding characters are removed afterwards,
// including any the plaintext genuinely ended with
func (c *Cipher) Decrypt(ciphertext, key string) (string, error) {
	return c.run(ciphertext, key, false)
}

func (c *Cipher) run(text, key string, encrypt bool) (string, error) {
	if text == "" {
		return "", errs.New(errs.InputError, "no content given for encryption/decryption")
	}
	keys, err := NewKeySchedule(key, c.Config.KeySize)
	if err != nil {
		return "", err
	}

	iv, err := c.initializationVector()
	if err != nil {
		return "", err
	}

	core, positions := codec.Strip(text, c.codec)
	if encrypt && c.mode.Pads() {
		core = codec.Pad(core, c.Config.BlockSize/c.codec.Width())
	}
	bits, err := c.codec.Encode(core)
	if err != nil {
		return "", err
	}

	c.Log.WithFields(logrus.Fields{
		"mode":      c.mode.Name(),
		"encrypt":   encrypt,
		"bits":      len(bits),
		"undefined": len(positions),
	}).Debug("running sdes")

	var out string
	if encrypt {
		out, err = c.mode.Encrypt(bits, keys, iv, c.Config)
	} else {
		out, err = c.mode.Decrypt(bits, keys, iv, c.Config)
	}
	if err != nil {
		return "", err
	}

	result, err := c.codec.Decode(out)
	if err != nil {
		return "", err
	}
	if !encrypt && c.mode.Pads() {
		result = codec.Unpad(result)
	}
	return positions.Reinsert(result), nil
}

// initializationVector is derived once per call, never per block
func (c *Cipher) initializationVector() (string, error) {
	if !c.mode.RequiresIV() {
		return "", nil
	}
	iv, err := c.ivSource.Bits(c.Config.P, c.Config.Q, c.Config.BlockSize)
	if err != nil {
		return "", err
	}
	c.Log.WithField("length", len(iv)).Debug("derived initialization vector")
	return iv, nil
}
