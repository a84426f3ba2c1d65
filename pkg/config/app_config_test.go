package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jesseduffield/keepitsafe/pkg/errs"
	"github.com/jesseduffield/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAppConfig(t *testing.T) *AppConfig {
	t.Helper()
	t.Setenv("CONFIG_DIR", t.TempDir())
	conf, err := NewAppConfig("name", "version", "commit", "date", "buildSource", false)
	require.NoError(t, err)
	return conf
}

func TestNewAppConfigUsesDefaults(t *testing.T) {
	conf := newTestAppConfig(t)

	assert.Equal(t, "3,9,12,B6,ECB,643,131", conf.UserConfig.SDES.String())
	assert.Equal(t, "primes.txt", conf.UserConfig.PrimeTable)
	assert.Equal(t, "auto", conf.UserConfig.Language)
	assert.False(t, conf.Debug)
	assert.FileExists(t, conf.ConfigFilename())
}

func TestNewAppConfigDebug(t *testing.T) {
	t.Setenv("CONFIG_DIR", t.TempDir())

	conf, err := NewAppConfig("name", "version", "commit", "date", "buildSource", true)
	require.NoError(t, err)
	assert.True(t, conf.Debug)

	t.Setenv("DEBUG", "TRUE")
	conf, err = NewAppConfig("name", "version", "commit", "date", "buildSource", false)
	require.NoError(t, err)
	assert.True(t, conf.Debug)
}

func TestUserConfigOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONFIG_DIR", dir)
	content := "sdes:\n  mode: CBC\n  rounds: 5\nlanguage: de\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(content), 0o644))

	conf, err := NewAppConfig("name", "version", "commit", "date", "buildSource", false)
	require.NoError(t, err)

	assert.Equal(t, "5,9,12,B6,CBC,643,131", conf.UserConfig.SDES.String())
	assert.Equal(t, "de", conf.UserConfig.Language)
	assert.Equal(t, "primes.txt", conf.UserConfig.PrimeTable)
}

func TestWritingToConfigFile(t *testing.T) {
	conf := newTestAppConfig(t)

	testFn := func(t *testing.T, ac *AppConfig, newValue string) {
		t.Helper()
		updateFn := func(uc *UserConfig) error {
			uc.SDES.Mode = newValue
			return nil
		}

		require.NoError(t, ac.WriteToUserConfig(updateFn))

		file, err := os.OpenFile(ac.ConfigFilename(), os.O_RDONLY, 0o660)
		require.NoError(t, err)
		defer file.Close()

		sampleUC := UserConfig{}
		require.NoError(t, yaml.NewDecoder(file).Decode(&sampleUC))
		assert.Equal(t, newValue, sampleUC.SDES.Mode)
	}

	// insert value into an empty file
	testFn(t, conf, "OFB")

	// modifying an existing file that already has 'mode'
	testFn(t, conf, "CBC")
}

func TestPrimeTablePath(t *testing.T) {
	conf := newTestAppConfig(t)
	assert.Equal(t, filepath.Join(conf.ConfigDir, "primes.txt"), conf.PrimeTablePath())

	absolute := filepath.Join(t.TempDir(), "table.txt")
	conf.UserConfig.PrimeTable = absolute
	assert.Equal(t, absolute, conf.PrimeTablePath())
}

func TestValidate(t *testing.T) {
	type scenario struct {
		name   string
		mutate func(*UserConfig)
		valid  bool
	}

	scenarios := []scenario{
		{"defaults", func(*UserConfig) {}, true},
		{"no prime table", func(c *UserConfig) { c.PrimeTable = "" }, false},
		{"no language", func(c *UserConfig) { c.Language = "" }, false},
		{"no rounds", func(c *UserConfig) { c.SDES.Rounds = 0 }, false},
		{"no q", func(c *UserConfig) { c.SDES.Q = 0 }, false},
		{"no mode", func(c *UserConfig) { c.SDES.Mode = "" }, false},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			config := GetDefaultConfig()
			s.mutate(&config)

			err := config.Validate()
			if s.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, errs.HasErrorCode(err, errs.ConfigError))
			}
		})
	}
}

func TestValidateNamesTheMissingField(t *testing.T) {
	config := GetDefaultConfig()
	config.SDES.BlockSize = 0

	err := config.Validate()
	assert.Contains(t, errs.MessageOf(err), "SDES.BlockSize")
}
