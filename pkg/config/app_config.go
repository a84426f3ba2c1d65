package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/OpenPeeDeeP/xdg"
	yaml "github.com/jesseduffield/yaml"
)

// AppConfig contains the base configuration fields required for keepitsafe.
type AppConfig struct {
	Debug       bool   `long:"debug" env:"DEBUG" default:"false"`
	Version     string `long:"version" env:"VERSION" default:"unversioned"`
	Commit      string `long:"commit" env:"COMMIT"`
	BuildDate   string `long:"build-date" env:"BUILD_DATE"`
	Name        string `long:"name" env:"NAME" default:"keepitsafe"`
	BuildSource string `long:"build-source" env:"BUILD_SOURCE" default:""`
	UserConfig  *UserConfig
	ConfigDir   string
}

// UserConfig holds all of the user-configurable options. The fields here are all in PascalCase but in your actual config.yml they'll be in camelCase. You can view the default config with `keepitsafe --config`
type UserConfig struct {
	// SDES holds the cipher parameters used when no --sdes flag is given
	SDES SDESConfig `yaml:"sdes,omitempty"`

	// PrimeTable is the file the IV generator reads its seed from: one prime per line, the nth line holding the nth prime. Relative paths are resolved against the config directory. Generate one with `keepitsafe primes`
	PrimeTable string `yaml:"primeTable,omitempty"`

	// Language is either 'auto' or a language code such as 'en', 'de' or 'fr'
	Language string `yaml:"language,omitempty"`
}

// SDESConfig mirrors the seven fields of an SDES parameter string
type SDESConfig struct {
	// Rounds is the number of Feistel rounds, between 2 and 10
	Rounds int `yaml:"rounds,omitempty"`

	// KeySize is the length of the binary key. It must be blockSize/2 + 3
	KeySize int `yaml:"keySize,omitempty"`

	// BlockSize is the number of bits per block
	BlockSize int `yaml:"blockSize,omitempty"`

	// Encoding is the text codec. Only B6 is supported
	Encoding string `yaml:"encoding,omitempty"`

	// Mode is one of ECB, CBC or OFB
	Mode string `yaml:"mode,omitempty"`

	// P and Q are the Blum-Blum-Shub primes. Both must be congruent to 3 mod 4
	P uint64 `yaml:"p,omitempty"`
	Q uint64 `yaml:"q,omitempty"`
}

// String renders the parameters the way the --sdes flag takes them
func (c SDESConfig) String() string {
	return fmt.Sprintf("%d,%d,%d,%s,%s,%d,%d", c.Rounds, c.KeySize, c.BlockSize, c.Encoding, c.Mode, c.P, c.Q)
}

// GetDefaultConfig returns the application default configuration
func GetDefaultConfig() UserConfig {
	return UserConfig{
		SDES: SDESConfig{
			Rounds:    3,
			KeySize:   9,
			BlockSize: 12,
			Encoding:  "B6",
			Mode:      "ECB",
			P:         643,
			Q:         131,
		},
		PrimeTable: "primes.txt",
		Language:   "auto",
	}
}

// NewAppConfig makes a new app config
func NewAppConfig(name, version, commit, date string, buildSource string, debuggingFlag bool) (*AppConfig, error) {
	configDir, err := findOrCreateConfigDir(name)
	if err != nil {
		return nil, err
	}

	userConfig, err := loadUserConfigWithDefaults(configDir)
	if err != nil {
		return nil, err
	}

	appConfig := &AppConfig{
		Name:        name,
		Version:     version,
		Commit:      commit,
		BuildDate:   date,
		Debug:       debuggingFlag || os.Getenv("DEBUG") == "TRUE",
		BuildSource: buildSource,
		UserConfig:  userConfig,
		ConfigDir:   configDir,
	}

	return appConfig, nil
}

func configDirForProject(projectName string) string {
	if envConfigDir := os.Getenv("CONFIG_DIR"); envConfigDir != "" {
		return envConfigDir
	}

	return xdg.New("jesseduffield", projectName).ConfigHome()
}

func findOrCreateConfigDir(projectName string) (string, error) {
	folder := configDirForProject(projectName)

	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", err
	}

	return folder, nil
}

func loadUserConfigWithDefaults(configDir string) (*UserConfig, error) {
	config := GetDefaultConfig()

	return loadUserConfig(configDir, &config)
}

func loadUserConfig(configDir string, base *UserConfig) (*UserConfig, error) {
	fileName := filepath.Join(configDir, "config.yml")

	if _, err := os.Stat(fileName); err != nil {
		if os.IsNotExist(err) {
			file, err := os.Create(fileName)
			if err != nil {
				return nil, err
			}
			file.Close()
		} else {
			return nil, err
		}
	}

	content, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(content, base); err != nil {
		return nil, err
	}

	return base, nil
}

// WriteToUserConfig allows you to set a value on the user config to be saved
// note that if you set a zero-value, it may be ignored e.g. a false or 0 or empty string
// this is because we are using the omitempty yaml directive so that we don't write a heap
// of zero values to the user's config.yml
func (c *AppConfig) WriteToUserConfig(updateConfig func(*UserConfig) error) error {
	userConfig, err := loadUserConfig(c.ConfigDir, &UserConfig{})
	if err != nil {
		return err
	}

	if err := updateConfig(userConfig); err != nil {
		return err
	}

	out, err := yaml.Marshal(userConfig)
	if err != nil {
		return err
	}

	return os.WriteFile(c.ConfigFilename(), out, 0o666)
}

// ConfigFilename returns the filename of the current config file
func (c *AppConfig) ConfigFilename() string {
	return filepath.Join(c.ConfigDir, "config.yml")
}

// PrimeTablePath returns the prime table location, relative paths being taken
// from the config directory
func (c *AppConfig) PrimeTablePath() string {
	if filepath.IsAbs(c.UserConfig.PrimeTable) {
		return c.UserConfig.PrimeTable
	}
	return filepath.Join(c.ConfigDir, c.UserConfig.PrimeTable)
}
