package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/jesseduffield/keepitsafe/pkg/bbs"
	"github.com/jesseduffield/keepitsafe/pkg/config"
	"github.com/jesseduffield/keepitsafe/pkg/errs"
	"github.com/jesseduffield/keepitsafe/pkg/i18n"
	"github.com/jesseduffield/keepitsafe/pkg/log"
	"github.com/jesseduffield/keepitsafe/pkg/otp"
	"github.com/jesseduffield/keepitsafe/pkg/sdes"
	"github.com/jesseduffield/keepitsafe/pkg/utils"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// Cipher names accepted by --cipher
const (
	CipherSDES   = "sdes"
	CipherOTP    = "otp"
	CipherAES256 = "aes256"
	CipherRSA    = "rsa"
)

// App struct
type App struct {
	Config *config.AppConfig
	Log    *logrus.Entry
	Tr     *i18n.TranslationSet
}

// Request is a single encryption or decryption asked for on the command line
type Request struct {
	Decrypt bool
	// Cipher defaults to sdes
	Cipher string
	// SDES is a parameter string like 3,9,12,B6,ECB,643,131. Empty means the user config defaults
	SDES  string
	Key   string
	Input string
}

// NewApp bootstrap a new application
func NewApp(config *config.AppConfig) (*App, error) {
	app := &App{
		Config: config,
	}
	var err error
	app.Log = log.NewLogger(config)
	app.Tr, err = i18n.NewTranslationSetFromConfig(app.Log, config.UserConfig.Language)
	if err != nil {
		return app, err
	}

	if err := config.UserConfig.Validate(); err != nil {
		return app, err
	}
	if _, err := sdes.ParseConfig(config.UserConfig.SDES.String()); err != nil {
		return app, err
	}

	return app, nil
}

// Run encrypts or decrypts the request input with the chosen cipher
func (app *App) Run(req Request) (string, error) {
	cipher := lo.Ternary(req.Cipher == "", CipherSDES, strings.ToLower(req.Cipher))
	app.Log.WithFields(logrus.Fields{"cipher": cipher, "decrypt": req.Decrypt}).Debug("running request")

	switch cipher {
	case CipherSDES:
		return app.runSDES(req)
	case CipherOTP:
		if req.Decrypt {
			return otp.Decrypt(req.Input, req.Key)
		}
		return otp.Encrypt(req.Input, req.Key)
	case CipherAES256, CipherRSA:
		return "", errs.New(errs.ConfigError, "%s %s", cipher, app.Tr.NotImplemented)
	}

	return "", errs.New(errs.ConfigError, "%s '%s'", app.Tr.UnknownCipher, req.Cipher)
}

func (app *App) runSDES(req Request) (string, error) {
	sdesConfig, err := app.SDESConfig(req.SDES)
	if err != nil {
		return "", err
	}

	ivSource := bbs.NewGenerator(app.Log, bbs.NewFileTable(app.Config.PrimeTablePath()))
	cipher, err := sdes.NewCipher(app.Log, sdesConfig, ivSource)
	if err != nil {
		return "", err
	}

	if req.Decrypt {
		return cipher.Decrypt(req.Input, req.Key)
	}
	return cipher.Encrypt(req.Input, req.Key)
}

// SDESConfig parses the given parameter string, falling back to the user config
func (app *App) SDESConfig(parameters string) (sdes.Config, error) {
	if parameters == "" {
		parameters = app.Config.UserConfig.SDES.String()
	}
	return sdes.ParseConfig(parameters)
}

// Describe renders the resolved SDES parameters as a table
func (app *App) Describe(parameters string) (string, error) {
	sdesConfig, err := app.SDESConfig(parameters)
	if err != nil {
		return "", err
	}

	header := []string{
		utils.ColoredString(app.Tr.ParameterColumn, color.FgBlue),
		utils.ColoredString(app.Tr.ValueColumn, color.FgBlue),
	}
	return utils.RenderTable(append([][]string{header}, sdesConfig.Rows()...))
}

// GeneratePrimes writes the first count primes to path, or to the configured
// prime table when path is empty
func (app *App) GeneratePrimes(path string, count int) (string, error) {
	if count <= 0 {
		return "", errs.New(errs.InputError, "prime count must be positive, got %d", count)
	}
	if path == "" {
		path = app.Config.PrimeTablePath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := bbs.WritePrimes(file, count); err != nil {
		return "", err
	}
	app.Log.WithField("path", path).Infof("wrote %d primes", count)

	return fmt.Sprintf("%d %s %s", count, app.Tr.PrimesWritten, path), nil
}

// KnownError takes an error and tells us whether it's an error that we know about where we can print a nicely formatted version of it rather than panicking with a stack trace
func (app *App) KnownError(err error) (string, bool) {
	kind, ok := errs.KindOf(err)
	if !ok {
		return "", false
	}

	titles := map[errs.Kind]string{
		errs.ConfigError:   app.Tr.ConfigErrorTitle,
		errs.KeyError:      app.Tr.KeyErrorTitle,
		errs.InputError:    app.Tr.InputErrorTitle,
		errs.EncodingError: app.Tr.EncodingErrorTitle,
		errs.IVSourceError: app.Tr.IVSourceErrorTitle,
	}

	message := fmt.Sprintf("%s: %s", titles[kind], errs.MessageOf(err))
	if kind == errs.IVSourceError {
		message += "\n" + app.Tr.PrimeTableHint
	}
	return message, true
}
