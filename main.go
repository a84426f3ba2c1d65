package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/fatih/color"
	"github.com/integrii/flaggy"
	"github.com/jesseduffield/keepitsafe/pkg/app"
	"github.com/jesseduffield/keepitsafe/pkg/config"
	"github.com/jesseduffield/keepitsafe/pkg/errs"
	"github.com/jesseduffield/keepitsafe/pkg/utils"
	"github.com/jesseduffield/yaml"
	"golang.org/x/term"
)

var (
	commit      string
	version     = "unversioned"
	date        string
	buildSource = "unknown"

	configFlag    = false
	debuggingFlag = false

	cipherName   = app.CipherSDES
	sdesParams   string
	key          string
	input        string
	describeFlag = false

	primeCount = 100000
	primesOut  string
)

func newCipherSubcommand(name, description string) *flaggy.Subcommand {
	subcommand := flaggy.NewSubcommand(name)
	subcommand.Description = description
	subcommand.String(&cipherName, "", "cipher", "One of sdes, otp, aes256, rsa")
	subcommand.String(&sdesParams, "s", "sdes", "SDES parameters: rounds,keySize,blockSize,encoding,mode,p,q e.g. 3,9,12,B6,CBC,643,131")
	subcommand.String(&key, "k", "key", "Binary key for sdes, pad text for otp")
	subcommand.Bool(&describeFlag, "", "describe", "Print the resolved SDES parameters before the output")
	subcommand.AddPositionalValue(&input, "text", 1, true, "The text to encrypt or decrypt")
	return subcommand
}

func main() {
	info := fmt.Sprintf(
		"%s\nDate: %s\nBuildSource: %s\nCommit: %s\nOS: %s\nArch: %s",
		version,
		date,
		buildSource,
		commit,
		runtime.GOOS,
		runtime.GOARCH,
	)

	flaggy.SetName("keepitsafe")
	flaggy.SetDescription("Toy block ciphers for the terminal")
	flaggy.DefaultParser.AdditionalHelpPrepend = "https://github.com/jesseduffield/keepitsafe"

	flaggy.Bool(&configFlag, "c", "config", "Print the current default config")
	flaggy.Bool(&debuggingFlag, "d", "debug", "Log to development.log in the config directory")
	flaggy.SetVersion(info)

	encryptCmd := newCipherSubcommand("encrypt", "Encrypt text")
	decryptCmd := newCipherSubcommand("decrypt", "Decrypt text")

	primesCmd := flaggy.NewSubcommand("primes")
	primesCmd.Description = "Write the prime table used to derive initialisation vectors"
	primesCmd.Int(&primeCount, "n", "count", "Number of primes to write")
	primesCmd.String(&primesOut, "o", "out", "Output file, defaults to the configured prime table")

	flaggy.AttachSubcommand(encryptCmd, 1)
	flaggy.AttachSubcommand(decryptCmd, 1)
	flaggy.AttachSubcommand(primesCmd, 1)

	flaggy.Parse()

	if configFlag {
		var buf bytes.Buffer
		encoder := yaml.NewEncoder(&buf)
		err := encoder.Encode(config.GetDefaultConfig())
		if err != nil {
			log.Fatal(err.Error())
		}
		fmt.Printf("%v\n", buf.String())
		os.Exit(0)
	}

	if !encryptCmd.Used && !decryptCmd.Used && !primesCmd.Used {
		flaggy.ShowHelpAndExit("")
	}

	appConfig, err := config.NewAppConfig("keepitsafe", version, commit, date, buildSource, debuggingFlag)
	if err != nil {
		log.Fatal(err.Error())
	}

	app, err := app.NewApp(appConfig)
	if err == nil {
		err = run(app, encryptCmd.Used, decryptCmd.Used)
	}

	if err != nil {
		if app.Tr == nil {
			log.Fatal(err.Error())
		}

		if errMessage, known := app.KnownError(err); known {
			fmt.Fprintln(os.Stderr, errorTitle(app.Tr.ErrorTitle)+" "+errMessage)
			os.Exit(1)
		}

		stackTrace := errs.WrapError(err).ErrorStack()
		app.Log.Error(stackTrace)

		fmt.Fprintf(os.Stderr, "%s %s\n\n%s\n", errorTitle(app.Tr.ErrorTitle), app.Tr.ErrorOccurred, stackTrace)
		os.Exit(1)
	}
}

func run(a *app.App, encrypt, decrypt bool) error {
	if !encrypt && !decrypt {
		message, err := a.GeneratePrimes(primesOut, primeCount)
		if err != nil {
			return err
		}
		fmt.Println(message)
		return nil
	}

	if describeFlag {
		table, err := a.Describe(sdesParams)
		if err != nil {
			return err
		}
		fmt.Println(table)
	}

	output, err := a.Run(app.Request{
		Decrypt: decrypt,
		Cipher:  cipherName,
		SDES:    sdesParams,
		Key:     key,
		Input:   input,
	})
	if err != nil {
		return err
	}
	fmt.Println(output)
	return nil
}

// errorTitle is only coloured when a person is reading stderr
func errorTitle(title string) string {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return title + ":"
	}
	return utils.ColoredString(title+":", color.FgRed)
}
