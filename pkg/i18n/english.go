package i18n

// TranslationSet is a set of localised strings for a given language
type TranslationSet struct {
	ErrorTitle         string
	ErrorOccurred      string
	ConfigErrorTitle   string
	KeyErrorTitle      string
	InputErrorTitle    string
	EncodingErrorTitle string
	IVSourceErrorTitle string
	PrimeTableHint     string
	NotImplemented     string
	UnknownCipher      string
	PrimesWritten      string
	ParameterColumn    string
	ValueColumn        string
}

func englishSet() TranslationSet {
	return TranslationSet{
		ErrorTitle:         "Error",
		ErrorOccurred:      "An error occurred! Run again with --debug and check development.log in the config directory",
		ConfigErrorTitle:   "Invalid cipher configuration",
		KeyErrorTitle:      "Invalid key",
		InputErrorTitle:    "Invalid input",
		EncodingErrorTitle: "Encoding failed",
		IVSourceErrorTitle: "Could not derive the initialisation vector",
		PrimeTableHint:     "generate a prime table with `keepitsafe primes --out <path>`",
		NotImplemented:     "is not implemented",
		UnknownCipher:      "unknown cipher",
		PrimesWritten:      "primes written to",
		ParameterColumn:    "parameter",
		ValueColumn:        "value",
	}
}
