package i18n

func germanSet() TranslationSet {
	return TranslationSet{
		ErrorTitle:         "Fehler",
		ErrorOccurred:      "Ein Fehler ist aufgetreten! Mit --debug erneut ausführen und development.log im Konfigurationsverzeichnis prüfen",
		ConfigErrorTitle:   "Ungültige Verschlüsselungskonfiguration",
		KeyErrorTitle:      "Ungültiger Schlüssel",
		InputErrorTitle:    "Ungültige Eingabe",
		EncodingErrorTitle: "Kodierung fehlgeschlagen",
		IVSourceErrorTitle: "Initialisierungsvektor konnte nicht erzeugt werden",
		PrimeTableHint:     "Primzahltabelle mit `keepitsafe primes --out <pfad>` erzeugen",
		NotImplemented:     "ist nicht implementiert",
		UnknownCipher:      "unbekanntes Verfahren",
		PrimesWritten:      "Primzahlen geschrieben nach",
		ParameterColumn:    "Parameter",
		ValueColumn:        "Wert",
	}
}
