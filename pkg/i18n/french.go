package i18n

func frenchSet() TranslationSet {
	return TranslationSet{
		ErrorTitle:         "Erreur",
		ErrorOccurred:      "Une erreur est survenue ! Relancez avec --debug et consultez development.log dans le dossier de configuration",
		ConfigErrorTitle:   "Configuration de chiffrement invalide",
		KeyErrorTitle:      "Clé invalide",
		InputErrorTitle:    "Entrée invalide",
		EncodingErrorTitle: "Échec de l'encodage",
		IVSourceErrorTitle: "Impossible de calculer le vecteur d'initialisation",
		PrimeTableHint:     "générez une table de nombres premiers avec `keepitsafe primes --out <chemin>`",
		NotImplemented:     "n'est pas implémenté",
		UnknownCipher:      "chiffrement inconnu",
		PrimesWritten:      "nombres premiers écrits dans",
	}
}
