package i18n

import (
	"fmt"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestLog() *logrus.Entry {
	log := logrus.New()
	log.Out = io.Discard
	return log.WithField("test", "test")
}

func TestDetectLanguage(t *testing.T) {
	type scenario struct {
		langDetector func() (string, error)
		expected     string
	}

	scenarios := []scenario{
		{
			func() (string, error) {
				return "", fmt.Errorf("An error occurred")
			},
			"C",
		},
		{
			func() (string, error) {
				return "en", nil
			},
			"en",
		},
		{
			func() (string, error) {
				return "de-AT", nil
			},
			"de",
		},
	}

	for _, s := range scenarios {
		assert.EqualValues(t, s.expected, detectLanguage(s.langDetector))
	}
}

func TestNewTranslationSetMergesOverEnglish(t *testing.T) {
	tr := NewTranslationSet(newTestLog(), FR)

	assert.Equal(t, "Erreur", tr.ErrorTitle)
	// the french set has no column names so the english ones stay
	assert.Equal(t, "parameter", tr.ParameterColumn)
}

func TestNewTranslationSetFromConfig(t *testing.T) {
	tr, err := NewTranslationSetFromConfig(newTestLog(), DE)
	assert.NoError(t, err)
	assert.Equal(t, "Fehler", tr.ErrorTitle)

	tr, err = NewTranslationSetFromConfig(newTestLog(), "xx")
	assert.Error(t, err)
	assert.Equal(t, "Error", tr.ErrorTitle)
}

func TestEveryLanguageHasAnErrorTitle(t *testing.T) {
	for language, set := range GetTranslationSets() {
		assert.NotEmpty(t, set.ErrorTitle, language)
	}
}
