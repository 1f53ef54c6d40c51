package services

import (
	"sync"

	"github.com/pemistahl/lingua-go"
)

var (
	languageDetector     lingua.LanguageDetector
	languageDetectorOnce sync.Once
)

// DetectLanguage guesses the ISO 639-1 code of a post body. Detection is best
// effort, unreadable or too-short input just leaves the field empty.
func DetectLanguage(content string) string {
	languageDetectorOnce.Do(func() {
		languageDetector = lingua.NewLanguageDetectorBuilder().
			FromAllSpokenLanguages().
			WithLowAccuracyMode().
			Build()
	})

	if lang, ok := languageDetector.DetectLanguageOf(content); ok {
		return lang.IsoCode639_1().String()
	}
	return ""
}
