// Package classifier implements fall detection over telemetry messages.
package classifier

import (
	"strings"

	"vigia/internal/domain/service"
)

// fallPhrases are the trigger phrases, with and without the accent so
// firmware that strips diacritics still matches.
var fallPhrases = []string{
	"caída detectada",
	"caida detectada",
}

type keywordClassifier struct {
	phrases []string
}

// NewKeywordClassifier builds the phrase-matching fall classifier. Matching
// is case-insensitive substring containment; "brusco" messages are a
// movement-intensity category and never trigger a fall.
func NewKeywordClassifier() service.FallClassifier {
	return &keywordClassifier{phrases: fallPhrases}
}

// Classify reports whether the message contains a fall trigger phrase.
func (c *keywordClassifier) Classify(mensaje string) bool {
	normalized := strings.ToLower(mensaje)
	for _, phrase := range c.phrases {
		if strings.Contains(normalized, phrase) {
			return true
		}
	}

	return false
}
