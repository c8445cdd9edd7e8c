package extract

import "strings"

// UnwantedPhrases are marketing blurbs the generator injects into field values
var UnwantedPhrases = []string{
	"You should click here to find out if your SSN is online.",
	"This is a real email address. Click here to activate it!",
}

// RemoveUnwantedPhrases strips every occurrence of the known phrases
// (exact, case-sensitive). Whitespace is normalized only when something was
// removed; otherwise text is returned unchanged.
func RemoveUnwantedPhrases(text string) string {
	removed := false
	for _, phrase := range UnwantedPhrases {
		if strings.Contains(text, phrase) {
			text = strings.ReplaceAll(text, phrase, "")
			removed = true
		}
	}

	if !removed {
		return text
	}
	return collapseWhitespace(text)
}
