package sentiment

import "strings"

// Strong markers force neutral on their own. Matched as whole words only, so
// "how" in "showcase" does not count.
var strongNeutralMarkers = []string{
	"how", "what", "when", "where", "why", "explain", "describe",
}

// Weak markers are technical/process vocabulary. Matched as substrings; at
// least two distinct markers must appear for the signal to fire.
var weakNeutralMarkers = []string{
	"process", "method", "system", "algorithm", "mechanism",
	"function", "works", "operates", "consists", "comprises",
	"includes", "definition", "technical", "scientific",
	"data", "information", "computation", "analysis",
}

// NeutralKeywordSignal reports whether the text reads as a factual or
// technical prompt that should be classified neutral regardless of what the
// statistical classifier says. Pure function of the input.
func NeutralKeywordSignal(text string) bool {
	lower := strings.ToLower(text)

	words := strings.Fields(lower)
	for _, marker := range strongNeutralMarkers {
		for _, w := range words {
			if w == marker {
				return true
			}
		}
	}

	count := 0
	for _, marker := range weakNeutralMarkers {
		if strings.Contains(lower, marker) {
			count++
		}
	}
	return count >= 2
}
