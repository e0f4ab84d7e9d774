package catalog

import "strings"

// internationalCrimesTerms denote international crimes or severe human
// rights violations. Work on such matters requires at least Tier3.
var internationalCrimesTerms = []string{
	"genocide",
	"völkermord",
	"crimes against humanity",
	"verbrechen gegen die menschlichkeit",
	"war crime",
	"kriegsverbrechen",
	"völkerstraf",
	"vstgb",
	"torture",
	"folter",
	"enforced disappearance",
	"verschwindenlassen",
	"extrajudicial",
	"jus cogens",
	"slavery",
}

// MinimumInternationalCrimesTier is the lowest fee group accepted for work
// on international crimes
const MinimumInternationalCrimesTier = Tier3

// MentionsInternationalCrimes reports whether any of the texts uses
// international-crimes terminology. Matching is case-insensitive.
func MentionsInternationalCrimes(texts ...string) bool {
	for _, text := range texts {
		lower := strings.ToLower(text)
		for _, term := range internationalCrimesTerms {
			if strings.Contains(lower, term) {
				return true
			}
		}
	}
	return false
}
