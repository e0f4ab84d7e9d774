package catalog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// StatutoryTier is one of the four fee groups of § 9 JVEG.
// Tiers increase with the expertise a task requires.
type StatutoryTier int

const (
	TierNone StatutoryTier = iota
	Tier1
	Tier2
	Tier3
	Tier4
)

// StatutoryScheme is the short name of the statute the tiers come from
const StatutoryScheme = "JVEG"

var tierRates = map[StatutoryTier]decimal.Decimal{
	Tier1: decimal.NewFromInt(68),
	Tier2: decimal.NewFromInt(95),
	Tier3: decimal.NewFromInt(131),
	Tier4: decimal.NewFromInt(155),
}

var tierDescriptions = map[StatutoryTier]string{
	Tier1: "Transcription and routine evidence handling",
	Tier2: "Structured documentation and interview analysis",
	Tier3: "Specialist legal and forensic assessment",
	Tier4: "Expert opinion on international crimes",
}

var (
	tierPattern   = regexp.MustCompile(`(?i)\b(?:honorargruppe|hg)\s*([1-4])\b`)
	schemePattern = regexp.MustCompile(`(?i)\bjveg\b`)
)

// Tiers returns all tiers in ascending order
func Tiers() []StatutoryTier {
	return []StatutoryTier{Tier1, Tier2, Tier3, Tier4}
}

// IsValid checks if the tier is one of the four fee groups
func (t StatutoryTier) IsValid() bool {
	_, ok := tierRates[t]
	return ok
}

// Rate returns the hourly rate of the tier, zero for TierNone
func (t StatutoryTier) Rate() decimal.Decimal {
	return tierRates[t]
}

// Identifier returns the tier name as cited, e.g. "Honorargruppe 3"
func (t StatutoryTier) Identifier() string {
	if !t.IsValid() {
		return ""
	}
	return "Honorargruppe " + strconv.Itoa(int(t))
}

// Citation returns the full legal citation of the tier
func (t StatutoryTier) Citation() string {
	if !t.IsValid() {
		return ""
	}
	return fmt.Sprintf("§ 9 Abs. 1 %s, %s", StatutoryScheme, t.Identifier())
}

// Description returns the kind of work the tier covers
func (t StatutoryTier) Description() string {
	return tierDescriptions[t]
}

// String returns string representation
func (t StatutoryTier) String() string {
	if !t.IsValid() {
		return "none"
	}
	return "tier" + strconv.Itoa(int(t))
}

// StatutoryRates returns the permitted rates in ascending order
func StatutoryRates() []decimal.Decimal {
	rates := make([]decimal.Decimal, 0, len(tierRates))
	for _, t := range Tiers() {
		rates = append(rates, t.Rate())
	}
	return rates
}

// TierForRate returns the tier whose rate equals rate
func TierForRate(rate decimal.Decimal) (StatutoryTier, bool) {
	for _, t := range Tiers() {
		if t.Rate().Equal(rate) {
			return t, true
		}
	}
	return TierNone, false
}

// ParseTier extracts the tier identifier from a legal citation
func ParseTier(text string) (StatutoryTier, bool) {
	m := tierPattern.FindStringSubmatch(text)
	if m == nil {
		return TierNone, false
	}
	n, _ := strconv.Atoi(m[1])
	return StatutoryTier(n), true
}

// ReferencesStatutoryScheme reports whether text cites the statute by name
func ReferencesStatutoryScheme(text string) bool {
	return schemePattern.MatchString(text)
}

// CitesStatutoryScheme reports whether text invokes the statute, either by
// name or through a fee group. Tasks citing it are billed at tier rates.
func CitesStatutoryScheme(text string) bool {
	if ReferencesStatutoryScheme(text) {
		return true
	}
	_, ok := ParseTier(text)
	return ok
}

// FormatRates renders the permitted rates, e.g. "68.00, 95.00, 131.00, 155.00"
func FormatRates() string {
	parts := make([]string, 0, len(tierRates))
	for _, r := range StatutoryRates() {
		parts = append(parts, r.StringFixed(2))
	}
	return strings.Join(parts, ", ")
}
