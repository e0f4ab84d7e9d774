package catalog

import "strings"

// UnitKind groups billing units with the same meaning
type UnitKind string

const (
	UnitHours    UnitKind = "hours"
	UnitDays     UnitKind = "days"
	UnitDistance UnitKind = "distance"
	UnitPieces   UnitKind = "pieces"
	UnitPages    UnitKind = "pages"
	UnitFlat     UnitKind = "flat"
	UnitPeriod   UnitKind = "period"
	UnitUsage    UnitKind = "usage"
)

// unitVocabulary maps normalised spellings to their kind.
// English and German spellings are both accepted.
var unitVocabulary = map[string]UnitKind{
	"h": UnitHours, "hr": UnitHours, "hrs": UnitHours, "hour": UnitHours,
	"std": UnitHours, "stunde": UnitHours, "stunden": UnitHours,

	"d": UnitDays, "day": UnitDays, "tag": UnitDays, "tage": UnitDays,

	"km": UnitDistance, "kilometer": UnitDistance, "kilometre": UnitDistance, "mile": UnitDistance,

	"pc": UnitPieces, "pcs": UnitPieces, "piece": UnitPieces, "stk": UnitPieces,
	"stück": UnitPieces, "item": UnitPieces, "unit": UnitPieces, "document": UnitPieces,
	"copy": UnitPieces,

	"page": UnitPages, "seite": UnitPages, "seiten": UnitPages, "word": UnitPages,

	"flat": UnitFlat, "lump sum": UnitFlat, "pauschal": UnitFlat, "pauschale": UnitFlat,

	"month": UnitPeriod, "monat": UnitPeriod, "monate": UnitPeriod, "week": UnitPeriod, "year": UnitPeriod,

	"usage": UnitUsage,
}

// ClassifyUnit loosely matches a unit against the known vocabulary.
// Case, surrounding whitespace, trailing dots and plural "s" are ignored.
func ClassifyUnit(unit string) (UnitKind, bool) {
	u := strings.ToLower(strings.TrimSpace(unit))
	u = strings.TrimRight(u, ".")
	if u == "" {
		return "", false
	}
	if k, ok := unitVocabulary[u]; ok {
		return k, true
	}
	if k, ok := unitVocabulary[singular(u)]; ok {
		return k, true
	}
	// "hours (estimated)" or "km one way"
	if i := strings.IndexAny(u, " (/"); i > 0 {
		return ClassifyUnit(u[:i])
	}
	return "", false
}

// singular strips an English plural ending: "copies" → "copy", "pages" → "page"
func singular(u string) string {
	if strings.HasSuffix(u, "ies") && len(u) > 3 {
		return strings.TrimSuffix(u, "ies") + "y"
	}
	return strings.TrimSuffix(u, "s")
}

// IsHourUnit reports whether unit denotes working hours
func IsHourUnit(unit string) bool {
	k, ok := ClassifyUnit(unit)
	return ok && k == UnitHours
}
