package services

import (
	"strings"

	"atsb-dashboard/models"
)

// causeRule pairs a cause category with the keywords that select it.
// Rules are evaluated in this order and the first hit wins, so the order
// decides ties (e.g. "runway" + "engine" lands in Mechanical, which is
// checked before Operational).
type causeRule struct {
	label    string
	keywords []string
}

var causeRules = []causeRule{
	{models.CauseCollisionTerrain, []string{"collision with terrain", "controlled flight into terrain", "cfit"}},
	{models.CauseNearCollision, []string{"near collision", "proximity event", "airprox", "midair"}},
	{models.CauseDitching, []string{"ditching", "water"}},
	{models.CauseMechanical, []string{"engine", "landing gear", "rotor", "foreign object", "f.o.d", "indication", "failure"}},
	{models.CauseOperational, []string{"fuel", "runway", "navigation", "weather", "vfr", "imc"}},
}

// ClassifyCause assigns a cause category from combined title+excerpt text.
// Pure function of the text; no match yields "Other / undetermined".
func ClassifyCause(text string) string {
	t := strings.ToLower(text)
	for _, rule := range causeRules {
		for _, kw := range rule.keywords {
			if strings.Contains(t, kw) {
				return rule.label
			}
		}
	}
	return models.CauseOther
}

// ClassifySeverity assigns an injury-outcome bucket from combined
// title+excerpt text, checked most severe first
func ClassifySeverity(text string) string {
	t := strings.ToLower(text)
	switch {
	case strings.Contains(t, "fatal") || strings.Contains(t, "sustained fatal injuries"):
		return models.SeverityFatal
	case strings.Contains(t, "serious injury"):
		return models.SeveritySerious
	case strings.Contains(t, "minor injury") || strings.Contains(t, "injur"):
		return models.SeverityInjury
	case strings.Contains(t, "no injuries") || strings.Contains(t, "no injury"):
		return models.SeverityNoInjury
	default:
		return models.SeverityUnknown
	}
}
