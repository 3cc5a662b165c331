package services

import (
	"regexp"
	"strings"

	"atsb-dashboard/models"
	"atsb-dashboard/utils"
)

// ATSB titles follow a loose "... involving <aircraft>, <location>, on
// <date>" convention; these patterns pull the fields back out of it
var (
	aircraftPattern = regexp.MustCompile(`(?i)involving\s+([^,]+),`)
	locationPattern = regexp.MustCompile(`(?i)(?:near|at|about|off|west of|east of|south of|north of)\s+(.+?),\s+on\s+\d`)
)

// Title tokens scanned in priority order to bucket the operation type
var (
	helicopterModels  = []string{"r44", "aw139", "bell", "s-92"}
	transportAircraft = []string{"airbus", "saab", "boeing", "a380"}
)

// ExtractAircraft returns the aircraft named after "involving" in the title,
// or "Unknown"
func ExtractAircraft(title string) string {
	if m := aircraftPattern.FindStringSubmatch(title); m != nil {
		return utils.CleanText(m[1])
	}
	return models.ValueUnknown
}

// ExtractLocation returns the place following a locative preposition, up to
// the date clause, or "Unknown"
func ExtractLocation(title string) string {
	if m := locationPattern.FindStringSubmatch(title); m != nil {
		return utils.CleanText(m[1])
	}
	return models.ValueUnknown
}

// ExtractOperationType buckets the title into an operation type. Rules are
// checked in order and the first hit wins; General aviation is the default.
func ExtractOperationType(title string) string {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "helicopter") || containsAny(t, helicopterModels):
		return models.OpHelicopter
	case containsAny(t, transportAircraft):
		return models.OpAirTransport
	case strings.Contains(t, "accredited representative"):
		return models.OpInternationalAssistance
	default:
		return models.OpGeneralAviation
	}
}

func containsAny(text string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(text, tok) {
			return true
		}
	}
	return false
}
