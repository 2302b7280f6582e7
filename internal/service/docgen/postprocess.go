package docgen

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	leadingNumberRe = regexp.MustCompile(`^\d+\.\s*`)
	emphasisRe      = regexp.MustCompile(`\*\*|\*`)
	respondentRe    = regexp.MustCompile(`from\s+([^,]+)`)
	stateRe         = regexp.MustCompile(`State of ([^,]+)`)
)

// cleanLines returns the trimmed, non-empty lines of model output with
// emphasis markers removed. Cleanup is strictly per line: line boundaries
// carry the structure that numbering and key parsing depend on, so the raw
// text is never reflowed.
func cleanLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(emphasisRe.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// numberedLines strips any numbering the model produced and renumbers the
// surviving lines from 1. Applying it twice yields the same result.
func numberedLines(raw string) []string {
	lines := cleanLines(raw)
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		item := leadingNumberRe.ReplaceAllString(line, "")
		out = append(out, fmt.Sprintf("%d. %s", i+1, item))
	}
	return out
}

func numberedBlock(raw string) string {
	return strings.Join(numberedLines(raw), "\n")
}

// parseKeyValues scans model output for "Key: value" lines. Only the listed
// keys are recognised; repeated keys keep the last occurrence. Missing keys
// are simply absent from the result.
func parseKeyValues(raw string, keys ...string) map[string]string {
	out := make(map[string]string, len(keys))
	for _, line := range cleanLines(raw) {
		for _, key := range keys {
			prefix := key + ":"
			if strings.HasPrefix(line, prefix) {
				out[key] = strings.TrimSpace(strings.TrimPrefix(line, prefix))
			}
		}
	}
	return out
}

func valueOr(m map[string]string, key, fallback string) string {
	if v, ok := m[key]; ok && v != "" {
		return v
	}
	return fallback
}

// inferRespondent pulls the opposing party out of phrasing like
// "defective phone from Acme Retail, purchased in May".
func inferRespondent(issue string) string {
	if m := respondentRe.FindStringSubmatch(issue); m != nil {
		return strings.TrimSpace(m[1])
	}
	return "Concerned Authority"
}

// pollutionBoard names the pollution control board for environmental RTI
// requests. The state is taken from insight text like "State of Karnataka";
// without one the central board is addressed.
func pollutionBoard(insights string) string {
	if m := stateRe.FindStringSubmatch(insights); m != nil {
		return strings.TrimSpace(m[1]) + " State Pollution Control Board"
	}
	return "Central Pollution Control Board"
}

func isEnvironmental(issue string) bool {
	lower := strings.ToLower(issue)
	return strings.Contains(lower, "pollution") || strings.Contains(lower, "environment")
}

// splitLocation breaks "City, State" input into its parts. A bare value is
// used as the city; the state then falls back per document type (the PIL
// roster reuses the whole value, RTI leaves it blank).
func splitLocation(location string) (city, state string) {
	parts := strings.SplitN(location, ",", 2)
	city = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		state = strings.TrimSpace(parts[1])
	}
	return city, state
}
