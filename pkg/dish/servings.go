package dish

import (
	"regexp"
	"strconv"
	"strings"
)

const DefaultServings = 4

var servingsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)serves\s+(\d+)`),
	regexp.MustCompile(`(?i)(\d+)\s*(?:servings?|persons?|people|pax)`),
	regexp.MustCompile(`(?i)(?:good|enough)\s+for\s+(\d+)`),
	regexp.MustCompile(`(?i)para\s+sa\s+(\d+)`),
}

// EstimateServings pulls a serving count out of free text, trying each
// pattern in order. Texts mentioning a family or a party bump the default.
func EstimateServings(text string) int {
	for _, pattern := range servingsPatterns {
		if match := pattern.FindStringSubmatch(text); match != nil {
			if n, err := strconv.Atoi(match[1]); err == nil && n > 0 {
				return n
			}
		}
	}

	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "party") || strings.Contains(lower, "fiesta") || strings.Contains(lower, "handaan"):
		return 12
	case strings.Contains(lower, "family") || strings.Contains(lower, "pamilya"):
		return 6
	case strings.Contains(lower, "solo") || strings.Contains(lower, "single"):
		return 1
	}

	return DefaultServings
}

// ScaleServings adjusts a quantity proportionally from one head count to
// another. Non-positive inputs leave the quantity unchanged.
func ScaleServings(quantity float64, fromPeople, toPeople int) float64 {
	if fromPeople <= 0 || toPeople <= 0 {
		return quantity
	}
	return quantity * float64(toPeople) / float64(fromPeople)
}
