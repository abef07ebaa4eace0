// Package input matches typed prompt text against preset labels.
package input

import "strings"

// MatchingPresets returns the labels that start with the typed text, ignoring case.
func MatchingPresets(input string, labels []string) []string {
	prefix := strings.ToLower(strings.TrimSpace(input))
	if prefix == "" {
		return nil
	}
	matches := make([]string, 0, len(labels))
	for _, label := range labels {
		if strings.HasPrefix(strings.ToLower(label), prefix) {
			matches = append(matches, label)
		}
	}
	return matches
}

// Autocomplete returns the first matching label and whether it exists.
func Autocomplete(input string, labels []string) (string, bool) {
	matches := MatchingPresets(input, labels)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0], true
}

// ExactPreset returns the label equal to input, ignoring case and surrounding space.
func ExactPreset(input string, labels []string) (string, bool) {
	typed := strings.TrimSpace(input)
	for _, label := range labels {
		if strings.EqualFold(label, typed) {
			return label, true
		}
	}
	return "", false
}
