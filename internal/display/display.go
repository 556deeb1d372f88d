// Package display provides human-readable names for machine codes.
//
// Rule: code is for machines, words are for humans.
// Use these functions in CLI output, markdown reports, logs, and docs.
// Keep raw codes for TSV fields, map keys, and equality comparisons.
package display

import "strings"

// --- Difficulty Labels ---

var difficulties = map[string]string{
	"v_easy": "Very Easy",
	"easy":   "Easy",
	"medium": "Medium",
	"hard":   "Hard",
	"v_hard": "Very Hard",
}

// Difficulty returns the human-readable name for a difficulty label.
// Unknown labels are returned as-is.
func Difficulty(label string) string {
	if name, ok := difficulties[label]; ok {
		return name
	}
	return label
}

// DifficultyWithCode returns "Very Easy (v_easy)" format.
func DifficultyWithCode(label string) string {
	if name, ok := difficulties[label]; ok {
		return name + " (" + label + ")"
	}
	return label
}

// LabelScale converts an ordered slice of difficulty labels to a
// human-readable scale. ["v_easy", "medium"] -> "Very Easy -> Medium".
func LabelScale(labels []string) string {
	names := make([]string, len(labels))
	for i, l := range labels {
		names[i] = Difficulty(l)
	}
	return strings.Join(names, " → ")
}

// --- Strategies ---

var strategies = map[string]string{
	"freq_raw":  "Raw Frequency",
	"coverage":  "Word Coverage",
	"info_gain": "Information Gain",
}

// Strategy returns the human-readable name for a strategy code.
// "freq_raw" -> "Raw Frequency".
func Strategy(code string) string {
	if name, ok := strategies[code]; ok {
		return name
	}
	return code
}

// StrategyWithCode returns "Raw Frequency (freq_raw)" format.
func StrategyWithCode(code string) string {
	if name, ok := strategies[code]; ok {
		return name + " (" + code + ")"
	}
	return code
}

// --- Metric Columns ---

var metricColumns = map[string]string{
	"wrong_freq_raw":     "Wrong Guesses (Raw Frequency)",
	"wrong_coverage":     "Wrong Guesses (Word Coverage)",
	"wrong_info_gain":    "Wrong Guesses (Information Gain)",
	"rare_score":         "Letter Rarity",
	"dup_factor":         "Duplication Factor",
	"structural_score":   "Structural Difficulty",
	"mean_wrong_guesses": "Mean Wrong Guesses",
}

// MetricColumn returns the human-readable name for a report column.
// "wrong_coverage" -> "Wrong Guesses (Word Coverage)".
func MetricColumn(code string) string {
	if name, ok := metricColumns[code]; ok {
		return name
	}
	return code
}

// MetricColumnWithCode returns "Letter Rarity (rare_score)" format.
func MetricColumnWithCode(code string) string {
	if name, ok := metricColumns[code]; ok {
		return name + " (" + code + ")"
	}
	return code
}

// --- Reclassification Changes ---

var changes = map[string]string{
	"new":     "New",
	"same":    "Unchanged",
	"changed": "Moved",
}

// Change returns the human-readable name for a reclassification outcome.
// "changed" -> "Moved".
func Change(code string) string {
	if name, ok := changes[code]; ok {
		return name
	}
	return code
}
