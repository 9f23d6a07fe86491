package entity

import "strings"

type Intent string

const (
	IntentHigh   Intent = "High"
	IntentMedium Intent = "Medium"
	IntentLow    Intent = "Low"
)

var intentPoints = map[Intent]int{
	IntentHigh:   50,
	IntentMedium: 30,
	IntentLow:    10,
}

// ParseIntent matches a label case-insensitively and returns it in title case.
func ParseIntent(s string) (Intent, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return IntentHigh, true
	case "medium":
		return IntentMedium, true
	case "low":
		return IntentLow, true
	}
	return "", false
}

// Points maps an intent to its score contribution. Unknown labels count as Medium.
func (i Intent) Points() int {
	if p, ok := intentPoints[i]; ok {
		return p
	}
	return intentPoints[IntentMedium]
}

// ClassificationSource records which path produced a classification.
type ClassificationSource string

const (
	SourceModel     ClassificationSource = "model"
	SourceHeuristic ClassificationSource = "heuristic"
)

// Classification is the intent classifier's verdict for one lead.
type Classification struct {
	Intent    Intent               `json:"intent"`
	Reasoning string               `json:"reasoning"`
	Source    ClassificationSource `json:"-"`
}
