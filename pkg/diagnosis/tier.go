package diagnosis

import (
	"fmt"
	"strings"
)

// Tier is the presentation severity of a label.
type Tier string

const (
	// TierPositive marks labels that indicate malaria is likely.
	TierPositive Tier = "positive"
	// TierUncertain marks labels that need further evaluation.
	TierUncertain Tier = "uncertain"
	// TierNegative marks everything else.
	TierNegative Tier = "negative"
)

// AllTiers lists every tier.
var AllTiers = []string{
	string(TierPositive),
	string(TierUncertain),
	string(TierNegative),
}

// TierFor derives the tier of a label from its wording. The substrings are
// part of the output contract and must not change:
//
//   - "High Probability" or "Severe Malaria": positive
//   - "Moderate Probability", "Possible Malaria" or "Requires Medical Evaluation": uncertain
//   - anything else: negative
//
// Note that "Moderate to High Probability of Malaria" is positive.
func TierFor(label string) Tier {
	switch {
	case strings.Contains(label, "High Probability"),
		strings.Contains(label, "Severe Malaria"):
		return TierPositive
	case strings.Contains(label, "Moderate Probability"),
		strings.Contains(label, "Possible Malaria"),
		strings.Contains(label, "Requires Medical Evaluation"):
		return TierUncertain
	}

	return TierNegative
}

// ParseTier parses a tier name.
func ParseTier(s string) (Tier, error) {
	switch t := Tier(strings.ToLower(s)); t {
	case TierPositive, TierUncertain, TierNegative:
		return t, nil
	}

	return "", fmt.Errorf("unknown tier %q", s)
}
