package diagnosis

// Result is the outcome of a diagnosis.
type Result struct {
	// Label is the likelihood category.
	Label string `json:"label" yaml:"label"`
	// Tier is the presentation severity derived from Label.
	Tier Tier `json:"tier" yaml:"tier"`
	// Rule is the ID of the rule that produced the result.
	Rule string `json:"rule" yaml:"rule"`
	// Explanations holds the reasoning, normally exactly one sentence.
	Explanations []string `json:"explanations" yaml:"explanations"`
}
