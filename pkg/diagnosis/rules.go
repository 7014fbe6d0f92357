package diagnosis

import (
	"github.com/machakos/malaria/pkg/rule"
)

// Rule IDs of the built-in rules, in evaluation order.
const (
	RuleSevere               = "severe"
	RuleClassicTriad         = "classic-triad"
	RuleFeverMultiple        = "fever-multiple"
	RuleFeverHeadacheMalaise = "fever-headache-malaise"
	RuleFeverChills          = "fever-chills"
	RuleFeverGI              = "fever-gi"
	RuleFeverOnly            = "fever-only"
	RuleNoFeverGeneral       = "no-fever-general"
	RuleUnlikely             = "unlikely"
)

// DefaultRules returns the built-in rule list in evaluation order. The last
// rule always matches.
func DefaultRules() []*rule.Rule {
	return []*rule.Rule{
		rule.MustNew(RuleSevere,
			`s.convulsions || s.coma || s.impaired_consciousness || s.rapid_breathing || s.anemia || s.jaundice`,
			LabelSevere,
			"Presence of severe symptoms (like convulsions, coma, impaired consciousness, rapid breathing, "+
				"severe anemia, or jaundice) indicates a high probability of severe malaria. "+
				"This requires immediate medical attention.",
		),
		rule.MustNew(RuleClassicTriad,
			`s.fever && s.chills && s.sweating && (s.fatigue || s.muscle_pain || s.body_aches)`,
			LabelHigh,
			"The classic malaria triad (fever, chills, sweating) combined with significant fatigue "+
				"or muscle aches strongly suggests malaria.",
		),
		rule.MustNew(RuleFeverMultiple,
			`s.fever && count([s.headache, s.nausea, s.vomiting, s.joint_pain, s.loss_of_appetite, s.diarrhea]) >= 2`,
			LabelModerateToHigh,
			"Fever combined with two or more other common symptoms (like headache, nausea, vomiting, "+
				"joint pain, loss of appetite, or diarrhea) indicates a moderate to high probability of malaria.",
		),
		rule.MustNew(RuleFeverHeadacheMalaise,
			`s.fever && s.headache && (s.general_malaise || s.weakness)`,
			LabelModerate,
			"Fever, headache, and general feeling unwell or weakness are common indicators of malaria.",
		),
		rule.MustNew(RuleFeverChills,
			`s.fever && s.chills`,
			LabelModerate,
			"Fever and chills are strong indicators, even if sweating is not prominent.",
		),
		rule.MustNew(RuleFeverGI,
			`s.fever && (s.diarrhea || s.abdominal_pain || s.vomiting)`,
			LabelPossibleGI,
			"Fever accompanied by gastrointestinal symptoms (diarrhea, abdominal pain, or vomiting) "+
				"suggests possible malaria.",
		),
		rule.MustNew(RuleFeverOnly,
			`s.fever`,
			LabelPossibleFever,
			"Fever is present, which is a primary malaria symptom. Further investigation is recommended "+
				"as fever can be due to many causes.",
		),
		rule.MustNew(RuleNoFeverGeneral,
			`(s.chills || s.sweating || s.fatigue || s.muscle_pain || s.joint_pain || s.body_aches || s.general_malaise) && !s.fever`,
			LabelLow,
			"Malaria is less likely without fever, but other general symptoms are present. "+
				"Consider other diagnoses or atypical malaria presentation. "+
				"Seek medical advice if symptoms persist.",
		),
		rule.MustNew(RuleUnlikely,
			`true`,
			LabelUnlikely,
			"No strong indicators of malaria were selected or detected from your input. "+
				"If you are concerned, please consult a healthcare professional.",
		),
	}
}
