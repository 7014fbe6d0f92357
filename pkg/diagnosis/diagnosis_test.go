package diagnosis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/machakos/malaria/pkg/diagnosis"
	"github.com/machakos/malaria/pkg/extract"
	"github.com/machakos/malaria/pkg/symptom"
)

func TestDiagnose_Scenarios(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		set       symptom.Set
		wantLabel string
		wantTier  diagnosis.Tier
		wantRule  string
	}{
		"nothing selected": {
			set:       symptom.NewSet(),
			wantLabel: diagnosis.LabelUnlikely,
			wantTier:  diagnosis.TierNegative,
			wantRule:  diagnosis.RuleUnlikely,
		},
		"coma": {
			set:       symptom.NewSet(symptom.Coma),
			wantLabel: diagnosis.LabelSevere,
			wantTier:  diagnosis.TierPositive,
			wantRule:  diagnosis.RuleSevere,
		},
		"classic triad with fatigue": {
			set:       symptom.NewSet(symptom.Fever, symptom.Chills, symptom.Sweating, symptom.Fatigue),
			wantLabel: diagnosis.LabelHigh,
			wantTier:  diagnosis.TierPositive,
			wantRule:  diagnosis.RuleClassicTriad,
		},
		"fever with two companions": {
			set:       symptom.NewSet(symptom.Fever, symptom.Headache, symptom.Nausea, symptom.Vomiting),
			wantLabel: diagnosis.LabelModerateToHigh,
			wantTier:  diagnosis.TierPositive,
			wantRule:  diagnosis.RuleFeverMultiple,
		},
		"chills without fever": {
			set:       symptom.NewSet(symptom.Chills),
			wantLabel: diagnosis.LabelLow,
			wantTier:  diagnosis.TierNegative,
			wantRule:  diagnosis.RuleNoFeverGeneral,
		},
		"fever headache weakness": {
			set:       symptom.NewSet(symptom.Fever, symptom.Headache, symptom.Weakness),
			wantLabel: diagnosis.LabelModerate,
			wantTier:  diagnosis.TierUncertain,
			wantRule:  diagnosis.RuleFeverHeadacheMalaise,
		},
		"fever chills": {
			set:       symptom.NewSet(symptom.Fever, symptom.Chills),
			wantLabel: diagnosis.LabelModerate,
			wantTier:  diagnosis.TierUncertain,
			wantRule:  diagnosis.RuleFeverChills,
		},
		"fever abdominal pain": {
			set:       symptom.NewSet(symptom.Fever, symptom.AbdominalPain),
			wantLabel: diagnosis.LabelPossibleGI,
			wantTier:  diagnosis.TierUncertain,
			wantRule:  diagnosis.RuleFeverGI,
		},
		"fever only": {
			set:       symptom.NewSet(symptom.Fever),
			wantLabel: diagnosis.LabelPossibleFever,
			wantTier:  diagnosis.TierUncertain,
			wantRule:  diagnosis.RuleFeverOnly,
		},
		"symptoms outside every rule": {
			set:       symptom.NewSet(symptom.Cough, symptom.DarkUrine, symptom.HeadSpinning),
			wantLabel: diagnosis.LabelUnlikely,
			wantTier:  diagnosis.TierNegative,
			wantRule:  diagnosis.RuleUnlikely,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := diagnosis.Diagnose(tc.set)
			assert.Equal(t, tc.wantLabel, got.Label)
			assert.Equal(t, tc.wantTier, got.Tier)
			assert.Equal(t, tc.wantRule, got.Rule)
			assert.Len(t, got.Explanations, 1)
		})
	}
}

func TestDiagnose_FromText(t *testing.T) {
	t.Parallel()

	det := extract.Extract("They have a high fever and feel very tired")
	require.Equal(t, []symptom.Symptom{symptom.Fever, symptom.Fatigue}, det.Symptoms.Present())

	got := diagnosis.Diagnose(det.Symptoms)
	assert.Equal(t, diagnosis.LabelPossibleFever, got.Label)
	assert.Equal(t, diagnosis.TierUncertain, got.Tier)
}

func TestDiagnose_SevereWins(t *testing.T) {
	t.Parallel()

	all := symptom.NewSet(symptom.All...)
	assert.Equal(t, diagnosis.LabelSevere, diagnosis.Diagnose(all).Label)

	for _, s := range []symptom.Symptom{
		symptom.Convulsions, symptom.Coma, symptom.ImpairedConsciousness,
		symptom.RapidBreathing, symptom.Anemia, symptom.Jaundice,
	} {
		set := symptom.NewSet(symptom.Fever, symptom.Chills, symptom.Sweating, symptom.Fatigue, s)
		assert.Equal(t, diagnosis.LabelSevere, diagnosis.Diagnose(set).Label, s)
	}
}

func TestDiagnose_Idempotent(t *testing.T) {
	t.Parallel()

	set := symptom.NewSet(symptom.Fever, symptom.Vomiting)
	assert.Equal(t, diagnosis.Diagnose(set), diagnosis.Diagnose(set))
}

// involved are the non-severe symptoms referenced by at least one rule.
var involved = []symptom.Symptom{
	symptom.Fever, symptom.Chills, symptom.Sweating, symptom.Fatigue,
	symptom.MusclePain, symptom.BodyAches, symptom.Headache, symptom.Nausea,
	symptom.Vomiting, symptom.JointPain, symptom.LossOfAppetite, symptom.Diarrhea,
	symptom.GeneralMalaise, symptom.Weakness, symptom.AbdominalPain,
}

func referenceLabel(s symptom.Set) string {
	h := s.Has

	switch {
	case h(symptom.Convulsions) || h(symptom.Coma) || h(symptom.ImpairedConsciousness) ||
		h(symptom.RapidBreathing) || h(symptom.Anemia) || h(symptom.Jaundice):
		return diagnosis.LabelSevere
	case h(symptom.Fever) && h(symptom.Chills) && h(symptom.Sweating) &&
		(h(symptom.Fatigue) || h(symptom.MusclePain) || h(symptom.BodyAches)):
		return diagnosis.LabelHigh
	case h(symptom.Fever) && s.Count(symptom.Headache, symptom.Nausea, symptom.Vomiting,
		symptom.JointPain, symptom.LossOfAppetite, symptom.Diarrhea) >= 2:
		return diagnosis.LabelModerateToHigh
	case h(symptom.Fever) && h(symptom.Headache) && (h(symptom.GeneralMalaise) || h(symptom.Weakness)):
		return diagnosis.LabelModerate
	case h(symptom.Fever) && h(symptom.Chills):
		return diagnosis.LabelModerate
	case h(symptom.Fever) && (h(symptom.Diarrhea) || h(symptom.AbdominalPain) || h(symptom.Vomiting)):
		return diagnosis.LabelPossibleGI
	case h(symptom.Fever):
		return diagnosis.LabelPossibleFever
	case !h(symptom.Fever) && (h(symptom.Chills) || h(symptom.Sweating) || h(symptom.Fatigue) ||
		h(symptom.MusclePain) || h(symptom.JointPain) || h(symptom.BodyAches) || h(symptom.GeneralMalaise)):
		return diagnosis.LabelLow
	}

	return diagnosis.LabelUnlikely
}

func TestDiagnose_MatchesReference(t *testing.T) {
	t.Parallel()

	if testing.Short() {
		t.Skip("exhaustive comparison")
	}

	engine := diagnosis.Default()

	for mask := range 1 << len(involved) {
		var set symptom.Set

		for i, s := range involved {
			if mask&(1<<i) != 0 {
				set = set.With(s)
			}
		}

		got := engine.Diagnose(set)
		if !assert.Equal(t, referenceLabel(set), got.Label, set.String()) {
			return
		}

		assert.Equal(t, diagnosis.TierFor(got.Label), got.Tier)
	}
}

func TestDiagnose_Concurrent(t *testing.T) {
	t.Parallel()

	sets := []symptom.Set{
		symptom.NewSet(),
		symptom.NewSet(symptom.Coma),
		symptom.NewSet(symptom.Fever, symptom.Chills),
		symptom.NewSet(symptom.Fatigue),
	}

	want := make([]diagnosis.Result, len(sets))
	for i, s := range sets {
		want[i] = diagnosis.Diagnose(s)
	}

	done := make(chan struct{})
	for range 8 {
		go func() {
			defer func() { done <- struct{}{} }()

			for i, s := range sets {
				assert.Equal(t, want[i], diagnosis.Diagnose(s))
			}
		}()
	}

	for range 8 {
		<-done
	}
}
