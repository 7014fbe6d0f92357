package symptom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Symptom is a known symptom identifier, e.g. "joint_pain".
type Symptom string

const (
	Fever                 Symptom = "fever"
	Headache              Symptom = "headache"
	Chills                Symptom = "chills"
	Fatigue               Symptom = "fatigue"
	Nausea                Symptom = "nausea"
	Vomiting              Symptom = "vomiting"
	JointPain             Symptom = "joint_pain"
	Sweating              Symptom = "sweating"
	MusclePain            Symptom = "muscle_pain"
	Diarrhea              Symptom = "diarrhea"
	AbdominalPain         Symptom = "abdominal_pain"
	Convulsions           Symptom = "convulsions"
	Coma                  Symptom = "coma"
	ImpairedConsciousness Symptom = "impaired_consciousness"
	Anemia                Symptom = "anemia"
	LossOfAppetite        Symptom = "loss_of_appetite"
	Cough                 Symptom = "cough"
	Jaundice              Symptom = "jaundice"
	DarkUrine             Symptom = "dark_urine"
	RapidBreathing        Symptom = "rapid_breathing"
	RapidHeartRate        Symptom = "rapid_heart_rate"
	SpleenEnlargement     Symptom = "spleen_enlargement"
	LiverEnlargement      Symptom = "liver_enlargement"
	HeadSpinning          Symptom = "head_spinning"
	GeneralMalaise        Symptom = "general_malaise"
	BodyAches             Symptom = "body_aches"
	Weakness              Symptom = "weakness"
)

// Count is the number of known symptoms.
const Count = 27

var (
	// ErrUnknownSymptom indicates a name that does not map to any known symptom.
	ErrUnknownSymptom = errors.New("unknown symptom")

	// All lists every known symptom in checklist order.
	All = []Symptom{
		Fever, Headache, Chills, Fatigue, Nausea,
		Vomiting, JointPain, Sweating, MusclePain,
		Diarrhea, AbdominalPain, Convulsions, Coma,
		ImpairedConsciousness, Anemia, LossOfAppetite,
		Cough, Jaundice, DarkUrine, RapidBreathing,
		RapidHeartRate, SpleenEnlargement, LiverEnlargement,
		HeadSpinning, GeneralMalaise,
		BodyAches,
		Weakness,
	}

	index = func() map[Symptom]int {
		m := make(map[Symptom]int, len(All))
		for i, s := range All {
			m[s] = i
		}

		return m
	}()

	titleCaser = cases.Title(language.English)
)

// Names returns the identifiers of all known symptoms in checklist order.
func Names() []string {
	names := make([]string, len(All))
	for i, s := range All {
		names[i] = string(s)
	}

	return names
}

// Valid reports whether s is a known symptom.
func (s Symptom) Valid() bool {
	_, ok := index[s]
	return ok
}

// Title returns the display name used on the checklist, e.g. "Joint Pain".
func (s Symptom) Title() string {
	return titleCaser.String(strings.ReplaceAll(string(s), "_", " "))
}

func (s Symptom) String() string {
	return string(s)
}

// Parse maps user input to a known symptom. It is case-insensitive and
// accepts spaces or dashes in place of underscores, so "joint_pain",
// "Joint Pain" and "joint-pain" are equivalent.
//
// Unknown input returns an error wrapping [ErrUnknownSymptom], including
// suggestions when any known symptom is a close match.
func Parse(name string) (Symptom, error) {
	s := Symptom(normalize(name))
	if s.Valid() {
		return s, nil
	}

	suggestions := Suggest(name, 3)
	if len(suggestions) > 0 {
		return "", fmt.Errorf("%w %q, did you mean: %s", ErrUnknownSymptom, name, joinSymptoms(suggestions))
	}

	return "", fmt.Errorf("%w %q", ErrUnknownSymptom, name)
}

// Suggest returns up to limit known symptoms that fuzzily match name, best
// match first.
func Suggest(name string, limit int) []Symptom {
	pattern := normalize(name)
	if pattern == "" || limit <= 0 {
		return nil
	}

	matches := fuzzy.Find(pattern, Names())

	out := make([]Symptom, 0, min(limit, len(matches)))
	for _, m := range matches {
		if len(out) == limit {
			break
		}

		out = append(out, All[m.Index])
	}

	return out
}

func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))

	return strings.NewReplacer(" ", "_", "-", "_").Replace(name)
}

func joinSymptoms(ss []Symptom) string {
	parts := make([]string, len(ss))
	for i, s := range ss {
		parts[i] = string(s)
	}

	return strings.Join(parts, ", ")
}
