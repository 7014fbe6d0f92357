package extract

import (
	"strings"

	"github.com/machakos/malaria/pkg/symptom"
)

// NoneDetected is shown when text yields no symptoms.
const NoneDetected = "No specific symptoms detected from text. " +
	"Please try different wording or use checkboxes."

// Match records the phrase that caused a symptom to be detected.
type Match struct {
	Symptom symptom.Symptom `json:"symptom" yaml:"symptom"`
	Keyword string          `json:"keyword" yaml:"keyword"`
}

// Detection is the outcome of extracting symptoms from text.
type Detection struct {
	// Matches lists detected symptoms in checklist order.
	Matches []Match `json:"matches" yaml:"matches"`
	// Symptoms has a flag for every known symptom.
	Symptoms symptom.Set `json:"symptoms" yaml:"-"`
}

// Empty reports whether nothing was detected. Whether that means "nothing
// to report" or "try again" is up to the caller.
func (d Detection) Empty() bool {
	return d.Symptoms.IsEmpty()
}

// Extractor detects symptoms in text using a [Dictionary].
// It is safe for concurrent use.
type Extractor struct {
	dict Dictionary
}

// New creates an [Extractor].
func New(dict Dictionary) *Extractor {
	return &Extractor{dict: dict}
}

// Dictionary returns the dictionary used by the extractor.
func (e *Extractor) Dictionary() Dictionary {
	return e.dict
}

// Extract lower-cases text and, for each known symptom, sets it present on
// the first of its phrases that occurs anywhere in the text. Empty text
// yields an empty [Detection].
func (e *Extractor) Extract(text string) Detection {
	det := Detection{Matches: []Match{}}

	text = strings.ToLower(text)
	if text == "" {
		return det
	}

	for _, s := range symptom.All {
		for _, kw := range e.dict.keywords[s] {
			if strings.Contains(text, kw) {
				det.Symptoms = det.Symptoms.With(s)
				det.Matches = append(det.Matches, Match{Symptom: s, Keyword: kw})

				break
			}
		}
	}

	return det
}

// Extract runs an [Extractor] with the [Default] dictionary.
func Extract(text string) Detection {
	return New(Default()).Extract(text)
}
