package report

import (
	"github.com/machakos/malaria/pkg/diagnosis"
	"github.com/machakos/malaria/pkg/extract"
	"github.com/machakos/malaria/pkg/symptom"
)

// Diagnosis is a diagnosis as reported to a person or another program.
type Diagnosis struct {
	diagnosis.Result `yaml:",inline"`

	Disclaimer string          `json:"disclaimer"        yaml:"disclaimer"`
	Detected   []string        `json:"detected"          yaml:"detected"`
	Matches    []extract.Match `json:"matches,omitempty" yaml:"matches,omitempty"`
}

// NewDiagnosis creates a [Diagnosis] for res, which was produced from set.
func NewDiagnosis(res diagnosis.Result, set symptom.Set) Diagnosis {
	return Diagnosis{
		Result:     res,
		Disclaimer: diagnosis.Disclaimer,
		Detected:   set.Names(),
	}
}

// Detection is the reported outcome of extracting symptoms from text.
type Detection struct {
	Message  string          `json:"message,omitempty" yaml:"message,omitempty"`
	Detected []string        `json:"detected"          yaml:"detected"`
	Matches  []extract.Match `json:"matches"           yaml:"matches"`
}

// NewDetection creates a [Detection] from det. The message is set only when
// nothing was detected.
func NewDetection(det extract.Detection) Detection {
	d := Detection{
		Detected: det.Symptoms.Names(),
		Matches:  det.Matches,
	}
	if det.Empty() {
		d.Message = extract.NoneDetected
	}

	return d
}

// SymptomInfo describes a known symptom.
type SymptomInfo struct {
	ID       string   `json:"id"       yaml:"id"`
	Title    string   `json:"title"    yaml:"title"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// Symptoms describes every known symptom in checklist order, with the
// phrases dict uses to detect it.
func Symptoms(dict extract.Dictionary) []SymptomInfo {
	out := make([]SymptomInfo, 0, len(symptom.All))
	for _, s := range symptom.All {
		out = append(out, SymptomInfo{
			ID:       s.String(),
			Title:    s.Title(),
			Keywords: dict.Keywords(s),
		})
	}

	return out
}
