package extract

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	_ "embed"

	"github.com/machakos/malaria/pkg/symptom"
	"github.com/machakos/malaria/pkg/yaml"
)

var (
	//go:embed keywords.yaml
	defaultKeywordsYAML []byte

	// ErrEmptyKeyword is returned when a trigger phrase is blank.
	ErrEmptyKeyword = errors.New("empty keyword")

	defaultDictionary = sync.OnceValue(func() Dictionary {
		d, err := ParseDictionary(defaultKeywordsYAML)
		if err != nil {
			panic(fmt.Errorf("built-in keywords: %w", err))
		}

		return d
	})
)

// Dictionary maps each symptom to an ordered list of lower-case trigger
// phrases. It is immutable; accessors return copies.
type Dictionary struct {
	keywords map[symptom.Symptom][]string
}

// Default returns the built-in dictionary. It is parsed once.
func Default() Dictionary {
	return defaultDictionary()
}

// NewDictionary creates a [Dictionary]. Phrases are trimmed and lower-cased;
// unknown symptoms and empty phrases are rejected.
func NewDictionary(keywords map[symptom.Symptom][]string) (Dictionary, error) {
	d := Dictionary{keywords: make(map[symptom.Symptom][]string, len(keywords))}

	for s, phrases := range keywords {
		if !s.Valid() {
			return Dictionary{}, fmt.Errorf("%w %q", symptom.ErrUnknownSymptom, s)
		}

		for _, p := range phrases {
			p = strings.ToLower(strings.TrimSpace(p))
			if p == "" {
				return Dictionary{}, fmt.Errorf("%s: %w", s, ErrEmptyKeyword)
			}

			d.keywords[s] = append(d.keywords[s], p)
		}
	}

	return d, nil
}

// ParseDictionary reads a dictionary from YAML: a mapping of symptom
// identifier to a list of phrases.
func ParseDictionary(data []byte) (Dictionary, error) {
	raw := map[string][]string{}

	err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&raw)
	if err != nil {
		return Dictionary{}, fmt.Errorf("decode keywords: %w", err)
	}

	keywords := make(map[symptom.Symptom][]string, len(raw))
	for k, v := range raw {
		keywords[symptom.Symptom(k)] = v
	}

	return NewDictionary(keywords)
}

// Keywords returns the phrases for s in match order.
func (d Dictionary) Keywords(s symptom.Symptom) []string {
	return slices.Clone(d.keywords[s])
}

// Extend returns a new dictionary with extra phrases appended after the
// existing ones. Phrases already present for a symptom are skipped.
func (d Dictionary) Extend(extra map[symptom.Symptom][]string) (Dictionary, error) {
	add, err := NewDictionary(extra)
	if err != nil {
		return Dictionary{}, err
	}

	out := Dictionary{keywords: make(map[symptom.Symptom][]string, len(d.keywords))}
	for s, phrases := range d.keywords {
		out.keywords[s] = slices.Clone(phrases)
	}

	for s, phrases := range add.keywords {
		for _, p := range phrases {
			if !slices.Contains(out.keywords[s], p) {
				out.keywords[s] = append(out.keywords[s], p)
			}
		}
	}

	return out, nil
}

// Len returns the total number of phrases.
func (d Dictionary) Len() int {
	n := 0
	for _, phrases := range d.keywords {
		n += len(phrases)
	}

	return n
}
