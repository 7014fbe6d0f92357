package symptom

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Set records the presence of every known symptom. The zero value has every
// symptom absent. Set is a value type: methods that change it return a copy.
type Set struct {
	flags [Count]bool
}

// NewSet returns a [Set] with the given symptoms present. Unknown symptoms
// are ignored.
func NewSet(present ...Symptom) Set {
	var set Set
	for _, s := range present {
		if i, ok := index[s]; ok {
			set.flags[i] = true
		}
	}

	return set
}

// FromMap builds a [Set] from a name to presence mapping, as supplied by a
// checklist. Missing symptoms are absent. Keys that do not name a known
// symptom are ignored and returned (sorted) so the caller can report them.
//
// Keys must be exact identifiers; use [FromNames] for lenient parsing.
func FromMap(m map[string]bool) (Set, []string) {
	var (
		set     Set
		ignored []string
	)

	for k, v := range m {
		i, ok := index[Symptom(k)]
		if !ok {
			ignored = append(ignored, k)
			continue
		}

		set.flags[i] = v
	}

	slices.Sort(ignored)

	return set, ignored
}

// FromNames builds a [Set] with the named symptoms present, parsing each name
// with [Parse]. Any unknown name is an error.
func FromNames(names []string) (Set, error) {
	var set Set
	for _, name := range names {
		s, err := Parse(name)
		if err != nil {
			return Set{}, err
		}

		set.flags[index[s]] = true
	}

	return set, nil
}

// Has reports whether s is present. Unknown symptoms are never present.
func (set Set) Has(s Symptom) bool {
	i, ok := index[s]

	return ok && set.flags[i]
}

// With returns a copy of set with the given symptoms present.
func (set Set) With(ss ...Symptom) Set {
	for _, s := range ss {
		if i, ok := index[s]; ok {
			set.flags[i] = true
		}
	}

	return set
}

// Without returns a copy of set with the given symptoms absent.
func (set Set) Without(ss ...Symptom) Set {
	for _, s := range ss {
		if i, ok := index[s]; ok {
			set.flags[i] = false
		}
	}

	return set
}

// Count returns how many of the given symptoms are present.
func (set Set) Count(ss ...Symptom) int {
	n := 0
	for _, s := range ss {
		if set.Has(s) {
			n++
		}
	}

	return n
}

// Len returns the number of present symptoms.
func (set Set) Len() int {
	n := 0
	for _, v := range set.flags {
		if v {
			n++
		}
	}

	return n
}

// IsEmpty reports whether no symptom is present.
func (set Set) IsEmpty() bool {
	return set.Len() == 0
}

// Present returns the present symptoms in checklist order.
func (set Set) Present() []Symptom {
	var out []Symptom
	for i, v := range set.flags {
		if v {
			out = append(out, All[i])
		}
	}

	return out
}

// Names returns the identifiers of the present symptoms in checklist order.
// Unlike [Set.Present], the result is never nil.
func (set Set) Names() []string {
	out := []string{}
	for _, s := range set.Present() {
		out = append(out, string(s))
	}

	return out
}

// Map returns a name to presence mapping containing every known symptom.
func (set Set) Map() map[string]bool {
	m := make(map[string]bool, Count)
	for i, s := range All {
		m[string(s)] = set.flags[i]
	}

	return m
}

func (set Set) String() string {
	return fmt.Sprintf("%v", set.Present())
}

// MarshalJSON encodes the set as an object with every known symptom.
func (set Set) MarshalJSON() ([]byte, error) {
	b, err := json.Marshal(set.Map())
	if err != nil {
		return nil, fmt.Errorf("marshal symptom set: %w", err)
	}

	return b, nil
}

// UnmarshalJSON decodes an object of symptom flags. Unknown keys are ignored.
func (set *Set) UnmarshalJSON(data []byte) error {
	var m map[string]bool

	err := json.Unmarshal(data, &m)
	if err != nil {
		return fmt.Errorf("unmarshal symptom set: %w", err)
	}

	*set, _ = FromMap(m)

	return nil
}
