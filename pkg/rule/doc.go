// Package rule evaluates a single diagnosis rule: a CEL (Common Expression
// Language) predicate over the symptom flags, paired with the label and
// explanation it yields when it matches.
//
// Expressions see the variable `s` (map<string, bool>) with every known
// symptom, see [github.com/machakos/malaria/pkg/expr].
package rule
