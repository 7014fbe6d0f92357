// Package expr provides the CEL (Common Expression Language) environment
// used to express diagnosis rule predicates.
//
// Expressions see a single variable, `s` (map<string, bool>), holding the
// presence flag of every known symptom, so `s.fever && s.chills` reads the
// same way the rule is written down. On top of the standard CEL functions the
// environment provides:
//
//   - count(list<bool>): the number of true elements, e.g.
//     count([s.headache, s.nausea, s.vomiting]) >= 2
package expr
