// Package diagnosis classifies a [symptom.Set] into a malaria likelihood
// category.
//
// The [Engine] holds an ordered list of rules. Rules are evaluated top to
// bottom and the first one that matches decides the [Result]; no rule below
// it is consulted. Overlaps between rules are resolved purely by that order.
//
// The engine is pure: no I/O, no randomness, and safe for concurrent use.
package diagnosis
