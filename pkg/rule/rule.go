package rule

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/machakos/malaria/pkg/expr"
	"github.com/machakos/malaria/pkg/symptom"
)

var environment = sync.OnceValues(func() (*expr.Environment, error) {
	return expr.NewEnvironment()
})

// Rule uses a CEL matcher to determine if its label applies to a symptom set.
//
// CEL expressions have access to variables:
//   - `s` (map<string, bool>): presence of every known symptom
//
// CEL expressions must return a boolean value:
//   - s.fever && s.chills - true if both are present
//   - s.fever && count([s.headache, s.nausea, s.vomiting]) >= 2 - fever plus two companions
//   - !s.fever - true if fever is absent
//   - true - always matches
type Rule struct {
	matchProgram cel.Program // Compiled CEL program for matching symptom sets.

	// ID identifies the rule.
	ID string `json:"id" jsonschema:"title=Rule ID"`
	// Match is a CEL expression over the symptom flags.
	Match string `json:"match" jsonschema:"title=Match Expression"`
	// Label is the likelihood category yielded when the rule matches.
	Label string `json:"label" jsonschema:"title=Label"`
	// Explanation is the reasoning shown alongside the label.
	Explanation string `json:"explanation" jsonschema:"title=Explanation"`
}

// New creates a new rule and compiles its match expression.
func New(id, match, label, explanation string) (*Rule, error) {
	r := &Rule{
		ID:          id,
		Match:       match,
		Label:       label,
		Explanation: explanation,
	}
	if err := r.CompileMatch(); err != nil {
		return nil, fmt.Errorf("rule %q: %w", id, err)
	}

	return r, nil
}

// MustNew creates a new rule and panics if there's an error.
func MustNew(id, match, label, explanation string) *Rule {
	r, err := New(id, match, label, explanation)
	if err != nil {
		panic(err)
	}

	return r
}

// CompileMatch compiles the rule's match expression into a CEL program.
func (r *Rule) CompileMatch() error {
	if r.matchProgram != nil {
		return nil
	}

	env, err := environment()
	if err != nil {
		return fmt.Errorf("create CEL environment: %w", err)
	}

	program, err := env.Compile(r.Match)
	if err != nil {
		return fmt.Errorf("compile match expression: %w", err)
	}

	r.matchProgram = program

	return nil
}

// Eval evaluates the rule against set and returns the raw outcome.
func (r *Rule) Eval(set symptom.Set) (bool, error) {
	return r.EvalVars(expr.Vars(set))
}

// EvalVars is like [Rule.Eval], but takes a prepared activation from
// [expr.Vars] so that callers evaluating many rules against one set only
// build it once.
func (r *Rule) EvalVars(vars map[string]any) (bool, error) {
	if r.matchProgram == nil {
		return false, errors.New("rule missing a compiled match expression")
	}

	result, _, err := r.matchProgram.Eval(vars)
	if err != nil {
		return false, fmt.Errorf("evaluate %q: %w", r.ID, err)
	}

	boolVal, ok := result.Value().(bool)
	if !ok {
		return false, fmt.Errorf("evaluate %q: non-boolean result %v", r.ID, result.Value())
	}

	return boolVal, nil
}

// Matches reports whether the rule applies to set.
// Evaluation failures are treated as a non-match.
func (r *Rule) Matches(set symptom.Set) bool {
	if r.matchProgram == nil {
		panic(errors.New("rule missing a match expression"))
	}

	ok, err := r.Eval(set)
	if err != nil {
		return false
	}

	return ok
}

func (r *Rule) String() string {
	return fmt.Sprintf("%s: %s", r.ID, r.Label)
}
