package diagnosis

import (
	"errors"
	"fmt"

	"github.com/machakos/malaria/pkg/expr"
	"github.com/machakos/malaria/pkg/rule"
	"github.com/machakos/malaria/pkg/symptom"
)

// ErrNoRules indicates an engine was created without rules.
var ErrNoRules = errors.New("no rules")

// Engine evaluates an ordered rule list, first match wins.
// It is immutable after construction and safe for concurrent use.
type Engine struct {
	tiers map[string]Tier
	rules []*rule.Rule
}

// New creates an [Engine] from an ordered rule list. Rules are compiled if
// needed. If no rule matches a set, the result falls back to [LabelUnlikely].
func New(rules []*rule.Rule) (*Engine, error) {
	if len(rules) == 0 {
		return nil, ErrNoRules
	}

	e := &Engine{
		rules: make([]*rule.Rule, 0, len(rules)),
		tiers: map[string]Tier{
			LabelUnlikely: TierFor(LabelUnlikely),
		},
	}

	for _, r := range rules {
		if err := r.CompileMatch(); err != nil {
			return nil, fmt.Errorf("rule %q: %w", r.ID, err)
		}

		e.rules = append(e.rules, r)
		e.tiers[r.Label] = TierFor(r.Label)
	}

	return e, nil
}

var defaultEngine *Engine

func init() {
	e, err := New(DefaultRules())
	if err != nil {
		panic(err)
	}

	defaultEngine = e
}

// Default returns the engine holding [DefaultRules].
func Default() *Engine {
	return defaultEngine
}

// Diagnose runs the default engine against set.
func Diagnose(set symptom.Set) Result {
	return defaultEngine.Diagnose(set)
}

// Diagnose evaluates the rules in order and returns the result of the first
// match.
func (e *Engine) Diagnose(set symptom.Set) Result {
	vars := expr.Vars(set)

	for _, r := range e.rules {
		// Evaluation failures are treated as a non-match.
		ok, err := r.EvalVars(vars)
		if err == nil && ok {
			return e.result(r.ID, r.Label, r.Explanation)
		}
	}

	return e.result("", LabelUnlikely, "")
}

// Rules returns a copy of the rule list in evaluation order.
func (e *Engine) Rules() []*rule.Rule {
	return append([]*rule.Rule(nil), e.rules...)
}

// Tier returns the tier of a label, using the table built from the engine's
// rules, and falling back to [TierFor] for labels the engine never produces.
func (e *Engine) Tier(label string) Tier {
	if t, ok := e.tiers[label]; ok {
		return t
	}

	return TierFor(label)
}

func (e *Engine) result(id, label, explanation string) Result {
	res := Result{
		Label:        label,
		Tier:         e.Tier(label),
		Rule:         id,
		Explanations: []string{},
	}
	if explanation != "" {
		res.Explanations = append(res.Explanations, explanation)
	}

	return res
}
