package derive

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/google/mangle/analysis"
	"github.com/google/mangle/ast"
	_ "github.com/google/mangle/builtin"
	mengine "github.com/google/mangle/engine"
	"github.com/google/mangle/factstore"
	_ "github.com/google/mangle/packages"
	"github.com/google/mangle/parse"

	"github.com/carloacu/ordered-goals-planner-sub001/internal/model"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/ontology"
)

// Evaluator compiles an Ontology's derived predicates once and re-evaluates
// them against successive fact snapshots, memoized per fact-set digest for
// the lifetime of the Evaluator (the cache is never cleared).
type Evaluator struct {
	derived     []*ontology.DerivedPredicate
	programInfo *analysis.ProgramInfo
	preds       map[string]ast.PredicateSym

	cache map[string][]model.Fact
}

// NewEvaluator compiles derived into a Mangle program, declaring every
// predicate in allPreds as an extensional fact source plus one rule per
// derived predicate. It returns an error if a derived predicate's body
// cannot be expressed as a Datalog rule (see compileCondition).
func NewEvaluator(derived []*ontology.DerivedPredicate, allPreds *ontology.SetOfPredicates) (*Evaluator, error) {
	rules, err := Source(derived)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	for _, p := range allPreds.All() {
		sb.WriteString(declText(p))
	}
	sb.WriteString(rules)

	unit, err := parse.Unit(bytes.NewReader([]byte(sb.String())))
	if err != nil {
		return nil, fmt.Errorf("parse derived-predicate program: %w", err)
	}

	programInfo, err := analysis.AnalyzeOneUnit(parse.SourceUnit{Clauses: unit.Clauses, Decls: unit.Decls}, nil)
	if err != nil {
		return nil, fmt.Errorf("analyze derived-predicate program: %w", err)
	}

	preds := make(map[string]ast.PredicateSym, len(programInfo.Decls))
	for sym := range programInfo.Decls {
		preds[sym.Symbol] = sym
	}

	return &Evaluator{
		derived:     derived,
		programInfo: programInfo,
		preds:       preds,
		cache:       make(map[string][]model.Fact),
	}, nil
}

func declText(p *ontology.Predicate) string {
	vars := make([]string, p.Arity())
	for i := range vars {
		vars[i] = fmt.Sprintf("X%d", i)
	}
	return fmt.Sprintf("Decl %s(%s).\n", p.Name, strings.Join(vars, ", "))
}

// digestKey returns a stable string key over a fact snapshot, used to
// memoize evaluation results in the Evaluator's cache.
func digestKey(facts []model.Fact) string {
	keys := make([]string, len(facts))
	for i, f := range facts {
		keys[i] = f.ExactKey()
	}
	sortStrings(keys)
	return strings.Join(keys, "|")
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// Derive evaluates every derived predicate against facts and returns the
// ground facts produced. Results are memoized by the exact set of input
// facts so repeated calls during one search do not re-run Mangle.
func (ev *Evaluator) Derive(facts []model.Fact) ([]model.Fact, error) {
	key := digestKey(facts)
	if cached, ok := ev.cache[key]; ok {
		return cached, nil
	}

	store := factstore.NewSimpleInMemoryStore()
	for _, f := range facts {
		sym, ok := ev.preds[f.Name]
		if !ok || sym.Arity != len(f.Args) {
			continue
		}
		atom, err := factToAtom(f, sym)
		if err != nil {
			return nil, err
		}
		store.Add(atom)
	}

	if _, err := mengine.EvalProgramWithStats(ev.programInfo, store); err != nil {
		return nil, fmt.Errorf("evaluate derived predicates: %w", err)
	}

	var out []model.Fact
	for _, dp := range ev.derived {
		sym, ok := ev.preds[dp.Head.Name]
		if !ok {
			continue
		}
		_ = store.GetFacts(ast.NewQuery(sym), func(a ast.Atom) error {
			f, err := atomToFact(a, dp)
			if err == nil {
				out = append(out, f)
			}
			return nil
		})
	}

	ev.cache[key] = out
	return out, nil
}

// factToAtom names every ground argument as a Mangle Name constant
// ("/value"), matching compileAtom's rendering of entities in rule bodies —
// both sides must agree on representation for rules to ever match stored
// facts.
func factToAtom(f model.Fact, sym ast.PredicateSym) (ast.Atom, error) {
	args := make([]ast.BaseTerm, len(f.Args))
	for i, a := range f.Args {
		name, err := ast.Name("/" + a.Value)
		if err != nil {
			return ast.Atom{}, fmt.Errorf("fact %s arg %d: %w", f.Name, i, err)
		}
		args[i] = name
	}
	return ast.Atom{Predicate: sym, Args: args}, nil
}

func atomToFact(a ast.Atom, dp *ontology.DerivedPredicate) (model.Fact, error) {
	args := make([]ontology.Entity, len(a.Args))
	for i, t := range a.Args {
		c, ok := t.(ast.Constant)
		if !ok {
			return model.Fact{}, fmt.Errorf("unbound argument in derived fact %s", dp.Head.Name)
		}
		var paramType *ontology.Type
		if i < len(dp.Params) {
			paramType = dp.Params[i].Type
		}
		args[i] = ontology.Entity{Value: strings.TrimPrefix(c.Symbol, "/"), Type: paramType}
	}
	return model.Fact{Name: dp.Head.Name, Args: args}, nil
}
