// Package derive compiles the Ontology's derived predicates into a
// Google Mangle Datalog program and evaluates them against a WorldState
// snapshot (parse.Unit -> analysis.AnalyzeOneUnit -> factstore ->
// engine.EvalProgramWithStats), rendering the planner's own fact
// representation as Mangle clauses.
package derive

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/carloacu/ordered-goals-planner-sub001/internal/model"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/ontology"
)

// compileError reports a derived predicate whose body uses a condition
// shape the Datalog compiler does not handle — quantifiers and fluent
// reads are planner-only constructs with no direct Mangle analogue, so a
// derived predicate's body is restricted to a conjunction of (possibly
// negated) Boolean atoms and numeric comparisons.
type compileError struct {
	predicate string
	reason    string
}

func (e *compileError) Error() string {
	return fmt.Sprintf("derived predicate %s: %s", e.predicate, e.reason)
}

// Source renders derived as Mangle clause text: one rule per
// DerivedPredicate (the Decls are added by NewEvaluator), e.g.
//
//	ready(?E) :- powered(?E), !locked(?E).
func Source(derived []*ontology.DerivedPredicate) (string, error) {
	var sb strings.Builder
	for _, dp := range derived {
		cond, ok := dp.Body.(*model.Condition)
		if !ok {
			return "", &compileError{predicate: dp.Head.Name, reason: "body is not a condition tree"}
		}
		head := headAtom(dp)
		body, err := compileCondition(dp.Head.Name, cond)
		if err != nil {
			return "", err
		}
		sb.WriteString(head)
		sb.WriteString(" :- ")
		sb.WriteString(strings.Join(body, ", "))
		sb.WriteString(".\n")
	}
	return sb.String(), nil
}

func headAtom(dp *ontology.DerivedPredicate) string {
	args := make([]string, len(dp.Params))
	for i, p := range dp.Params {
		args[i] = mangleVar(p.Name)
	}
	return fmt.Sprintf("%s(%s)", dp.Head.Name, strings.Join(args, ", "))
}

// compileCondition flattens cond into a list of Mangle literals forming a
// single conjunctive rule body. Only CondAnd, CondAtom (of either polarity)
// and CondCompare are supported; every other kind, CondOr and CondNot
// included, is reported as a compileError, so Source emits exactly one
// rule per derived predicate, covering derived predicates defined as "all
// of these facts hold".
func compileCondition(predName string, cond *model.Condition) ([]string, error) {
	switch cond.Kind {
	case model.CondAnd:
		var out []string
		for _, ch := range cond.Children {
			lits, err := compileCondition(predName, ch)
			if err != nil {
				return nil, err
			}
			out = append(out, lits...)
		}
		return out, nil
	case model.CondAtom:
		return []string{compileAtom(*cond.Atom)}, nil
	case model.CondCompare:
		return []string{compileCompare(cond)}, nil
	default:
		return nil, &compileError{predicate: predName, reason: fmt.Sprintf("unsupported condition kind %v in derived-predicate body", cond.Kind)}
	}
}

func compileAtom(fo model.FactOptional) string {
	args := make([]string, len(fo.Fact.Args))
	for i, a := range fo.Fact.Args {
		args[i] = mangleTerm(a)
	}
	atom := fmt.Sprintf("%s(%s)", fo.Fact.Name, strings.Join(args, ", "))
	if fo.Negated {
		return "!" + atom
	}
	return atom
}

func compileCompare(cond *model.Condition) string {
	op := string(cond.Op)
	if op == "=" {
		op = "="
	}
	return fmt.Sprintf("%s %s %s", compileOperand(cond.Lhs), op, compileOperand(cond.Rhs))
}

func compileOperand(c *model.Condition) string {
	if c.Kind == model.CondNumberConstant {
		return strconv.FormatFloat(c.Number, 'g', -1, 64)
	}
	return mangleVar(c.FluentFact.Name)
}

func mangleTerm(e ontology.Entity) string {
	if e.IsVariable() {
		return mangleVar(e.Value)
	}
	return "/" + e.Value
}

func mangleVar(name string) string {
	v := strings.TrimPrefix(name, "?")
	if v == "" {
		return "?X"
	}
	return "?" + strings.ToUpper(v[:1]) + v[1:]
}
