package model

import (
	"fmt"
	"strings"

	"github.com/carloacu/ordered-goals-planner-sub001/internal/ontology"
)

// CondKind tags the variant of a Condition node.
type CondKind int

const (
	CondAtom CondKind = iota
	CondAnd
	CondOr
	CondNot
	CondForall
	CondExists
	CondImply
	CondCompare
	CondNumberConstant
	CondFluentRead
)

// CompareOp is the operator of a CondCompare node.
type CompareOp string

const (
	OpEq CompareOp = "="
	OpNe CompareOp = "!="
	OpLt CompareOp = "<"
	OpLe CompareOp = "<="
	OpGt CompareOp = ">"
	OpGe CompareOp = ">="
)

// Condition is the recursive boolean-expression tree. It is a single
// tagged sum type rather than an interface with one concrete type per
// variant, to keep tree traversal a flat switch instead of a class
// hierarchy.
type Condition struct {
	Kind CondKind

	// CondAtom
	Atom *FactOptional

	// CondAnd / CondOr: Children holds the operands.
	// CondNot: Children[0] is the negated body.
	// CondImply: Children[0] is the antecedent, Children[1] the consequent.
	Children []*Condition

	// CondForall / CondExists
	Param *ontology.Parameter
	Body  *Condition

	// CondCompare
	Op       CompareOp
	Lhs, Rhs *Condition

	// CondNumberConstant
	Number float64

	// CondFluentRead
	FluentFact *Fact
}

// TriState is the three-valued result of evaluating a Condition.
type TriState int

const (
	False TriState = iota
	True
	Unknown
)

// And builds a conjunction, flattening a nil/empty operand list to True.
func And(children ...*Condition) *Condition {
	if len(children) == 0 {
		return &Condition{Kind: CondAnd}
	}
	if len(children) == 1 {
		return children[0]
	}
	return &Condition{Kind: CondAnd, Children: children}
}

// Or builds a disjunction.
func Or(children ...*Condition) *Condition {
	if len(children) == 1 {
		return children[0]
	}
	return &Condition{Kind: CondOr, Children: children}
}

// Not builds a negation.
func Not(body *Condition) *Condition {
	return &Condition{Kind: CondNot, Children: []*Condition{body}}
}

// AtomCond builds a leaf condition over a FactOptional.
func AtomCond(fo FactOptional) *Condition {
	return &Condition{Kind: CondAtom, Atom: &fo}
}

// Forall builds a universally quantified condition.
func Forall(param ontology.Parameter, body *Condition) *Condition {
	return &Condition{Kind: CondForall, Param: &param, Body: body}
}

// Exists builds an existentially quantified condition.
func Exists(param ontology.Parameter, body *Condition) *Condition {
	return &Condition{Kind: CondExists, Param: &param, Body: body}
}

// Imply builds an implication (spec: "imply(cond, goal)" notation reused for
// Goal.ConditionFact and for the PDDL `(imply COND GOAL)` extension).
func Imply(a, b *Condition) *Condition {
	return &Condition{Kind: CondImply, Children: []*Condition{a, b}}
}

// Compare builds a numeric comparison condition.
func Compare(op CompareOp, lhs, rhs *Condition) *Condition {
	return &Condition{Kind: CondCompare, Op: op, Lhs: lhs, Rhs: rhs}
}

// NumberConstant builds a leaf numeric literal usable on either side of a
// Compare node.
func NumberConstant(v float64) *Condition {
	return &Condition{Kind: CondNumberConstant, Number: v}
}

// FluentRead builds a leaf reading a fluent's numeric value, usable on
// either side of a Compare node.
func FluentRead(f Fact) *Condition {
	return &Condition{Kind: CondFluentRead, FluentFact: &f}
}

// VisitFunc is called for every atom reached by Condition.ForAll, together
// with whether the atom's fluent value should be ignored by the caller
// (true inside comparisons only; a forall or exists passes the flag it
// received to its body unchanged and never sets it itself).
type VisitFunc func(fo FactOptional, ignoreValue bool)

// ForAll visits every FactOptional atom reachable from c, propagating the
// ignoreValue flag: comparisons always ignore the compared fluent's value
// identity (they care about the numeric result, not which Entity denotes
// it), and that flag bubbles down through nested quantifiers.
func (c *Condition) ForAll(visit VisitFunc) {
	c.forAll(visit, false)
}

func (c *Condition) forAll(visit VisitFunc, ignoreValue bool) {
	if c == nil {
		return
	}
	switch c.Kind {
	case CondAtom:
		visit(*c.Atom, ignoreValue)
	case CondAnd, CondOr:
		for _, ch := range c.Children {
			ch.forAll(visit, ignoreValue)
		}
	case CondNot:
		c.Children[0].forAll(visit, ignoreValue)
	case CondImply:
		c.Children[0].forAll(visit, ignoreValue)
		c.Children[1].forAll(visit, ignoreValue)
	case CondForall, CondExists:
		c.Body.forAll(visit, ignoreValue)
	case CondCompare:
		c.Lhs.forAll(visit, true)
		c.Rhs.forAll(visit, true)
	case CondFluentRead:
		visit(NewFactOptional(false, *c.FluentFact), ignoreValue)
	case CondNumberConstant:
		// no atoms
	}
}

// String renders the condition as a parenthesized PDDL-ish expression,
// chiefly for verbose tracing and tests.
func (c *Condition) String() string {
	if c == nil {
		return "()"
	}
	switch c.Kind {
	case CondAtom:
		return c.Atom.String()
	case CondAnd:
		return joinOps("and", c.Children)
	case CondOr:
		return joinOps("or", c.Children)
	case CondNot:
		return fmt.Sprintf("(not %s)", c.Children[0])
	case CondImply:
		return fmt.Sprintf("(imply %s %s)", c.Children[0], c.Children[1])
	case CondForall:
		return fmt.Sprintf("(forall (%s) %s)", c.Param.Name, c.Body)
	case CondExists:
		return fmt.Sprintf("(exists (%s) %s)", c.Param.Name, c.Body)
	case CondCompare:
		return fmt.Sprintf("(%s %s %s)", c.Op, c.Lhs, c.Rhs)
	case CondNumberConstant:
		return fmt.Sprintf("%g", c.Number)
	case CondFluentRead:
		return c.FluentFact.String()
	default:
		return "?"
	}
}

func joinOps(op string, children []*Condition) string {
	parts := make([]string, len(children))
	for i, c := range children {
		parts[i] = c.String()
	}
	return fmt.Sprintf("(%s %s)", op, strings.Join(parts, " "))
}
