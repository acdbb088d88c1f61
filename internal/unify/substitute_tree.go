package unify

import "github.com/carloacu/ordered-goals-planner-sub001/internal/model"

// SubstituteCondition rewrites every Entity reachable from c using binding,
// leaving the tree shape intact. Quantifier parameters are left alone
// (they are bound by the quantifier itself during evaluation, not by the
// action's binding) unless bound is also present in the outer binding
// (shadowing is not permitted by the parser, so this cannot happen in
// practice).
func SubstituteCondition(c *model.Condition, binding Binding) *model.Condition {
	if c == nil {
		return nil
	}
	cp := *c
	switch c.Kind {
	case model.CondAtom:
		fo := *c.Atom
		fo.Fact = SubstituteFact(fo.Fact, binding)
		cp.Atom = &fo
	case model.CondAnd, model.CondOr:
		cp.Children = make([]*model.Condition, len(c.Children))
		for i, ch := range c.Children {
			cp.Children[i] = SubstituteCondition(ch, binding)
		}
	case model.CondNot:
		cp.Children = []*model.Condition{SubstituteCondition(c.Children[0], binding)}
	case model.CondImply:
		cp.Children = []*model.Condition{
			SubstituteCondition(c.Children[0], binding),
			SubstituteCondition(c.Children[1], binding),
		}
	case model.CondForall, model.CondExists:
		cp.Body = SubstituteCondition(c.Body, binding)
	case model.CondCompare:
		cp.Lhs = SubstituteCondition(c.Lhs, binding)
		cp.Rhs = SubstituteCondition(c.Rhs, binding)
	case model.CondFluentRead:
		f := SubstituteFact(*c.FluentFact, binding)
		cp.FluentFact = &f
	}
	return &cp
}

// SubstituteEffect rewrites every Entity reachable from e using binding.
func SubstituteEffect(e *model.Effect, binding Binding) *model.Effect {
	if e == nil {
		return nil
	}
	cp := *e
	switch e.Kind {
	case model.EffAdd, model.EffDelete:
		f := SubstituteFact(*e.Fact, binding)
		cp.Fact = &f
	case model.EffAssign, model.EffIncrease, model.EffDecrease:
		f := SubstituteFact(*e.Fact, binding)
		cp.Fact = &f
		if e.Value != nil {
			v := Substitute(*e.Value, binding)
			cp.Value = &v
		}
		if e.ValueFluent != nil {
			vf := SubstituteFact(*e.ValueFluent, binding)
			cp.ValueFluent = &vf
		}
	case model.EffAnd:
		cp.Children = make([]*model.Effect, len(e.Children))
		for i, ch := range e.Children {
			cp.Children[i] = SubstituteEffect(ch, binding)
		}
	case model.EffWhen:
		cp.Cond = SubstituteCondition(e.Cond, binding)
		cp.Then = SubstituteEffect(e.Then, binding)
	case model.EffForall:
		cp.Body = SubstituteEffect(e.Body, binding)
	}
	return &cp
}
