package model

import "github.com/carloacu/ordered-goals-planner-sub001/internal/ontology"

// Action is a lifted operator: parameters plus optional precondition,
// ordinary effect, at-start effect and over-all condition, with a cost used
// to break search ties.
type Action struct {
	ID               string
	Params           []ontology.Parameter
	Precondition     *Condition
	Effect           *Effect
	AtStartEffect    *Effect
	OverAllCondition *Condition
	Cost             float64
}

// Event is a domain-level rule fired by the WorldState after every mutation
// when its precondition becomes true.
type Event struct {
	ID           string
	Params       []ontology.Parameter
	Precondition *Condition
	Effect       *Effect
}
