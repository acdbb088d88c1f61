// Package eventbus lets observers subscribe to a boolean condition over the
// WorldState and be notified once it becomes true after the world reaches
// quiescence — distinct from internal/world's event engine, which mutates
// the world; eventbus callbacks are observer-only.
package eventbus

import (
	"strconv"

	"github.com/carloacu/ordered-goals-planner-sub001/internal/model"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/ontology"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/unify"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/world"
)

// Subscription is a registered (condition, handler) pair.
type Subscription struct {
	ID        string
	Condition *model.Condition
	Handler   func(binding unify.Binding)

	fired bool
}

// Bus tracks subscriptions and fires each at most once, the first time its
// condition becomes true, on a call to Check.
type Bus struct {
	subs []*Subscription
	next int
}

// New returns an empty bus.
func New() *Bus {
	return &Bus{}
}

// Subscribe registers cond/handler and returns a subscription id usable
// with Unsubscribe.
func (b *Bus) Subscribe(cond *model.Condition, handler func(unify.Binding)) string {
	b.next++
	id := "sub-" + strconv.Itoa(b.next)
	b.subs = append(b.subs, &Subscription{ID: id, Condition: cond, Handler: handler})
	return id
}

// Unsubscribe removes a subscription by id, a no-op if unknown.
func (b *Bus) Unsubscribe(id string) {
	for i, s := range b.subs {
		if s.ID == id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Check evaluates every not-yet-fired subscription's condition against ws
// and invokes the handler for each that is now true, exactly once per
// subscription's lifetime. Call this after the world reaches quiescence
// (i.e. after internal/world.RunEvents returns).
func (b *Bus) Check(ws *world.WorldState, constants, objects *ontology.SetOfEntities) {
	for _, s := range b.subs {
		if s.fired {
			continue
		}
		if world.IsTrue(ws, constants, objects, s.Condition, unify.Binding{}) == model.True {
			s.fired = true
			s.Handler(unify.Binding{})
		}
	}
}
