// Package logic evaluates tiered predicates over an arbitrary state type.
//
// A Gate holds at most one predicate per tier. Evaluating a gate under a
// configured tier succeeds when any predicate at or below that tier passes.
package logic

import "strings"

// Predicate is a pure boolean function of state S.
type Predicate[S any] interface {
	Eval(s S) bool
	String() string
}

// Gate stratifies predicates by tier. The zero Gate is open.
type Gate[S any] struct {
	preds [NumTiers]Predicate[S]
	set   bool
}

// Open returns a gate that always passes.
func Open[S any]() Gate[S] {
	return Gate[S]{}
}

// At returns a copy of g with p registered at tier t. Registering at
// NoLogic is ignored, NoLogic always passes.
func (g Gate[S]) At(t Tier, p Predicate[S]) Gate[S] {
	if t >= NoLogic || p == nil {
		return g
	}
	g.preds[t] = p
	g.set = true
	return g
}

func (g Gate[S]) Normal(p Predicate[S]) Gate[S] { return g.At(Normal, p) }
func (g Gate[S]) Hard(p Predicate[S]) Gate[S] { return g.At(Hard, p) }
func (g Gate[S]) Glitched(p Predicate[S]) Gate[S] { return g.At(Glitched, p) }
func (g Gate[S]) AdvGlitched(p Predicate[S]) Gate[S] { return g.At(AdvancedGlitched, p) }
func (g Gate[S]) Hell(p Predicate[S]) Gate[S] { return g.At(Hell, p) }

// IsOpen reports whether the gate has no predicates at all.
func (g Gate[S]) IsOpen() bool {
	return !g.set
}

// Predicate returns the predicate registered at exactly tier t, if any.
func (g Gate[S]) Predicate(t Tier) (Predicate[S], bool) {
	if int(t) >= NumTiers || g.preds[t] == nil {
		return nil, false
	}
	return g.preds[t], true
}

// CanPass evaluates the gate for state s with tier as the configured strictness.
func (g Gate[S]) CanPass(tier Tier, s S) bool {
	if tier >= NoLogic || !g.set {
		return true
	}
	for t := int(tier); t >= int(Normal); t-- {
		if p := g.preds[t]; p != nil && p.Eval(s) {
			return true
		}
	}
	return false
}

func (g Gate[S]) String() string {
	if !g.set {
		return "open"
	}
	var parts []string
	for t, p := range g.preds {
		if p != nil {
			parts = append(parts, Tier(t).String()+": "+p.String())
		}
	}
	return strings.Join(parts, "; ")
}
