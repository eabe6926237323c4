package logic

import "strings"

type truePred[S any] struct{}

func (truePred[S]) Eval(S) bool { return true }
func (truePred[S]) String() string { return "true" }

// True always passes.
func True[S any]() Predicate[S] { return truePred[S]{} }

type fnPred[S any] struct {
	name string
	fn   func(S) bool
}

func (p fnPred[S]) Eval(s S) bool { return p.fn(s) }
func (p fnPred[S]) String() string { return p.name }

// Func wraps a named, side-effect free function as a predicate.
func Func[S any](name string, fn func(S) bool) Predicate[S] {
	return fnPred[S]{name: name, fn: fn}
}

type allPred[S any] []Predicate[S]

func (a allPred[S]) Eval(s S) bool {
	for _, p := range a {
		if !p.Eval(s) {
			return false
		}
	}
	return true
}

func (a allPred[S]) String() string { return join("&", a) }

// All passes when every predicate passes. All() passes.
func All[S any](ps ...Predicate[S]) Predicate[S] {
	if len(ps) == 1 {
		return ps[0]
	}
	return allPred[S](ps)
}

type anyPred[S any] []Predicate[S]

func (a anyPred[S]) Eval(s S) bool {
	for _, p := range a {
		if p.Eval(s) {
			return true
		}
	}
	return false
}

func (a anyPred[S]) String() string { return join("|", a) }

// Any passes when at least one predicate passes. Any() fails.
func Any[S any](ps ...Predicate[S]) Predicate[S] {
	if len(ps) == 1 {
		return ps[0]
	}
	return anyPred[S](ps)
}

type notPred[S any] struct{ p Predicate[S] }

func (n notPred[S]) Eval(s S) bool { return !n.p.Eval(s) }
func (n notPred[S]) String() string { return "!" + n.p.String() }

// Not negates p.
func Not[S any](p Predicate[S]) Predicate[S] { return notPred[S]{p: p} }

func join[S any](op string, ps []Predicate[S]) string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.String()
	}
	return "(" + strings.Join(names, " "+op+" ") + ")"
}
