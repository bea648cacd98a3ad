package spindletest

import (
	"github.com/danpasecinic/spindle"
	"github.com/danpasecinic/spindle/internal/typekey"
)

type TB interface {
	Helper()
	Fatal(args ...any)
	Fatalf(format string, args ...any)
}

func CheckModule(tb TB, m spindle.Module, visitors ...spindle.ElementVisitor) {
	tb.Helper()

	CheckElements(tb, spindle.Elements(m), visitors...)
}

func CheckElements(tb TB, elements []spindle.Element, visitors ...spindle.ElementVisitor) {
	tb.Helper()

	if len(elements) != len(visitors) {
		tb.Fatalf("recorded %d elements, want %d:\n%s", len(elements), len(visitors), spindle.Sprint(elements))
		return
	}

	for i, e := range elements {
		if e.Source() == "" {
			tb.Fatalf("element %d has no source attribution", i)
			return
		}
		e.Accept(visitors[i])
	}
}

func FailingVisitor(tb TB) spindle.ElementVisitorFuncs {
	return spindle.ElementVisitorFuncs{
		Default: func(e spindle.Element) any {
			tb.Helper()
			tb.Fatalf("unexpected element: %s", spindle.Sprint([]spindle.Element{e}))
			return nil
		},
	}
}

func FailingTargetVisitor(tb TB) spindle.TargetVisitorFuncs {
	return spindle.TargetVisitorFuncs{
		Default: func(t spindle.BindingTarget) any {
			tb.Helper()
			tb.Fatalf("unexpected binding target: %T", t)
			return nil
		},
	}
}

func FailingScopingVisitor(tb TB) spindle.ScopingVisitorFuncs {
	return spindle.ScopingVisitorFuncs{
		Default: func() any {
			tb.Helper()
			tb.Fatal("unexpected scoping")
			return nil
		},
	}
}

func RequireBinding(tb TB, e spindle.Element) *spindle.Binding {
	tb.Helper()

	b, ok := e.(*spindle.Binding)
	if !ok {
		tb.Fatalf("expected a binding, got %T", e)
		return nil
	}
	return b
}

func RequireMessage(tb TB, e spindle.Element) *spindle.Message {
	tb.Helper()

	m, ok := e.(*spindle.Message)
	if !ok {
		tb.Fatalf("expected a message, got %T", e)
		return nil
	}
	return m
}

func RequirePrivateEnvironment(tb TB, e spindle.Element) *spindle.PrivateEnvironment {
	tb.Helper()

	pe, ok := e.(*spindle.PrivateEnvironment)
	if !ok {
		tb.Fatalf("expected a private environment, got %T", e)
		return nil
	}
	return pe
}

func RequireKey[T any](tb TB, b *spindle.Binding) {
	tb.Helper()

	want := spindle.KeyOf[T]()
	if b.Key() != want {
		tb.Fatalf("expected key %s, got %s", want, b.Key())
	}
}

func RequireQualifiedKey[T any](tb TB, b *spindle.Binding, q spindle.Qualifier) {
	tb.Helper()

	want := spindle.KeyOf[T]().Qualified(q)
	if b.Key() != want {
		tb.Fatalf("expected key %s, got %s", want, b.Key())
	}
}

func BoundValue[T any](tb TB, b *spindle.Binding) T {
	tb.Helper()

	v, ok := spindle.BoundInstance(b)
	if !ok {
		tb.Fatalf("expected %s to be bound to an instance", b.Key())
	}

	out, ok := v.(T)
	if !ok {
		tb.Fatalf("expected instance of %s, got %T", typekey.For[T](), v)
	}
	return out
}
