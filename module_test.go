package spindle_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/danpasecinic/spindle"
	"github.com/danpasecinic/spindle/spindletest"
)

type countingModule struct {
	count *int
}

func (m countingModule) Configure(b *spindle.Binder) {
	*m.count++
	spindle.Bind[int](b).ToInstance(*m.count)
}

type selfInstallingModule struct {
	count *int
}

func (m selfInstallingModule) Configure(b *spindle.Binder) {
	*m.count++
	b.Install(m)
}

func TestInstallDeduplicatesEqualModules(t *testing.T) {
	t.Parallel()

	count := 0
	m := countingModule{count: &count}

	elements := spindle.Elements(spindle.ModuleFunc(func(b *spindle.Binder) {
		b.Install(m)
		b.Install(m)
	}))

	if count != 1 {
		t.Errorf("module configured %d times, want 1", count)
	}
	if len(elements) != 1 {
		t.Errorf("recorded %d elements, want 1", len(elements))
	}
}

func TestInstallDistinctModulesBothRun(t *testing.T) {
	t.Parallel()

	first := 0
	second := 0

	spindle.Elements(spindle.ModuleFunc(func(b *spindle.Binder) {
		b.Install(countingModule{count: &first})
		b.Install(countingModule{count: &second})
	}))

	if first != 1 || second != 1 {
		t.Errorf("modules configured %d and %d times, want 1 and 1", first, second)
	}
}

func TestTopLevelModulesDeduplicated(t *testing.T) {
	t.Parallel()

	count := 0
	m := countingModule{count: &count}

	elements := spindle.Elements(m, m)

	if count != 1 {
		t.Errorf("module configured %d times, want 1", count)
	}
	if len(elements) != 1 {
		t.Errorf("recorded %d elements, want 1", len(elements))
	}
}

func TestModuleFuncIsNotDeduplicated(t *testing.T) {
	t.Parallel()

	count := 0
	mf := spindle.ModuleFunc(func(b *spindle.Binder) {
		count++
	})

	spindle.Elements(mf, mf)

	if count != 2 {
		t.Errorf("function module configured %d times, want 2", count)
	}
}

func TestNestedInstallRunsOnce(t *testing.T) {
	t.Parallel()

	count := 0
	inner := countingModule{count: &count}

	outerA := spindle.ModuleFunc(func(b *spindle.Binder) {
		b.Install(inner)
	})
	outerB := spindle.ModuleFunc(func(b *spindle.Binder) {
		b.Install(inner)
	})

	elements := spindle.Elements(outerA, outerB)

	if count != 1 {
		t.Errorf("shared module configured %d times, want 1", count)
	}
	if len(elements) != 1 {
		t.Errorf("recorded %d elements, want 1", len(elements))
	}
}

func TestReentrantInstallIsNoOp(t *testing.T) {
	t.Parallel()

	count := 0
	spindle.Elements(selfInstallingModule{count: &count})

	if count != 1 {
		t.Errorf("self installing module configured %d times, want 1", count)
	}
}

func TestNewModule(t *testing.T) {
	t.Parallel()

	m := spindle.NewModule("config", func(b *spindle.Binder) {
		spindle.Bind[int](b).ToInstance(8080)
	})

	named, ok := m.(interface{ Name() string })
	if !ok || named.Name() != "config" {
		t.Fatalf("expected module name config, got %v", m)
	}

	elements := spindle.Elements(m, m)
	if len(elements) != 1 {
		t.Errorf("recorded %d elements, want 1", len(elements))
	}
	spindletest.RequireKey[int](t, spindletest.RequireBinding(t, elements[0]))
}

func TestNewModuleNilConfigure(t *testing.T) {
	t.Parallel()

	elements := spindle.Elements(spindle.NewModule("empty", nil))

	if len(elements) != 0 {
		t.Errorf("recorded %d elements, want none", len(elements))
	}
}

func TestPanickingInstallDoesNotStopCaller(t *testing.T) {
	t.Parallel()

	elements := spindle.Elements(spindle.ModuleFunc(func(b *spindle.Binder) {
		b.Install(spindle.ModuleFunc(func(*spindle.Binder) {
			panic(errors.New("database module misconfigured"))
		}))
		b.AddError("code after the failed install still runs")
	}))

	if len(elements) != 2 {
		t.Fatalf("recorded %d elements, want 2:\n%s", len(elements), spindle.Sprint(elements))
	}

	caught := spindletest.RequireMessage(t, elements[0])
	if caught.Cause() == nil || !strings.Contains(caught.Cause().Error(), "database module misconfigured") {
		t.Errorf("caught cause = %v", caught.Cause())
	}
	after := spindletest.RequireMessage(t, elements[1])
	if after.Text() != "code after the failed install still runs" {
		t.Errorf("trailing message = %q", after.Text())
	}
}

func TestPanickingModuleDoesNotStopSiblings(t *testing.T) {
	t.Parallel()

	broken := spindle.ModuleFunc(func(b *spindle.Binder) {
		spindle.Bind[int](b).ToInstance(1)
		panic("broken module")
	})
	healthy := spindle.ModuleFunc(func(b *spindle.Binder) {
		spindle.Bind[string](b).ToInstance("still configured")
	})

	elements := spindle.Elements(broken, healthy)

	if len(elements) != 3 {
		t.Fatalf("recorded %d elements, want 3:\n%s", len(elements), spindle.Sprint(elements))
	}
	spindletest.RequireKey[int](t, spindletest.RequireBinding(t, elements[0]))
	caught := spindletest.RequireMessage(t, elements[1])
	if !strings.Contains(caught.Text(), "broken module") {
		t.Errorf("caught message = %q", caught.Text())
	}
	binding := spindletest.RequireBinding(t, elements[2])
	spindletest.RequireKey[string](t, binding)
	if got := spindletest.BoundValue[string](t, binding); got != "still configured" {
		t.Errorf("sibling bound %q", got)
	}
}
