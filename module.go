package spindle

import "github.com/danpasecinic/spindle/internal/typekey"

type Module interface {
	Configure(b *Binder)
}

type ModuleFunc func(b *Binder)

func (f ModuleFunc) Configure(b *Binder) { f(b) }

func NewModule(name string, configure func(b *Binder)) Module {
	return &namedModule{name: name, configure: configure}
}

type namedModule struct {
	name      string
	configure func(b *Binder)
}

func (m *namedModule) Name() string { return m.name }

func (m *namedModule) Configure(b *Binder) {
	if m.configure != nil {
		m.configure(b)
	}
}

func moduleName(m Module) string {
	type namer interface {
		Name() string
	}
	if n, ok := m.(namer); ok {
		return n.Name()
	}
	return typekey.FromValue(m)
}
