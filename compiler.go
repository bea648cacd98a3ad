package spindle

import (
	"log/slog"
	"reflect"
)

type Compiler struct {
	config *compilerConfig
}

type compilerConfig struct {
	logger    *slog.Logger
	onRecord  []RecordHook
	onInstall []InstallHook
	onRecover []RecoverHook
}

func NewCompiler(opts ...Option) *Compiler {
	cfg := &compilerConfig{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return &Compiler{config: cfg}
}

func (c *Compiler) Compile(modules ...Module) []Element {
	s := &session{
		logger:     c.config.logger,
		configured: map[Module]bool{},
		onInstall:  c.config.onInstall,
		onRecover:  c.config.onRecover,
	}

	b := newBinder(s)
	for _, m := range modules {
		b.Install(m)
	}

	elements := b.recording.finalize()
	c.config.logger.Debug("compiled modules", "modules", len(modules), "elements", len(elements))

	for _, e := range elements {
		for _, hook := range c.config.onRecord {
			hook(e)
		}
	}

	return elements
}

func Elements(modules ...Module) []Element {
	return NewCompiler().Compile(modules...)
}

type session struct {
	logger     *slog.Logger
	configured map[Module]bool
	onInstall  []InstallHook
	onRecover  []RecoverHook
}

// shouldConfigure marks m before its callback runs, so reentrant installs
// of the same instance are no-ops. Modules with uncomparable dynamic
// types cannot be tracked and configure every time.
func (s *session) shouldConfigure(m Module) bool {
	t := reflect.TypeOf(m)
	if t == nil || !t.Comparable() {
		return true
	}
	if s.configured[m] {
		return false
	}
	s.configured[m] = true
	return true
}
