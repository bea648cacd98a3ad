package spindle

import "reflect"

type Scoping interface {
	acceptScoping(v BindingScopingVisitor) any
}

var (
	NoScoping      Scoping = noScoping{}
	EagerSingleton Scoping = eagerSingleton{}
)

type noScoping struct{}

func (noScoping) acceptScoping(v BindingScopingVisitor) any { return v.VisitNoScoping() }

type eagerSingleton struct{}

func (eagerSingleton) acceptScoping(v BindingScopingVisitor) any { return v.VisitEagerSingleton() }

type scopeInstance struct {
	scope Scope
}

func (s scopeInstance) acceptScoping(v BindingScopingVisitor) any { return v.VisitScope(s.scope) }

type scopeTag struct {
	tag reflect.Type
}

func (s scopeTag) acceptScoping(v BindingScopingVisitor) any { return v.VisitScopeTag(s.tag) }
