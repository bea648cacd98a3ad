package spindle

import "reflect"

type ElementVisitor interface {
	VisitMessage(m *Message) any
	VisitBinding(b *Binding) any
	VisitScopeBinding(sb *ScopeBinding) any
	VisitInterceptorBinding(ib *InterceptorBinding) any
	VisitTypeConverterBinding(tcb *TypeConverterBinding) any
	VisitProviderLookup(pl *ProviderLookup) any
	VisitInjectionRequest(ir *InjectionRequest) any
	VisitStaticInjectionRequest(sir *StaticInjectionRequest) any
	VisitPrivateEnvironment(pe *PrivateEnvironment) any
}

type BindingTargetVisitor interface {
	VisitInstance(t *InstanceTarget) any
	VisitProviderInstance(t *ProviderInstanceTarget) any
	VisitProviderKey(t *ProviderKeyTarget) any
	VisitLinkedKey(t *LinkedKeyTarget) any
	VisitExposed(t *ExposedTarget) any
	VisitUntargeted() any
}

type BindingScopingVisitor interface {
	VisitNoScoping() any
	VisitScope(s Scope) any
	VisitScopeTag(tag reflect.Type) any
	VisitEagerSingleton() any
}

// ElementVisitorFuncs builds a visitor from optional per-variant
// functions. Variants without a function fall through to Default.
type ElementVisitorFuncs struct {
	Message                func(*Message) any
	Binding                func(*Binding) any
	ScopeBinding           func(*ScopeBinding) any
	InterceptorBinding     func(*InterceptorBinding) any
	TypeConverterBinding   func(*TypeConverterBinding) any
	ProviderLookup         func(*ProviderLookup) any
	InjectionRequest       func(*InjectionRequest) any
	StaticInjectionRequest func(*StaticInjectionRequest) any
	PrivateEnvironment     func(*PrivateEnvironment) any
	Default                func(e Element) any
}

func (v ElementVisitorFuncs) VisitMessage(m *Message) any {
	if v.Message != nil {
		return v.Message(m)
	}
	return v.fallback(m)
}

func (v ElementVisitorFuncs) VisitBinding(b *Binding) any {
	if v.Binding != nil {
		return v.Binding(b)
	}
	return v.fallback(b)
}

func (v ElementVisitorFuncs) VisitScopeBinding(sb *ScopeBinding) any {
	if v.ScopeBinding != nil {
		return v.ScopeBinding(sb)
	}
	return v.fallback(sb)
}

func (v ElementVisitorFuncs) VisitInterceptorBinding(ib *InterceptorBinding) any {
	if v.InterceptorBinding != nil {
		return v.InterceptorBinding(ib)
	}
	return v.fallback(ib)
}

func (v ElementVisitorFuncs) VisitTypeConverterBinding(tcb *TypeConverterBinding) any {
	if v.TypeConverterBinding != nil {
		return v.TypeConverterBinding(tcb)
	}
	return v.fallback(tcb)
}

func (v ElementVisitorFuncs) VisitProviderLookup(pl *ProviderLookup) any {
	if v.ProviderLookup != nil {
		return v.ProviderLookup(pl)
	}
	return v.fallback(pl)
}

func (v ElementVisitorFuncs) VisitInjectionRequest(ir *InjectionRequest) any {
	if v.InjectionRequest != nil {
		return v.InjectionRequest(ir)
	}
	return v.fallback(ir)
}

func (v ElementVisitorFuncs) VisitStaticInjectionRequest(sir *StaticInjectionRequest) any {
	if v.StaticInjectionRequest != nil {
		return v.StaticInjectionRequest(sir)
	}
	return v.fallback(sir)
}

func (v ElementVisitorFuncs) VisitPrivateEnvironment(pe *PrivateEnvironment) any {
	if v.PrivateEnvironment != nil {
		return v.PrivateEnvironment(pe)
	}
	return v.fallback(pe)
}

func (v ElementVisitorFuncs) fallback(e Element) any {
	if v.Default != nil {
		return v.Default(e)
	}
	return nil
}

// TargetVisitorFuncs builds a target visitor from optional per-variant
// functions. Default receives nil for untargeted bindings.
type TargetVisitorFuncs struct {
	Instance         func(*InstanceTarget) any
	ProviderInstance func(*ProviderInstanceTarget) any
	ProviderKey      func(*ProviderKeyTarget) any
	LinkedKey        func(*LinkedKeyTarget) any
	Exposed          func(*ExposedTarget) any
	Untargeted       func() any
	Default          func(t BindingTarget) any
}

func (v TargetVisitorFuncs) VisitInstance(t *InstanceTarget) any {
	if v.Instance != nil {
		return v.Instance(t)
	}
	return v.fallback(t)
}

func (v TargetVisitorFuncs) VisitProviderInstance(t *ProviderInstanceTarget) any {
	if v.ProviderInstance != nil {
		return v.ProviderInstance(t)
	}
	return v.fallback(t)
}

func (v TargetVisitorFuncs) VisitProviderKey(t *ProviderKeyTarget) any {
	if v.ProviderKey != nil {
		return v.ProviderKey(t)
	}
	return v.fallback(t)
}

func (v TargetVisitorFuncs) VisitLinkedKey(t *LinkedKeyTarget) any {
	if v.LinkedKey != nil {
		return v.LinkedKey(t)
	}
	return v.fallback(t)
}

func (v TargetVisitorFuncs) VisitExposed(t *ExposedTarget) any {
	if v.Exposed != nil {
		return v.Exposed(t)
	}
	return v.fallback(t)
}

func (v TargetVisitorFuncs) VisitUntargeted() any {
	if v.Untargeted != nil {
		return v.Untargeted()
	}
	return v.fallback(nil)
}

func (v TargetVisitorFuncs) fallback(t BindingTarget) any {
	if v.Default != nil {
		return v.Default(t)
	}
	return nil
}

// ScopingVisitorFuncs builds a scoping visitor from optional per-variant
// functions.
type ScopingVisitorFuncs struct {
	NoScoping      func() any
	Scope          func(s Scope) any
	ScopeTag       func(tag reflect.Type) any
	EagerSingleton func() any
	Default        func() any
}

func (v ScopingVisitorFuncs) VisitNoScoping() any {
	if v.NoScoping != nil {
		return v.NoScoping()
	}
	return v.fallback()
}

func (v ScopingVisitorFuncs) VisitScope(s Scope) any {
	if v.Scope != nil {
		return v.Scope(s)
	}
	return v.fallback()
}

func (v ScopingVisitorFuncs) VisitScopeTag(tag reflect.Type) any {
	if v.ScopeTag != nil {
		return v.ScopeTag(tag)
	}
	return v.fallback()
}

func (v ScopingVisitorFuncs) VisitEagerSingleton() any {
	if v.EagerSingleton != nil {
		return v.EagerSingleton()
	}
	return v.fallback()
}

func (v ScopingVisitorFuncs) fallback() any {
	if v.Default != nil {
		return v.Default()
	}
	return nil
}

// BoundInstance extracts the value of an instance-targeted binding.
func BoundInstance(b *Binding) (any, bool) {
	var (
		instance any
		found    bool
	)
	b.AcceptTarget(TargetVisitorFuncs{
		Instance: func(t *InstanceTarget) any {
			instance = t.Instance()
			found = true
			return nil
		},
	})
	return instance, found
}
