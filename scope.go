package spindle

import "reflect"

type Scope interface {
	Scope(key Key, unscoped Provider) Provider
}

type ScopeFunc func(key Key, unscoped Provider) Provider

func (f ScopeFunc) Scope(key Key, unscoped Provider) Provider { return f(key, unscoped) }

type ScopeBinding struct {
	source string
	tag    reflect.Type
	scope  Scope
}

func (sb *ScopeBinding) Source() string    { return sb.source }
func (sb *ScopeBinding) Tag() reflect.Type { return sb.tag }
func (sb *ScopeBinding) Scope() Scope      { return sb.scope }

func (sb *ScopeBinding) Accept(v ElementVisitor) any { return v.VisitScopeBinding(sb) }

func (*ScopeBinding) isElement() {}
