package spindle

import "reflect"

type InjectionRequest struct {
	source   string
	instance any
}

func (ir *InjectionRequest) Source() string { return ir.source }
func (ir *InjectionRequest) Instance() any  { return ir.instance }

func (ir *InjectionRequest) Accept(v ElementVisitor) any { return v.VisitInjectionRequest(ir) }

func (*InjectionRequest) isElement() {}

type StaticInjectionRequest struct {
	source string
	typ    reflect.Type
}

func (sir *StaticInjectionRequest) Source() string     { return sir.source }
func (sir *StaticInjectionRequest) Type() reflect.Type { return sir.typ }

func (sir *StaticInjectionRequest) Accept(v ElementVisitor) any {
	return v.VisitStaticInjectionRequest(sir)
}

func (*StaticInjectionRequest) isElement() {}
