package spindle

import "reflect"

type MethodInvocation interface {
	Method() reflect.Method
	Receiver() any
	Arguments() []any
	Proceed() (any, error)
}

type MethodInterceptor interface {
	Invoke(invocation MethodInvocation) (any, error)
}

type InterceptorBinding struct {
	source        string
	classMatcher  Matcher[reflect.Type]
	methodMatcher Matcher[reflect.Method]
	interceptors  []MethodInterceptor
}

func (ib *InterceptorBinding) Source() string                         { return ib.source }
func (ib *InterceptorBinding) ClassMatcher() Matcher[reflect.Type]    { return ib.classMatcher }
func (ib *InterceptorBinding) MethodMatcher() Matcher[reflect.Method] { return ib.methodMatcher }

func (ib *InterceptorBinding) Interceptors() []MethodInterceptor {
	out := make([]MethodInterceptor, len(ib.interceptors))
	copy(out, ib.interceptors)
	return out
}

func (ib *InterceptorBinding) Accept(v ElementVisitor) any { return v.VisitInterceptorBinding(ib) }

func (*InterceptorBinding) isElement() {}
