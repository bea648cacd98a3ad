package spindle

import "reflect"

type TypeConverter interface {
	Convert(value string, target reflect.Type) (any, error)
}

type TypeConverterFunc func(value string, target reflect.Type) (any, error)

func (f TypeConverterFunc) Convert(value string, target reflect.Type) (any, error) {
	return f(value, target)
}

type TypeConverterBinding struct {
	source      string
	typeMatcher Matcher[reflect.Type]
	converter   TypeConverter
}

func (tcb *TypeConverterBinding) Source() string                     { return tcb.source }
func (tcb *TypeConverterBinding) TypeMatcher() Matcher[reflect.Type] { return tcb.typeMatcher }
func (tcb *TypeConverterBinding) Converter() TypeConverter           { return tcb.converter }

func (tcb *TypeConverterBinding) Accept(v ElementVisitor) any {
	return v.VisitTypeConverterBinding(tcb)
}

func (*TypeConverterBinding) isElement() {}
