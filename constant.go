package spindle

import (
	"fmt"
	"reflect"

	"github.com/danpasecinic/spindle/internal/typekey"
)

func (b *Binder) BindConstant() *AnnotatedConstantBindingBuilder {
	rec := &constantRecorder{source: b.tracker.Capture()}
	b.recording.add(rec)
	return &AnnotatedConstantBindingBuilder{binder: b, rec: rec}
}

type AnnotatedConstantBindingBuilder struct {
	binder *Binder
	rec    *constantRecorder
}

func (acbb *AnnotatedConstantBindingBuilder) AnnotatedWith(q Qualifier) *ConstantBindingBuilder {
	acbb.rec.setQualifier(acbb.binder, q)
	return &ConstantBindingBuilder{binder: acbb.binder, rec: acbb.rec}
}

type ConstantBindingBuilder struct {
	binder *Binder
	rec    *constantRecorder
}

func (cbb *ConstantBindingBuilder) To(value any) {
	cbb.rec.setValue(cbb.binder, value)
}

type constantRecorder struct {
	source    string
	qualifier Qualifier
	value     any
	valueType reflect.Type
	supplied  bool
	errors    []*Message
}

func (r *constantRecorder) setQualifier(b *Binder, q Qualifier) {
	if r.qualifier != nil {
		if r.qualifier == q {
			return
		}
		r.fail(b, "More than one annotation is specified for this binding.")
		return
	}
	r.qualifier = q
}

func (r *constantRecorder) setValue(b *Binder, value any) {
	if r.supplied {
		r.fail(b, "Constant value is set more than once.")
	}
	r.supplied = true
	t, ok := constantType(value)
	if !ok {
		r.fail(b, fmt.Sprintf(
			"Constant value of type %s is not a supported constant type.",
			typekey.FromValue(value),
		))
		return
	}
	r.value = value
	r.valueType = t
}

func (r *constantRecorder) fail(b *Binder, text string) {
	r.errors = append(r.errors, NewMessage(b.tracker.Capture(), text))
}

func (r *constantRecorder) finalize(out *[]Element) {
	switch {
	case r.valueType != nil:
		*out = append(*out, &Binding{
			source:  r.source,
			key:     Key{Type: r.valueType, Qualifier: r.qualifier},
			target:  &InstanceTarget{instance: r.value},
			scoping: NoScoping,
		})
	case !r.supplied:
		*out = append(*out, NewMessage(r.source, "Missing constant value. Please call To()."))
	}
	for _, msg := range r.errors {
		*out = append(*out, msg)
	}
}

// constantType reports the key type for a supported constant value.
// reflect.Type values are keyed by the reflect.Type interface itself.
func constantType(value any) (reflect.Type, bool) {
	if value == nil {
		return nil, false
	}
	if _, ok := value.(reflect.Type); ok {
		return reflect.TypeOf((*reflect.Type)(nil)).Elem(), true
	}
	t := reflect.TypeOf(value)
	switch t.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return t, true
	default:
		return nil, false
	}
}
