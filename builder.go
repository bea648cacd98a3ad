package spindle

import "reflect"

func Bind[T any](r Recorder) *AnnotatedBindingBuilder[T] {
	b := r.binderView()
	rec := &bindingRecorder{source: b.tracker.Capture(), key: KeyOf[T]()}
	b.recording.add(rec)
	return &AnnotatedBindingBuilder[T]{
		LinkedBindingBuilder: LinkedBindingBuilder[T]{
			ScopedBindingBuilder: ScopedBindingBuilder{binder: b, rec: rec},
		},
	}
}

func (b *Binder) BindKey(key Key) *LinkedBindingBuilder[any] {
	rec := &bindingRecorder{source: b.tracker.Capture(), key: key}
	b.recording.add(rec)
	return &LinkedBindingBuilder[any]{
		ScopedBindingBuilder: ScopedBindingBuilder{binder: b, rec: rec},
	}
}

type AnnotatedBindingBuilder[T any] struct {
	LinkedBindingBuilder[T]
}

func (abb *AnnotatedBindingBuilder[T]) AnnotatedWith(q Qualifier) *LinkedBindingBuilder[T] {
	abb.rec.setQualifier(abb.binder, q)
	return &abb.LinkedBindingBuilder
}

type LinkedBindingBuilder[T any] struct {
	ScopedBindingBuilder
}

func (lbb *LinkedBindingBuilder[T]) To(key Key) *ScopedBindingBuilder {
	lbb.rec.setTarget(lbb.binder, &LinkedKeyTarget{linkedKey: key})
	return &lbb.ScopedBindingBuilder
}

func (lbb *LinkedBindingBuilder[T]) ToInstance(instance T) {
	if isNil(instance) {
		lbb.binder.addMessage(
			"Binding to nil instances is not allowed. Use ToProvider() if this is your intended behaviour.",
		)
	}
	lbb.rec.setTarget(lbb.binder, &InstanceTarget{instance: instance})
}

func (lbb *LinkedBindingBuilder[T]) ToProvider(p Provider) *ScopedBindingBuilder {
	lbb.rec.setTarget(lbb.binder, &ProviderInstanceTarget{provider: p})
	return &lbb.ScopedBindingBuilder
}

func (lbb *LinkedBindingBuilder[T]) ToProviderKey(key Key) *ScopedBindingBuilder {
	lbb.rec.setTarget(lbb.binder, &ProviderKeyTarget{providerKey: key})
	return &lbb.ScopedBindingBuilder
}

type ScopedBindingBuilder struct {
	binder *Binder
	rec    *bindingRecorder
}

func (sbb *ScopedBindingBuilder) In(tag reflect.Type) {
	sbb.rec.setScoping(sbb.binder, scopeTag{tag: tag})
}

func (sbb *ScopedBindingBuilder) InScope(s Scope) {
	sbb.rec.setScoping(sbb.binder, scopeInstance{scope: s})
}

func (sbb *ScopedBindingBuilder) AsEagerSingleton() {
	sbb.rec.setScoping(sbb.binder, EagerSingleton)
}

type bindingRecorder struct {
	source  string
	key     Key
	target  BindingTarget
	scoping Scoping
	errors  []*Message
}

func (r *bindingRecorder) setQualifier(b *Binder, q Qualifier) {
	if r.key.Qualifier != nil {
		if r.key.Qualifier == q {
			return
		}
		r.fail(b, "More than one annotation is specified for this binding.")
		return
	}
	r.key = r.key.Qualified(q)
}

func (r *bindingRecorder) setTarget(b *Binder, t BindingTarget) {
	if r.target != nil {
		r.fail(b, "Implementation is set more than once.")
	}
	r.target = t
}

func (r *bindingRecorder) setScoping(b *Binder, s Scoping) {
	if r.scoping != nil {
		r.fail(b, "Scope is set more than once.")
	}
	r.scoping = s
}

// fail stamps the offending call's location, not the original bind site.
func (r *bindingRecorder) fail(b *Binder, text string) {
	r.errors = append(r.errors, NewMessage(b.tracker.Capture(), text))
}

func (r *bindingRecorder) finalize(out *[]Element) {
	scoping := r.scoping
	if scoping == nil {
		scoping = NoScoping
	}
	*out = append(*out, &Binding{
		source:  r.source,
		key:     r.key,
		target:  r.target,
		scoping: scoping,
	})
	for _, msg := range r.errors {
		*out = append(*out, msg)
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
