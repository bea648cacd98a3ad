package spindle

import "github.com/danpasecinic/spindle/internal/source"

type PrivateBinder struct {
	Binder
	environment *PrivateEnvironment
	parent      *recording
}

func (b *Binder) NewPrivateBinder() *PrivateBinder {
	env := &PrivateEnvironment{
		source:    b.tracker.Capture(),
		recording: &recording{},
	}
	b.recording.add(environmentSlot{environment: env})
	return &PrivateBinder{
		Binder: Binder{
			session:   b.session,
			recording: env.recording,
			tracker:   b.tracker,
		},
		environment: env,
		parent:      b.recording,
	}
}

func (pb *PrivateBinder) WithSource(src string) *PrivateBinder {
	view := *pb
	view.tracker = source.Fixed(src)
	return &view
}

func (pb *PrivateBinder) Environment() *PrivateEnvironment { return pb.environment }

func (pb *PrivateBinder) ExposeKey(key Key) {
	pb.expose(key)
}

func Expose[T any](pb *PrivateBinder) *AnnotatedElementBuilder {
	rec := pb.expose(KeyOf[T]())
	return &AnnotatedElementBuilder{binder: pb, rec: rec}
}

func (pb *PrivateBinder) expose(key Key) *exposedRecorder {
	rec := &exposedRecorder{
		source:      pb.tracker.Capture(),
		key:         key,
		environment: pb.environment,
	}
	pb.parent.add(rec)
	pb.environment.exposed = append(pb.environment.exposed, rec)
	return rec
}

type AnnotatedElementBuilder struct {
	binder *PrivateBinder
	rec    *exposedRecorder
}

func (aeb *AnnotatedElementBuilder) AnnotatedWith(q Qualifier) {
	aeb.rec.setQualifier(&aeb.binder.Binder, q)
}

type exposedRecorder struct {
	source      string
	key         Key
	environment *PrivateEnvironment
	errors      []*Message
}

func (r *exposedRecorder) setQualifier(b *Binder, q Qualifier) {
	if r.key.Qualifier != nil {
		if r.key.Qualifier == q {
			return
		}
		r.errors = append(r.errors, NewMessage(
			b.tracker.Capture(),
			"More than one annotation is specified for this binding.",
		))
		return
	}
	r.key = r.key.Qualified(q)
}

func (r *exposedRecorder) finalize(out *[]Element) {
	*out = append(*out, &Binding{
		source:  r.source,
		key:     r.key,
		target:  &ExposedTarget{environment: r.environment},
		scoping: NoScoping,
	})
	for _, msg := range r.errors {
		*out = append(*out, msg)
	}
}

type environmentSlot struct {
	environment *PrivateEnvironment
}

func (s environmentSlot) finalize(out *[]Element) {
	s.environment.seal()
	*out = append(*out, s.environment)
}
