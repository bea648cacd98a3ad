package spindle

import (
	"fmt"
	"reflect"

	"github.com/danpasecinic/spindle/internal/source"
)

// Recorder is the recording surface shared by *Binder and *PrivateBinder.
// It is satisfied only by this package's binder types.
type Recorder interface {
	binderView() *Binder
}

type Binder struct {
	session   *session
	recording *recording
	tracker   source.Tracker
}

func newBinder(s *session) *Binder {
	return &Binder{
		session:   s,
		recording: &recording{},
		tracker:   source.Caller(),
	}
}

func (b *Binder) binderView() *Binder { return b }

func (b *Binder) WithSource(src string) *Binder {
	view := *b
	view.tracker = source.Fixed(src)
	return &view
}

func (b *Binder) Install(m Module) {
	name := moduleName(m)
	if !b.session.shouldConfigure(m) {
		b.session.logger.Debug("module already installed, skipping", "module", name)
		return
	}
	b.session.logger.Debug("installing module", "module", name)
	for _, hook := range b.session.onInstall {
		hook(name)
	}
	b.configure(m)
}

func (b *Binder) configure(m Module) {
	defer func() {
		if r := recover(); r != nil {
			cause := recoveredError(r)
			b.session.logger.Debug("recovered from configure panic", "module", moduleName(m), "error", cause)
			for _, hook := range b.session.onRecover {
				hook(moduleName(m), cause)
			}
			b.recording.add(elementSlot{element: NewMessageWithCause(
				b.tracker.Capture(),
				"An exception was caught and reported. Message: "+cause.Error(),
				cause,
			)})
		}
	}()
	m.Configure(b)
}

func (b *Binder) AddError(format string, args ...any) {
	b.recording.add(elementSlot{element: NewMessage(b.tracker.Capture(), fmt.Sprintf(format, args...))})
}

func (b *Binder) AddCaughtError(err error) {
	b.recording.add(elementSlot{element: NewMessageWithCause(
		b.tracker.Capture(),
		"An exception was caught and reported. Message: "+err.Error(),
		err,
	)})
}

func (b *Binder) BindScope(tag reflect.Type, s Scope) {
	b.recording.add(elementSlot{element: &ScopeBinding{
		source: b.tracker.Capture(),
		tag:    tag,
		scope:  s,
	}})
}

func (b *Binder) BindInterceptor(
	classMatcher Matcher[reflect.Type],
	methodMatcher Matcher[reflect.Method],
	interceptors ...MethodInterceptor,
) {
	b.recording.add(elementSlot{element: &InterceptorBinding{
		source:        b.tracker.Capture(),
		classMatcher:  classMatcher,
		methodMatcher: methodMatcher,
		interceptors:  append([]MethodInterceptor(nil), interceptors...),
	}})
}

func (b *Binder) ConvertToTypes(typeMatcher Matcher[reflect.Type], converter TypeConverter) {
	b.recording.add(elementSlot{element: &TypeConverterBinding{
		source:      b.tracker.Capture(),
		typeMatcher: typeMatcher,
		converter:   converter,
	}})
}

func (b *Binder) RequestInjection(instances ...any) {
	src := b.tracker.Capture()
	for _, instance := range instances {
		b.recording.add(elementSlot{element: &InjectionRequest{source: src, instance: instance}})
	}
}

func (b *Binder) RequestStaticInjection(types ...reflect.Type) {
	src := b.tracker.Capture()
	for _, t := range types {
		b.recording.add(elementSlot{element: &StaticInjectionRequest{source: src, typ: t}})
	}
}

func (b *Binder) GetProviderFor(key Key) Provider {
	lookup := &ProviderLookup{source: b.tracker.Capture(), key: key}
	b.recording.add(elementSlot{element: lookup})
	return lookup.Provider()
}

func GetProvider[T any](r Recorder) Provider {
	return r.binderView().GetProviderFor(KeyOf[T]())
}

func (b *Binder) addMessage(text string) {
	b.recording.add(elementSlot{element: NewMessage(b.tracker.Capture(), text)})
}

func recoveredError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}

type recording struct {
	slots []slot
}

func (r *recording) add(s slot) {
	r.slots = append(r.slots, s)
}

func (r *recording) finalize() []Element {
	out := make([]Element, 0, len(r.slots))
	for _, s := range r.slots {
		s.finalize(&out)
	}
	return out
}

type slot interface {
	finalize(out *[]Element)
}

type elementSlot struct {
	element Element
}

func (s elementSlot) finalize(out *[]Element) {
	*out = append(*out, s.element)
}
