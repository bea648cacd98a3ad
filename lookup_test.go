package spindle_test

import (
	"strings"
	"testing"

	"github.com/danpasecinic/spindle"
)

func recordLookup(t *testing.T) (*spindle.ProviderLookup, spindle.Provider) {
	t.Helper()

	var provider spindle.Provider
	elements := spindle.Elements(spindle.ModuleFunc(func(b *spindle.Binder) {
		provider = spindle.GetProvider[Logger](b)
	}))

	if len(elements) != 1 {
		t.Fatalf("recorded %d elements, want 1", len(elements))
	}
	lookup, ok := elements[0].(*spindle.ProviderLookup)
	if !ok {
		t.Fatalf("element is %T, want a provider lookup", elements[0])
	}
	return lookup, provider
}

func TestGetProviderRecordsLookup(t *testing.T) {
	t.Parallel()

	lookup, provider := recordLookup(t)

	if lookup.Key() != spindle.KeyOf[Logger]() {
		t.Errorf("key = %s, want %s", lookup.Key(), spindle.KeyOf[Logger]())
	}
	if provider == nil {
		t.Fatal("expected a provider")
	}
	if lookup.Delegate() != nil {
		t.Error("expected no delegate before initialization")
	}
}

func TestProviderNotReadyBeforeInitialization(t *testing.T) {
	t.Parallel()

	_, provider := recordLookup(t)

	_, err := provider.Get()
	if !spindle.IsProviderNotReady(err) {
		t.Fatalf("err = %v, want a provider not ready error", err)
	}
	if !strings.Contains(err.Error(), "provider cannot be used until the object graph has been created") {
		t.Errorf("err = %v", err)
	}
	if !strings.Contains(err.Error(), "PROVIDER_NOT_READY") {
		t.Errorf("err = %v, want the code rendered", err)
	}
}

func TestInitializeDelegate(t *testing.T) {
	t.Parallel()

	lookup, provider := recordLookup(t)

	err := lookup.InitializeDelegate(spindle.ProviderFunc(func() (any, error) {
		return consoleLogger{}, nil
	}))
	if err != nil {
		t.Fatalf("InitializeDelegate failed: %v", err)
	}

	got, err := provider.Get()
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if _, ok := got.(consoleLogger); !ok {
		t.Errorf("Get returned %T", got)
	}
	if lookup.Delegate() == nil {
		t.Error("expected the delegate to be recorded")
	}
}

func TestInitializeDelegateTwice(t *testing.T) {
	t.Parallel()

	lookup, _ := recordLookup(t)

	delegate := spindle.ProviderFunc(func() (any, error) { return nil, nil })
	if err := lookup.InitializeDelegate(delegate); err != nil {
		t.Fatalf("InitializeDelegate failed: %v", err)
	}

	err := lookup.InitializeDelegate(delegate)
	if !spindle.IsDelegateAlreadySet(err) {
		t.Errorf("err = %v, want a delegate already set error", err)
	}
}

func TestInitializeNilDelegate(t *testing.T) {
	t.Parallel()

	lookup, _ := recordLookup(t)

	err := lookup.InitializeDelegate(nil)
	if !spindle.IsNilDelegate(err) {
		t.Errorf("err = %v, want a nil delegate error", err)
	}
}

func TestGetProviderForQualifiedKey(t *testing.T) {
	t.Parallel()

	key := spindle.KeyOf[Logger]().Qualified(spindle.Named("audit"))

	elements := spindle.Elements(spindle.ModuleFunc(func(b *spindle.Binder) {
		b.GetProviderFor(key)
	}))

	lookup, ok := elements[0].(*spindle.ProviderLookup)
	if !ok {
		t.Fatalf("element is %T, want a provider lookup", elements[0])
	}
	if lookup.Key() != key {
		t.Errorf("key = %s, want %s", lookup.Key(), key)
	}
}
