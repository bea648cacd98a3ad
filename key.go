package spindle

import (
	"reflect"

	"github.com/danpasecinic/spindle/internal/typekey"
)

type Key struct {
	Type      reflect.Type
	Qualifier Qualifier
}

func KeyOf[T any]() Key {
	return Key{Type: typeFor[T]()}
}

func (k Key) Qualified(q Qualifier) Key {
	k.Qualifier = q
	return k
}

func (k Key) String() string {
	if k.Qualifier == nil {
		return typekey.Of(k.Type)
	}
	return typekey.Qualified(k.Type, k.Qualifier.String())
}

func typeFor[T any]() reflect.Type {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		t = reflect.TypeOf((*T)(nil)).Elem()
	}
	return t
}
