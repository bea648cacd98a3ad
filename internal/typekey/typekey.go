package typekey

import (
	"reflect"
	"strconv"
	"sync"
)

var cache sync.Map

func Of(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if cached, ok := cache.Load(t); ok {
		return cached.(string)
	}

	key := build(t)
	cache.Store(t, key)
	return key
}

func For[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		t = reflect.TypeOf((*T)(nil)).Elem()
	}
	return Of(t)
}

func FromValue(v any) string {
	if v == nil {
		return "<nil>"
	}
	return Of(reflect.TypeOf(v))
}

func Qualified(t reflect.Type, qualifier string) string {
	return Of(t) + "#" + qualifier
}

func build(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Ptr:
		return "*" + Of(t.Elem())
	case reflect.Slice:
		return "[]" + Of(t.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(t.Len()) + "]" + Of(t.Elem())
	case reflect.Map:
		return "map[" + Of(t.Key()) + "]" + Of(t.Elem())
	case reflect.Chan:
		switch t.ChanDir() {
		case reflect.RecvDir:
			return "<-chan " + Of(t.Elem())
		case reflect.SendDir:
			return "chan<- " + Of(t.Elem())
		default:
			return "chan " + Of(t.Elem())
		}
	case reflect.Func:
		return t.String()
	default:
		if t.PkgPath() != "" {
			return t.PkgPath() + "." + t.Name()
		}
		return t.Name()
	}
}
