package spindle

import (
	"reflect"

	"github.com/danpasecinic/spindle/internal/typekey"
)

// Qualifier implementations must be comparable; Key equality depends on it.
type Qualifier interface {
	String() string
}

func Named(name string) Qualifier {
	return named{name: name}
}

type named struct {
	name string
}

func (n named) String() string { return n.name }

func Tagged[Q any]() Qualifier {
	return tagged{marker: typeFor[Q]()}
}

type tagged struct {
	marker reflect.Type
}

func (t tagged) String() string { return typekey.Of(t.marker) }
