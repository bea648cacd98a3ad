package spindle

type Matcher[T any] interface {
	Matches(value T) bool
}

type MatcherFunc[T any] func(value T) bool

func (f MatcherFunc[T]) Matches(value T) bool { return f(value) }

func Any[T any]() Matcher[T] {
	return MatcherFunc[T](func(T) bool { return true })
}
