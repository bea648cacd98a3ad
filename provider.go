package spindle

type Provider interface {
	Get() (any, error)
}

type ProviderFunc func() (any, error)

func (f ProviderFunc) Get() (any, error) { return f() }
