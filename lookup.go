package spindle

type ProviderLookup struct {
	source   string
	key      Key
	delegate Provider
}

func (pl *ProviderLookup) Source() string { return pl.source }
func (pl *ProviderLookup) Key() Key       { return pl.key }

// Delegate is nil until the object-graph phase initializes it.
func (pl *ProviderLookup) Delegate() Provider { return pl.delegate }

func (pl *ProviderLookup) InitializeDelegate(delegate Provider) error {
	if pl.delegate != nil {
		return errDelegateAlreadySet(pl.key)
	}
	if delegate == nil {
		return errNilDelegate(pl.key)
	}
	pl.delegate = delegate
	return nil
}

func (pl *ProviderLookup) Provider() Provider {
	return lookupProvider{lookup: pl}
}

func (pl *ProviderLookup) Accept(v ElementVisitor) any { return v.VisitProviderLookup(pl) }

func (*ProviderLookup) isElement() {}

type lookupProvider struct {
	lookup *ProviderLookup
}

func (p lookupProvider) Get() (any, error) {
	delegate := p.lookup.delegate
	if delegate == nil {
		return nil, errProviderNotReady(p.lookup.key)
	}
	return delegate.Get()
}
