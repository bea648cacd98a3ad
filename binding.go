package spindle

type Binding struct {
	source  string
	key     Key
	target  BindingTarget
	scoping Scoping
}

func (b *Binding) Source() string { return b.source }
func (b *Binding) Key() Key       { return b.key }

// Target is nil for a binding that never received one.
func (b *Binding) Target() BindingTarget { return b.target }

func (b *Binding) Scoping() Scoping { return b.scoping }

func (b *Binding) Accept(v ElementVisitor) any { return v.VisitBinding(b) }

func (b *Binding) AcceptTarget(v BindingTargetVisitor) any {
	if b.target == nil {
		return v.VisitUntargeted()
	}
	return b.target.acceptTarget(v)
}

func (b *Binding) AcceptScoping(v BindingScopingVisitor) any {
	return b.scoping.acceptScoping(v)
}

func (*Binding) isElement() {}
