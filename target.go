package spindle

type BindingTarget interface {
	acceptTarget(v BindingTargetVisitor) any
}

type InstanceTarget struct {
	instance any
}

func (t *InstanceTarget) Instance() any { return t.instance }

func (t *InstanceTarget) acceptTarget(v BindingTargetVisitor) any { return v.VisitInstance(t) }

type ProviderInstanceTarget struct {
	provider Provider
}

func (t *ProviderInstanceTarget) Provider() Provider { return t.provider }

func (t *ProviderInstanceTarget) acceptTarget(v BindingTargetVisitor) any {
	return v.VisitProviderInstance(t)
}

type ProviderKeyTarget struct {
	providerKey Key
}

func (t *ProviderKeyTarget) ProviderKey() Key { return t.providerKey }

func (t *ProviderKeyTarget) acceptTarget(v BindingTargetVisitor) any { return v.VisitProviderKey(t) }

type LinkedKeyTarget struct {
	linkedKey Key
}

func (t *LinkedKeyTarget) LinkedKey() Key { return t.linkedKey }

func (t *LinkedKeyTarget) acceptTarget(v BindingTargetVisitor) any { return v.VisitLinkedKey(t) }

type ExposedTarget struct {
	environment *PrivateEnvironment
}

func (t *ExposedTarget) Environment() *PrivateEnvironment { return t.environment }

func (t *ExposedTarget) acceptTarget(v BindingTargetVisitor) any { return v.VisitExposed(t) }
