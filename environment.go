package spindle

type PrivateEnvironment struct {
	source    string
	recording *recording
	exposed   []*exposedRecorder
	elements  []Element
	sealed    bool
}

func (pe *PrivateEnvironment) Source() string { return pe.source }

func (pe *PrivateEnvironment) Elements() []Element {
	if !pe.sealed {
		return pe.recording.finalize()
	}
	return pe.elements
}

// ExposedKeys preserves first-expose order and drops duplicates.
func (pe *PrivateEnvironment) ExposedKeys() []Key {
	keys := make([]Key, 0, len(pe.exposed))
	seen := make(map[Key]bool, len(pe.exposed))
	for _, rec := range pe.exposed {
		if seen[rec.key] {
			continue
		}
		seen[rec.key] = true
		keys = append(keys, rec.key)
	}
	return keys
}

func (pe *PrivateEnvironment) seal() {
	pe.elements = pe.recording.finalize()
	pe.sealed = true
}

func (pe *PrivateEnvironment) Accept(v ElementVisitor) any { return v.VisitPrivateEnvironment(pe) }

func (*PrivateEnvironment) isElement() {}
