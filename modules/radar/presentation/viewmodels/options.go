package viewmodels

// Option is the generic display/value pair consumed by single- and
// multi-select controls.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Field wraps a bare string for the dynamic list-editing widget used by
// the ring/quadrant definition editors.
type Field struct {
	Value string `json:"value"`
}
