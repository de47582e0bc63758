package viewmodels

// ItemPlacement is one wire pair of the item payload.
type ItemPlacement struct {
	ID       string `json:"id"`
	Quadrant string `json:"quadrant"`
}

// ItemWire is the item's wire shape: a flat placement list, tri-state
// probation result serialized as passed/failed/empty.
type ItemWire struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Ring            string          `json:"ring"`
	RU              bool            `json:"ru"`
	ProbationResult string          `json:"probation_result,omitempty"`
	Radars          []ItemPlacement `json:"radars"`
}

// ItemAssociation is one card of the item form: a radar plus the
// quadrant options the item occupies there.
type ItemAssociation struct {
	RadarID   string   `json:"radarId"`
	Label     string   `json:"label"`
	Quadrants []Option `json:"quadrants"`
}

// ItemFormVM is the form shape of an item. The probation tri-state is
// collapsed to a boolean switch here; a failed and an absent result are
// indistinguishable in this shape.
type ItemFormVM struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Ring            Option            `json:"ring"`
	RU              bool              `json:"ru"`
	ProbationPassed bool              `json:"probationPassed"`
	Associations    []ItemAssociation `json:"associations"`
	CanAddRadar     bool              `json:"canAddRadar"`
}
