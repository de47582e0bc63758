package viewmodels

type RadarListItem struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Rings     []string `json:"rings"`
	Quadrants []string `json:"quadrants"`
}

// RadarFormVM feeds the ring/quadrant definition editors: both lists are
// rendered as bounded dynamic lists of wrapped values.
type RadarFormVM struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Rings     []Field `json:"rings"`
	Quadrants []Field `json:"quadrants"`
}
