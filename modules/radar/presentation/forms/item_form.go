package forms

import (
	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/iota-uz/radar-admin/modules/radar/domain/aggregates/item"
	"github.com/iota-uz/radar-admin/modules/radar/domain/aggregates/radar"
	"github.com/iota-uz/radar-admin/modules/radar/presentation/mappers"
	"github.com/iota-uz/radar-admin/modules/radar/presentation/viewmodels"
)

var (
	ErrAssociationLimit = errors.New("every catalog radar is already associated")
	ErrRowOutOfRange    = errors.New("association row index out of range")
	ErrUnknownRadar     = errors.New("radar is not in the catalog")
)

// Association is one editable row of the item form's radar field-array:
// a chosen radar plus the quadrant options selected for it. A row with an
// empty RadarID has not been pointed at a radar yet.
type Association struct {
	RadarID   string
	Label     string
	Quadrants []viewmodels.Option
}

// ItemForm is the form-instance state behind the item editor. It owns the
// ordered association rows and keeps them consistent with the radar
// catalog; all mutations go through its methods. It is not safe for
// concurrent use, matching its one-form-one-editor scope.
type ItemForm struct {
	ID              string
	Name            string
	Description     string
	Ring            viewmodels.Option
	RU              bool
	ProbationPassed bool

	// previousResult preserves the tri-state the form was loaded from so
	// the boolean switch can be expanded back without inventing outcomes.
	previousResult item.ProbationResult

	catalog      []radar.Radar
	persisted    map[string][]string
	associations []Association
}

// GroupPlacements derives the item's radar map from its flat placement
// list: placements are grouped by radar in order of first appearance, and
// a quadrant repeated within one radar is kept once. The contiguous
// grouped form is the normalized shape every later transform works on.
func GroupPlacements(placements []item.Placement) ([]uuid.UUID, map[uuid.UUID][]string) {
	order := make([]uuid.UUID, 0, len(placements))
	grouped := make(map[uuid.UUID][]string, len(placements))
	for _, p := range placements {
		quadrants, seen := grouped[p.RadarID]
		if !seen {
			order = append(order, p.RadarID)
		}
		if containsString(quadrants, p.Quadrant) {
			continue
		}
		grouped[p.RadarID] = append(quadrants, p.Quadrant)
	}
	return order, grouped
}

// BuildItemForm reconciles a loaded item against the radar catalog into
// form state. Each persisted radar group becomes exactly one association
// row whose label comes from the catalog, never from the wire data. A
// radar the catalog no longer defines keeps its row with the raw id
// standing in as the label, so stale placements stay visible and
// removable instead of silently vanishing.
func BuildItemForm(entity item.Item, catalog []radar.Radar) *ItemForm {
	f := &ItemForm{
		Name:            entity.Name(),
		Description:     entity.Description(),
		Ring:            mappers.FormatSelectItem(entity.Ring()),
		RU:              entity.RU(),
		ProbationPassed: mappers.FormatProbationResult(entity.ProbationResult()),
		previousResult:  entity.ProbationResult(),
		catalog:         catalog,
	}
	if entity.ID() != uuid.Nil {
		f.ID = entity.ID().String()
	}

	order, grouped := GroupPlacements(entity.Placements())
	f.persisted = make(map[string][]string, len(order))
	f.associations = make([]Association, 0, len(order))
	for _, radarID := range order {
		label := radarID.String()
		if found, ok := f.catalogRadar(radarID.String()); ok {
			label = found.Name()
		}
		f.persisted[radarID.String()] = grouped[radarID]
		f.associations = append(f.associations, Association{
			RadarID:   radarID.String(),
			Label:     label,
			Quadrants: mappers.FormatSelectData(grouped[radarID]),
		})
	}
	return f
}

func (f *ItemForm) Associations() []Association { return f.associations }

// CanAddAssociation reports whether another row may be added: rows are
// capped at the catalog size since a radar is associated at most once.
func (f *ItemForm) CanAddAssociation() bool {
	return len(f.associations) < len(f.catalog)
}

// AddAssociation appends an empty row with no radar selected yet.
func (f *ItemForm) AddAssociation() error {
	if !f.CanAddAssociation() {
		return ErrAssociationLimit
	}
	f.associations = append(f.associations, Association{})
	return nil
}

// SelectRadar points the row at a radar. When the item was loaded with a
// persisted group for that radar, its quadrant subset is restored;
// otherwise the row starts with all quadrants the radar defines.
func (f *ItemForm) SelectRadar(idx int, radarID string) error {
	if idx < 0 || idx >= len(f.associations) {
		return ErrRowOutOfRange
	}
	chosen, ok := f.catalogRadar(radarID)
	if !ok {
		return errors.Wrap(ErrUnknownRadar, radarID)
	}

	row := &f.associations[idx]
	row.RadarID = radarID
	row.Label = chosen.Name()
	if persisted, ok := f.persisted[radarID]; ok {
		row.Quadrants = mappers.FormatSelectData(persisted)
	} else {
		row.Quadrants = mappers.FormatSelectData(chosen.Quadrants())
	}
	return nil
}

// SetQuadrants replaces the row's selected quadrants. An empty selection
// is legal; the row then contributes nothing on flatten.
func (f *ItemForm) SetQuadrants(idx int, quadrants []string) error {
	if idx < 0 || idx >= len(f.associations) {
		return ErrRowOutOfRange
	}
	f.associations[idx].Quadrants = mappers.FormatSelectData(quadrants)
	return nil
}

// RemoveAssociation deletes the row; rows after it shift down one index.
func (f *ItemForm) RemoveAssociation(idx int) error {
	if idx < 0 || idx >= len(f.associations) {
		return ErrRowOutOfRange
	}
	f.associations = append(f.associations[:idx], f.associations[idx+1:]...)
	return nil
}

// Flatten inverts the form back to the flat wire pairs: one pair per
// selected quadrant, in row order, display labels discarded. Rows with no
// radar chosen or with every quadrant deselected contribute no pairs.
func (f *ItemForm) Flatten() []viewmodels.ItemPlacement {
	return FlattenAssociations(f.viewAssociations())
}

// ProbationResult expands the boolean switch back to the tri-state using
// the result the form was loaded with.
func (f *ItemForm) ProbationResult() item.ProbationResult {
	return mappers.UnwrapProbationResult(f.ProbationPassed, f.previousResult)
}

// ViewModel shapes the form state for the editor response.
func (f *ItemForm) ViewModel() *viewmodels.ItemFormVM {
	return &viewmodels.ItemFormVM{
		ID:              f.ID,
		Name:            f.Name,
		Description:     f.Description,
		Ring:            f.Ring,
		RU:              f.RU,
		ProbationPassed: f.ProbationPassed,
		Associations:    f.viewAssociations(),
		CanAddRadar:     f.CanAddAssociation(),
	}
}

func (f *ItemForm) viewAssociations() []viewmodels.ItemAssociation {
	out := make([]viewmodels.ItemAssociation, 0, len(f.associations))
	for _, row := range f.associations {
		out = append(out, viewmodels.ItemAssociation{
			RadarID:   row.RadarID,
			Label:     row.Label,
			Quadrants: row.Quadrants,
		})
	}
	return out
}

func (f *ItemForm) catalogRadar(radarID string) (radar.Radar, bool) {
	for _, r := range f.catalog {
		if r.ID().String() == radarID {
			return r, true
		}
	}
	return radar.Radar{}, false
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
