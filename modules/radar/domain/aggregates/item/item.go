package item

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iota-uz/radar-admin/pkg/serrors"
)

var (
	ErrNotFound           = serrors.NewError("RADAR_ITEM_NOT_FOUND", "radar item not found", "RadarItem.Errors.NotFound")
	ErrQuadrantNotDefined = serrors.NewError("RADAR_QUADRANT_NOT_DEFINED", "quadrant is not defined on the radar", "RadarItem.Errors.QuadrantNotDefined")
)

// ProbationResult is the tri-state outcome of an item's probation period.
// The zero value means the item never entered or finished probation.
type ProbationResult string

const (
	ProbationNone   ProbationResult = ""
	ProbationPassed ProbationResult = "passed"
	ProbationFailed ProbationResult = "failed"
)

// Placement is one wire pair: the item occupies one quadrant of one radar.
// The same radar may appear in several placements with different quadrants.
type Placement struct {
	RadarID  uuid.UUID
	Quadrant string
}

type Item struct {
	id              uuid.UUID
	name            string
	description     string
	ring            string
	ru              bool
	probationResult ProbationResult
	placements      []Placement
	createdAt       time.Time
	updatedAt       time.Time
}

func New(name, description, ring string, ru bool, probationResult ProbationResult, placements []Placement) Item {
	return Item{
		name:            strings.TrimSpace(name),
		description:     strings.TrimSpace(description),
		ring:            strings.TrimSpace(ring),
		ru:              ru,
		probationResult: probationResult,
		placements:      placements,
	}
}

func Hydrate(
	id uuid.UUID,
	name string,
	description string,
	ring string,
	ru bool,
	probationResult ProbationResult,
	placements []Placement,
	createdAt time.Time,
	updatedAt time.Time,
) Item {
	return Item{
		id:              id,
		name:            strings.TrimSpace(name),
		description:     description,
		ring:            strings.TrimSpace(ring),
		ru:              ru,
		probationResult: probationResult,
		placements:      placements,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (i Item) ID() uuid.UUID                    { return i.id }
func (i Item) Name() string                     { return i.name }
func (i Item) Description() string              { return i.description }
func (i Item) Ring() string                     { return i.ring }
func (i Item) RU() bool                         { return i.ru }
func (i Item) ProbationResult() ProbationResult { return i.probationResult }
func (i Item) Placements() []Placement          { return i.placements }
func (i Item) CreatedAt() time.Time             { return i.createdAt }
func (i Item) UpdatedAt() time.Time             { return i.updatedAt }
func (i Item) IsZero() bool                     { return i.id == uuid.Nil && i.name == "" }

// OnRadar reports whether the item has at least one placement on the radar.
func (i Item) OnRadar(radarID uuid.UUID) bool {
	for _, p := range i.placements {
		if p.RadarID == radarID {
			return true
		}
	}
	return false
}

// ParseProbationResult maps a wire value to the tri-state; anything other
// than the two terminal outcomes collapses to the absent state.
func ParseProbationResult(v string) ProbationResult {
	switch strings.TrimSpace(strings.ToLower(v)) {
	case string(ProbationPassed):
		return ProbationPassed
	case string(ProbationFailed):
		return ProbationFailed
	default:
		return ProbationNone
	}
}
