package radar

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iota-uz/radar-admin/pkg/serrors"
)

// A radar holds at most this many rings and quadrants; positions in the
// stored lists are significant and determine the numbering shown to users.
const (
	MaxRings     = 4
	MaxQuadrants = 4
)

var (
	ErrNotFound  = serrors.NewError("RADAR_NOT_FOUND", "radar not found", "Radar.Errors.NotFound")
	ErrNameTaken = serrors.NewError("RADAR_NAME_TAKEN", "radar name already exists", "Radar.Errors.NameTaken")
)

type Radar struct {
	id        uuid.UUID
	name      string
	rings     []string
	quadrants []string
	createdAt time.Time
	updatedAt time.Time
}

func New(name string, rings, quadrants []string) Radar {
	return Radar{
		name:      strings.TrimSpace(name),
		rings:     normalizeLabels(rings),
		quadrants: normalizeLabels(quadrants),
	}
}

func Hydrate(
	id uuid.UUID,
	name string,
	rings []string,
	quadrants []string,
	createdAt time.Time,
	updatedAt time.Time,
) Radar {
	return Radar{
		id:        id,
		name:      strings.TrimSpace(name),
		rings:     normalizeLabels(rings),
		quadrants: normalizeLabels(quadrants),
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r Radar) ID() uuid.UUID        { return r.id }
func (r Radar) Name() string         { return r.name }
func (r Radar) Rings() []string      { return r.rings }
func (r Radar) Quadrants() []string  { return r.quadrants }
func (r Radar) CreatedAt() time.Time { return r.createdAt }
func (r Radar) UpdatedAt() time.Time { return r.updatedAt }
func (r Radar) IsZero() bool         { return r.id == uuid.Nil && r.name == "" }

// HasQuadrant reports whether the given quadrant label is defined on the radar.
func (r Radar) HasQuadrant(quadrant string) bool {
	for _, q := range r.quadrants {
		if q == quadrant {
			return true
		}
	}
	return false
}

func normalizeLabels(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		trimmed := strings.TrimSpace(label)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
