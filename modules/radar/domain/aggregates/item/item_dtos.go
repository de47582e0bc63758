package item

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/iota-uz/radar-admin/pkg/constants"
	"github.com/iota-uz/radar-admin/pkg/intl"
	"github.com/iota-uz/radar-admin/pkg/serrors"
)

// PlacementDTO is the wire pair of the item payload: `radars` is a flat
// list of these, one entry per quadrant the item occupies in that radar.
type PlacementDTO struct {
	ID       string `json:"id" validate:"required,uuid"`
	Quadrant string `json:"quadrant" validate:"required"`
}

type CreateDTO struct {
	Name            string         `json:"name" validate:"required"`
	Description     string         `json:"description"`
	Ring            string         `json:"ring" validate:"required"`
	RU              bool           `json:"ru"`
	ProbationResult string         `json:"probation_result" validate:"omitempty,oneof=passed failed"`
	Radars          []PlacementDTO `json:"radars" validate:"dive"`
}

type UpdateDTO struct {
	Name            string         `json:"name" validate:"required"`
	Description     string         `json:"description"`
	Ring            string         `json:"ring" validate:"required"`
	RU              bool           `json:"ru"`
	ProbationResult string         `json:"probation_result" validate:"omitempty,oneof=passed failed"`
	Radars          []PlacementDTO `json:"radars" validate:"dive"`
}

func (d *CreateDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Ring = strings.TrimSpace(d.Ring)
	d.ProbationResult = strings.TrimSpace(strings.ToLower(d.ProbationResult))
}

func (d *CreateDTO) Ok(ctx context.Context) (map[string]string, bool) {
	d.Normalize()
	return validateItemDTO(ctx, d)
}

func (d *CreateDTO) Placements() ([]Placement, error) {
	return placementsFromDTOs(d.Radars)
}

func (d *UpdateDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Ring = strings.TrimSpace(d.Ring)
	d.ProbationResult = strings.TrimSpace(strings.ToLower(d.ProbationResult))
}

func (d *UpdateDTO) Ok(ctx context.Context) (map[string]string, bool) {
	d.Normalize()
	return validateItemDTO(ctx, d)
}

func (d *UpdateDTO) Placements() ([]Placement, error) {
	return placementsFromDTOs(d.Radars)
}

func placementsFromDTOs(dtos []PlacementDTO) ([]Placement, error) {
	out := make([]Placement, 0, len(dtos))
	for _, dto := range dtos {
		radarID, err := uuid.Parse(dto.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid radar id %q: %w", dto.ID, err)
		}
		out = append(out, Placement{
			RadarID:  radarID,
			Quadrant: strings.TrimSpace(dto.Quadrant),
		})
	}
	return out, nil
}

func validateItemDTO(ctx context.Context, dto any) (map[string]string, bool) {
	l, ok := intl.UseLocalizer(ctx)
	if !ok {
		panic(intl.ErrNoLocalizer)
	}

	errs := constants.Validate.Struct(dto)
	if errs == nil {
		return map[string]string{}, true
	}

	validationErrors := make(serrors.ValidationErrors)
	validatorErrs := errs.(validator.ValidationErrors)
	getFieldLocaleKey := func(field string) string {
		switch field {
		case "Name", "Description", "Ring", "RU", "ProbationResult", "Radars", "ID", "Quadrant":
			return fmt.Sprintf("RadarItem.Fields.%s", field)
		default:
			return ""
		}
	}
	for field, err := range serrors.ProcessValidatorErrors(validatorErrs, getFieldLocaleKey) {
		validationErrors[field] = err
	}

	return serrors.LocalizeValidationErrors(validationErrors, l), false
}
