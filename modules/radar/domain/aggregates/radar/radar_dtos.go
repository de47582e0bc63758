package radar

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/iota-uz/radar-admin/pkg/constants"
	"github.com/iota-uz/radar-admin/pkg/intl"
	"github.com/iota-uz/radar-admin/pkg/serrors"
)

// The ring/quadrant length caps are enforced here, at the edit boundary;
// the list transform helpers themselves impose no length constraint.
type CreateDTO struct {
	Name      string   `json:"name" validate:"required"`
	Rings     []string `json:"rings" validate:"max=4,dive,required"`
	Quadrants []string `json:"quadrants" validate:"max=4,dive,required"`
}

type UpdateDTO struct {
	Name      string   `json:"name" validate:"required"`
	Rings     []string `json:"rings" validate:"max=4,dive,required"`
	Quadrants []string `json:"quadrants" validate:"max=4,dive,required"`
}

func (d *CreateDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Rings = normalizeLabels(d.Rings)
	d.Quadrants = normalizeLabels(d.Quadrants)
}

func (d *CreateDTO) Ok(ctx context.Context) (map[string]string, bool) {
	d.Normalize()
	return validateRadarDTO(ctx, d)
}

func (d *UpdateDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Rings = normalizeLabels(d.Rings)
	d.Quadrants = normalizeLabels(d.Quadrants)
}

func (d *UpdateDTO) Ok(ctx context.Context) (map[string]string, bool) {
	d.Normalize()
	return validateRadarDTO(ctx, d)
}

func validateRadarDTO(ctx context.Context, dto any) (map[string]string, bool) {
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
		case "Name", "Rings", "Quadrants":
			return fmt.Sprintf("Radar.Fields.%s", field)
		default:
			return ""
		}
	}
	for field, err := range serrors.ProcessValidatorErrors(validatorErrs, getFieldLocaleKey) {
		validationErrors[field] = err
	}

	return serrors.LocalizeValidationErrors(validationErrors, l), false
}
