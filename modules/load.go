package modules

import (
	"slices"

	"github.com/iota-uz/radar-admin/modules/radar"
	"github.com/iota-uz/radar-admin/pkg/application"
)

var (
	BuiltInModules = []application.Module{
		radar.NewModule(),
	}

	NavLinks = slices.Concat(
		radar.NavItems,
	)
)

func Load(app application.Application, externalModules ...application.Module) error {
	for _, module := range externalModules {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}
