package radar

import (
	"embed"

	"github.com/iota-uz/radar-admin/modules/radar/infrastructure/persistence"
	"github.com/iota-uz/radar-admin/modules/radar/presentation/controllers"
	"github.com/iota-uz/radar-admin/modules/radar/services"
	"github.com/iota-uz/radar-admin/pkg/application"
)

//go:embed presentation/locales/*.json
var localeFiles embed.FS

//go:embed infrastructure/persistence/schema/radar-schema.sql
var migrationFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	app.RegisterLocaleFiles(&localeFiles)
	app.Migrations().RegisterSchema(&migrationFiles)

	radarRepo := persistence.NewRadarRepository()
	itemRepo := persistence.NewItemRepository()

	app.RegisterServices(
		services.NewRadarService(radarRepo, app.EventPublisher()),
		services.NewItemService(itemRepo, radarRepo, app.EventPublisher()),
	)

	app.RegisterControllers(
		controllers.NewRadarsAPIController(app),
		controllers.NewItemsAPIController(app),
	)

	// Nav items are aggregated across modules and registered once by the
	// server entrypoint via modules.NavLinks.
	return nil
}

func (m *Module) Name() string {
	return "radar"
}
