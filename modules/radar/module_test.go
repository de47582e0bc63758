package radar_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/radar-admin/modules"
	"github.com/iota-uz/radar-admin/modules/radar"
	"github.com/iota-uz/radar-admin/modules/radar/services"
	"github.com/iota-uz/radar-admin/pkg/application"
	"github.com/iota-uz/radar-admin/pkg/eventbus"
)

func newTestApp(t *testing.T) application.Application {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return application.New(&application.ApplicationOptions{
		Bundle:   application.LoadBundle(),
		EventBus: eventbus.NewEventPublisher(logger),
		Logger:   logger,
	})
}

func TestModule_Register(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	require.NoError(t, radar.NewModule().Register(app))

	assert.Len(t, app.Controllers(), 2)
	assert.NotNil(t, app.Service(services.RadarService{}))
	assert.NotNil(t, app.Service(services.ItemService{}))

	// Nav items come from the aggregated modules.NavLinks list, which the
	// entrypoint registers once; Register itself contributes none.
	assert.Empty(t, app.NavItems())

	app.RegisterNavItems(modules.NavLinks...)
	assert.Len(t, app.NavItems(), len(radar.NavItems))
}
