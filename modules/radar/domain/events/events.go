package events

import (
	"github.com/google/uuid"
)

// Session carries the request metadata an event was raised under. Both
// fields are empty for events published outside an HTTP request.
type Session struct {
	IP        string
	UserAgent string
}

type RadarCreated struct {
	Session Session
	RadarID uuid.UUID
	Name    string
}

type RadarUpdated struct {
	Session Session
	RadarID uuid.UUID
	Name    string
}

type ItemCreated struct {
	Session Session
	ItemID  uuid.UUID
	RadarID uuid.UUID
	Name    string
}

type ItemUpdated struct {
	Session Session
	ItemID  uuid.UUID
	Name    string
}
