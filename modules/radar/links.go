package radar

import (
	icons "github.com/iota-uz/icons/phosphor"

	"github.com/iota-uz/radar-admin/pkg/types"
)

var RadarsLink = types.NavigationItem{
	Name:     "NavigationLinks.Radars",
	Icon:     nil,
	Href:     "/radar/radars",
	Children: nil,
}

var ItemsLink = types.NavigationItem{
	Name:     "NavigationLinks.RadarItems",
	Icon:     nil,
	Href:     "/radar/items",
	Children: nil,
}

var RadarLink = types.NavigationItem{
	Name: "NavigationLinks.Radar",
	Icon: icons.AirTrafficControl(icons.Props{Size: "20"}),
	Href: "/radar",
	Children: []types.NavigationItem{
		RadarsLink,
		ItemsLink,
	},
}

var NavItems = []types.NavigationItem{
	RadarLink,
}
