package ctdf

type Route struct {
	Key string `groups:"basic"`

	Name   string `groups:"basic"`
	Colour string `groups:"basic"`

	Stops []string `groups:"detailed"`
}

// StopIndex is the first position of the stop in the route, or -1
func (r *Route) StopIndex(stopID string) int {
	for i, id := range r.Stops {
		if id == stopID {
			return i
		}
	}

	return -1
}

// RouteRecord is a route as it appears in a source catalog. Any of the
// numbering fields may be missing, the route key is derived from whichever is present.
type RouteRecord struct {
	RouteNumber string `json:"route_number" yaml:"route_number"`
	RouteID     string `json:"route_id" yaml:"route_id"`
	File        string `json:"file" yaml:"file"`

	Name   string `json:"name" yaml:"name"`
	Colour string `json:"color" yaml:"color"`

	Stops []string `json:"stops" yaml:"stops"`
}
