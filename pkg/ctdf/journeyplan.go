package ctdf

type LegStop struct {
	Identifier  string            `groups:"basic"`
	PrimaryName string            `groups:"basic"`
	OtherNames  map[string]string `groups:"basic"`
	Location    *Location         `groups:"basic"`
}

type Leg struct {
	RouteKey    string `groups:"basic"`
	RouteName   string `groups:"basic"`
	RouteColour string `groups:"basic"`

	BoardStop  LegStop   `groups:"basic"`
	AlightStop LegStop   `groups:"basic"`
	Stops      []LegStop `groups:"detailed"`

	StopCount  int     `groups:"basic"`
	DistanceKm float64 `groups:"basic"`
}

type Path struct {
	Legs []Leg `groups:"basic"`

	TransferCount   int     `groups:"basic"`
	TotalStops      int     `groups:"basic"`
	TotalDistanceKm float64 `groups:"basic"`

	Score float64 `groups:"basic"`
}

// Signature identifies a path by the rides it is made of
func (p *Path) Signature() string {
	signature := ""
	for _, leg := range p.Legs {
		signature += leg.RouteKey + ":" + leg.BoardStop.Identifier + ">" + leg.AlightStop.Identifier + ";"
	}

	return signature
}
