package query

type Route struct {
	Key string
}

type ServicesByStop struct {
	StopIdentifier string
}

// CommonStops lists the stops shared by two routes
type CommonStops struct {
	RouteA string
	RouteB string
}
