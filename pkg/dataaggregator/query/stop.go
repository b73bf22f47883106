package query

type Stop struct {
	Identifier string
}

// StopResolve picks the single best stop for free text
type StopResolve struct {
	Text string
}

type StopSearch struct {
	Text  string
	Limit int
}

type SimilarStops struct {
	Name string
}

type TransferHubs struct{}
