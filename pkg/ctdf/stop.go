package ctdf

const OtherNameMyanmar = "my"

type Stop struct {
	Identifier string `groups:"basic"`

	PrimaryName string            `groups:"basic"`
	OtherNames  map[string]string `groups:"basic"`

	Road     string `groups:"basic,detailed"`
	Township string `groups:"basic,detailed"`

	Location *Location `groups:"basic"`
}

func (s *Stop) MyanmarName() string {
	if s.OtherNames == nil {
		return ""
	}

	return s.OtherNames[OtherNameMyanmar]
}

// StopRecord is a stop as it appears in a source catalog before validation
type StopRecord struct {
	Identifier string  `json:"id" csv:"id"`
	NameEN     string  `json:"name_en" csv:"name_en"`
	NameMM     string  `json:"name_mm" csv:"name_mm"`
	Latitude   float64 `json:"lat" csv:"lat"`
	Longitude  float64 `json:"lng" csv:"lng"`
	Road       string  `json:"road_en" csv:"road_en"`
	Township   string  `json:"township_en" csv:"township_en"`
}

func (r StopRecord) ToStop() *Stop {
	stop := &Stop{
		Identifier:  r.Identifier,
		PrimaryName: r.NameEN,
		OtherNames:  map[string]string{},
		Road:        r.Road,
		Township:    r.Township,
	}

	// 0,0 is what catalogs leave behind when a stop was never surveyed
	if r.Latitude != 0 || r.Longitude != 0 {
		stop.Location = &Location{
			Type:        "Point",
			Coordinates: []float64{r.Longitude, r.Latitude},
		}
	}

	if r.NameMM != "" {
		stop.OtherNames[OtherNameMyanmar] = r.NameMM
	}

	return stop
}
