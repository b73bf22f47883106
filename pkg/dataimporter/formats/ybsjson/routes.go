package ybsjson

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/travigo/ybs/pkg/ctdf"
	"github.com/travigo/ybs/pkg/util"
)

type routeRecord struct {
	RouteNumber any    `json:"route_number"`
	RouteID     any    `json:"route_id"`
	File        string `json:"file"`
	Name        string `json:"name"`
	Colour      string `json:"color"`
	Stops       []any  `json:"stops"`
}

type Routes struct{}

// ParseRoutes reads a single route object or an array of them. A record that fails to
// decode is dropped on its own, the rest of the file still loads.
func (r Routes) ParseRoutes(reader io.Reader, fileName string) ([]ctdf.RouteRecord, error) {
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	var rawRecords []json.RawMessage
	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &rawRecords); err != nil {
			return nil, err
		}
	} else {
		rawRecords = []json.RawMessage{trimmed}
	}

	var records []ctdf.RouteRecord

	for i, rawRecord := range rawRecords {
		decoder := json.NewDecoder(bytes.NewReader(rawRecord))
		decoder.UseNumber()

		var record routeRecord
		if err := decoder.Decode(&record); err != nil {
			log.Warn().Err(err).Str("file", fileName).Int("position", i).Msg("Skipping malformed route record")
			continue
		}

		if record.File == "" {
			record.File = fileName
		}

		converted := ctdf.RouteRecord{
			RouteNumber: util.IdentifierString(record.RouteNumber),
			RouteID:     util.IdentifierString(record.RouteID),
			File:        record.File,
			Name:        record.Name,
			Colour:      record.Colour,
		}
		for _, stopID := range record.Stops {
			converted.Stops = append(converted.Stops, util.IdentifierString(stopID))
		}

		records = append(records, converted)
	}

	return records, nil
}
