package ybsjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/travigo/ybs/pkg/ctdf"
	"github.com/travigo/ybs/pkg/util"
)

type stopRecord struct {
	ID       any    `json:"id"`
	NameEN   string `json:"name_en"`
	NameMM   string `json:"name_mm"`
	Lat      any    `json:"lat"`
	Lng      any    `json:"lng"`
	Road     string `json:"road_en"`
	Township string `json:"township_en"`
}

func (r stopRecord) toStopRecord(identifier string) ctdf.StopRecord {
	if identifier == "" {
		identifier = util.IdentifierString(r.ID)
	}

	return ctdf.StopRecord{
		Identifier: identifier,
		NameEN:     r.NameEN,
		NameMM:     r.NameMM,
		Latitude:   parseCoordinate(identifier, r.Lat),
		Longitude:  parseCoordinate(identifier, r.Lng),
		Road:       r.Road,
		Township:   r.Township,
	}
}

func parseCoordinate(identifier string, value any) float64 {
	text := util.IdentifierString(value)
	if text == "" {
		return 0
	}

	coordinate, err := strconv.ParseFloat(text, 64)
	if err != nil {
		log.Warn().Str("stop", identifier).Str("value", text).Msg("Invalid stop coordinate")
		return 0
	}

	return coordinate
}

type Stops struct{}

// ParseStops accepts either an object keyed by stop identifier or an array of
// records carrying their own "id". Object key order is preserved.
func (s Stops) ParseStops(reader io.Reader) ([]ctdf.StopRecord, error) {
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()

	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	var records []ctdf.StopRecord

	switch token {
	case json.Delim('{'):
		for decoder.More() {
			keyToken, err := decoder.Token()
			if err != nil {
				return nil, err
			}
			identifier := util.IdentifierString(keyToken)

			var record stopRecord
			if err := decoder.Decode(&record); err != nil {
				if skippable(err) {
					log.Warn().Err(err).Str("stop", identifier).Msg("Skipping malformed stop record")
					continue
				}
				return records, fmt.Errorf("stop %s: %w", identifier, err)
			}

			records = append(records, record.toStopRecord(identifier))
		}
	case json.Delim('['):
		for decoder.More() {
			var record stopRecord
			if err := decoder.Decode(&record); err != nil {
				if skippable(err) {
					log.Warn().Err(err).Msg("Skipping malformed stop record")
					continue
				}
				return records, err
			}

			records = append(records, record.toStopRecord(""))
		}
	default:
		return nil, fmt.Errorf("unexpected stops catalog token %v", token)
	}

	return records, nil
}

// A type mismatch only spoils one record, the decoder has already consumed it
func skippable(err error) bool {
	var typeError *json.UnmarshalTypeError
	return errors.As(err, &typeError)
}
