package stopscsv

import (
	"encoding/csv"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/travigo/ybs/pkg/ctdf"
)

type Stops struct{}

func (s Stops) ParseStops(reader io.Reader) ([]ctdf.StopRecord, error) {
	// Allow us to ignore those naughty records that have missing columns
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.FieldsPerRecord = -1
		return r
	})

	var records []ctdf.StopRecord
	if err := gocsv.Unmarshal(reader, &records); err != nil {
		return nil, err
	}

	return records, nil
}
