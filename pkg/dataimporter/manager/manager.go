package manager

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/travigo/ybs/pkg/ctdf"
	"github.com/travigo/ybs/pkg/dataimporter/datasets"
	"github.com/travigo/ybs/pkg/dataimporter/formats"
	"github.com/travigo/ybs/pkg/dataimporter/formats/stopscsv"
	"github.com/travigo/ybs/pkg/dataimporter/formats/ybsjson"
	"github.com/travigo/ybs/pkg/routeindex"
	"github.com/travigo/ybs/pkg/stopresolver"
)

var ErrUnknownFormat = errors.New("unknown dataset format")

type ImportResult struct {
	Resolver *stopresolver.Resolver
	Index    *routeindex.Index

	StopStats  stopresolver.LoadStats
	RouteStats routeindex.BuildStats
}

func stopsFormat(format datasets.DataSetFormat) (formats.StopsFormat, error) {
	switch format {
	case datasets.DataSetFormatYBSJSON:
		return ybsjson.Stops{}, nil
	case datasets.DataSetFormatStopsCSV:
		return stopscsv.Stops{}, nil
	default:
		return nil, fmt.Errorf("stops %s: %w", format, ErrUnknownFormat)
	}
}

func routesFormat(format datasets.DataSetFormat) (formats.RoutesFormat, error) {
	switch format {
	case datasets.DataSetFormatYBSJSON:
		return ybsjson.Routes{}, nil
	default:
		return nil, fmt.Errorf("routes %s: %w", format, ErrUnknownFormat)
	}
}

// ImportDataset builds a fresh resolver and index from the data set files.
// Nothing shared is touched, callers swap the result in when it is complete.
func ImportDataset(dataset *datasets.DataSet) (*ImportResult, error) {
	log.Info().Str("dataset", dataset.Identifier).Msg("Importing dataset")

	return importDataset(dataset, func(index *routeindex.Index, records []ctdf.RouteRecord) routeindex.BuildStats {
		return index.Build(records)
	})
}

// ImportDatasetFromSnapshot loads the stop and route catalogs but takes the stop -> routes
// mappings and transfer hubs from a snapshot instead of deriving them.
func ImportDatasetFromSnapshot(dataset *datasets.DataSet, snapshot *routeindex.Snapshot) (*ImportResult, error) {
	log.Info().Str("dataset", dataset.Identifier).Time("snapshot", snapshot.GeneratedAt).Msg("Importing dataset from snapshot")

	return importDataset(dataset, func(index *routeindex.Index, records []ctdf.RouteRecord) routeindex.BuildStats {
		index.LoadCatalog(records)
		index.ImportSnapshot(snapshot)

		return index.Stats()
	})
}

func importDataset(dataset *datasets.DataSet, buildIndex func(*routeindex.Index, []ctdf.RouteRecord) routeindex.BuildStats) (*ImportResult, error) {
	stopRecords, err := readStops(dataset)
	if err != nil {
		return nil, err
	}

	routeRecords, err := readRoutes(dataset)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{
		Resolver: stopresolver.New(),
		Index:    routeindex.New(),
	}
	result.StopStats = result.Resolver.Load(stopRecords)
	result.RouteStats = buildIndex(result.Index, routeRecords)

	return result, nil
}

func readStops(dataset *datasets.DataSet) ([]ctdf.StopRecord, error) {
	format, err := stopsFormat(dataset.StopsFormat)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(dataset.Stops)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := format.ParseStops(file)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", dataset.Stops, err)
	}

	return records, nil
}

// readRoutes accepts a single file or a directory of per-route files read in name order
func readRoutes(dataset *datasets.DataSet) ([]ctdf.RouteRecord, error) {
	format, err := routesFormat(dataset.RoutesFormat)
	if err != nil {
		return nil, err
	}

	fileInfo, err := os.Stat(dataset.Routes)
	if err != nil {
		return nil, err
	}

	paths := []string{dataset.Routes}
	if fileInfo.IsDir() {
		paths, err = filepath.Glob(filepath.Join(dataset.Routes, "*.json"))
		if err != nil {
			return nil, err
		}
		sort.Strings(paths)
	}

	var records []ctdf.RouteRecord

	for _, path := range paths {
		fileRecords, err := readRouteFile(format, path)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("Skipping unreadable route file")
			continue
		}

		records = append(records, fileRecords...)
	}

	return records, nil
}

func readRouteFile(format formats.RoutesFormat, path string) ([]ctdf.RouteRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return format.ParseRoutes(file, filepath.Base(path))
}
