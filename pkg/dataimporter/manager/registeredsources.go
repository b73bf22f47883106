package manager

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/travigo/ybs/pkg/dataimporter/datasets"
	"gopkg.in/yaml.v3"
)

const DefaultDataSourcesDirectory = "data/datasources/"

var ErrDatasetNotFound = errors.New("dataset not found")

var datasetValidator = validator.New()

// GetRegisteredDataSets loads every data source yaml file in the directory. Data set paths
// are resolved relative to the yaml file that declares them.
func GetRegisteredDataSets(directory string) ([]datasets.DataSet, error) {
	var registeredDatasets []datasets.DataSet

	err := filepath.Walk(directory,
		func(path string, fileInfo os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if fileInfo.IsDir() || filepath.Ext(path) != ".yaml" {
				return nil
			}

			log.Debug().Str("path", path).Msg("Loading datasource file")

			datasourceYaml, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			decoder := yaml.NewDecoder(bytes.NewReader(datasourceYaml))

			for {
				var datasource datasets.DataSource
				if err := decoder.Decode(&datasource); err != nil {
					if errors.Is(err, io.EOF) {
						break
					}
					return fmt.Errorf("%s: %w", path, err)
				}

				if err := datasetValidator.Struct(datasource); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}

				for _, dataset := range datasource.Datasets {
					dataset.Identifier = fmt.Sprintf("%s-%s", datasource.Identifier, dataset.Identifier)
					dataset.DataSourceRef = datasource.Identifier
					dataset.Provider = datasource.Provider
					dataset.Stops = resolvePath(path, dataset.Stops)
					dataset.Routes = resolvePath(path, dataset.Routes)

					registeredDatasets = append(registeredDatasets, dataset)
				}
			}

			return nil
		})
	if err != nil {
		return nil, err
	}

	return registeredDatasets, nil
}

func resolvePath(yamlPath string, target string) string {
	if filepath.IsAbs(target) {
		return target
	}

	return filepath.Join(filepath.Dir(yamlPath), target)
}

func GetDataset(directory string, identifier string) (datasets.DataSet, error) {
	registeredDatasets, err := GetRegisteredDataSets(directory)
	if err != nil {
		return datasets.DataSet{}, err
	}

	for _, dataset := range registeredDatasets {
		if dataset.Identifier == identifier {
			return dataset, nil
		}
	}

	return datasets.DataSet{}, fmt.Errorf("%s: %w", identifier, ErrDatasetNotFound)
}
