package datasets

import "github.com/travigo/ybs/pkg/planner"

type DataSet struct {
	Identifier    string `validate:"required"`
	DataSourceRef string `yaml:"-" json:"-"`

	Provider Provider `yaml:"-"`

	StopsFormat DataSetFormat `yaml:"stopsformat" validate:"required,oneof=ybs-json stops-csv"`
	Stops       string        `validate:"required"`

	RoutesFormat DataSetFormat `yaml:"routesformat" validate:"required,oneof=ybs-json"`
	Routes       string        `validate:"required"`

	Planner *planner.Config `yaml:"planner" validate:"omitempty"`
}

type DataSetFormat string

const (
	DataSetFormatYBSJSON  DataSetFormat = "ybs-json"
	DataSetFormatStopsCSV DataSetFormat = "stops-csv"
)

func (d *DataSet) PlannerConfig() planner.Config {
	if d.Planner == nil {
		return planner.DefaultConfig()
	}

	return *d.Planner
}
