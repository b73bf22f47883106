package datasets

type DataSource struct {
	Identifier string `validate:"required"`
	Region     string
	Provider   Provider
	Datasets   []DataSet `validate:"dive"`
}

type Provider struct {
	Name    string
	Website string
}
