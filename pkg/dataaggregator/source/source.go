package source

import "errors"

var UnsupportedSourceError = errors.New("unsupported query for source")

var NotFoundError = errors.New("could not find a matching record")
