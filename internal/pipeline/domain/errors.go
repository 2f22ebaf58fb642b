package domain

import "errors"

var (
	ErrInvalidPipeline   = errors.New("invalid pipeline")
	ErrUnsupportedFormat = errors.New("unsupported pipeline format")
)
