package coverage

import "errors"

var (
	ErrDocTypeRequired  = errors.New("coverage: doc type is required")
	ErrUnexpectedStatus = errors.New("coverage: unexpected status code")
)
