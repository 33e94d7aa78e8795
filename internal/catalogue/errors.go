package catalogue

import "errors"

var (
	ErrRenderFailed = errors.New("catalogue: failed to render README")
	ErrWriteFailed  = errors.New("catalogue: failed to write README")
)
