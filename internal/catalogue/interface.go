package catalogue

import "context"

// UseCase builds and publishes the catalogue README.
type UseCase interface {
	Generate(ctx context.Context, input GenerateInput) (GenerateOutput, error)
}
